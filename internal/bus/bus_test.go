package bus

import (
	"log/slog"
	"testing"
	"time"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New(slog.Default())
	defer b.Close()

	sub := b.Subscribe("tooltip.placed")
	defer b.Unsubscribe(sub, "tooltip.placed")

	type placed struct{ X, Y float32 }
	b.Publish("tooltip.placed", placed{X: 85, Y: 44})

	select {
	case msg := <-sub:
		got, ok := msg.(placed)
		if !ok {
			t.Fatalf("expected placed payload, got %T", msg)
		}
		if got.X != 85 || got.Y != 44 {
			t.Fatalf("expected payload (85,44), got %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(slog.Default())
	defer b.Close()

	sub := b.Subscribe(TopicConfigReloaded)
	b.Unsubscribe(sub)

	b.Publish(TopicConfigReloaded, struct{}{})

	select {
	case _, open := <-sub:
		if open {
			t.Fatal("expected no delivery after unsubscribe")
		}
	case <-time.After(100 * time.Millisecond):
	}
}
