package tooltip

import "github.com/andrewthehan/hovertip/geometry"

const (
	TopicShown  = "tooltip.shown"
	TopicPlaced = "tooltip.placed"
	TopicHidden = "tooltip.hidden"
)

// Notifier receives tooltip lifecycle events. *bus.PubSubBus satisfies it.
type Notifier interface {
	Publish(topic string, msg any)
}

// ShownEvent is published when an overlay is mounted for measurement.
type ShownEvent struct{}

// PlacedEvent is published every time the overlay lands at a new origin.
type PlacedEvent struct {
	Origin geometry.Location
}

// HiddenEvent is published when the overlay is unmounted.
type HiddenEvent struct{}
