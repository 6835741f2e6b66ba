// Package ui builds the demo window: trigger widgets near every viewport
// edge sharing one tooltip layer, and a status bar fed from bus events.
package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/andrewthehan/hovertip/internal/bus"
	"github.com/andrewthehan/hovertip/internal/config"
	"github.com/andrewthehan/hovertip/tooltip"
)

type Dependencies struct {
	Config config.AppConfig
	Bus    *bus.PubSubBus
	Logger *slog.Logger
	OnQuit func()
}

func Run(deps Dependencies) error {
	a := fyneapp.New()
	w := a.NewWindow("hovertip demo")

	view := newDemoView(deps)
	view.listen()

	w.SetContent(view.content)
	w.Resize(fyne.NewSize(800, 600))
	w.SetOnClosed(func() {
		view.stop()
		if deps.OnQuit != nil {
			deps.OnQuit()
		}
	})
	w.ShowAndRun()

	return nil
}

type demoView struct {
	content    fyne.CanvasObject
	manager    *tooltip.Manager
	status     *widget.Label
	msgBus     *bus.PubSubBus
	done       chan struct{}
	listenDone chan struct{}
}

func newDemoView(deps Dependencies) *demoView {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	overlayLayer := container.NewWithoutLayout()
	opts := []tooltip.Option{tooltip.WithLogger(logger.With("component", "tooltip.manager"))}
	if deps.Bus != nil {
		opts = append(opts, tooltip.WithNotifier(deps.Bus))
	}
	manager := tooltip.NewManager(overlayLayer, deps.Config.Tooltip, opts...)

	v := &demoView{
		manager: manager,
		status:  widget.NewLabel("hover a trigger"),
		msgBus:  deps.Bus,
		done:    make(chan struct{}),
	}

	pinned := v.trigger(manager, "pin me", "This one stays open until unpinned.")
	pin := widget.NewCheck("pin", func(on bool) {
		pinned.SetTooltipVisible(on)
	})

	triggers := container.NewVBox(
		container.NewHBox(
			v.trigger(manager, "top left", "Placed below-right when the corner leaves no room above."),
			layout.NewSpacer(),
			v.trigger(manager, "top right", "Clamped back inside the right edge."),
		),
		layout.NewSpacer(),
		container.NewHBox(
			layout.NewSpacer(),
			v.trigger(manager, "center", "Plenty of room: always placed above."),
			layout.NewSpacer(),
		),
		layout.NewSpacer(),
		container.NewHBox(
			v.trigger(manager, "bottom left", "Placed above, nudged off the left edge."),
			layout.NewSpacer(),
			container.NewHBox(pinned, pin),
		),
	)

	v.content = container.NewBorder(nil, v.status, nil, nil,
		container.NewStack(triggers, overlayLayer))

	return v
}

func (v *demoView) trigger(manager *tooltip.Manager, text, overlay string) *tooltip.Area {
	return tooltip.NewArea(manager, widget.NewLabel(text), func() fyne.CanvasObject {
		return widget.NewLabel(overlay)
	})
}

// listen forwards bus events to the UI thread until stop is called.
func (v *demoView) listen() {
	if v.msgBus == nil {
		return
	}

	topics := []string{tooltip.TopicShown, tooltip.TopicPlaced, tooltip.TopicHidden, bus.TopicConfigReloaded}
	subs := make([]bus.Subscription, len(topics))
	for i, topic := range topics {
		subs[i] = v.msgBus.Subscribe(topic)
	}
	v.listenDone = make(chan struct{})

	go func() {
		defer close(v.listenDone)
		defer func() {
			for i, sub := range subs {
				v.msgBus.Unsubscribe(sub, topics[i])
			}
		}()

		for {
			select {
			case <-v.done:
				return
			case msg, ok := <-subs[0]:
				if !ok {
					return
				}
				v.dispatch(msg)
			case msg, ok := <-subs[1]:
				if !ok {
					return
				}
				v.dispatch(msg)
			case msg, ok := <-subs[2]:
				if !ok {
					return
				}
				v.dispatch(msg)
			case msg, ok := <-subs[3]:
				if !ok {
					return
				}
				v.dispatch(msg)
			}
		}
	}()
}

func (v *demoView) dispatch(msg any) {
	fyne.Do(func() {
		v.apply(msg)
	})
}

// apply updates the view from a single bus event. Runs on the UI thread.
func (v *demoView) apply(msg any) {
	switch event := msg.(type) {
	case tooltip.ShownEvent:
		v.status.SetText("measuring tooltip content")
	case tooltip.PlacedEvent:
		v.status.SetText(fmt.Sprintf("tooltip at (%.0f, %.0f)", event.Origin.X, event.Origin.Y))
	case tooltip.HiddenEvent:
		v.status.SetText("tooltip hidden")
	case config.AppConfig:
		v.manager.SetMargin(event.Tooltip.Margin)
		v.status.SetText(fmt.Sprintf("config reloaded, margin %.0f", event.Tooltip.Margin))
	}
}

// stop ends the listener and waits for its unsubscribes to finish, so the
// caller may shut the bus down immediately afterwards.
func (v *demoView) stop() {
	select {
	case <-v.done:
	default:
		close(v.done)
	}
	if v.listenDone != nil {
		<-v.listenDone
	}
}
