package tooltip

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/andrewthehan/hovertip/geometry"
)

// Phase identifies the overlay lifecycle state. Measurement is a discrete
// phase, not inferred from the overlay's coordinates.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseMeasuring
	PhasePlaced
)

func (p Phase) String() string {
	switch p {
	case PhaseMeasuring:
		return "measuring"
	case PhasePlaced:
		return "placed"
	default:
		return "hidden"
	}
}

// offscreenPosition parks the overlay far outside any plausible viewport
// while its content is being measured.
var offscreenPosition = fyne.NewPos(-10000, -10000)

// Manager owns the overlay layer and decides when and where a tooltip is
// mounted. All recomputation is synchronous and driven by observed changes:
// hover transitions, trigger moves, content size reports.
//
// A viewport that cannot contain the overlay near its trigger is a
// configuration error, not a recoverable condition: placement panics with
// the *geometry.ViewportTooSmallError instead of hiding the overlay.
type Manager struct {
	layer    *fyne.Container
	cfg      Config
	logger   *slog.Logger
	notifier Notifier

	active *Area
	bubble *bubble
	phase  Phase
}

type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithNotifier publishes ShownEvent/PlacedEvent/HiddenEvent on the given
// notifier under the tooltip.* topics.
func WithNotifier(notifier Notifier) Option {
	return func(m *Manager) {
		m.notifier = notifier
	}
}

// NewManager wires a manager to its overlay layer, a without-layout
// container stacked above normal content. The layer doubles as the
// viewport observer: its resizes reposition a mounted overlay. Returns nil
// for a nil layer.
func NewManager(layer *fyne.Container, cfg Config, opts ...Option) *Manager {
	if layer == nil {
		return nil
	}
	cfg.FillMissingDefaults()

	m := &Manager{
		layer:  layer,
		cfg:    cfg,
		logger: slog.Default().With("component", "tooltip.manager"),
		phase:  PhaseHidden,
	}
	for _, opt := range opts {
		opt(m)
	}
	layer.Layout = &layerLayout{manager: m}

	return m
}

// layerLayout leaves mounted overlays where the manager put them but
// reports layer size changes, so viewport resizes recompute placement.
type layerLayout struct {
	manager *Manager
	last    fyne.Size
}

func (l *layerLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	if size == l.last {
		return
	}
	l.last = size
	l.manager.Reposition()
}

func (l *layerLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.Size{}
}

func (m *Manager) Phase() Phase {
	return m.phase
}

// Visible reports the visibility flag: true in both the measuring and the
// placed phase.
func (m *Manager) Visible() bool {
	return m.phase != PhaseHidden
}

// SetMargin changes the clearance around the overlay and repositions a
// mounted one. Non-positive values fall back to the default margin.
func (m *Manager) SetMargin(margin float32) {
	if margin <= 0 {
		margin = geometry.DefaultMargin
	}
	m.cfg.Margin = margin
	m.Reposition()
}

// Show mounts the area's overlay content off-screen and starts the
// measurement pass. Showing the already-active area is a no-op.
func (m *Manager) Show(a *Area) {
	if m == nil || a == nil {
		return
	}
	if m.active == a && m.phase != PhaseHidden {
		return
	}

	content := a.overlayContent()
	if content == nil {
		return
	}

	// Hovering straight from one trigger to another replaces the overlay;
	// the previous one is hidden first so shown/hidden events stay paired.
	m.Hide()

	b := newBubble(content, m.contentResized)
	m.active = a
	m.bubble = b
	m.phase = PhaseMeasuring

	b.Move(offscreenPosition)
	m.layer.Objects = []fyne.CanvasObject{b}
	m.layer.Refresh()
	m.publish(TopicShown, ShownEvent{})
	m.logger.Debug("tooltip shown", "phase", m.phase)

	b.Resize(b.MinSize())
}

// Hide unmounts the overlay regardless of which area owns it.
func (m *Manager) Hide() {
	if m == nil || m.phase == PhaseHidden {
		return
	}

	m.phase = PhaseHidden
	m.active = nil
	m.bubble = nil
	m.layer.Objects = nil
	m.layer.Refresh()
	m.publish(TopicHidden, HiddenEvent{})
	m.logger.Debug("tooltip hidden")
}

// Reposition re-measures the overlay content and recomputes placement from
// the latest trigger, content, and viewport snapshot. Pure recomputation:
// unchanged inputs land the overlay at the same origin.
func (m *Manager) Reposition() {
	if m == nil || m.phase == PhaseHidden || m.bubble == nil {
		return
	}
	m.bubble.Resize(m.bubble.MinSize())
}

func (m *Manager) hoverChanged(a *Area, hovered bool) {
	if hovered {
		if !m.cfg.ShowOnHover {
			return
		}
		m.Show(a)
		return
	}

	if !m.cfg.HideOnNoHover {
		return
	}
	m.hideArea(a)
}

func (m *Manager) hideArea(a *Area) {
	if m.active != a {
		return
	}
	m.Hide()
}

func (m *Manager) areaMoved(a *Area) {
	if m.active != a {
		return
	}
	m.Reposition()
}

// contentResized is the size observer callback. A degenerate size keeps the
// overlay off-screen in the measuring phase; a real one triggers placement.
func (m *Manager) contentResized(size fyne.Size) {
	if m.phase == PhaseHidden || m.bubble == nil {
		return
	}

	if size.Width == 0 && size.Height == 0 {
		m.phase = PhaseMeasuring
		m.bubble.Move(offscreenPosition)
		return
	}

	trigger, viewport, ok := m.snapshot()
	if !ok {
		// Not attached to a canvas yet; stay in the measuring phase.
		return
	}

	content := geometry.Size{Width: size.Width, Height: size.Height}
	origin, err := geometry.ComputeOrigin(trigger, content, viewport, m.cfg.Margin)
	if err != nil {
		panic(err)
	}

	m.bubble.Move(fyne.NewPos(origin.X, origin.Y))
	m.phase = PhasePlaced
	m.publish(TopicPlaced, PlacedEvent{Origin: origin})
	m.logger.Debug("tooltip placed", "x", origin.X, "y", origin.Y)
}

// snapshot resolves the trigger box and viewport size in layer coordinates.
// A degenerate layer falls back to canvas coordinates.
func (m *Manager) snapshot() (geometry.BoundingBox, geometry.Size, bool) {
	app := fyne.CurrentApp()
	if app == nil || m.active == nil {
		return geometry.BoundingBox{}, geometry.Size{}, false
	}
	driver := app.Driver()
	if driver == nil {
		return geometry.BoundingBox{}, geometry.Size{}, false
	}
	cnv := driver.CanvasForObject(m.active)
	if cnv == nil {
		return geometry.BoundingBox{}, geometry.Size{}, false
	}

	viewport := m.layer.Size()
	layerPos := driver.AbsolutePositionForObject(m.layer)
	triggerPos := driver.AbsolutePositionForObject(m.active).Subtract(layerPos)
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = cnv.Size()
		triggerPos = driver.AbsolutePositionForObject(m.active)
	}

	triggerSize := m.active.Size()
	trigger := geometry.BoundingBox{
		Origin: geometry.Location{X: triggerPos.X, Y: triggerPos.Y},
		Size:   geometry.Size{Width: triggerSize.Width, Height: triggerSize.Height},
	}

	return trigger, geometry.Size{Width: viewport.Width, Height: viewport.Height}, true
}

func (m *Manager) publish(topic string, msg any) {
	if m.notifier == nil {
		return
	}
	m.notifier.Publish(topic, msg)
}
