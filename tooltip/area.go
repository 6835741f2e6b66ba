package tooltip

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var _ desktop.Hoverable = (*Area)(nil)

// Area wraps a trigger element. While the pointer stays over it, the
// manager shows the overlay produced by the content builder.
type Area struct {
	widget.BaseWidget

	manager *Manager
	trigger fyne.CanvasObject

	buildContent func() fyne.CanvasObject
	built        fyne.CanvasObject
}

// NewArea binds trigger content to a manager. The content builder runs
// lazily on first show; its result is memoized until SetContent installs a
// new builder.
func NewArea(manager *Manager, trigger fyne.CanvasObject, content func() fyne.CanvasObject) *Area {
	a := &Area{
		manager:      manager,
		trigger:      trigger,
		buildContent: content,
	}
	a.ExtendBaseWidget(a)

	return a
}

// SetContent replaces the overlay content builder and drops the memoized
// content built from the previous one.
func (a *Area) SetContent(content func() fyne.CanvasObject) {
	a.buildContent = content
	a.built = nil
}

// SetTooltipVisible manually opens or closes the overlay for this area,
// independent of the hover signal. Named apart from CanvasObject.Visible,
// which still governs the trigger widget itself.
func (a *Area) SetTooltipVisible(visible bool) {
	if a.manager == nil {
		return
	}
	if visible {
		a.manager.Show(a)
		return
	}
	a.manager.hideArea(a)
}

// TooltipVisible reports whether this area's overlay is currently mounted.
func (a *Area) TooltipVisible() bool {
	return a.manager != nil && a.manager.active == a && a.manager.Visible()
}

func (a *Area) MouseIn(*desktop.MouseEvent) {
	if a.manager == nil {
		return
	}
	a.manager.hoverChanged(a, true)
}

func (a *Area) MouseMoved(*desktop.MouseEvent) {
}

func (a *Area) MouseOut() {
	if a.manager == nil {
		return
	}
	a.manager.hoverChanged(a, false)
}

func (a *Area) Move(pos fyne.Position) {
	a.BaseWidget.Move(pos)
	if a.manager != nil {
		a.manager.areaMoved(a)
	}
}

func (a *Area) Resize(size fyne.Size) {
	a.BaseWidget.Resize(size)
	if a.manager != nil {
		a.manager.areaMoved(a)
	}
}

func (a *Area) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.trigger)
}

// overlayContent returns the memoized overlay content, building it on
// first use.
func (a *Area) overlayContent() fyne.CanvasObject {
	if a.built != nil {
		return a.built
	}
	if a.buildContent == nil {
		return nil
	}
	a.built = a.buildContent()

	return a.built
}
