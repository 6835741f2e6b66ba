package tooltip

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// bubble hosts overlay content on the tooltip layer. Every size change is
// reported back to the manager, which is how the off-screen measurement
// pass learns the content's real size.
type bubble struct {
	widget.BaseWidget

	content    fyne.CanvasObject
	background *canvas.Rectangle
	onSize     func(fyne.Size)
}

func newBubble(content fyne.CanvasObject, onSize func(fyne.Size)) *bubble {
	bg := canvas.NewRectangle(overlayBackgroundColor())
	bg.CornerRadius = theme.Padding()

	b := &bubble{
		content:    content,
		background: bg,
		onSize:     onSize,
	}
	b.ExtendBaseWidget(b)

	return b
}

func (b *bubble) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.background, container.NewPadded(b.content)))
}

func (b *bubble) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	if b.onSize != nil {
		b.onSize(size)
	}
}

func overlayBackgroundColor() color.Color {
	bg := theme.DefaultTheme().Color(theme.ColorNameOverlayBackground, theme.VariantDark)
	if app := fyne.CurrentApp(); app != nil {
		bg = app.Settings().Theme().Color(theme.ColorNameOverlayBackground, app.Settings().ThemeVariant())
	}

	return bg
}
