package mainwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// interactionArea sits behind the window content and reports pointer taps
// that no other widget consumed.
type interactionArea struct {
	widget.BaseWidget
	onTap func()
}

func newInteractionArea(onTap func()) *interactionArea {
	area := &interactionArea{onTap: onTap}
	area.ExtendBaseWidget(area)
	return area
}

func (area *interactionArea) Tapped(*fyne.PointEvent) {
	if area.onTap != nil {
		area.onTap()
	}
}

func (area *interactionArea) TappedSecondary(*fyne.PointEvent) {
	area.Tapped(nil)
}

func (area *interactionArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
