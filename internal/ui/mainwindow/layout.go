package mainwindow

import "fyne.io/fyne/v2"

const columnGap = float32(6)

// columnLayout stacks the state label, timer label, graphic and control row.
// The graphic takes whatever height the labels and controls leave over.
type columnLayout struct{}

func (layout *columnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	state, timerText, graphic, controls := objects[0], objects[1], objects[2], objects[3]

	y := columnGap
	stateSize := state.MinSize()
	state.Move(fyne.NewPos(0, y))
	state.Resize(fyne.NewSize(size.Width, stateSize.Height))
	y += stateSize.Height + columnGap

	timerSize := timerText.MinSize()
	timerText.Move(fyne.NewPos(0, y))
	timerText.Resize(fyne.NewSize(size.Width, timerSize.Height))
	y += timerSize.Height + columnGap

	controlSize := controls.MinSize()
	controlY := size.Height - controlSize.Height - columnGap
	if controlY < y {
		controlY = y
	}
	controls.Move(fyne.NewPos(0, controlY))
	controls.Resize(fyne.NewSize(size.Width, controlSize.Height))

	side := controlY - y - columnGap
	if side > size.Width {
		side = size.Width
	}
	if side < 0 {
		side = 0
	}
	graphic.Move(fyne.NewPos((size.Width-side)/2, y))
	graphic.Resize(fyne.NewSize(side, side))
}

func (layout *columnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 4 {
		return fyne.NewSize(0, 0)
	}
	width := float32(0)
	height := columnGap * 5
	for _, object := range []fyne.CanvasObject{objects[0], objects[1], objects[3]} {
		min := object.MinSize()
		if min.Width > width {
			width = min.Width
		}
		height += min.Height
	}
	return fyne.NewSize(width, height)
}
