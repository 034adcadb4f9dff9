package mainwindow

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"pomotick/internal/platform"
	"pomotick/internal/storage"
)

// RestoreSize applies a stored size. Without one the window gets
// DefaultSize and is centred.
func (view *Window) RestoreSize(geometry storage.Geometry) {
	if geometry.HasSize() {
		view.window.Resize(fyne.NewSize(float32(*geometry.Width), float32(*geometry.Height)))
		return
	}
	view.window.Resize(DefaultSize)
	view.window.CenterOnScreen()
}

// RestorePosition moves the window to a stored position. The native window
// must exist, so call it once the app has started.
func (view *Window) RestorePosition(geometry storage.Geometry) {
	if !geometry.HasPosition() {
		return
	}
	x, y := *geometry.X, *geometry.Y
	err := view.withHandle(func(handle uintptr) error {
		return platform.MoveWindow(handle, x, y)
	})
	if err != nil {
		view.logger.Debug().Err(err).Int("x", x).Int("y", y).Msg("restore window position")
	}
}

// Geometry captures the current window size and, where supported, position.
func (view *Window) Geometry() storage.Geometry {
	size := view.window.Canvas().Size()
	width, height := int(size.Width), int(size.Height)
	geometry := storage.Geometry{Width: &width, Height: &height}

	err := view.withHandle(func(handle uintptr) error {
		x, y, err := platform.WindowPosition(handle)
		if err != nil {
			return err
		}
		geometry.X, geometry.Y = &x, &y
		return nil
	})
	if err != nil && !errors.Is(err, platform.ErrPlacementUnsupported) {
		view.logger.Debug().Err(err).Msg("capture window position")
	}
	return geometry
}

// withHandle runs fn with the native window handle.
func (view *Window) withHandle(fn func(handle uintptr) error) error {
	native, ok := view.window.(driver.NativeWindow)
	if !ok {
		return platform.ErrPlacementUnsupported
	}

	err := platform.ErrPlacementUnsupported
	native.RunNative(func(context any) {
		switch ctx := context.(type) {
		case driver.X11WindowContext:
			err = fn(ctx.WindowHandle)
		case driver.WindowsWindowContext:
			err = fn(ctx.HWND)
		}
	})
	return err
}
