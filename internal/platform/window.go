package platform

import "errors"

// ErrPlacementUnsupported means windows cannot be positioned on this system.
var ErrPlacementUnsupported = errors.New("window placement unsupported")

// WindowPosition returns the top-left corner of the native window handle.
func WindowPosition(handle uintptr) (x, y int, err error) {
	if handle == 0 {
		return 0, 0, ErrPlacementUnsupported
	}
	return windowPosition(handle)
}

// MoveWindow moves the native window handle to x, y.
func MoveWindow(handle uintptr, x, y int) error {
	if handle == 0 {
		return ErrPlacementUnsupported
	}
	return moveWindow(handle, x, y)
}
