//go:build !linux && !windows

package platform

func windowPosition(uintptr) (int, int, error) {
	return 0, 0, ErrPlacementUnsupported
}

func moveWindow(uintptr, int, int) error {
	return ErrPlacementUnsupported
}
