//go:build windows

package platform

import (
	"fmt"
	"unsafe"
)

const (
	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

type rect struct {
	Left, Top, Right, Bottom int32
}

func windowPosition(handle uintptr) (int, int, error) {
	var r rect
	if result, _, err := procGetWindowRect.Call(handle, uintptr(unsafe.Pointer(&r))); result == 0 {
		return 0, 0, fmt.Errorf("get window rect: %w", err)
	}
	return int(r.Left), int(r.Top), nil
}

func moveWindow(handle uintptr, x, y int) error {
	result, _, err := procSetWindowPos.Call(handle, 0, uintptr(x), uintptr(y), 0, 0, swpNoSize|swpNoZOrder|swpNoActivate)
	if result == 0 {
		return fmt.Errorf("set window pos: %w", err)
	}
	return nil
}
