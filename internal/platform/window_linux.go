//go:build linux

package platform

import "github.com/jezek/xgb/xproto"

func windowPosition(handle uintptr) (int, int, error) {
	var x, y int
	err := withX11(func(client *x11Client) error {
		var err error
		x, y, err = client.position(xproto.Window(handle))
		return err
	})
	return x, y, err
}

func moveWindow(handle uintptr, x, y int) error {
	return withX11(func(client *x11Client) error {
		return client.move(xproto.Window(handle), x, y)
	})
}
