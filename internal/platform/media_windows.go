//go:build windows

package platform

import "fmt"

const (
	vkMediaPlayPause     = 0xB3
	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
)

func pressPlayPause() error {
	for _, flags := range []uintptr{keyeventfExtendedKey, keyeventfExtendedKey | keyeventfKeyUp} {
		if err := procKeybdEvent.Find(); err != nil {
			return fmt.Errorf("keybd_event: %w", err)
		}
		procKeybdEvent.Call(vkMediaPlayPause, 0, flags, 0)
	}
	return nil
}
