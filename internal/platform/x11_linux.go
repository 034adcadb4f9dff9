//go:build linux

package platform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/screensaver"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
)

// keysymAudioPlay is XF86AudioPlay.
const keysymAudioPlay xproto.Keysym = 0x1008ff14

type x11Client struct {
	conn *xgb.Conn
	root xproto.Window

	xtest       bool
	screensaver bool
	playKeycode xproto.Keycode
}

var (
	x11Mu     sync.Mutex
	x11Shared *x11Client
)

// withX11 runs fn on a lazily opened display connection. A failed request
// drops the connection so the next call reconnects.
func withX11(fn func(client *x11Client) error) error {
	x11Mu.Lock()
	defer x11Mu.Unlock()

	if x11Shared == nil {
		client, err := newX11Client()
		if err != nil {
			return err
		}
		x11Shared = client
	}
	if err := fn(x11Shared); err != nil {
		if errors.Is(err, ErrMediaUnsupported) {
			return err
		}
		x11Shared.conn.Close()
		x11Shared = nil
		return err
	}
	return nil
}

func newX11Client() (*x11Client, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	setup := xproto.Setup(conn)
	client := &x11Client{
		conn:        conn,
		root:        setup.DefaultScreen(conn).Root,
		xtest:       xtest.Init(conn) == nil,
		screensaver: screensaver.Init(conn) == nil,
	}

	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	mapping, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("get keyboard mapping: %w", err)
	}
	client.playKeycode = findKeycode(mapping.Keysyms, int(mapping.KeysymsPerKeycode), setup.MinKeycode, keysymAudioPlay)
	return client, nil
}

// findKeycode returns the first keycode producing keysym, or 0.
func findKeycode(keysyms []xproto.Keysym, perKeycode int, first xproto.Keycode, keysym xproto.Keysym) xproto.Keycode {
	if perKeycode <= 0 {
		return 0
	}
	for index, candidate := range keysyms {
		if candidate == keysym {
			return first + xproto.Keycode(index/perKeycode)
		}
	}
	return 0
}

func (client *x11Client) pressPlay() error {
	if !client.xtest {
		return ErrMediaUnsupported
	}
	if client.playKeycode == 0 {
		return fmt.Errorf("no keycode mapped to XF86AudioPlay")
	}
	for _, eventType := range []byte{xproto.KeyPress, xproto.KeyRelease} {
		err := xtest.FakeInputChecked(client.conn, eventType, byte(client.playKeycode), xproto.TimeCurrentTime, client.root, 0, 0, 0).Check()
		if err != nil {
			return fmt.Errorf("fake media key: %w", err)
		}
	}
	return nil
}

func (client *x11Client) idle() (uint32, error) {
	reply, err := screensaver.QueryInfo(client.conn, xproto.Drawable(client.root)).Reply()
	if err != nil {
		return 0, fmt.Errorf("query screensaver info: %w", err)
	}
	return reply.MsSinceUserInput, nil
}

// frame walks up to the window manager frame of window.
func (client *x11Client) frame(window xproto.Window) xproto.Window {
	for {
		reply, err := xproto.QueryTree(client.conn, window).Reply()
		if err != nil || reply.Parent == client.root || reply.Parent == 0 {
			return window
		}
		window = reply.Parent
	}
}

func (client *x11Client) position(window xproto.Window) (int, int, error) {
	reply, err := xproto.TranslateCoordinates(client.conn, client.frame(window), client.root, 0, 0).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("translate window coordinates: %w", err)
	}
	return int(reply.DstX), int(reply.DstY), nil
}

func (client *x11Client) move(window xproto.Window, x, y int) error {
	values := []uint32{uint32(int32(x)), uint32(int32(y))}
	err := xproto.ConfigureWindowChecked(client.conn, window, xproto.ConfigWindowX|xproto.ConfigWindowY, values).Check()
	if err != nil {
		return fmt.Errorf("configure window: %w", err)
	}
	return nil
}
