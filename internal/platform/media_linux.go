//go:build linux

package platform

func pressPlayPause() error {
	return withX11(func(client *x11Client) error {
		return client.pressPlay()
	})
}
