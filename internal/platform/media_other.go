//go:build !linux && !windows

package platform

func pressPlayPause() error {
	return ErrMediaUnsupported
}
