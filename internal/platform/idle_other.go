//go:build !linux && !windows

package platform

import (
	"time"

	"pomotick/internal/core/inactivity"
)

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return idleProvider{}
}

func (idleProvider) IdleDuration() (time.Duration, error) {
	return 0, inactivity.ErrIdleUnsupported
}
