package platform

import (
	"time"

	"pomotick/internal/core/inactivity"
)

// IdleProvider reports how long the desktop session has gone without keyboard
// or pointer input. The inactivity monitor folds this into its last
// interaction so typing in other applications keeps a work interval attended.
// Providers return inactivity.ErrIdleUnsupported when the session cannot tell.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

var _ inactivity.IdleChecker = IdleProvider(nil)

// NewIdleProvider returns the provider for the running OS and display server.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}
