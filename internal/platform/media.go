package platform

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrMediaUnsupported means no media key can be simulated on this system.
var ErrMediaUnsupported = errors.New("media key simulation unsupported")

// MediaToggle presses the system play/pause media key.
type MediaToggle struct {
	press  func() error
	logger zerolog.Logger

	once sync.Once
}

// NewMediaToggle returns a MediaToggle for the running OS.
func NewMediaToggle(logger zerolog.Logger) *MediaToggle {
	return &MediaToggle{press: pressPlayPause, logger: logger}
}

// Toggle sends play/pause. Failures are logged and otherwise ignored.
func (toggle *MediaToggle) Toggle() {
	err := toggle.press()
	if err == nil {
		return
	}
	if errors.Is(err, ErrMediaUnsupported) {
		toggle.once.Do(func() {
			toggle.logger.Info().Msg("media key simulation not available; playback will not be toggled")
		})
		return
	}
	toggle.logger.Warn().Err(err).Msg("toggle media playback")
}
