package inactivity

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"pomotick/internal/core/model"
	"pomotick/internal/core/timer"
)

const (
	confirmTitle   = "Still there?"
	confirmMessage = "Are you still listening?"
)

// ErrIdleUnsupported indicates OS idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// Engine is the part of the timer engine the monitor needs.
type Engine interface {
	Status() timer.Status
	Reset()
}

// Confirmer asks the user a yes/no question and reports the answer through the callback.
// The question must be modal: no ticks are processed until answer is called.
type Confirmer interface {
	AskYesNo(title, message string, answer func(yes bool))
}

// IdleChecker reports the duration of OS-wide user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Dependencies groups the collaborators of Monitor.
type Dependencies struct {
	Engine  Engine
	Voice   timer.VoicePrompt
	Media   timer.MediaToggle
	Confirm Confirmer
	Logger  zerolog.Logger
	// Now timestamps the answer to the question. Defaults to time.Now.
	Now func() time.Time
}

// Monitor nudges the user when a work interval runs unattended for too long.
type Monitor struct {
	config      model.InactivityConfig
	prompt      string
	deps        Dependencies
	last        time.Time
	pending     bool
	idleChecker IdleChecker
}

// New creates a Monitor. now seeds the last interaction instant.
func New(config model.InactivityConfig, prompt string, deps Dependencies, now time.Time) *Monitor {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Monitor{
		config: config,
		prompt: prompt,
		deps:   deps,
		last:   now,
	}
}

// SetIdleChecker enables folding OS-reported input into the interaction timestamp.
func (monitor *Monitor) SetIdleChecker(checker IdleChecker) {
	monitor.idleChecker = checker
}

// SetConfig replaces the threshold and workday window.
func (monitor *Monitor) SetConfig(config model.InactivityConfig) {
	monitor.config = config
}

// SetPrompt replaces the prompt played before asking.
func (monitor *Monitor) SetPrompt(prompt string) {
	monitor.prompt = prompt
}

// UpdateInteraction records user input at now.
func (monitor *Monitor) UpdateInteraction(now time.Time) {
	if now.After(monitor.last) {
		monitor.last = now
	}
}

// LastInteraction returns the instant of the latest recorded input.
func (monitor *Monitor) LastInteraction() time.Time {
	return monitor.last
}

// Pending reports whether the confirmation is waiting for an answer.
func (monitor *Monitor) Pending() bool {
	return monitor.pending
}

// Check asks whether the user is still there when a work interval has run
// unattended past the threshold outside the workday window. It reports whether it fired.
func (monitor *Monitor) Check(now time.Time, hour int) bool {
	if monitor.pending {
		return false
	}
	monitor.probeIdle(now)

	status := monitor.deps.Engine.Status()
	if status.State != timer.StateWorking || !status.Active {
		return false
	}
	if now.Sub(monitor.last) <= monitor.config.Threshold {
		return false
	}
	if monitor.config.InWorkday(hour) {
		return false
	}

	monitor.deps.Logger.Info().
		Dur("idle", now.Sub(monitor.last)).
		Int("hour", hour).
		Msg("asking whether user is still there")

	if monitor.deps.Voice != nil {
		monitor.deps.Voice.Play(monitor.prompt)
	}
	monitor.pending = true
	monitor.deps.Confirm.AskYesNo(confirmTitle, confirmMessage, func(yes bool) {
		monitor.pending = false
		if yes {
			// The answer counts as an interaction at the moment it is given.
			monitor.last = now
			monitor.UpdateInteraction(monitor.deps.Now())
			return
		}
		monitor.deps.Logger.Info().Msg("user away, resetting timer")
		monitor.deps.Engine.Reset()
		if monitor.deps.Media != nil {
			monitor.deps.Media.Toggle()
		}
	})
	return true
}

func (monitor *Monitor) probeIdle(now time.Time) {
	if monitor.idleChecker == nil {
		return
	}
	idle, err := monitor.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			monitor.deps.Logger.Warn().Err(err).Msg("disabling system idle probe")
			monitor.idleChecker = nil
			return
		}
		monitor.deps.Logger.Debug().Err(err).Msg("system idle probe failed")
		return
	}
	monitor.UpdateInteraction(now.Add(-idle))
}
