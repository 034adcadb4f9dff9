package timer

import (
	"fmt"
	"time"

	"pomotick/internal/core/model"
)

// State represents the current phase of the pomodoro cycle.
type State int

const (
	StateReady State = iota
	StateWorking
	StateRest
	StateLongRest
)

// States lists every state in cycle order.
var States = []State{StateReady, StateWorking, StateRest, StateLongRest}

// String returns the display name of the state.
func (state State) String() string {
	switch state {
	case StateReady:
		return "Ready"
	case StateWorking:
		return "Working"
	case StateRest:
		return "Rest"
	case StateLongRest:
		return "LongRest"
	default:
		return fmt.Sprintf("State(%d)", int(state))
	}
}

// Key returns a stable identifier used for assets and persistence.
func (state State) Key() string {
	switch state {
	case StateReady:
		return "ready"
	case StateWorking:
		return "working"
	case StateRest:
		return "rest"
	case StateLongRest:
		return "long_rest"
	default:
		panic(fmt.Sprintf("timer: unknown state %d", int(state)))
	}
}

// DurationFor returns the configured countdown for state.
func DurationFor(durations model.Durations, state State) time.Duration {
	switch state {
	case StateReady:
		return durations.Ready
	case StateWorking:
		return durations.Working
	case StateRest:
		return durations.Rest
	case StateLongRest:
		return durations.LongRest
	default:
		panic(fmt.Sprintf("timer: unknown state %d", int(state)))
	}
}

// GraphicKey identifies the picture shown for a state.
// RestIndex is the number of short rests completed so far in the cycle.
type GraphicKey struct {
	State     State
	RestIndex int
}

// Name returns the asset base name for the key, e.g. "rest_2".
func (key GraphicKey) Name() string {
	return fmt.Sprintf("%s_%d", key.State.Key(), key.RestIndex)
}

// Action is an operation the UI may offer in a given state.
type Action string

const (
	ActionGo     Action = "go"
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
	ActionSkip   Action = "skip"
	ActionReset  Action = "reset"
)
