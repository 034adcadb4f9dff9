package timer

import "time"

// EventType defines the type of engine event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventPaused     EventType = "paused"
	EventResumed    EventType = "resumed"
	EventReset      EventType = "reset"
)

// Cause explains why a transition happened.
type Cause string

const (
	CauseStarted Cause = "started"
	CauseExpired Cause = "expired"
	CauseSkipped Cause = "skipped"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	From      State
	State     State
	Cause     Cause
	RestCount int
	Remaining time.Duration
	At        time.Time
}
