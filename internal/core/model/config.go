package model

import (
	"fmt"
	"time"
)

// RestsBeforeLongRest is the number of short rests taken before a long rest.
const RestsBeforeLongRest = 3

// Durations holds the countdown length for every timer state.
type Durations struct {
	Ready    time.Duration
	Working  time.Duration
	Rest     time.Duration
	LongRest time.Duration
}

// DefaultDurations returns the classic 25/5/15 minute schedule.
func DefaultDurations() Durations {
	return Durations{
		Ready:    25 * time.Minute,
		Working:  25 * time.Minute,
		Rest:     5 * time.Minute,
		LongRest: 15 * time.Minute,
	}
}

// Validate reports the first non-positive or fractional-second duration.
func (durations Durations) Validate() error {
	fields := []struct {
		name  string
		value time.Duration
	}{
		{"ready", durations.Ready},
		{"working", durations.Working},
		{"rest", durations.Rest},
		{"long rest", durations.LongRest},
	}
	for _, field := range fields {
		if field.value < time.Second {
			return fmt.Errorf("%s duration must be at least 1s, got %v", field.name, field.value)
		}
		if field.value%time.Second != 0 {
			return fmt.Errorf("%s duration must be whole seconds, got %v", field.name, field.value)
		}
	}
	return nil
}

// PromptSet names the voice prompts played on transitions.
// Identifiers are asset names without extension.
type PromptSet struct {
	ShortBreak string
	LongBreak  string
	BackToWork string
	StillThere string
}

// DefaultPrompts returns the bundled prompt identifiers.
func DefaultPrompts() PromptSet {
	return PromptSet{
		ShortBreak: "work_to_short_rest",
		LongBreak:  "work_to_long_rest",
		BackToWork: "rest_to_work",
		StillThere: "are_you_still_listening",
	}
}

// InactivityConfig controls the "are you still there?" check.
type InactivityConfig struct {
	// Threshold is how long without input before the check may fire.
	Threshold time.Duration
	// WorkdayStart and WorkdayEnd bound the hours [start, end) in which the check stays quiet.
	WorkdayStart int
	WorkdayEnd   int
}

// DefaultInactivity returns a one hour threshold outside 07:00-16:00.
func DefaultInactivity() InactivityConfig {
	return InactivityConfig{
		Threshold:    time.Hour,
		WorkdayStart: 7,
		WorkdayEnd:   16,
	}
}

// InWorkday reports whether hour falls inside the quiet window.
func (config InactivityConfig) InWorkday(hour int) bool {
	return hour >= config.WorkdayStart && hour < config.WorkdayEnd
}
