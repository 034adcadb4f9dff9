package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ExampleDefaultDurations() {
	durations := DefaultDurations()
	fmt.Println(durations.Working, durations.Rest, durations.LongRest)
	// Output: 25m0s 5m0s 15m0s
}

func ExampleInactivityConfig_InWorkday() {
	config := DefaultInactivity()
	fmt.Println(config.InWorkday(6), config.InWorkday(7), config.InWorkday(15), config.InWorkday(16))
	// Output: false true true false
}

func TestDurations_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Durations)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Durations) {}},
		{name: "zero rest", mutate: func(d *Durations) { d.Rest = 0 }, wantErr: "rest duration must be at least 1s"},
		{name: "negative working", mutate: func(d *Durations) { d.Working = -time.Minute }, wantErr: "working duration"},
		{name: "fractional long rest", mutate: func(d *Durations) { d.LongRest = 1500 * time.Millisecond }, wantErr: "long rest duration must be whole seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			durations := DefaultDurations()
			tt.mutate(&durations)

			err := durations.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDefaultPrompts(t *testing.T) {
	prompts := DefaultPrompts()

	assert.Equal(t, "work_to_short_rest", prompts.ShortBreak)
	assert.Equal(t, "work_to_long_rest", prompts.LongBreak)
	assert.Equal(t, "rest_to_work", prompts.BackToWork)
	assert.Equal(t, "are_you_still_listening", prompts.StillThere)
}
