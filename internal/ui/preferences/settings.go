package preferences

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"pomotick/internal/storage"
)

// Values are the editable fields of the settings window.
type Values struct {
	WorkingMinutes   int
	RestMinutes      int
	LongRestMinutes  int
	ThresholdMinutes int
	VoiceEnabled     bool
	SystemIdleProbe  bool
}

// FromOptions extracts the editable fields.
func FromOptions(options storage.Options) Values {
	return Values{
		WorkingMinutes:   minutes(options.Durations.Working),
		RestMinutes:      minutes(options.Durations.Rest),
		LongRestMinutes:  minutes(options.Durations.LongRest),
		ThresholdMinutes: minutes(options.Inactivity.Threshold),
		VoiceEnabled:     options.VoiceEnabled,
		SystemIdleProbe:  options.SystemIdleProbe,
	}
}

// Apply writes the fields back into options. Non-positive minute values
// and values equal to the displayed rounding of the stored setting keep the
// existing setting, so second-precision values from the options file survive.
// The Ready countdown follows the Working one.
func (values Values) Apply(options storage.Options) storage.Options {
	if changed(values.WorkingMinutes, options.Durations.Working) {
		options.Durations.Working = time.Duration(values.WorkingMinutes) * time.Minute
		options.Durations.Ready = options.Durations.Working
	}
	if changed(values.RestMinutes, options.Durations.Rest) {
		options.Durations.Rest = time.Duration(values.RestMinutes) * time.Minute
	}
	if changed(values.LongRestMinutes, options.Durations.LongRest) {
		options.Durations.LongRest = time.Duration(values.LongRestMinutes) * time.Minute
	}
	if changed(values.ThresholdMinutes, options.Inactivity.Threshold) {
		options.Inactivity.Threshold = time.Duration(values.ThresholdMinutes) * time.Minute
	}
	options.VoiceEnabled = values.VoiceEnabled
	options.SystemIdleProbe = values.SystemIdleProbe
	return options
}

var errNotPositive = errors.New("enter a whole number of minutes")

func changed(edited int, stored time.Duration) bool {
	return edited > 0 && edited != minutes(stored)
}

func minutes(value time.Duration) int {
	return int(value.Round(time.Minute) / time.Minute)
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
