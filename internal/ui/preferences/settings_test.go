package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotick/internal/storage"
)

func TestFromOptions_Defaults(t *testing.T) {
	values := FromOptions(storage.DefaultOptions())

	assert.Equal(t, Values{
		WorkingMinutes:   25,
		RestMinutes:      5,
		LongRestMinutes:  15,
		ThresholdMinutes: 60,
		VoiceEnabled:     true,
	}, values)
}

func TestApply(t *testing.T) {
	options := storage.DefaultOptions()
	values := Values{WorkingMinutes: 50, RestMinutes: 0, LongRestMinutes: 20, ThresholdMinutes: 30, SystemIdleProbe: true}

	updated := values.Apply(options)

	assert.Equal(t, 50*time.Minute, updated.Durations.Working)
	assert.Equal(t, 50*time.Minute, updated.Durations.Ready)
	assert.Equal(t, 5*time.Minute, updated.Durations.Rest)
	assert.Equal(t, 20*time.Minute, updated.Durations.LongRest)
	assert.Equal(t, 30*time.Minute, updated.Inactivity.Threshold)
	assert.False(t, updated.VoiceEnabled)
	assert.True(t, updated.SystemIdleProbe)
	assert.Equal(t, options.Prompts, updated.Prompts)
}

func TestParsePositiveInt(t *testing.T) {
	tests := map[string]bool{"25": true, " 7 ": true, "0": false, "-1": false, "abc": false, "": false}
	for input, ok := range tests {
		_, got := parsePositiveInt(input)
		assert.Equal(t, ok, got, input)
	}
}

func TestWindow_SaveKeepsInvalidFields(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []Values
	options := storage.DefaultOptions()
	prefs := New(app, func() Values { return FromOptions(options) }, func(values Values) {
		saved = append(saved, values)
	})

	prefs.working.SetText("45")
	prefs.rest.SetText("zero")
	prefs.voice.SetChecked(false)
	prefs.handleSave()

	assert.Len(t, saved, 1)
	assert.Equal(t, 45, saved[0].WorkingMinutes)
	assert.Equal(t, 5, saved[0].RestMinutes)
	assert.False(t, saved[0].VoiceEnabled)
	assert.Equal(t, "5", prefs.rest.Text)
}

func TestApply_KeepsUneditedSeconds(t *testing.T) {
	options := storage.DefaultOptions()
	options.Inactivity.Threshold = 90 * time.Second
	options.Durations.Rest = 270 * time.Second

	values := FromOptions(options)
	require.Equal(t, 2, values.ThresholdMinutes)
	require.Equal(t, 5, values.RestMinutes)
	values.WorkingMinutes = 30

	updated := values.Apply(options)

	assert.Equal(t, 90*time.Second, updated.Inactivity.Threshold)
	assert.Equal(t, 270*time.Second, updated.Durations.Rest)
	assert.Equal(t, 30*time.Minute, updated.Durations.Working)
}

func TestWindow_ShowPicksUpOutsideChanges(t *testing.T) {
	app := test.NewTempApp(t)
	options := storage.DefaultOptions()
	var saved []Values
	prefs := New(app, func() Values { return FromOptions(options) }, func(values Values) {
		saved = append(saved, values)
		options = values.Apply(options)
	})

	// voice switched off from the main window
	options.VoiceEnabled = false
	prefs.Show()
	assert.False(t, prefs.voice.Checked)

	prefs.working.SetText("40")
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.False(t, saved[0].VoiceEnabled)
	assert.False(t, options.VoiceEnabled)
	assert.Equal(t, 40*time.Minute, options.Durations.Working)
}

func TestWindow_ReloadDiscardsEdits(t *testing.T) {
	app := test.NewTempApp(t)
	options := storage.DefaultOptions()
	prefs := New(app, func() Values { return FromOptions(options) }, nil)

	prefs.working.SetText("99")
	options.VoiceEnabled = false
	prefs.Reload()

	assert.Equal(t, "25", prefs.working.Text)
	assert.False(t, prefs.voice.Checked)
}
