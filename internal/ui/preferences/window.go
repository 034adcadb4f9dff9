package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window    fyne.Window
	values    Values
	source    func() Values
	onSave    func(Values)
	working   *widget.Entry
	rest      *widget.Entry
	longRest  *widget.Entry
	threshold *widget.Entry
	voice     *widget.Check
	idleProbe *widget.Check
}

// New creates a settings window. source supplies the current settings each
// time the window is shown or reloaded.
func New(app fyne.App, source func() Values, onSave func(Values)) *Window {
	window := app.NewWindow("Pomotick Settings")

	prefs := &Window{
		window:    window,
		source:    source,
		onSave:    onSave,
		working:   minutesEntry(),
		rest:      minutesEntry(),
		longRest:  minutesEntry(),
		threshold: minutesEntry(),
		voice:     widget.NewCheck("Voice prompts", nil),
		idleProbe: widget.NewCheck("Use system idle time for the inactivity check", nil),
	}

	form := widget.NewForm(
		widget.NewFormItem("Work (min)", prefs.working),
		widget.NewFormItem("Rest (min)", prefs.rest),
		widget.NewFormItem("Long rest (min)", prefs.longRest),
		widget.NewFormItem("Ask after idle (min)", prefs.threshold),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateValues(prefs.values)
		window.Hide()
	})
	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, saveButton)

	content := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		prefs.voice,
		prefs.idleProbe,
	)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, content))
	window.Resize(fyne.NewSize(420, 320))
	window.SetCloseIntercept(window.Hide)

	prefs.Reload()
	return prefs
}

// Show displays the settings window with the current settings.
func (prefs *Window) Show() {
	prefs.Reload()
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Reload discards unsaved edits and shows the values from source.
func (prefs *Window) Reload() {
	if prefs.source != nil {
		prefs.UpdateValues(prefs.source())
	}
}

// UpdateValues replaces the displayed values.
func (prefs *Window) UpdateValues(values Values) {
	prefs.values = values
	prefs.working.SetText(strconv.Itoa(values.WorkingMinutes))
	prefs.rest.SetText(strconv.Itoa(values.RestMinutes))
	prefs.longRest.SetText(strconv.Itoa(values.LongRestMinutes))
	prefs.threshold.SetText(strconv.Itoa(values.ThresholdMinutes))
	prefs.voice.SetChecked(values.VoiceEnabled)
	prefs.idleProbe.SetChecked(values.SystemIdleProbe)
}

func (prefs *Window) handleSave() {
	values := prefs.values

	if parsed, ok := parsePositiveInt(prefs.working.Text); ok {
		values.WorkingMinutes = parsed
	}
	if parsed, ok := parsePositiveInt(prefs.rest.Text); ok {
		values.RestMinutes = parsed
	}
	if parsed, ok := parsePositiveInt(prefs.longRest.Text); ok {
		values.LongRestMinutes = parsed
	}
	if parsed, ok := parsePositiveInt(prefs.threshold.Text); ok {
		values.ThresholdMinutes = parsed
	}
	values.VoiceEnabled = prefs.voice.Checked
	values.SystemIdleProbe = prefs.idleProbe.Checked

	prefs.UpdateValues(values)
	if prefs.onSave != nil {
		prefs.onSave(values)
	}
	prefs.window.Hide()
}

func minutesEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.Validator = func(text string) error {
		if _, ok := parsePositiveInt(text); !ok {
			return errNotPositive
		}
		return nil
	}
	return entry
}
