package mainwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"pomotick/internal/core/timer"
)

// DefaultSize is used when no window size has been stored.
var DefaultSize = fyne.NewSize(600, 300)

// Controls are the engine operations reachable from the window.
type Controls interface {
	Actions() []timer.Action
	Go() error
	Toggle()
	Skip()
	Reset()
}

// GraphicSource resolves the image for a state.
type GraphicSource interface {
	Graphic(key timer.GraphicKey) (fyne.Resource, error)
}

// Callbacks defines window event handlers.
type Callbacks struct {
	OnInteraction  func()
	OnVoiceToggled func(enabled bool)
	OnStateChanged func()
	OnPreferences  func()
	OnClose        func()
}

// Config defines the initial window state.
type Config struct {
	Title        string
	VoiceEnabled bool
}

// Window is the main timer window. It renders the engine display and asks
// the inactivity question.
type Window struct {
	window    fyne.Window
	graphics  GraphicSource
	callbacks Callbacks
	logger    zerolog.Logger
	controls  Controls

	stateLabel  *canvas.Text
	timerLabel  *canvas.Text
	image       *canvas.Image
	placeholder *canvas.Rectangle
	controlRow  *fyne.Container
	voice       *widget.Check
	buttons     map[timer.Action]*widget.Button

	graphic timer.GraphicKey
	missing map[timer.GraphicKey]bool
}

// New creates the main window. Bind must be called before the window is shown.
func New(app fyne.App, config Config, graphics GraphicSource, callbacks Callbacks, logger zerolog.Logger) *Window {
	if config.Title == "" {
		config.Title = "Pomotick"
	}
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	stateLabel := canvas.NewText(timer.StateReady.String(), theme.Color(theme.ColorNameForeground))
	stateLabel.Alignment = fyne.TextAlignCenter
	stateLabel.TextStyle = fyne.TextStyle{Bold: true}
	stateLabel.TextSize = 40

	timerLabel := canvas.NewText("00:00", theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timerLabel.TextSize = 25

	image := canvas.NewImageFromResource(nil)
	image.FillMode = canvas.ImageFillContain
	image.Hide()
	placeholder := canvas.NewRectangle(stateColor(timer.StateReady))
	placeholder.CornerRadius = 8

	view := &Window{
		window:      window,
		graphics:    graphics,
		callbacks:   callbacks,
		logger:      logger,
		stateLabel:  stateLabel,
		timerLabel:  timerLabel,
		image:       image,
		placeholder: placeholder,
		controlRow:  container.NewHBox(),
		buttons:     make(map[timer.Action]*widget.Button),
		missing:     make(map[timer.GraphicKey]bool),
	}

	view.voice = widget.NewCheck("Voice prompts", func(enabled bool) {
		view.interaction()
		if view.callbacks.OnVoiceToggled != nil {
			view.callbacks.OnVoiceToggled(enabled)
		}
	})
	view.voice.Checked = config.VoiceEnabled

	settings := widget.NewButton("Settings", func() {
		view.interaction()
		if view.callbacks.OnPreferences != nil {
			view.callbacks.OnPreferences()
		}
	})

	graphic := container.NewStack(placeholder, image)
	body := container.New(&columnLayout{}, stateLabel, timerLabel, graphic, container.NewCenter(view.controlRow))
	footer := container.NewBorder(nil, nil, view.voice, settings)
	content := container.NewBorder(nil, footer, nil, nil, body)

	window.SetContent(container.NewStack(newInteractionArea(view.interaction), content))
	window.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) { view.interaction() })
	window.Canvas().SetOnTypedRune(func(rune) { view.interaction() })
	window.SetCloseIntercept(func() {
		if view.callbacks.OnClose != nil {
			view.callbacks.OnClose()
			return
		}
		window.Close()
	})
	return view
}

// Bind attaches the engine operations and builds the control row.
func (view *Window) Bind(controls Controls) {
	view.controls = controls
	view.refreshControls()
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window and brings it to the front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetStateLabel implements timer.Display. Every state or pause change
// passes through here, so the control row is rebuilt as well.
func (view *Window) SetStateLabel(text string) {
	view.stateLabel.Text = text
	view.stateLabel.Refresh()
	view.refreshControls()
	if view.callbacks.OnStateChanged != nil {
		view.callbacks.OnStateChanged()
	}
}

// SetTimerLabel implements timer.Display.
func (view *Window) SetTimerLabel(text string) {
	view.timerLabel.Text = text
	view.timerLabel.Refresh()
}

// SetStateGraphic implements timer.Display. A missing image falls back to a
// coloured panel.
func (view *Window) SetStateGraphic(key timer.GraphicKey) {
	view.graphic = key
	view.placeholder.FillColor = stateColor(key.State)
	view.placeholder.Refresh()

	if view.graphics == nil {
		view.image.Hide()
		return
	}
	resource, err := view.graphics.Graphic(key)
	if err != nil {
		if !view.missing[key] {
			view.missing[key] = true
			view.logger.Debug().Err(err).Str("graphic", key.Name()).Msg("state graphic unavailable")
		}
		view.image.Hide()
		return
	}
	view.image.Resource = resource
	view.image.Show()
	view.image.Refresh()
}

// SetVoiceEnabled updates the voice switch without firing its callback.
func (view *Window) SetVoiceEnabled(enabled bool) {
	view.voice.Checked = enabled
	view.voice.Refresh()
}

// AskYesNo implements inactivity.Confirmer with a modal confirmation dialog.
func (view *Window) AskYesNo(title, message string, answer func(bool)) {
	view.Show()
	confirm := dialog.NewConfirm(title, message, answer, view.window)
	confirm.SetConfirmText("Yes")
	confirm.SetDismissText("No")
	confirm.Show()
}

func (view *Window) interaction() {
	if view.callbacks.OnInteraction != nil {
		view.callbacks.OnInteraction()
	}
}

func (view *Window) refreshControls() {
	if view.controls == nil {
		return
	}
	actions := view.controls.Actions()
	objects := make([]fyne.CanvasObject, 0, len(actions))
	for _, action := range actions {
		objects = append(objects, view.button(action))
	}
	view.controlRow.Objects = objects
	view.controlRow.Refresh()
}

func (view *Window) button(action timer.Action) *widget.Button {
	if button, ok := view.buttons[action]; ok {
		return button
	}
	button := widget.NewButton(actionLabel(action), func() {
		view.interaction()
		view.perform(action)
	})
	view.buttons[action] = button
	return button
}

func (view *Window) perform(action timer.Action) {
	switch action {
	case timer.ActionGo:
		if err := view.controls.Go(); err != nil {
			view.logger.Debug().Err(err).Msg("go ignored")
		}
	case timer.ActionPause, timer.ActionResume:
		view.controls.Toggle()
	case timer.ActionSkip:
		view.controls.Skip()
	case timer.ActionReset:
		view.controls.Reset()
	}
}

func actionLabel(action timer.Action) string {
	switch action {
	case timer.ActionGo:
		return "Go!"
	case timer.ActionPause:
		return "Pause"
	case timer.ActionResume:
		return "Start"
	case timer.ActionSkip:
		return "Skip"
	case timer.ActionReset:
		return "Reset"
	default:
		return string(action)
	}
}

func stateColor(state timer.State) color.Color {
	switch state {
	case timer.StateWorking:
		return color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}
	case timer.StateRest:
		return color.NRGBA{R: 0x27, G: 0xae, B: 0x60, A: 0xff}
	case timer.StateLongRest:
		return color.NRGBA{R: 0x29, G: 0x80, B: 0xb9, A: 0xff}
	default:
		return color.NRGBA{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff}
	}
}
