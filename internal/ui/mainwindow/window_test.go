package mainwindow

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotick/internal/core/model"
	"pomotick/internal/core/timer"
	"pomotick/internal/storage"
)

type graphicsStub map[timer.State]fyne.Resource

func (stub graphicsStub) Graphic(key timer.GraphicKey) (fyne.Resource, error) {
	if resource, ok := stub[key.State]; ok {
		return resource, nil
	}
	return nil, errors.New("missing")
}

type harness struct {
	view         *Window
	engine       *timer.Engine
	interactions int
	stateChanges int
}

func newHarness(t *testing.T, graphics GraphicSource) *harness {
	t.Helper()
	app := test.NewTempApp(t)
	h := &harness{}
	h.view = New(app, Config{VoiceEnabled: true}, graphics, Callbacks{
		OnInteraction:  func() { h.interactions++ },
		OnStateChanged: func() { h.stateChanges++ },
	}, zerolog.Nop())

	engine, err := timer.New(timer.Config{
		Durations: model.DefaultDurations(),
		Prompts:   model.DefaultPrompts(),
	}, timer.Collaborators{Display: h.view})
	require.NoError(t, err)
	h.engine = engine
	h.view.Bind(engine)
	return h
}

func (h *harness) buttonLabels() []string {
	var labels []string
	for _, object := range h.view.controlRow.Objects {
		labels = append(labels, object.(*widget.Button).Text)
	}
	return labels
}

func (h *harness) tap(t *testing.T, label string) {
	t.Helper()
	for _, object := range h.view.controlRow.Objects {
		if button := object.(*widget.Button); button.Text == label {
			test.Tap(button)
			return
		}
	}
	t.Fatalf("no %q button in %v", label, h.buttonLabels())
}

func TestWindow_ReadyOffersOnlyGo(t *testing.T) {
	h := newHarness(t, nil)

	assert.Equal(t, []string{"Go!"}, h.buttonLabels())
	assert.Equal(t, "Ready", h.view.stateLabel.Text)
}

func TestWindow_GoSwitchesControls(t *testing.T) {
	h := newHarness(t, nil)

	h.tap(t, "Go!")

	assert.Equal(t, timer.StateWorking, h.engine.Status().State)
	assert.Equal(t, "Working", h.view.stateLabel.Text)
	assert.Equal(t, "25:00", h.view.timerLabel.Text)
	assert.Equal(t, []string{"Pause", "Skip", "Reset"}, h.buttonLabels())
	assert.Equal(t, 1, h.interactions)
	assert.Positive(t, h.stateChanges)
}

func TestWindow_PauseAndResume(t *testing.T) {
	h := newHarness(t, nil)
	h.tap(t, "Go!")

	h.tap(t, "Pause")
	assert.Equal(t, "Working - Paused", h.view.stateLabel.Text)
	assert.Equal(t, []string{"Start", "Skip", "Reset"}, h.buttonLabels())

	h.tap(t, "Start")
	assert.Equal(t, "Working", h.view.stateLabel.Text)
	assert.True(t, h.engine.Status().Active)
}

func TestWindow_SkipAndReset(t *testing.T) {
	h := newHarness(t, nil)
	h.tap(t, "Go!")

	h.tap(t, "Skip")
	assert.Equal(t, "Rest", h.view.stateLabel.Text)
	assert.Equal(t, "05:00", h.view.timerLabel.Text)

	h.tap(t, "Reset")
	assert.Equal(t, "Ready", h.view.stateLabel.Text)
	assert.Equal(t, []string{"Go!"}, h.buttonLabels())
	assert.Equal(t, 3, h.interactions)
}

func TestWindow_StateGraphic(t *testing.T) {
	working := fyne.NewStaticResource("working.png", []byte("png"))
	h := newHarness(t, graphicsStub{timer.StateWorking: working})

	h.view.SetStateGraphic(timer.GraphicKey{State: timer.StateWorking})
	assert.True(t, h.view.image.Visible())
	assert.Equal(t, working, h.view.image.Resource)

	h.view.SetStateGraphic(timer.GraphicKey{State: timer.StateRest, RestIndex: 1})
	assert.False(t, h.view.image.Visible())
	assert.Equal(t, stateColor(timer.StateRest), h.view.placeholder.FillColor)
	assert.True(t, h.view.missing[timer.GraphicKey{State: timer.StateRest, RestIndex: 1}])
}

func TestWindow_VoiceSwitch(t *testing.T) {
	app := test.NewTempApp(t)
	var toggled []bool
	view := New(app, Config{VoiceEnabled: true}, nil, Callbacks{
		OnVoiceToggled: func(enabled bool) { toggled = append(toggled, enabled) },
	}, zerolog.Nop())

	assert.True(t, view.voice.Checked)
	test.Tap(view.voice)

	assert.Equal(t, []bool{false}, toggled)
	view.SetVoiceEnabled(true)
	assert.True(t, view.voice.Checked)
	assert.Len(t, toggled, 1)
}

func TestWindow_GeometryWithoutNativeHandle(t *testing.T) {
	h := newHarness(t, nil)

	h.view.RestoreSize(storage.Geometry{})
	geometry := h.view.Geometry()

	require.True(t, geometry.HasSize())
	assert.False(t, geometry.HasPosition())
}

func TestWindow_BackgroundTapCountsAsInteraction(t *testing.T) {
	h := newHarness(t, nil)
	area := h.view.window.Content().(*fyne.Container).Objects[0].(*interactionArea)

	test.Tap(area)
	test.TapSecondary(area)

	assert.Equal(t, 2, h.interactions)
	assert.Equal(t, timer.StateReady, h.engine.Status().State)
}

func TestWindow_KeyboardCountsAsInteraction(t *testing.T) {
	h := newHarness(t, nil)
	canvas := h.view.window.Canvas()

	test.TypeOnCanvas(canvas, "ab")
	canvas.OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeySpace})

	assert.Equal(t, 3, h.interactions)
}
