package timer

import (
	"errors"
	"fmt"
	"time"

	"pomotick/internal/core/model"
)

// ErrNotReady is returned by Go when the engine has already been started.
var ErrNotReady = errors.New("timer is not in the ready state")

// Display renders engine state. It is refreshed every tick and after every transition.
type Display interface {
	SetStateLabel(text string)
	SetTimerLabel(text string)
	SetStateGraphic(key GraphicKey)
}

// MediaToggle sends a play/pause signal to whatever media player is running.
type MediaToggle interface {
	Toggle()
}

// VoicePrompt plays a named audio cue.
type VoicePrompt interface {
	Play(promptID string)
}

// Collaborators groups the side-effecting dependencies of the engine.
type Collaborators struct {
	Display Display
	Media   MediaToggle
	Voice   VoicePrompt
}

// Config contains runtime options for Engine.
type Config struct {
	Durations model.Durations
	Prompts   model.PromptSet
	// Now is used to timestamp events. Defaults to time.Now.
	Now func() time.Time
}

// Status is a snapshot of engine state.
type Status struct {
	State     State
	Remaining time.Duration
	RestCount int
	Active    bool
}

// Engine is the pomodoro state machine.
//
// Engine is not safe for concurrent use. All methods must be called from the
// goroutine that owns the UI, which is also where the ticker dispatches ticks.
type Engine struct {
	durations model.Durations
	prompts   model.PromptSet
	now       func() time.Time

	display Display
	media   MediaToggle
	voice   VoicePrompt

	state     State
	remaining time.Duration
	restCount int
	active    bool

	events []chan Event
}

// New creates an Engine in the Ready state.
func New(config Config, collaborators Collaborators) (*Engine, error) {
	if err := config.Durations.Validate(); err != nil {
		return nil, fmt.Errorf("invalid durations: %w", err)
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	engine := &Engine{
		durations: config.Durations,
		prompts:   config.Prompts,
		now:       config.Now,
		display:   collaborators.Display,
		media:     collaborators.Media,
		voice:     collaborators.Voice,
		state:     StateReady,
	}
	if engine.display == nil {
		engine.display = nopDisplay{}
	}
	if engine.media == nil {
		engine.media = nopMedia{}
	}
	if engine.voice == nil {
		engine.voice = nopVoice{}
	}
	engine.remaining = DurationFor(engine.durations, engine.state)
	return engine, nil
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.events = append(engine.events, ch)
	return ch
}

// Close closes all observer channels.
func (engine *Engine) Close() {
	for _, ch := range engine.events {
		close(ch)
	}
	engine.events = nil
}

// Status returns a snapshot of the current state.
func (engine *Engine) Status() Status {
	return Status{
		State:     engine.state,
		Remaining: engine.remaining,
		RestCount: engine.restCount,
		Active:    engine.active,
	}
}

// SetDurations replaces the duration table. The new values apply the next time a state is entered.
func (engine *Engine) SetDurations(durations model.Durations) error {
	if err := durations.Validate(); err != nil {
		return fmt.Errorf("invalid durations: %w", err)
	}
	engine.durations = durations
	return nil
}

// SetPrompts replaces the voice prompt identifiers.
func (engine *Engine) SetPrompts(prompts model.PromptSet) {
	engine.prompts = prompts
}

// Refresh redraws the whole display from the current state.
func (engine *Engine) Refresh() {
	engine.refresh()
}

// Actions returns the operations available in the current state.
func (engine *Engine) Actions() []Action {
	if engine.state == StateReady {
		return []Action{ActionGo}
	}
	toggle := ActionPause
	if !engine.active {
		toggle = ActionResume
	}
	return []Action{toggle, ActionSkip, ActionReset}
}

// Tick advances the countdown by one second when the engine is active.
func (engine *Engine) Tick() {
	if !engine.active {
		return
	}
	engine.remaining -= time.Second
	if engine.remaining < 0 {
		engine.remaining = 0
	}
	engine.display.SetTimerLabel(FormatRemaining(engine.remaining))
	if engine.remaining <= 0 {
		engine.transition(CauseExpired)
	}
}

// Transition moves to the next state without waiting for the countdown.
func (engine *Engine) Transition() {
	engine.transition(CauseSkipped)
}

// Go starts the first work interval. It is only valid from Ready.
func (engine *Engine) Go() error {
	if engine.state != StateReady {
		return ErrNotReady
	}
	engine.transition(CauseStarted)
	engine.active = true
	return nil
}

// Skip ends the current interval immediately. The paused flag is left untouched.
func (engine *Engine) Skip() {
	engine.transition(CauseSkipped)
}

// Pause freezes the countdown.
func (engine *Engine) Pause() {
	if engine.state == StateReady || !engine.active {
		return
	}
	engine.active = false
	engine.display.SetStateLabel(engine.stateLabel())
	engine.emit(Event{Type: EventPaused, State: engine.state, RestCount: engine.restCount, Remaining: engine.remaining})
}

// Resume unfreezes the countdown.
func (engine *Engine) Resume() {
	if engine.state == StateReady || engine.active {
		return
	}
	engine.active = true
	engine.display.SetStateLabel(engine.stateLabel())
	engine.emit(Event{Type: EventResumed, State: engine.state, RestCount: engine.restCount, Remaining: engine.remaining})
}

// Toggle flips between paused and running.
func (engine *Engine) Toggle() {
	if engine.active {
		engine.Pause()
		return
	}
	engine.Resume()
}

// Reset returns to Ready with a fresh cycle.
func (engine *Engine) Reset() {
	from := engine.state
	engine.state = StateReady
	engine.restCount = 0
	engine.active = false
	engine.remaining = DurationFor(engine.durations, engine.state)
	engine.refresh()
	engine.emit(Event{Type: EventReset, From: from, State: engine.state, Remaining: engine.remaining})
}

func (engine *Engine) transition(cause Cause) {
	from := engine.state
	switch engine.state {
	case StateReady:
		engine.media.Toggle()
		engine.state = StateWorking
		engine.active = true
	case StateWorking:
		if engine.restCount < model.RestsBeforeLongRest {
			engine.voice.Play(engine.prompts.ShortBreak)
			engine.media.Toggle()
			engine.restCount++
			engine.state = StateRest
		} else {
			engine.voice.Play(engine.prompts.LongBreak)
			engine.media.Toggle()
			engine.restCount = 0
			engine.state = StateLongRest
		}
	case StateRest, StateLongRest:
		engine.voice.Play(engine.prompts.BackToWork)
		engine.media.Toggle()
		engine.state = StateWorking
	}

	engine.remaining = DurationFor(engine.durations, engine.state)
	engine.refresh()
	engine.emit(Event{
		Type:      EventTransition,
		From:      from,
		State:     engine.state,
		Cause:     cause,
		RestCount: engine.restCount,
		Remaining: engine.remaining,
	})
}

func (engine *Engine) refresh() {
	engine.display.SetStateLabel(engine.stateLabel())
	engine.display.SetStateGraphic(GraphicKey{State: engine.state, RestIndex: engine.restCount})
	engine.display.SetTimerLabel(FormatRemaining(engine.remaining))
}

func (engine *Engine) stateLabel() string {
	if engine.state != StateReady && !engine.active {
		return engine.state.String() + " - Paused"
	}
	return engine.state.String()
}

func (engine *Engine) emit(event Event) {
	event.At = engine.now()
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// FormatRemaining renders a countdown as mm:ss.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

type nopDisplay struct{}

func (nopDisplay) SetStateLabel(string)       {}
func (nopDisplay) SetTimerLabel(string)       {}
func (nopDisplay) SetStateGraphic(GraphicKey) {}

type nopMedia struct{}

func (nopMedia) Toggle() {}

type nopVoice struct{}

func (nopVoice) Play(string) {}
