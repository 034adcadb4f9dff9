package history

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"pomotick/internal/core/timer"
)

// CauseReset marks intervals cut short by a reset.
const CauseReset = "reset"

// Inserter stores interval records.
type Inserter interface {
	Insert(ctx context.Context, record *IntervalRecord) error
}

// Recorder turns engine events into interval records.
type Recorder struct {
	store  Inserter
	logger zerolog.Logger

	current     timer.State
	planned     time.Duration
	startedAt   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store Inserter, logger zerolog.Logger) *Recorder {
	return &Recorder{store: store, logger: logger, current: timer.StateReady}
}

// Run consumes events until the channel is closed or ctx is done.
func (recorder *Recorder) Run(ctx context.Context, events <-chan timer.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			recorder.Handle(ctx, event)
		}
	}
}

// Handle processes a single event.
func (recorder *Recorder) Handle(ctx context.Context, event timer.Event) {
	switch event.Type {
	case timer.EventPaused:
		recorder.pausedAt = event.At
	case timer.EventResumed:
		recorder.resume(event.At)
	case timer.EventTransition:
		recorder.finish(ctx, event.At, string(event.Cause))
		recorder.begin(event)
	case timer.EventReset:
		recorder.finish(ctx, event.At, CauseReset)
		recorder.current = timer.StateReady
		recorder.pausedAt = time.Time{}
	}
}

func (recorder *Recorder) begin(event timer.Event) {
	recorder.current = event.State
	recorder.planned = event.Remaining
	recorder.startedAt = event.At
	recorder.pausedTotal = 0
	if recorder.pausedAt.IsZero() {
		return
	}
	// Skipping while paused carries the pause into the new interval.
	recorder.pausedAt = event.At
}

func (recorder *Recorder) resume(at time.Time) {
	if recorder.pausedAt.IsZero() {
		return
	}
	recorder.pausedTotal += at.Sub(recorder.pausedAt)
	recorder.pausedAt = time.Time{}
}

func (recorder *Recorder) finish(ctx context.Context, at time.Time, cause string) {
	if recorder.current == timer.StateReady {
		recorder.pausedAt = time.Time{}
		return
	}
	paused := recorder.pausedTotal
	if !recorder.pausedAt.IsZero() {
		paused += at.Sub(recorder.pausedAt)
	}
	active := at.Sub(recorder.startedAt) - paused
	if active < 0 {
		active = 0
	}

	record := &IntervalRecord{
		State:          recorder.current.Key(),
		Cause:          cause,
		PlannedSeconds: int64(recorder.planned / time.Second),
		ActiveSeconds:  int64(active / time.Second),
		StartedAt:      recorder.startedAt,
		EndedAt:        at,
	}
	if err := recorder.store.Insert(ctx, record); err != nil {
		recorder.logger.Error().Err(err).Str("state", record.State).Msg("record interval")
		return
	}
	recorder.logger.Debug().
		Str("state", record.State).
		Str("cause", cause).
		Int64("active_seconds", record.ActiveSeconds).
		Msg("interval recorded")
}
