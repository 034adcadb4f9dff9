package ticker

import (
	"sync"
	"time"
)

// Config contains runtime options for Ticker.
type Config struct {
	Interval time.Duration
	Clock    Clock
	// Dispatch runs fn on the goroutine that owns application state.
	// Defaults to calling fn directly.
	Dispatch func(fn func())
}

// Ticker calls a handler once per interval for as long as it runs.
// It reschedules itself before every dispatch, so a tick never depends on
// the outcome of the previous one.
type Ticker struct {
	mu       sync.Mutex
	config   Config
	handler  func(now time.Time)
	timer    Timer
	running  bool
	sequence uint64
}

// New creates a stopped Ticker.
func New(config Config, handler func(now time.Time)) *Ticker {
	if config.Interval <= 0 {
		config.Interval = time.Second
	}
	if config.Clock == nil {
		config.Clock = SystemClock
	}
	if config.Dispatch == nil {
		config.Dispatch = func(fn func()) { fn() }
	}
	return &Ticker{config: config, handler: handler}
}

// Start schedules the first tick. Calling Start on a running Ticker is a no-op.
func (ticker *Ticker) Start() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.running {
		return
	}
	ticker.running = true
	ticker.sequence++
	ticker.scheduleLocked(ticker.sequence)
}

// Stop cancels the pending tick. Ticks already dispatched still run.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.running {
		return
	}
	ticker.running = false
	if ticker.timer != nil {
		ticker.timer.Stop()
		ticker.timer = nil
	}
}

// Running reports whether ticks are scheduled.
func (ticker *Ticker) Running() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.running
}

func (ticker *Ticker) scheduleLocked(sequence uint64) {
	ticker.timer = ticker.config.Clock.AfterFunc(ticker.config.Interval, func() {
		ticker.fire(sequence)
	})
}

func (ticker *Ticker) fire(sequence uint64) {
	ticker.mu.Lock()
	if !ticker.running || sequence != ticker.sequence {
		ticker.mu.Unlock()
		return
	}
	ticker.scheduleLocked(sequence)
	clock := ticker.config.Clock
	ticker.mu.Unlock()

	ticker.config.Dispatch(func() {
		ticker.handler(clock.Now())
	})
}
