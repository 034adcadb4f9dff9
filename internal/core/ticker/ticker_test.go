package ticker

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (timer *fakeTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	wasPending := !timer.stopped && !timer.fired
	timer.stopped = true
	return wasPending
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	timer := &fakeTimer{clock: clock, at: clock.now.Add(d), fn: fn}
	clock.timers = append(clock.timers, timer)
	return timer
}

// Advance moves time forward, firing due timers in order.
func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(d)
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		var due []*fakeTimer
		for _, timer := range clock.timers {
			if !timer.stopped && !timer.fired && !timer.at.After(target) {
				due = append(due, timer)
			}
		}
		if len(due) == 0 {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
		next := due[0]
		next.fired = true
		clock.now = next.at
		clock.mu.Unlock()

		next.fn()
	}
}

func (clock *fakeClock) pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	count := 0
	for _, timer := range clock.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

func TestTicker_FiresEveryInterval(t *testing.T) {
	clock := newFakeClock()
	start := clock.Now()
	var ticks []time.Time
	ticker := New(Config{Interval: time.Second, Clock: clock}, func(now time.Time) {
		ticks = append(ticks, now)
	})

	ticker.Start()
	clock.Advance(3500 * time.Millisecond)

	assert.Equal(t, []time.Time{
		start.Add(time.Second),
		start.Add(2 * time.Second),
		start.Add(3 * time.Second),
	}, ticks)
	assert.True(t, ticker.Running())
	assert.Equal(t, 1, clock.pending())
}

func TestTicker_StopCancelsPendingTick(t *testing.T) {
	clock := newFakeClock()
	count := 0
	ticker := New(Config{Clock: clock}, func(time.Time) { count++ })

	ticker.Start()
	clock.Advance(2 * time.Second)
	ticker.Stop()
	clock.Advance(5 * time.Second)

	assert.Equal(t, 2, count)
	assert.False(t, ticker.Running())
	assert.Zero(t, clock.pending())
}

func TestTicker_RestartDoesNotDoubleSchedule(t *testing.T) {
	clock := newFakeClock()
	count := 0
	ticker := New(Config{Clock: clock}, func(time.Time) { count++ })

	ticker.Start()
	ticker.Start()
	ticker.Stop()
	ticker.Start()
	clock.Advance(3 * time.Second)

	assert.Equal(t, 3, count)
}

func TestTicker_DispatchRunsHandler(t *testing.T) {
	clock := newFakeClock()
	var queued []func()
	count := 0
	ticker := New(Config{
		Clock:    clock,
		Dispatch: func(fn func()) { queued = append(queued, fn) },
	}, func(time.Time) { count++ })

	ticker.Start()
	clock.Advance(2 * time.Second)

	assert.Zero(t, count)
	assert.Len(t, queued, 2)
	for _, fn := range queued {
		fn()
	}
	assert.Equal(t, 2, count)
}

func TestTicker_HandlerStoppingTickerEndsLoop(t *testing.T) {
	clock := newFakeClock()
	count := 0
	var ticker *Ticker
	ticker = New(Config{Clock: clock}, func(time.Time) {
		count++
		if count == 2 {
			ticker.Stop()
		}
	})

	ticker.Start()
	clock.Advance(10 * time.Second)

	assert.Equal(t, 2, count)
}
