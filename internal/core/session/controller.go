package session

import (
	"time"

	"github.com/rs/zerolog"

	"pomotick/internal/core/inactivity"
	"pomotick/internal/core/timer"
)

// Ticker is the polling loop driving the controller.
type Ticker interface {
	Start()
	Stop()
}

// Controller ties the engine, the inactivity monitor and the polling loop together.
// Like the engine, it must only be used from the UI goroutine.
type Controller struct {
	engine   *timer.Engine
	monitor  *inactivity.Monitor
	ticker   Ticker
	logger   zerolog.Logger
	shutdown []func()
	closed   bool
}

// New creates a Controller.
func New(engine *timer.Engine, monitor *inactivity.Monitor, logger zerolog.Logger) *Controller {
	return &Controller{
		engine:  engine,
		monitor: monitor,
		logger:  logger,
	}
}

// Engine returns the underlying timer engine.
func (controller *Controller) Engine() *timer.Engine {
	return controller.engine
}

// Monitor returns the underlying inactivity monitor.
func (controller *Controller) Monitor() *inactivity.Monitor {
	return controller.monitor
}

// Run attaches the polling loop and starts it.
func (controller *Controller) Run(ticker Ticker) {
	controller.ticker = ticker
	ticker.Start()
}

// Tick advances the engine by one second and runs the inactivity check.
// Ticks arriving while the "still there?" question is open are dropped.
func (controller *Controller) Tick(now time.Time) {
	if controller.monitor.Pending() {
		return
	}
	controller.engine.Tick()
	controller.monitor.Check(now, now.Hour())
}

// Interaction records a key press or pointer click.
func (controller *Controller) Interaction(now time.Time) {
	controller.monitor.UpdateInteraction(now)
}

// OnShutdown registers a hook run by Shutdown, in registration order.
func (controller *Controller) OnShutdown(hook func()) {
	controller.shutdown = append(controller.shutdown, hook)
}

// Shutdown stops the polling loop, runs shutdown hooks and closes engine subscriptions.
func (controller *Controller) Shutdown() {
	if controller.closed {
		return
	}
	controller.closed = true
	if controller.ticker != nil {
		controller.ticker.Stop()
	}
	for _, hook := range controller.shutdown {
		hook()
	}
	controller.engine.Close()
	controller.logger.Debug().Msg("controller shut down")
}
