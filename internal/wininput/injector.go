package wininput

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultClickHold  = 100 * time.Millisecond
	defaultDragPress  = 100 * time.Millisecond
	defaultDragSettle = 500 * time.Millisecond
)

// Delays holds the pauses inserted between platform events.
type Delays struct {
	// ClickHold is the pause between a button press and its release.
	ClickHold time.Duration
	// DragPress is the pause after pressing the left button, before moving.
	DragPress time.Duration
	// DragSettle is the pause after moving, before releasing the left button.
	DragSettle time.Duration
}

// DefaultDelays returns the stock 100ms hold and 100ms/500ms drag timing.
func DefaultDelays() Delays {
	return Delays{
		ClickHold:  defaultClickHold,
		DragPress:  defaultDragPress,
		DragSettle: defaultDragSettle,
	}
}

// Injector sequences platform events into clicks, drags and key presses.
// Calls block for their full delay budget and cannot be cancelled.
type Injector struct {
	mu       sync.Mutex
	platform Platform
	delays   Delays
	sleep    func(time.Duration)
	logger   *zap.Logger
}

// Option configures an Injector.
type Option func(*Injector)

// WithDelays overrides the default timing.
func WithDelays(d Delays) Option {
	return func(i *Injector) {
		i.delays = d
	}
}

// WithLogger sets the logger used for per-operation debug and failure output.
func WithLogger(logger *zap.Logger) Option {
	return func(i *Injector) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithSleep overrides the function used to pause between events.
func WithSleep(fn func(time.Duration)) Option {
	return func(i *Injector) {
		if fn != nil {
			i.sleep = fn
		}
	}
}

// New returns an Injector that drives the given platform.
func New(platform Platform, opts ...Option) *Injector {
	i := &Injector{
		platform: platform,
		delays:   DefaultDelays(),
		sleep:    time.Sleep,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Delays returns the timing in effect.
func (i *Injector) Delays() Delays {
	return i.delays
}

// pause sleeps for d unless it is zero or negative.
func (i *Injector) pause(d time.Duration) {
	if d > 0 {
		i.sleep(d)
	}
}

// report logs the outcome of an operation and passes err through.
func (i *Injector) report(op string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", op))
	if err != nil {
		i.logger.Warn("input injection failed", append(fields, zap.Error(err))...)
		return err
	}
	i.logger.Debug("input injected", fields...)
	return nil
}
