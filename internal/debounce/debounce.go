// Package debounce coalesces bursts of state changes into a single write
// issued once the changes pause.
package debounce

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultDelay is the pause after the last change before the write goes out.
const DefaultDelay = 400 * time.Millisecond

// SaveFunc persists one value.
type SaveFunc[T any] func(ctx context.Context, v T) error

// Debouncer holds at most one pending value and one timer. Every Schedule
// replaces the pending value and restarts the timer; when the timer fires the
// latest value is saved. Save errors are logged and dropped: the next change
// schedules a fresh attempt.
type Debouncer[T any] struct {
	mu      sync.Mutex
	clock   Clock
	delay   time.Duration
	save    SaveFunc[T]
	logger  *slog.Logger
	pending *T
	timer   Timer
	gen     int
	saves   int
}

// Option configures a Debouncer.
type Option func(*config)

type config struct {
	clock  Clock
	logger *slog.Logger
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(cfg *config) { cfg.clock = c }
}

// WithLogger sets the logger used for failed saves.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// New returns a debouncer that calls save delay after the last Schedule.
// A non-positive delay uses DefaultDelay.
func New[T any](delay time.Duration, save SaveFunc[T], opts ...Option) *Debouncer[T] {
	cfg := config{clock: Real, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{clock: cfg.clock, delay: delay, save: save, logger: cfg.logger}
}

// Schedule makes v the pending value and restarts the timer.
func (d *Debouncer[T]) Schedule(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = &v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a value is waiting to be saved.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Saves returns how many save calls were issued.
func (d *Debouncer[T]) Saves() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saves
}

// take claims the pending value. A timer callback passes its generation so a
// timer that lost the race with a newer Schedule does nothing.
func (d *Debouncer[T]) take(gen int, fromTimer bool) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero T
	if fromTimer && gen != d.gen {
		return zero, false
	}
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending == nil {
		return zero, false
	}
	v := *d.pending
	d.pending = nil
	d.saves++
	return v, true
}

func (d *Debouncer[T]) fire(gen int) {
	v, ok := d.take(gen, true)
	if !ok {
		return
	}
	if err := d.save(context.Background(), v); err != nil {
		d.logger.Warn("debounced save failed", "error", err)
	}
}

// Flush saves the pending value now, if any, and returns the save error.
func (d *Debouncer[T]) Flush(ctx context.Context) error {
	v, ok := d.take(0, false)
	if !ok {
		return nil
	}
	return d.save(ctx, v)
}

// Stop cancels the timer and discards the pending value.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
