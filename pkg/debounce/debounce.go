// Package debounce delivers the last value of a quiet period. It mirrors the
// search-input debouncing of the course list: every Set resets the pending
// timer, so the callback fires once with the final value after the delay
// elapses without a newer Set.
package debounce

import (
	"sync"
	"time"
)

type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu    sync.Mutex
	timer *time.Timer
}

func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		delay: delay,
		fn:    fn,
	}
}

// Set schedules fn(v) after the delay, superseding any pending value.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fn(v)
	})
}

// Stop cancels any pending delivery. Safe to call with nothing pending.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
