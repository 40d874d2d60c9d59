package task

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrInFlight is returned when a task with the same key is already
// scheduled and has not completed yet.
var ErrInFlight = errors.New("task already in flight")

// Completion is the single terminal result of a simulated task.
type Completion struct {
	Payload any
	Err     error
}

// Runner models the app's simulated asynchronous effects: a fire-and-forget
// delayed completion with exactly one result on the returned channel. The
// fixed delay stands in for real verification latency. Keeping the
// abstraction explicit lets timeout or retry semantics be added later
// without restructuring callers.
type Runner struct {
	delay time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewRunner(delay time.Duration) *Runner {
	return &Runner{
		delay:    delay,
		inflight: make(map[string]struct{}),
	}
}

// Schedule runs fn after the fixed delay and delivers one Completion on
// the returned channel. Overlapping schedules for the same key (a
// double-click) are rejected with ErrInFlight instead of racing.
func (r *Runner) Schedule(ctx context.Context, key string, fn func() (any, error)) (<-chan Completion, error) {
	r.mu.Lock()
	if _, busy := r.inflight[key]; busy {
		r.mu.Unlock()
		return nil, ErrInFlight
	}
	r.inflight[key] = struct{}{}
	r.mu.Unlock()

	ch := make(chan Completion, 1)
	timer := time.NewTimer(r.delay)

	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.inflight, key)
			r.mu.Unlock()
		}()
		defer timer.Stop()

		select {
		case <-ctx.Done():
			ch <- Completion{Err: ctx.Err()}
		case <-timer.C:
			payload, err := fn()
			ch <- Completion{Payload: payload, Err: err}
		}
	}()

	return ch, nil
}
