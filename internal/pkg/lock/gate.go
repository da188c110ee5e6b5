// Package lock provides the process-wide mutual exclusion gate that serializes
// every read-modify-write sequence against the order snapshot. The gate is
// process-local: it does not coordinate across multiple backend instances.
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned when exclusivity could not be acquired within the
// gate's timeout. Callers surface this as a transient failure, never a crash.
var ErrTimeout = errors.New("lock acquisition timeout")

// DefaultTimeout bounds how long Do waits for the critical section.
const DefaultTimeout = 5 * time.Second

// Gate is a timeout-bounded in-process mutex. All mutating lifecycle
// operations run their entire read-modify-write sequence inside one Do call;
// locking only the write would reintroduce lost-update races.
type Gate struct {
	slot    chan struct{}
	timeout time.Duration
}

// NewGate creates a gate with the given acquisition timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewGate(timeout time.Duration) *Gate {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gate{
		slot:    make(chan struct{}, 1),
		timeout: timeout,
	}
}

// Do acquires exclusivity, runs fn, and releases on every exit path including
// panics. Returns ErrTimeout when the gate stays contended past the timeout,
// or the context error when ctx is cancelled while waiting.
func (g *Gate) Do(ctx context.Context, fn func() error) error {
	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case g.slot <- struct{}{}:
	case <-timer.C:
		return ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}

	defer func() { <-g.slot }()
	return fn()
}
