// Package verify implements the poll-until-paid-or-deadline loop that drives
// bank transfer and Binance Pay confirmation.
package verify

import (
	"context"
	"sync"
	"time"
)

// Status describes attempt lifecycle.
type Status string

const (
	StatusIdle      Status = "IDLE"
	StatusPolling   Status = "POLLING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusTimedOut  Status = "TIMED_OUT"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether the status ends the attempt.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusTimedOut, StatusCancelled:
		return true
	}
	return false
}

// CheckFunc performs one status check against the external payment rail.
// It reports whether the payment has been observed. A returned error is
// treated as a transient transport failure: the loop swallows it and retries
// on the same cadence, never aborting a pending transaction over rail
// flakiness.
type CheckFunc func(ctx context.Context) (bool, error)

// Options configures one verification attempt.
type Options struct {
	// Interval between consecutive status checks.
	Interval time.Duration
	// MaxDuration is the wall-clock deadline measured from attempt start.
	MaxDuration time.Duration
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
	// OnSuccess fires exactly once when a check reports payment.
	OnSuccess func()
	// OnTimeout fires once when the deadline elapses without payment.
	OnTimeout func()
}

// Attempt is one run of the polling loop. Checks are strictly sequential: the
// next check is scheduled only after the previous one resolves, so two checks
// can never race to finalize the same order. Cancellation is cooperative: the
// flag is checked before every state-mutating action, and a check already in
// flight when Cancel is called has its result discarded.
type Attempt struct {
	interval    time.Duration
	maxDuration time.Duration
	now         func() time.Time
	onSuccess   func()
	onTimeout   func()

	started time.Time

	mu        sync.Mutex
	status    Status
	cancelled bool

	// stop breaks the inter-poll sleep when Cancel is called.
	stop chan struct{}
	done chan struct{}
}

func newAttempt(opts Options) *Attempt {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Attempt{
		interval:    opts.Interval,
		maxDuration: opts.MaxDuration,
		now:         now,
		onSuccess:   opts.OnSuccess,
		onTimeout:   opts.OnTimeout,
		status:      StatusIdle,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start creates an attempt and launches its polling loop.
func Start(ctx context.Context, opts Options, check CheckFunc) *Attempt {
	a := newAttempt(opts)
	a.mu.Lock()
	a.status = StatusPolling
	a.started = a.now()
	a.mu.Unlock()
	go a.run(ctx, check)
	return a
}

// Status returns the current attempt status.
func (a *Attempt) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Deadline returns the instant at which the attempt times out.
func (a *Attempt) Deadline() time.Time {
	return a.started.Add(a.maxDuration)
}

// Remaining returns the time left before the deadline, clamped at zero.
func (a *Attempt) Remaining() time.Duration {
	left := a.Deadline().Sub(a.now())
	if left < 0 {
		return 0
	}
	return left
}

// Cancel sets the cancellation flag. It is idempotent and takes effect
// synchronously: once Cancel returns, no success or timeout callback will
// fire even if a check is still in flight.
func (a *Attempt) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancelled {
		return
	}
	a.cancelled = true
	if !a.status.Terminal() {
		a.status = StatusCancelled
	}
	close(a.stop)
}

// Done is closed when the polling loop has fully stopped.
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

// transition moves POLLING to a terminal status. It reports false when the
// attempt was cancelled or already terminal, which makes double finalization
// structurally impossible.
func (a *Attempt) transition(to Status) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancelled || a.status != StatusPolling {
		return false
	}
	a.status = to
	return true
}

func (a *Attempt) isCancelled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancelled
}

func (a *Attempt) run(ctx context.Context, check CheckFunc) {
	defer close(a.done)

	for {
		if a.isCancelled() {
			return
		}
		if a.now().Sub(a.started) >= a.maxDuration {
			if a.transition(StatusTimedOut) && a.onTimeout != nil {
				a.onTimeout()
			}
			return
		}

		paid, err := check(ctx)
		if err != nil {
			// transient transport failure, treated as "not yet paid"
			paid = false
		}

		if paid {
			if a.transition(StatusSucceeded) && a.onSuccess != nil {
				a.onSuccess()
			}
			return
		}

		select {
		case <-ctx.Done():
			a.Cancel()
			return
		case <-a.stop:
			return
		case <-time.After(a.interval):
		}
	}
}
