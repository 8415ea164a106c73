package verify

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func waitDone(t *testing.T, a *Attempt) {
	t.Helper()
	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for attempt to stop")
	}
}

func TestAttemptSucceeds(t *testing.T) {
	var successes int32
	opts := Options{
		Interval:    time.Millisecond,
		MaxDuration: time.Second,
		OnSuccess:   func() { atomic.AddInt32(&successes, 1) },
	}

	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		return true, nil
	})
	waitDone(t, a)

	if got := a.Status(); got != StatusSucceeded {
		t.Fatalf("expected %s, got %s", StatusSucceeded, got)
	}
	if got := atomic.LoadInt32(&successes); got != 1 {
		t.Fatalf("expected exactly one success callback, got %d", got)
	}
}

func TestAttemptFinalizesOnce(t *testing.T) {
	// a rail that keeps reporting "paid" must still trigger success only once
	var successes int32
	var checks int32
	opts := Options{
		Interval:    time.Millisecond,
		MaxDuration: time.Second,
		OnSuccess:   func() { atomic.AddInt32(&successes, 1) },
	}

	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		atomic.AddInt32(&checks, 1)
		return true, nil
	})
	waitDone(t, a)

	if got := atomic.LoadInt32(&checks); got != 1 {
		t.Fatalf("expected polling to stop after first positive check, got %d checks", got)
	}
	if got := atomic.LoadInt32(&successes); got != 1 {
		t.Fatalf("expected exactly one finalization, got %d", got)
	}
}

func TestAttemptRetriesThroughTransientErrors(t *testing.T) {
	var calls int32
	var successes int32
	opts := Options{
		Interval:    time.Millisecond,
		MaxDuration: time.Second,
		OnSuccess:   func() { atomic.AddInt32(&successes, 1) },
	}

	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		switch atomic.AddInt32(&calls, 1) {
		case 1, 2:
			return false, errors.New("connection reset")
		default:
			return true, nil
		}
	})
	waitDone(t, a)

	if got := a.Status(); got != StatusSucceeded {
		t.Fatalf("expected transient errors to be retried, status %s", got)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 checks, got %d", got)
	}
	if got := atomic.LoadInt32(&successes); got != 1 {
		t.Fatalf("expected one success callback, got %d", got)
	}
}

func TestAttemptTimesOutAtDeadline(t *testing.T) {
	// mocked clock: every check advances five minutes, so the deadline is
	// crossed strictly after 15 minutes of simulated wall-clock time
	var fakeNow atomic.Int64
	base := time.Unix(1_700_000_000, 0)
	now := func() time.Time {
		return base.Add(time.Duration(fakeNow.Load()) * time.Minute)
	}

	var timeouts int32
	var checks int32
	opts := Options{
		Interval:    time.Millisecond,
		MaxDuration: 15 * time.Minute,
		Now:         now,
		OnTimeout:   func() { atomic.AddInt32(&timeouts, 1) },
		OnSuccess:   func() { t.Error("success must not fire") },
	}

	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		atomic.AddInt32(&checks, 1)
		fakeNow.Add(5)
		return false, nil
	})
	waitDone(t, a)

	if got := a.Status(); got != StatusTimedOut {
		t.Fatalf("expected %s, got %s", StatusTimedOut, got)
	}
	// checks at t=0, 5 and 10 minutes run; the tick at t=15 must not
	if got := atomic.LoadInt32(&checks); got != 3 {
		t.Fatalf("expected exactly 3 checks before timeout, got %d", got)
	}
	if got := atomic.LoadInt32(&timeouts); got != 1 {
		t.Fatalf("expected one timeout callback, got %d", got)
	}
}

func TestAttemptDoesNotTimeOutEarly(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	var elapsed atomic.Int64
	now := func() time.Time {
		return base.Add(time.Duration(elapsed.Load()) * time.Second)
	}

	var calls int32
	opts := Options{
		Interval:    time.Millisecond,
		MaxDuration: 15 * time.Minute,
		Now:         now,
		OnTimeout:   func() { t.Error("timeout must not fire before the deadline") },
	}

	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		// stay one second short of the deadline, then succeed
		if atomic.AddInt32(&calls, 1) == 3 {
			return true, nil
		}
		elapsed.Store(15*60 - 1)
		return false, nil
	})
	waitDone(t, a)

	if got := a.Status(); got != StatusSucceeded {
		t.Fatalf("expected success one second before deadline, got %s", got)
	}
}

func TestAttemptCancelStopsPolling(t *testing.T) {
	var checks int32
	started := make(chan struct{})
	release := make(chan struct{})

	opts := Options{
		Interval:    time.Millisecond,
		MaxDuration: time.Minute,
		OnSuccess:   func() { t.Error("cancelled attempt must not finalize") },
	}

	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		if atomic.AddInt32(&checks, 1) == 1 {
			close(started)
			<-release
			// the rail answers "paid" after cancellation: result must be discarded
			return true, nil
		}
		return false, nil
	})

	<-started
	a.Cancel()
	close(release)
	waitDone(t, a)

	if got := a.Status(); got != StatusCancelled {
		t.Fatalf("expected %s, got %s", StatusCancelled, got)
	}

	// no further checks may be issued after cancellation
	before := atomic.LoadInt32(&checks)
	time.Sleep(20 * time.Millisecond)
	if after := atomic.LoadInt32(&checks); after != before {
		t.Fatalf("expected no checks after cancel, got %d extra", after-before)
	}
	if before != 1 {
		t.Fatalf("expected a single in-flight check, got %d", before)
	}
}

func TestAttemptCancelIdempotent(t *testing.T) {
	opts := Options{Interval: time.Millisecond, MaxDuration: time.Minute}
	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		return false, nil
	})

	a.Cancel()
	a.Cancel()
	waitDone(t, a)

	if got := a.Status(); got != StatusCancelled {
		t.Fatalf("expected %s, got %s", StatusCancelled, got)
	}
}

func TestAttemptContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var checks int32

	opts := Options{Interval: 5 * time.Millisecond, MaxDuration: time.Minute}
	a := Start(ctx, opts, func(ctx context.Context) (bool, error) {
		atomic.AddInt32(&checks, 1)
		return false, nil
	})

	cancel()
	waitDone(t, a)

	if got := a.Status(); got != StatusCancelled {
		t.Fatalf("expected %s, got %s", StatusCancelled, got)
	}
}

func TestAttemptChecksAreSequential(t *testing.T) {
	var inFlight int32
	var maxInFlight int32
	var mu sync.Mutex
	var calls int

	opts := Options{Interval: time.Millisecond, MaxDuration: time.Second}
	a := Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		current := atomic.AddInt32(&inFlight, 1)
		if current > atomic.LoadInt32(&maxInFlight) {
			atomic.StoreInt32(&maxInFlight, current)
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)

		mu.Lock()
		calls++
		done := calls >= 5
		mu.Unlock()
		return done, nil
	})
	waitDone(t, a)

	if got := atomic.LoadInt32(&maxInFlight); got != 1 {
		t.Fatalf("expected at most one in-flight check, observed %d", got)
	}
}

func TestStatusTerminal(t *testing.T) {
	cases := []struct {
		status   Status
		terminal bool
	}{
		{StatusIdle, false},
		{StatusPolling, false},
		{StatusSucceeded, true},
		{StatusTimedOut, true},
		{StatusCancelled, true},
	}

	for _, tc := range cases {
		if got := tc.status.Terminal(); got != tc.terminal {
			t.Fatalf("%s: expected %v, got %v", tc.status, tc.terminal, got)
		}
	}
}
