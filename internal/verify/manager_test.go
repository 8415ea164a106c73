package verify

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestManagerCancelsPriorAttemptBeforeStartingNext(t *testing.T) {
	m := NewManager()
	opts := Options{Interval: time.Millisecond, MaxDuration: time.Minute}

	var firstSawCancel atomic.Bool
	first := m.Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		return false, nil
	})

	// the second attempt's very first check must observe the first attempt
	// already cancelled
	second := m.Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		firstSawCancel.Store(first.Status() == StatusCancelled)
		return true, nil
	})

	select {
	case <-second.Done():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for second attempt")
	}

	if !firstSawCancel.Load() {
		t.Fatal("first attempt must be cancelled before second begins polling")
	}
	if got := second.Status(); got != StatusSucceeded {
		t.Fatalf("expected second attempt to succeed, got %s", got)
	}

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for first attempt to stop")
	}
}

func TestManagerCancelWithoutAttempt(t *testing.T) {
	m := NewManager()
	m.Cancel() // no-op

	if m.Current() != nil {
		t.Fatal("expected no current attempt")
	}
}

func TestManagerCancelStopsCurrent(t *testing.T) {
	m := NewManager()
	opts := Options{Interval: time.Millisecond, MaxDuration: time.Minute}

	a := m.Start(context.Background(), opts, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	m.Cancel()

	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for cancelled attempt")
	}
	if got := a.Status(); got != StatusCancelled {
		t.Fatalf("expected %s, got %s", StatusCancelled, got)
	}
}
