package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestPacerSpacesDispatches(t *testing.T) {
	const interval = 50 * time.Millisecond
	pacer := NewPacer(interval)

	var mu sync.Mutex
	var starts []time.Time

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := pacer.Acquire(context.Background()); err != nil {
				t.Errorf("Acquire() unexpected error: %v", err)
				return
			}
			mu.Lock()
			starts = append(starts, time.Now())
			mu.Unlock()
			pacer.Release()
		}()
	}
	wg.Wait()

	if len(starts) != 4 {
		t.Fatalf("got %d dispatches, want 4", len(starts))
	}
	for i := 1; i < len(starts); i++ {
		if gap := starts[i].Sub(starts[i-1]); gap < interval-5*time.Millisecond {
			t.Errorf("dispatch %d started %v after the previous one, want at least %v", i, gap, interval)
		}
	}
}

func TestPacerAcquireHonorsContextCancel(t *testing.T) {
	pacer := NewPacer(time.Hour)

	// Burn the initial token so the next caller has to wait.
	if err := pacer.Acquire(context.Background()); err != nil {
		t.Fatalf("first Acquire() unexpected error: %v", err)
	}
	pacer.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := pacer.Acquire(ctx); err == nil {
		pacer.Release()
		t.Fatal("Acquire() returned without error despite an expired context")
	}

	// A cancelled waiter must give its slot back to later callers.
	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	done := make(chan error, 1)
	go func() {
		done <- pacer.Acquire(ctx2)
	}()
	select {
	case err := <-done:
		// Either outcome is fine as long as the slot was obtainable: a
		// limiter timeout is an error, an elapsed token is success.
		_ = err
	case <-time.After(2 * time.Second):
		t.Fatal("slot was not returned after a cancelled Acquire")
	}
}
