package focus

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sadopc/wyrm/internal/store"
)

func newRunner(t *testing.T) (*Runner, *store.Store) {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return &Runner{Store: s, Out: &bytes.Buffer{}, Tick: time.Millisecond}, s
}

func TestIntervalCompletes(t *testing.T) {
	r, s := newRunner(t)

	result, err := r.interval(context.Background(), "work", 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if result.Interrupted {
		t.Fatal("expected completed interval")
	}
	if result.Elapsed != 20*time.Millisecond {
		t.Fatalf("expected planned elapsed, got %v", result.Elapsed)
	}

	// Sub-minute intervals leave no segment behind.
	segments, err := s.ListSegments(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
}

func TestIntervalCancelled(t *testing.T) {
	r, _ := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	result, err := r.interval(ctx, "work", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Interrupted {
		t.Fatal("expected interrupted result")
	}
	if result.Elapsed >= time.Hour {
		t.Fatalf("elapsed should reflect the partial run, got %v", result.Elapsed)
	}
}

func TestRunValidation(t *testing.T) {
	r, _ := newRunner(t)

	if _, err := r.Run(context.Background(), 0, 5, 4); err == nil {
		t.Fatal("expected error for zero work minutes")
	}
	if _, err := r.Run(context.Background(), 25, 5, 0); err == nil {
		t.Fatal("expected error for zero cycles")
	}
}

func TestRunStopsAfterInterrupt(t *testing.T) {
	r, _ := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := r.Run(ctx, 25, 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !summary.Interrupted {
		t.Fatal("expected interrupted summary")
	}
	if len(summary.Cycles) != 1 {
		t.Fatalf("expected a single interrupted cycle, got %d", len(summary.Cycles))
	}
}
