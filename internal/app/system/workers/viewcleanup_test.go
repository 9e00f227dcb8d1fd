package workers

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
	idle  atomic.Int64
}

func (s *countingSweeper) Sweep(idle time.Duration) int {
	s.calls.Add(1)
	s.idle.Store(int64(idle))
	return 1
}

func TestViewCleanup_SweepsOnInterval(t *testing.T) {
	sw := &countingSweeper{}
	w := NewViewCleanup(sw, zap.NewNop(), 5*time.Millisecond, time.Hour)
	w.Start()

	deadline := time.Now().Add(2 * time.Second)
	for sw.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()
	w.Stop()

	if sw.calls.Load() < 2 {
		t.Fatalf("expected at least 2 sweeps, got %d", sw.calls.Load())
	}
	if time.Duration(sw.idle.Load()) != time.Hour {
		t.Errorf("idle passed = %v, want 1h", time.Duration(sw.idle.Load()))
	}
}

func TestViewCleanup_StopsPromptly(t *testing.T) {
	sw := &countingSweeper{}
	w := NewViewCleanup(sw, zap.NewNop(), time.Hour, time.Hour)
	w.Start()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	if sw.calls.Load() != 0 {
		t.Errorf("no sweep expected before the first tick, got %d", sw.calls.Load())
	}
}

type countingPruner struct{ calls int }

func (p *countingPruner) Sweep() int {
	p.calls++
	return 0
}

func TestViewCleanup_RunsPruners(t *testing.T) {
	sw := &countingSweeper{}
	p := &countingPruner{}
	w := NewViewCleanup(sw, zap.NewNop(), time.Hour, time.Hour).AlsoPrune(p)

	w.cleanup()
	w.cleanup()

	if sw.calls.Load() != 2 || p.calls != 2 {
		t.Errorf("sweeps = %d prunes = %d, want 2 and 2", sw.calls.Load(), p.calls)
	}
}
