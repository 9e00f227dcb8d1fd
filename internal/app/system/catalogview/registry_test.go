package catalogview_test

import (
	"testing"
	"time"

	"github.com/dalemusser/devcatalog/internal/app/system/catalogview"
	"github.com/dalemusser/devcatalog/internal/testutil"
	"go.uber.org/zap"
)

func TestRegistry_LookupCreatesAndReuses(t *testing.T) {
	reg := catalogview.NewRegistry(testutil.NewStore(testutil.NewFakeSource()), zap.NewNop())

	id, c1, created := reg.Lookup("", 500)
	if !created || id == "" || c1 == nil {
		t.Fatalf("expected a new view, got id=%q created=%v", id, created)
	}
	if !c1.IsMobile() {
		t.Error("new view should take the initial width")
	}

	id2, c2, created := reg.Lookup(id, 1024)
	if created || id2 != id || c2 != c1 {
		t.Error("known id should return the same controller")
	}

	id3, _, created := reg.Lookup("stale-id", 1024)
	if !created || id3 == "stale-id" {
		t.Error("unknown id should issue a new view id")
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
}

func TestRegistry_SweepDropsIdleViews(t *testing.T) {
	reg := catalogview.NewRegistry(testutil.NewStore(testutil.NewFakeSource()), zap.NewNop())

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.SetClock(func() time.Time { return now })

	oldID, _ := reg.Create(0)
	now = now.Add(20 * time.Minute)
	freshID, _ := reg.Create(0)
	now = now.Add(20 * time.Minute)

	if n := reg.Sweep(30 * time.Minute); n != 1 {
		t.Fatalf("Sweep() = %d, want 1", n)
	}
	if _, ok := reg.Get(oldID); ok {
		t.Error("idle view should be gone")
	}
	if _, ok := reg.Get(freshID); !ok {
		t.Error("recent view should remain")
	}
}
