package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops idle entries and reports how many it removed.
// *catalogview.Registry satisfies it.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// Pruner drops expired entries on its own schedule, such as the page-load
// rate limiter.
type Pruner interface {
	Sweep() int
}

// ViewCleanup is a background worker that forgets catalog views nobody has
// touched for a while.
type ViewCleanup struct {
	views    Sweeper
	log      *zap.Logger
	interval time.Duration
	idle     time.Duration
	pruners  []Pruner
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewViewCleanup creates the worker.
//
// Parameters:
//   - views: the view registry
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 1 minute)
//   - idle: how long a view may sit untouched before it is dropped (e.g., 30 minutes)
func NewViewCleanup(views Sweeper, logger *zap.Logger, interval, idle time.Duration) *ViewCleanup {
	return &ViewCleanup{
		views:    views,
		log:      logger,
		interval: interval,
		idle:     idle,
		stopCh:   make(chan struct{}),
	}
}

// AlsoPrune adds p to every sweep. Call before Start.
func (w *ViewCleanup) AlsoPrune(p Pruner) *ViewCleanup {
	w.pruners = append(w.pruners, p)
	return w
}

// Start begins the background sweep loop.
func (w *ViewCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("view cleanup worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("idle_ttl", w.idle))
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// more than once.
func (w *ViewCleanup) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("view cleanup worker stopped")
	})
}

func (w *ViewCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *ViewCleanup) cleanup() {
	if n := w.views.Sweep(w.idle); n > 0 {
		w.log.Info("dropped idle catalog views", zap.Int("count", n))
	}
	for _, p := range w.pruners {
		p.Sweep()
	}
}
