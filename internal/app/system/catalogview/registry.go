package catalogview

import (
	"sync"
	"time"

	"github.com/dalemusser/devcatalog/internal/app/system/notify"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry keeps one Controller per browser view, keyed by view id.
type Registry struct {
	provider Provider
	log      *zap.Logger
	now      func() time.Time

	mu    sync.Mutex
	views map[string]*entry
}

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// NewRegistry returns an empty registry whose controllers use p.
func NewRegistry(p Provider, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		provider: p,
		log:      logger,
		now:      time.Now,
		views:    map[string]*entry{},
	}
}

// SetClock replaces the time source. Tests only.
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
}

// Get returns the controller for id and refreshes its idle timer.
func (r *Registry) Get(id string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.views[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.ctrl, true
}

// Create registers a fresh controller under a new random id.
func (r *Registry) Create(width int) (string, *Controller) {
	id := uuid.NewString()
	ctrl := New(r.provider, notify.New(), width, r.log.With(zap.String("view_id", id)))

	r.mu.Lock()
	r.views[id] = &entry{ctrl: ctrl, lastSeen: r.now()}
	r.mu.Unlock()
	return id, ctrl
}

// Lookup returns the controller for id, creating a new view when id is
// empty or unknown. created reports whether a new id was issued.
func (r *Registry) Lookup(id string, width int) (viewID string, ctrl *Controller, created bool) {
	if id != "" {
		if c, ok := r.Get(id); ok {
			return id, c, false
		}
	}
	viewID, ctrl = r.Create(width)
	return viewID, ctrl, true
}

// Sweep drops views idle for longer than idle and returns how many went.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	cutoff := r.now().Add(-idle)
	var dropped []*Controller
	for id, e := range r.views {
		if e.lastSeen.Before(cutoff) {
			dropped = append(dropped, e.ctrl)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, c := range dropped {
		c.Hub().Close()
	}
	return len(dropped)
}

// Len reports the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
