// Package broadcast provides a single-value, multi-subscriber slot with
// last-value replay.
//
// A Slot always holds a current value. Subscribers receive that value
// immediately on Subscribe and every later Publish, synchronously on the
// publishing goroutine. Delivery happens outside the slot's lock, so a
// subscriber may read the slot or publish to other slots.
package broadcast

import "sync"

// Slot is safe for concurrent use.
type Slot[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// New returns a slot holding initial.
func New[T any](initial T) *Slot[T] {
	return &Slot[T]{value: initial, subs: map[int]func(T){}}
}

// Value returns the most recently published value.
func (s *Slot[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Publish stores v and delivers it to every current subscriber.
func (s *Slot[T]) Publish(v T) {
	s.mu.Lock()
	s.value = v
	fns := s.snapshot()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn, replays the current value to it, and returns a
// function that removes the subscription. Calling it more than once is fine.
func (s *Slot[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.value
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers reports how many subscriptions are active.
func (s *Slot[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// snapshot returns subscribers in registration order. Caller holds mu.
func (s *Slot[T]) snapshot() []func(T) {
	fns := make([]func(T), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
