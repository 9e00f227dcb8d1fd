package broadcast_test

import (
	"sync"
	"testing"

	"github.com/dalemusser/devcatalog/internal/app/system/broadcast"
)

func TestSlot_ReplaysCurrentValue(t *testing.T) {
	s := broadcast.New("initial")
	s.Publish("latest")

	var got []string
	unsub := s.Subscribe(func(v string) { got = append(got, v) })
	defer unsub()

	if len(got) != 1 || got[0] != "latest" {
		t.Fatalf("late subscriber got %v, want [latest]", got)
	}
}

func TestSlot_DeliversToAllSubscribersInOrder(t *testing.T) {
	s := broadcast.New(0)

	var order []string
	s.Subscribe(func(v int) {
		if v == 7 {
			order = append(order, "a")
		}
	})
	s.Subscribe(func(v int) {
		if v == 7 {
			order = append(order, "b")
		}
	})

	s.Publish(7)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("delivery order = %v, want [a b]", order)
	}
	if s.Value() != 7 {
		t.Errorf("Value() = %d, want 7", s.Value())
	}
}

func TestSlot_UnsubscribeStopsDelivery(t *testing.T) {
	s := broadcast.New(false)

	calls := 0
	unsub := s.Subscribe(func(bool) { calls++ })
	unsub()
	unsub() // second call is a no-op

	s.Publish(true)

	if calls != 1 { // only the replay
		t.Errorf("calls = %d, want 1", calls)
	}
	if n := s.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d, want 0", n)
	}
}

func TestSlot_SubscriberMayPublishElsewhere(t *testing.T) {
	confirm := broadcast.New(false)
	alert := broadcast.New[*string](nil)

	msg := "boom"
	alert.Publish(&msg)

	confirm.Subscribe(func(ok bool) {
		if ok {
			alert.Publish(nil)
		}
	})
	confirm.Publish(true)

	if alert.Value() != nil {
		t.Errorf("alert should be cleared, got %q", *alert.Value())
	}
}

func TestSlot_ConcurrentPublish(t *testing.T) {
	s := broadcast.New(0)

	var mu sync.Mutex
	seen := 0
	s.Subscribe(func(int) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Publish(v)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if seen != 51 {
		t.Errorf("seen = %d, want 51", seen)
	}
}
