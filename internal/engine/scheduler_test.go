package engine

import "testing"

func TestSchedulerFiresInOrder(t *testing.T) {
	s := newScheduler()

	var order []int
	s.after(0, 30, func() { order = append(order, 3) })
	s.after(0, 10, func() { order = append(order, 1) })
	s.after(0, 20, func() { order = append(order, 2) })

	s.advance(100)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected firing order [1 2 3], got %v", order)
	}
}

func TestSchedulerSameTickStable(t *testing.T) {
	s := newScheduler()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.after(0, 10, func() { order = append(order, i) })
	}

	s.advance(10)

	for i, v := range order {
		if v != i {
			t.Fatalf("Expected insertion order, got %v", order)
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := newScheduler()

	fired := false
	id := s.after(0, 5, func() { fired = true })
	s.cancel(id)
	s.advance(10)

	if fired {
		t.Error("Cancelled timer fired")
	}
	if s.pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.pending())
	}
}

func TestSchedulerPartialAdvance(t *testing.T) {
	s := newScheduler()

	var fired []int
	s.after(0, 5, func() { fired = append(fired, 5) })
	s.after(0, 15, func() { fired = append(fired, 15) })

	s.advance(10)
	if len(fired) != 1 || fired[0] != 5 {
		t.Errorf("Expected only the due timer to fire, got %v", fired)
	}
	if s.pending() != 1 {
		t.Errorf("Expected one pending timer, got %d", s.pending())
	}

	s.advance(20)
	if len(fired) != 2 {
		t.Errorf("Expected both timers fired, got %v", fired)
	}
}

func TestSchedulerCallbackReschedules(t *testing.T) {
	s := newScheduler()

	count := 0
	var tickFn func()
	tickFn = func() {
		count++
		if count < 3 {
			// Chained timers fire within the same advance when due.
			s.after(uint64(count*10), 10, tickFn)
		}
	}
	s.after(0, 10, tickFn)

	s.advance(100)
	if count != 3 {
		t.Errorf("Expected 3 chained firings, got %d", count)
	}
}

func TestSchedulerClear(t *testing.T) {
	s := newScheduler()

	fired := false
	s.after(0, 5, func() { fired = true })
	s.clear()
	s.advance(10)

	if fired {
		t.Error("Timer fired after clear")
	}
	if s.pending() != 0 {
		t.Errorf("Expected no pending timers after clear, got %d", s.pending())
	}
}
