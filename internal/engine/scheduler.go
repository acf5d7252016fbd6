package engine

import "container/heap"

// timerID identifies a scheduled callback so it can be cancelled.
type timerID int64

type timer struct {
	id   timerID
	at   uint64 // tick at which the callback fires
	seq  int64  // insertion order, stabilizes equal-tick firing
	fn   func()
	dead bool
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// scheduler fires callbacks at simulation ticks. It only advances when the
// game ticks, so every pending callback freezes while the game is paused
// and resumes later with its remaining delay intact.
type scheduler struct {
	heap   timerHeap
	byID   map[timerID]*timer
	nextID timerID
	seq    int64
}

func newScheduler() *scheduler {
	return &scheduler{byID: make(map[timerID]*timer)}
}

// after schedules fn to run delay ticks after now.
// A zero delay fires on the next advance.
func (s *scheduler) after(now, delay uint64, fn func()) timerID {
	s.nextID++
	s.seq++
	t := &timer{id: s.nextID, at: now + delay, seq: s.seq, fn: fn}
	heap.Push(&s.heap, t)
	s.byID[t.id] = t
	return t.id
}

// cancel drops a pending timer. Unknown or already-fired IDs are ignored.
func (s *scheduler) cancel(id timerID) {
	if t, ok := s.byID[id]; ok {
		t.dead = true
		delete(s.byID, id)
	}
}

// advance runs every callback due at or before now, in scheduling order.
// Callbacks may schedule further timers, including at the current tick.
func (s *scheduler) advance(now uint64) {
	for len(s.heap) > 0 && s.heap[0].at <= now {
		t := heap.Pop(&s.heap).(*timer)
		if t.dead {
			continue
		}
		delete(s.byID, t.id)
		t.fn()
	}
}

// clear drops all pending timers.
func (s *scheduler) clear() {
	s.heap = s.heap[:0]
	s.byID = make(map[timerID]*timer)
}

// pending returns the number of live timers.
func (s *scheduler) pending() int {
	return len(s.byID)
}
