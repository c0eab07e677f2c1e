package achievements

import (
	"sync"
	"testing"
	"time"
)

// virtualScheduler drives queue timing from a fake clock so tests never
// sleep.
type virtualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []virtualTimer
}

type virtualTimer struct {
	at time.Duration
	fn func()
}

func (s *virtualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	s.timers = append(s.timers, virtualTimer{at: s.now + d, fn: fn})
	s.mu.Unlock()
}

func (s *virtualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves the clock forward, firing due timers in time order.
// Callbacks run without the scheduler lock so they may schedule more
// timers.
func (s *virtualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		idx := -1
		for i, tm := range s.timers {
			if tm.at <= target && (idx == -1 || tm.at < s.timers[idx].at) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}
		tm := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		if tm.at > s.now {
			s.now = tm.at
		}
		s.mu.Unlock()
		tm.fn()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

func TestQueuePresentsImmediately(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)

	var got []Toast
	q.SetCallbacks(func(toast Toast) {
		got = append(got, toast)
	}, nil)

	q.Enqueue(Toast{Icon: "I", Title: ToastTitle, Text: "Initiate"})

	if len(got) != 1 {
		t.Fatalf("expected 1 presentation, got %d", len(got))
	}
	if got[0].Text != "Initiate" || got[0].Title != ToastTitle {
		t.Errorf("unexpected toast %+v", got[0])
	}
}

func TestQueueDisplayCycle(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)

	presented := 0
	dismissed := 0
	q.SetCallbacks(func(Toast) { presented++ }, func() { dismissed++ })

	q.Enqueue(Toast{Text: "A"})
	if presented != 1 || dismissed != 0 {
		t.Fatalf("after enqueue: presented=%d dismissed=%d", presented, dismissed)
	}

	// Visible until exactly 3000ms
	sched.Advance(ToastVisibleFor - time.Millisecond)
	if dismissed != 0 {
		t.Error("toast dismissed before its visible time elapsed")
	}
	sched.Advance(time.Millisecond)
	if dismissed != 1 {
		t.Error("toast should dismiss once visible time elapses")
	}

	// Exit phase holds the slot for another 300ms
	sched.Advance(ToastExitFor)
	if presented != 1 {
		t.Error("nothing new should present after the cycle drains")
	}
}

func TestQueueFIFOTiming(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)

	var order []string
	var presentedAt []time.Duration
	q.SetCallbacks(func(toast Toast) {
		order = append(order, toast.Text)
		presentedAt = append(presentedAt, sched.Now())
	}, nil)

	q.Enqueue(Toast{Text: "A"})
	sched.Advance(1000 * time.Millisecond)
	// B arrives while A is still visible
	q.Enqueue(Toast{Text: "B"})

	sched.Advance(10 * time.Second)

	if len(order) != 2 || order[0] != "A" || order[1] != "B" {
		t.Fatalf("expected [A B], got %v", order)
	}

	cycle := ToastVisibleFor + ToastExitFor
	if presentedAt[0] != 0 {
		t.Errorf("A presented at %v, want 0", presentedAt[0])
	}
	if presentedAt[1] < cycle {
		t.Errorf("B presented at %v, must wait for A's full %v cycle", presentedAt[1], cycle)
	}
}

func TestQueueBackToBack(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)

	var presentedAt []time.Duration
	q.SetCallbacks(func(Toast) {
		presentedAt = append(presentedAt, sched.Now())
	}, nil)

	// Three queued up front drain one full cycle apart
	q.Enqueue(Toast{Text: "A"})
	q.Enqueue(Toast{Text: "B"})
	q.Enqueue(Toast{Text: "C"})
	sched.Advance(time.Minute)

	cycle := ToastVisibleFor + ToastExitFor
	want := []time.Duration{0, cycle, 2 * cycle}
	if len(presentedAt) != 3 {
		t.Fatalf("expected 3 presentations, got %d", len(presentedAt))
	}
	for i, at := range want {
		if presentedAt[i] != at {
			t.Errorf("toast %d presented at %v, want %v", i, presentedAt[i], at)
		}
	}
}

func TestQueueRestartsAfterIdle(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)

	presented := 0
	q.SetCallbacks(func(Toast) { presented++ }, nil)

	q.Enqueue(Toast{Text: "A"})
	sched.Advance(time.Minute)

	// Queue fully drained; the next enqueue presents immediately
	q.Enqueue(Toast{Text: "B"})
	if presented != 2 {
		t.Errorf("expected immediate presentation after idle, presented=%d", presented)
	}
}

func TestQueueClear(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)

	presented := 0
	dismissed := 0
	q.SetCallbacks(func(Toast) { presented++ }, func() { dismissed++ })

	q.Enqueue(Toast{Text: "A"})
	q.Enqueue(Toast{Text: "B"})
	q.Enqueue(Toast{Text: "C"})

	// A is on screen; B and C are dropped
	q.Clear()
	if q.Pending() != 0 {
		t.Errorf("expected no pending toasts after Clear, got %d", q.Pending())
	}

	sched.Advance(time.Minute)
	if presented != 1 {
		t.Errorf("only the in-flight toast should present, presented=%d", presented)
	}
	if dismissed != 1 {
		t.Errorf("the in-flight toast still completes its cycle, dismissed=%d", dismissed)
	}
}

func TestQueuePending(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)
	q.SetCallbacks(func(Toast) {}, nil)

	q.Enqueue(Toast{Text: "A"})
	q.Enqueue(Toast{Text: "B"})
	q.Enqueue(Toast{Text: "C"})

	// A is in flight, B and C wait
	if got := q.Pending(); got != 2 {
		t.Errorf("expected 2 pending, got %d", got)
	}
}

func TestQueueNilCallbacks(t *testing.T) {
	sched := &virtualScheduler{}
	q := NewQueue(sched)

	// No callbacks registered; the cycle must still run without panic
	q.Enqueue(Toast{Text: "A"})
	q.Enqueue(Toast{Text: "B"})
	sched.Advance(time.Minute)

	if q.Pending() != 0 {
		t.Errorf("queue should drain without callbacks, %d pending", q.Pending())
	}
}
