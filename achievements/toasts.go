package achievements

import (
	"sync"
	"time"
)

// ToastTitle is the fixed headline every unlock toast carries.
const ToastTitle = "Achievement Unlocked!"

// Toast display cycle. A presented toast stays up for ToastVisibleFor,
// then plays its exit for ToastExitFor before the next one may appear.
const (
	ToastVisibleFor = 3000 * time.Millisecond
	ToastExitFor    = 300 * time.Millisecond
)

// Toast is the transient payload handed to the notification view.
type Toast struct {
	Icon  string
	Title string
	Text  string
}

// Scheduler abstracts delayed execution so the queue's timing can be
// driven by a fake clock in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// SystemScheduler schedules on the wall clock.
type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Queue serializes toast presentation: strict FIFO, at most one toast
// visible at a time, fixed visible and exit durations per toast.
type Queue struct {
	mu        sync.Mutex
	sched     Scheduler
	pending   []Toast
	active    bool
	onPresent func(Toast)
	onDismiss func()
}

// NewQueue builds an idle queue driven by the given scheduler.
func NewQueue(sched Scheduler) *Queue {
	return &Queue{sched: sched}
}

// SetCallbacks registers the presentation hooks. onPresent receives the
// toast entering the screen; onDismiss fires when its visible time is
// up and the exit animation should start. Either may be nil.
func (q *Queue) SetCallbacks(onPresent func(Toast), onDismiss func()) {
	q.mu.Lock()
	q.onPresent = onPresent
	q.onDismiss = onDismiss
	q.mu.Unlock()
}

// Enqueue appends a toast and starts the display cycle if the queue was
// quiescent.
func (q *Queue) Enqueue(t Toast) {
	q.mu.Lock()
	q.pending = append(q.pending, t)
	if q.active {
		q.mu.Unlock()
		return
	}
	q.active = true
	q.mu.Unlock()

	q.next()
}

// Clear drops every toast still waiting. A toast already presented is
// not recalled; it finishes its cycle.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.pending = nil
	q.mu.Unlock()
}

// Pending returns how many toasts are waiting behind the current one.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// next presents the queue head, or goes quiescent when there is none.
func (q *Queue) next() {
	q.mu.Lock()
	if len(q.pending) == 0 {
		q.active = false
		q.mu.Unlock()
		return
	}
	head := q.pending[0]
	q.pending = q.pending[1:]
	onPresent := q.onPresent
	q.mu.Unlock()

	if onPresent != nil {
		onPresent(head)
	}
	q.sched.AfterFunc(ToastVisibleFor, func() {
		q.mu.Lock()
		onDismiss := q.onDismiss
		q.mu.Unlock()

		if onDismiss != nil {
			onDismiss()
		}
		q.sched.AfterFunc(ToastExitFor, q.next)
	})
}
