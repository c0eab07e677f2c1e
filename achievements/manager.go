package achievements

import (
	"sync"

	"github.com/user-none/folio/storage"
)

// unlockedState is the persisted shape of the unlock set.
type unlockedState struct {
	Unlocked []string `json:"unlocked"`
}

// Manager ties the registry, tracker, and toast queue together and owns
// every state transition. Unlock, Visit, and Reset are safe to call
// from any event source; no internal lock is held while callbacks run,
// so a callback may call back into the manager.
type Manager struct {
	registry *Registry
	tracker  *Tracker
	queue    *Queue
	store    PrefStore

	mu       sync.Mutex
	onUnlock func(Achievement)
	onChange func()
}

// NewManager restores persisted unlock state and returns a ready
// manager. Restoring fires no callbacks and no toasts; unknown IDs in
// the stored set are dropped, duplicates collapse.
func NewManager(store PrefStore, sched Scheduler) *Manager {
	m := &Manager{
		registry: NewRegistry(),
		queue:    NewQueue(sched),
		store:    store,
	}
	m.tracker = NewTracker(DefaultBindings, m.Unlock)

	var st unlockedState
	if store.Load(storage.KeyAchievements, &st) {
		for _, id := range st.Unlocked {
			m.registry.markUnlocked(id)
		}
	}
	return m
}

// SetOnUnlock registers a callback invoked once per genuine unlock,
// after the new state is persisted. Used for the unlock chime.
func (m *Manager) SetOnUnlock(fn func(Achievement)) {
	m.mu.Lock()
	m.onUnlock = fn
	m.mu.Unlock()
}

// SetOnChange registers a callback invoked whenever unlock state
// changes, including Reset. Used to refresh the vault display.
func (m *Manager) SetOnChange(fn func()) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// Unlock transitions an achievement from locked to unlocked. Unknown
// IDs and repeat unlocks are no-ops. A genuine transition persists the
// unlock set, notifies the change listener, queues a toast, and fires
// the unlock callback, in that order.
func (m *Manager) Unlock(id string) {
	ach, changed := m.registry.tryUnlock(id)
	if !changed {
		return
	}

	m.persist()

	m.mu.Lock()
	onUnlock := m.onUnlock
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	m.queue.Enqueue(Toast{Icon: ach.Icon, Title: ToastTitle, Text: ach.Title})
	if onUnlock != nil {
		onUnlock(ach)
	}
}

// Visit records a section visit and fires whatever unlocks it implies.
func (m *Manager) Visit(section string) {
	m.tracker.Visit(section)
}

// HasVisited reports whether a section was visited this session.
func (m *Manager) HasVisited(section string) bool {
	return m.tracker.HasVisited(section)
}

// Reset locks everything again, forgets all visits, and removes the
// persisted unlock set. Pending toasts are dropped; one already on
// screen finishes its cycle.
func (m *Manager) Reset() {
	m.registry.resetAll()
	m.tracker.Reset()
	m.queue.Clear()
	m.store.Delete(storage.KeyAchievements)

	m.mu.Lock()
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// Definitions returns the catalog snapshot in display order.
func (m *Manager) Definitions() []Achievement {
	return m.registry.Definitions()
}

// Find looks up one achievement by ID.
func (m *Manager) Find(id string) (Achievement, bool) {
	return m.registry.Find(id)
}

// Progress reports the current unlock tally.
func (m *Manager) Progress() Progress {
	return m.registry.Progress()
}

// Toasts exposes the queue so the notification view can register its
// presentation callbacks.
func (m *Manager) Toasts() *Queue {
	return m.queue
}

// persist writes the current unlock set through the store.
func (m *Manager) persist() {
	m.store.Save(storage.KeyAchievements, unlockedState{Unlocked: m.registry.unlockedIDs()})
}
