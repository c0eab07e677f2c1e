package achievements

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/user-none/folio/storage"
)

// fakeStore is an in-memory PrefStore that counts writes and deletes.
// Values go through real JSON so round-trip behavior matches disk.
type fakeStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	saves   map[string]int
	deletes map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:    make(map[string][]byte),
		saves:   make(map[string]int),
		deletes: make(map[string]int),
	}
}

func (s *fakeStore) Load(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *fakeStore) Save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.data[key] = raw
	s.saves[key]++
	s.mu.Unlock()
}

func (s *fakeStore) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.deletes[key]++
	s.mu.Unlock()
}

func (s *fakeStore) saveCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves[key]
}

func (s *fakeStore) stored(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	return raw, ok
}

func newTestManager() (*Manager, *fakeStore, *virtualScheduler) {
	store := newFakeStore()
	sched := &virtualScheduler{}
	return NewManager(store, sched), store, sched
}

func TestManagerUnlockIdempotent(t *testing.T) {
	m, store, _ := newTestManager()

	toasts := 0
	m.Toasts().SetCallbacks(func(Toast) { toasts++ }, nil)

	m.Unlock(AchievementDesigner)
	m.Unlock(AchievementDesigner)

	if n := store.saveCount(storage.KeyAchievements); n != 1 {
		t.Errorf("expected exactly 1 store write, got %d", n)
	}
	if toasts != 1 {
		t.Errorf("expected exactly 1 toast, got %d", toasts)
	}
	if p := m.Progress(); p.Unlocked != 1 {
		t.Errorf("expected 1 unlocked, got %d", p.Unlocked)
	}
}

func TestManagerUnlockUnknown(t *testing.T) {
	m, store, _ := newTestManager()

	toasts := 0
	changes := 0
	m.Toasts().SetCallbacks(func(Toast) { toasts++ }, nil)
	m.SetOnChange(func() { changes++ })

	m.Unlock("does-not-exist")

	if n := store.saveCount(storage.KeyAchievements); n != 0 {
		t.Errorf("unknown ID should write nothing, got %d writes", n)
	}
	if toasts != 0 || changes != 0 {
		t.Errorf("unknown ID should fire nothing, toasts=%d changes=%d", toasts, changes)
	}
	if p := m.Progress(); p.Unlocked != 0 {
		t.Errorf("expected 0 unlocked, got %d", p.Unlocked)
	}
}

func TestManagerUnlockToastContent(t *testing.T) {
	m, _, _ := newTestManager()

	var got Toast
	m.Toasts().SetCallbacks(func(toast Toast) { got = toast }, nil)

	m.Unlock(AchievementMember)

	if got.Title != ToastTitle {
		t.Errorf("expected title %q, got %q", ToastTitle, got.Title)
	}
	if got.Text != "Nexus Member" {
		t.Errorf("toast text should be the achievement title, got %q", got.Text)
	}
	if got.Icon != "M" {
		t.Errorf("expected icon %q, got %q", "M", got.Icon)
	}
}

func TestManagerUnlockCallbacks(t *testing.T) {
	m, _, _ := newTestManager()

	var unlocked []string
	changes := 0
	m.SetOnUnlock(func(a Achievement) { unlocked = append(unlocked, a.ID) })
	m.SetOnChange(func() { changes++ })

	m.Unlock(AchievementAudiophile)
	m.Unlock(AchievementAudiophile)

	if len(unlocked) != 1 || unlocked[0] != AchievementAudiophile {
		t.Errorf("expected one unlock callback for audiophile, got %v", unlocked)
	}
	if changes != 1 {
		t.Errorf("expected one change notification, got %d", changes)
	}
}

func TestManagerReentrantUnlock(t *testing.T) {
	m, _, _ := newTestManager()

	// Unlocking from inside the unlock callback must not deadlock
	m.SetOnUnlock(func(a Achievement) {
		if a.ID == AchievementDesigner {
			m.Unlock(AchievementAudiophile)
		}
	})

	m.Unlock(AchievementDesigner)

	if p := m.Progress(); p.Unlocked != 2 {
		t.Errorf("expected both achievements unlocked, got %d", p.Unlocked)
	}
}

func TestManagerPersistenceRoundTrip(t *testing.T) {
	store := newFakeStore()

	m := NewManager(store, &virtualScheduler{})
	m.Unlock(AchievementDesigner)
	m.Unlock(AchievementConnector)

	// A fresh manager over the same store sees exactly those two
	m2 := NewManager(store, &virtualScheduler{})
	for _, d := range m2.Definitions() {
		want := d.ID == AchievementDesigner || d.ID == AchievementConnector
		if d.Unlocked != want {
			t.Errorf("%q: unlocked=%v, want %v", d.ID, d.Unlocked, want)
		}
	}
	if p := m2.Progress(); p.Unlocked != 2 {
		t.Errorf("expected 2 unlocked after reload, got %d", p.Unlocked)
	}
}

func TestManagerRestoreFiresNothing(t *testing.T) {
	store := newFakeStore()
	store.Save(storage.KeyAchievements, unlockedState{Unlocked: []string{AchievementInitiate}})

	sched := &virtualScheduler{}
	m := NewManager(store, sched)

	toasts := 0
	m.Toasts().SetCallbacks(func(Toast) { toasts++ }, nil)
	sched.Advance(time.Minute)

	if toasts != 0 {
		t.Errorf("restoring persisted state should queue no toasts, got %d", toasts)
	}
	if p := m.Progress(); p.Unlocked != 1 {
		t.Errorf("expected 1 restored unlock, got %d", p.Unlocked)
	}
}

func TestManagerCorruptState(t *testing.T) {
	store := newFakeStore()
	store.mu.Lock()
	store.data[storage.KeyAchievements] = []byte("{not json")
	store.mu.Unlock()

	m := NewManager(store, &virtualScheduler{})

	if p := m.Progress(); p.Unlocked != 0 {
		t.Errorf("corrupt state should load as all locked, got %d unlocked", p.Unlocked)
	}
}

func TestManagerStateWithStrayIDs(t *testing.T) {
	store := newFakeStore()
	store.Save(storage.KeyAchievements, unlockedState{
		Unlocked: []string{AchievementDesigner, AchievementDesigner, "retired-achievement"},
	})

	m := NewManager(store, &virtualScheduler{})

	if p := m.Progress(); p.Unlocked != 1 {
		t.Errorf("expected 1 unlocked after dedup and pruning, got %d", p.Unlocked)
	}

	// The next write drops the stray ID
	m.Unlock(AchievementInitiate)
	raw, _ := store.stored(storage.KeyAchievements)
	var st unlockedState
	if err := json.Unmarshal(raw, &st); err != nil {
		t.Fatalf("stored state unreadable: %v", err)
	}
	for _, id := range st.Unlocked {
		if id == "retired-achievement" {
			t.Error("stray ID should not survive the next persist")
		}
	}
}

func TestManagerVisitUnlocks(t *testing.T) {
	m, _, _ := newTestManager()

	m.Visit("hero")
	m.Visit("nexus")
	m.Visit("contact")

	for _, id := range []string{AchievementInitiate, AchievementMember, AchievementConnector} {
		if a, _ := m.Find(id); !a.Unlocked {
			t.Errorf("%q should be unlocked after its section visit", id)
		}
	}
	if a, _ := m.Find(AchievementExplorer); a.Unlocked {
		t.Error("explorer should stay locked with three sections unvisited")
	}
}

func TestManagerExplorerThroughVisits(t *testing.T) {
	m, store, _ := newTestManager()

	toasts := 0
	m.Toasts().SetCallbacks(func(Toast) { toasts++ }, nil)

	// Full completion: three bound unlocks plus explorer
	for _, s := range []string{"vault", "about", "hero", "prologue", "contact", "nexus", "hero"} {
		m.Visit(s)
	}

	if a, _ := m.Find(AchievementExplorer); !a.Unlocked {
		t.Error("explorer should unlock once every section is visited")
	}
	if toasts != 4 {
		t.Errorf("expected 4 toasts (initiate, member, connector, explorer), got %d", toasts)
	}
	if n := store.saveCount(storage.KeyAchievements); n != 4 {
		t.Errorf("expected 4 store writes, got %d", n)
	}
}

func TestManagerReset(t *testing.T) {
	m, store, _ := newTestManager()

	m.Unlock(AchievementDesigner)
	m.Visit("hero")
	m.Visit("nexus")

	changes := 0
	m.SetOnChange(func() { changes++ })

	m.Reset()

	if p := m.Progress(); p.Unlocked != 0 {
		t.Errorf("expected all locked after reset, got %d", p.Unlocked)
	}
	if m.HasVisited("hero") || m.HasVisited("nexus") {
		t.Error("visited set should be empty after reset")
	}
	if _, ok := store.stored(storage.KeyAchievements); ok {
		t.Error("persisted key should be removed by reset")
	}
	if store.deletes[storage.KeyAchievements] != 1 {
		t.Errorf("expected 1 delete, got %d", store.deletes[storage.KeyAchievements])
	}
	if changes != 1 {
		t.Errorf("reset should notify the change listener once, got %d", changes)
	}
}

func TestManagerResetDropsPendingToasts(t *testing.T) {
	m, _, sched := newTestManager()

	var order []string
	m.Toasts().SetCallbacks(func(toast Toast) { order = append(order, toast.Text) }, nil)

	m.Unlock(AchievementInitiate)
	m.Unlock(AchievementMember)
	m.Unlock(AchievementConnector)

	// Initiate is on screen; the other two are still queued
	m.Reset()
	sched.Advance(time.Minute)

	if len(order) != 1 || order[0] != "Initiate" {
		t.Errorf("only the in-flight toast should ever present, got %v", order)
	}
}

func TestManagerRelockAfterReset(t *testing.T) {
	m, _, _ := newTestManager()

	m.Visit("hero")
	m.Reset()
	m.Visit("hero")

	if a, _ := m.Find(AchievementInitiate); !a.Unlocked {
		t.Error("visit after reset should unlock again")
	}
}
