package achievements

import (
	"math"
	"sync"
)

// Progress summarizes how much of the catalog has been unlocked.
type Progress struct {
	Unlocked   int
	Total      int
	Percentage int
}

// Registry owns the achievement catalog. All mutation goes through
// tryUnlock and resetAll; readers get value copies, never live pointers.
type Registry struct {
	mu    sync.Mutex
	defs  []*Achievement
	index map[string]*Achievement
}

// NewRegistry builds a registry over the default catalog, all locked.
func NewRegistry() *Registry {
	defs := defaultCatalog()
	index := make(map[string]*Achievement, len(defs))
	for _, a := range defs {
		index[a.ID] = a
	}
	return &Registry{defs: defs, index: index}
}

// Definitions returns a snapshot of the catalog in display order.
func (r *Registry) Definitions() []Achievement {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Achievement, len(r.defs))
	for i, a := range r.defs {
		out[i] = *a
	}
	return out
}

// Find returns the achievement with the given ID. The second return is
// false for IDs not in the catalog.
func (r *Registry) Find(id string) (Achievement, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.index[id]
	if !ok {
		return Achievement{}, false
	}
	return *a, true
}

// Progress reports unlocked/total counts and a rounded percentage.
func (r *Registry) Progress() Progress {
	r.mu.Lock()
	defer r.mu.Unlock()

	unlocked := 0
	for _, a := range r.defs {
		if a.Unlocked {
			unlocked++
		}
	}
	total := len(r.defs)
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(unlocked) / float64(total) * 100))
	}
	return Progress{Unlocked: unlocked, Total: total, Percentage: pct}
}

// tryUnlock atomically flips an achievement to unlocked. It returns the
// unlocked copy and true only when a genuine locked-to-unlocked
// transition happened; unknown and already-unlocked IDs return false.
func (r *Registry) tryUnlock(id string) (Achievement, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.index[id]
	if !ok || a.Unlocked {
		return Achievement{}, false
	}
	a.Unlocked = true
	return *a, true
}

// markUnlocked flips an achievement to unlocked without reporting a
// transition. Used when restoring persisted state; unknown IDs are
// ignored.
func (r *Registry) markUnlocked(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.index[id]; ok {
		a.Unlocked = true
	}
}

// unlockedIDs returns the IDs of all unlocked achievements in catalog
// order.
func (r *Registry) unlockedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for _, a := range r.defs {
		if a.Unlocked {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// resetAll locks every achievement again.
func (r *Registry) resetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.defs {
		a.Unlocked = false
	}
}
