package achievements

import "sync"

// DefaultVisibleRatio is the fraction of a section that must be on
// screen before the page reports it visited.
const DefaultVisibleRatio = 0.3

// SectionBinding ties a page section to the achievement unlocked by
// visiting it. Achievement may be empty; such sections still count
// toward Explorer.
type SectionBinding struct {
	Section     string
	Achievement string
}

// DefaultBindings lists every section of the page in order. This table
// is the single source of truth for both the per-section unlocks and
// the Explorer completion set.
var DefaultBindings = []SectionBinding{
	{Section: "hero", Achievement: AchievementInitiate},
	{Section: "prologue"},
	{Section: "about"},
	{Section: "nexus", Achievement: AchievementMember},
	{Section: "vault"},
	{Section: "contact", Achievement: AchievementConnector},
}

// CompletionSet returns the section IDs that must all be visited to
// unlock Explorer, derived from the binding table.
func CompletionSet(bindings []SectionBinding) []string {
	out := make([]string, len(bindings))
	for i, b := range bindings {
		out[i] = b.Section
	}
	return out
}

// Tracker records which sections have been visited this session and
// drives visit-bound unlocks. Visited state is never persisted.
type Tracker struct {
	mu       sync.Mutex
	visited  map[string]bool
	byID     map[string]string // section -> achievement ("" for none)
	complete []string
	unlock   func(id string)
}

// NewTracker builds a tracker over the given bindings. unlock is called
// for each achievement a visit triggers; it runs with no tracker lock
// held, so it may call back into the tracker.
func NewTracker(bindings []SectionBinding, unlock func(id string)) *Tracker {
	byID := make(map[string]string, len(bindings))
	for _, b := range bindings {
		byID[b.Section] = b.Achievement
	}
	return &Tracker{
		visited:  make(map[string]bool),
		byID:     byID,
		complete: CompletionSet(bindings),
		unlock:   unlock,
	}
}

// Visit records a section as visited and fires any achievements that
// implies. Repeat visits are harmless; unknown sections are recorded
// but trigger nothing.
func (t *Tracker) Visit(section string) {
	t.mu.Lock()
	t.visited[section] = true

	var fire []string
	if id, ok := t.byID[section]; ok && id != "" {
		fire = append(fire, id)
	}
	if t.allVisitedLocked() {
		fire = append(fire, AchievementExplorer)
	}
	t.mu.Unlock()

	if t.unlock == nil {
		return
	}
	for _, id := range fire {
		t.unlock(id)
	}
}

// HasVisited reports whether a section was visited this session.
func (t *Tracker) HasVisited(section string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visited[section]
}

// VisitedCount returns how many distinct sections have been visited.
func (t *Tracker) VisitedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.visited)
}

// Reset clears the visited set.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.visited = make(map[string]bool)
	t.mu.Unlock()
}

// allVisitedLocked reports whether every section in the completion set
// has been visited. Caller holds t.mu.
func (t *Tracker) allVisitedLocked() bool {
	for _, s := range t.complete {
		if !t.visited[s] {
			return false
		}
	}
	return true
}
