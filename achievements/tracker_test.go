package achievements

import "testing"

// collectUnlocks returns a tracker whose unlock calls append to the
// returned slice.
func collectUnlocks() (*Tracker, *[]string) {
	var fired []string
	t := NewTracker(DefaultBindings, func(id string) {
		fired = append(fired, id)
	})
	return t, &fired
}

func countOf(ids []string, id string) int {
	n := 0
	for _, x := range ids {
		if x == id {
			n++
		}
	}
	return n
}

func TestCompletionSet(t *testing.T) {
	got := CompletionSet(DefaultBindings)
	expected := []string{"hero", "prologue", "about", "nexus", "vault", "contact"}

	if len(got) != len(expected) {
		t.Fatalf("expected %d sections, got %d", len(expected), len(got))
	}
	for i, s := range expected {
		if got[i] != s {
			t.Errorf("position %d: expected %q, got %q", i, s, got[i])
		}
	}
}

func TestTrackerSectionBindings(t *testing.T) {
	tests := []struct {
		section string
		want    string
	}{
		{"hero", AchievementInitiate},
		{"nexus", AchievementMember},
		{"contact", AchievementConnector},
	}

	for _, tc := range tests {
		t.Run(tc.section, func(t *testing.T) {
			tr, fired := collectUnlocks()
			tr.Visit(tc.section)

			if countOf(*fired, tc.want) != 1 {
				t.Errorf("visiting %q should fire %q once, fired %v", tc.section, tc.want, *fired)
			}
		})
	}
}

func TestTrackerUnboundSections(t *testing.T) {
	for _, section := range []string{"prologue", "about", "vault"} {
		tr, fired := collectUnlocks()
		tr.Visit(section)

		if len(*fired) != 0 {
			t.Errorf("visiting %q should fire nothing, fired %v", section, *fired)
		}
		if !tr.HasVisited(section) {
			t.Errorf("%q should still count as visited", section)
		}
	}
}

func TestTrackerExplorerAnyOrderWithDuplicates(t *testing.T) {
	tr, fired := collectUnlocks()

	visits := []string{"vault", "hero", "vault", "about", "contact", "prologue", "hero", "nexus", "about"}
	for _, s := range visits {
		tr.Visit(s)
	}

	if n := countOf(*fired, AchievementExplorer); n != 1 {
		t.Errorf("explorer should fire exactly once, fired %d times", n)
	}
}

func TestTrackerExplorerNeedsEverySection(t *testing.T) {
	// Leave each section out in turn; explorer must never fire
	all := CompletionSet(DefaultBindings)
	for _, skip := range all {
		tr, fired := collectUnlocks()
		for _, s := range all {
			if s == skip {
				continue
			}
			tr.Visit(s)
		}

		if countOf(*fired, AchievementExplorer) != 0 {
			t.Errorf("explorer fired with %q unvisited", skip)
		}
	}
}

func TestTrackerExplorerFiresAgainOnCompletionRepeat(t *testing.T) {
	// After the set is complete, further visits still report explorer;
	// the manager's idempotent unlock absorbs the repeats
	tr, fired := collectUnlocks()
	for _, s := range CompletionSet(DefaultBindings) {
		tr.Visit(s)
	}
	before := countOf(*fired, AchievementExplorer)
	tr.Visit("hero")

	if after := countOf(*fired, AchievementExplorer); after <= before {
		t.Errorf("expected explorer report on post-completion visit, before=%d after=%d", before, after)
	}
}

func TestTrackerUnknownSection(t *testing.T) {
	tr, fired := collectUnlocks()
	tr.Visit("side-quest")

	if len(*fired) != 0 {
		t.Errorf("unknown section should fire nothing, fired %v", *fired)
	}
	if !tr.HasVisited("side-quest") {
		t.Error("unknown section should still be recorded")
	}

	// An unknown extra never satisfies completion
	if countOf(*fired, AchievementExplorer) != 0 {
		t.Error("explorer must not fire from unknown sections")
	}
}

func TestTrackerVisitedCount(t *testing.T) {
	tr, _ := collectUnlocks()

	tr.Visit("hero")
	tr.Visit("hero")
	tr.Visit("about")

	if got := tr.VisitedCount(); got != 2 {
		t.Errorf("expected 2 distinct sections, got %d", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr, fired := collectUnlocks()
	for _, s := range CompletionSet(DefaultBindings) {
		tr.Visit(s)
	}
	tr.Reset()

	if tr.VisitedCount() != 0 {
		t.Error("reset should clear the visited set")
	}
	if tr.HasVisited("hero") {
		t.Error("hero should not be visited after reset")
	}

	// Completing again after reset reports explorer again
	*fired = nil
	for _, s := range CompletionSet(DefaultBindings) {
		tr.Visit(s)
	}
	if countOf(*fired, AchievementExplorer) != 1 {
		t.Error("explorer should fire once more after reset and recompletion")
	}
}

func TestTrackerNilUnlock(t *testing.T) {
	tr := NewTracker(DefaultBindings, nil)

	// Must not panic without an unlock callback
	tr.Visit("hero")
	tr.Visit("nexus")

	if !tr.HasVisited("hero") {
		t.Error("visits should still be recorded")
	}
}
