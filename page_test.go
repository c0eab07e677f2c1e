package folio

import (
	"math"
	"testing"
	"time"

	"github.com/user-none/folio/achievements"
	"github.com/user-none/folio/sections"
	"github.com/user-none/folio/storage"
	"github.com/user-none/folio/style"
)

// stubScheduler never fires, so toast timing stays out of these tests.
type stubScheduler struct{}

func (stubScheduler) AfterFunc(time.Duration, func()) {}

func newTestPage(t *testing.T) (*Page, *achievements.Manager) {
	t.Helper()
	list, err := sections.Load()
	if err != nil {
		t.Fatalf("sections.Load() failed: %v", err)
	}
	manager := achievements.NewManager(storage.NewPrefs(""), stubScheduler{})
	return NewPage(list, manager, nil, nil), manager
}

// settle pins the eased scroll directly onto a band boundary so tests
// don't have to run the easing to convergence.
func settle(p *Page, index int) {
	p.scrollTarget = float64(index * p.viewportH)
	p.scroll = p.scrollTarget
}

func TestEase(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		factor          float64
		want            float64
	}{
		{"half way", 0, 10, 0.5, 5},
		{"full factor snaps", 3, 7, 1.0, 7},
		{"zero factor holds", 3, 7, 0, 3},
		{"moves downward too", 10, 0, 0.25, 7.5},
		{"already there", 4, 4, 0.5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ease(tt.current, tt.target, tt.factor)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ease(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.factor, got, tt.want)
			}
		})
	}
}

func TestEaseConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 200; i++ {
		v = ease(v, 100, style.PageScrollEase)
	}
	if math.Abs(v-100) > 1 {
		t.Errorf("easing should converge near the target, got %v", v)
	}
}

func TestVisibleRatio(t *testing.T) {
	tests := []struct {
		name             string
		top, bandH, view float64
		want             float64
	}{
		{"fully visible", 0, 800, 800, 1},
		{"half entered from below", 400, 800, 800, 0.5},
		{"mostly scrolled past above", -560, 800, 800, 0.3},
		{"just off the top", -800, 800, 800, 0},
		{"just off the bottom", 800, 800, 800, 0},
		{"short viewport window", 0, 800, 400, 0.5},
		{"zero band height", 0, 0, 800, 0},
		{"zero viewport", 0, 800, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visibleRatio(tt.top, tt.bandH, tt.view)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("visibleRatio(%v, %v, %v) = %v, want %v", tt.top, tt.bandH, tt.view, got, tt.want)
			}
		})
	}
}

func TestFirstUpdateVisitsHero(t *testing.T) {
	p, manager := newTestPage(t)

	p.Update(1280, 800)

	if !manager.HasVisited("hero") {
		t.Error("hero should be visited on launch")
	}
	if manager.HasVisited("prologue") {
		t.Error("prologue should not be visited yet")
	}

	ach, ok := manager.Find(achievements.AchievementInitiate)
	if !ok || !ach.Unlocked {
		t.Error("Initiate should unlock with the hero visit")
	}
}

func TestScrollingVisitsSections(t *testing.T) {
	p, manager := newTestPage(t)
	p.Update(1280, 800)

	settle(p, 1)
	p.Update(1280, 800)

	if !manager.HasVisited("prologue") {
		t.Error("prologue should be visited once on screen")
	}
}

func TestVisitFiresOnCrossingOnly(t *testing.T) {
	p, manager := newTestPage(t)
	p.Update(1280, 800)

	settle(p, 1)
	p.Update(1280, 800)
	if !manager.HasVisited("prologue") {
		t.Fatal("prologue should be visited")
	}

	// A reset must not be undone by the section merely staying on
	// screen; only leaving and returning records a fresh visit.
	manager.Reset()
	p.Update(1280, 800)
	if manager.HasVisited("prologue") {
		t.Error("a section still on screen should not instantly re-record after reset")
	}

	settle(p, 3)
	p.Update(1280, 800)
	settle(p, 1)
	p.Update(1280, 800)
	if !manager.HasVisited("prologue") {
		t.Error("returning to the section should record a visit again")
	}
}

func TestVisitingEverythingUnlocksExplorer(t *testing.T) {
	p, manager := newTestPage(t)

	for i := 0; i < p.SectionCount(); i++ {
		p.Update(1280, 800)
		settle(p, i)
		p.Update(1280, 800)
	}

	ach, ok := manager.Find(achievements.AchievementExplorer)
	if !ok || !ach.Unlocked {
		t.Error("visiting every section should unlock Explorer")
	}

	for _, id := range []string{achievements.AchievementInitiate, achievements.AchievementMember, achievements.AchievementConnector} {
		ach, ok := manager.Find(id)
		if !ok || !ach.Unlocked {
			t.Errorf("%s should be unlocked after the full tour", id)
		}
	}
}

func TestScrollClamping(t *testing.T) {
	p, _ := newTestPage(t)
	p.Update(1280, 800)

	p.ScrollBy(-5000)
	if p.scrollTarget != 0 {
		t.Errorf("scroll target should clamp at 0, got %v", p.scrollTarget)
	}

	p.ScrollBy(1e9)
	want := float64((p.SectionCount() - 1) * 800)
	if p.scrollTarget != want {
		t.Errorf("scroll target should clamp at %v, got %v", want, p.scrollTarget)
	}
}

func TestScrollToIndexClamping(t *testing.T) {
	p, _ := newTestPage(t)
	p.Update(1280, 800)

	p.ScrollToIndex(-3)
	if got := p.CurrentIndex(); got != 0 {
		t.Errorf("negative index should clamp to 0, got %d", got)
	}

	p.ScrollToIndex(99)
	if got := p.CurrentIndex(); got != p.SectionCount()-1 {
		t.Errorf("oversized index should clamp to last, got %d", got)
	}
}

func TestScrollToSection(t *testing.T) {
	p, _ := newTestPage(t)
	p.Update(1280, 800)

	if !p.ScrollToSection("vault") {
		t.Fatal("vault should be a known section")
	}
	want := sections.IndexOf(p.sections, "vault")
	if got := p.CurrentIndex(); got != want {
		t.Errorf("CurrentIndex() = %d, want %d", got, want)
	}

	if p.ScrollToSection("no-such-section") {
		t.Error("unknown section should report false")
	}
	if got := p.CurrentIndex(); got != want {
		t.Errorf("failed jump should not move the target, got index %d", got)
	}
}

func TestResizeKeepsPlace(t *testing.T) {
	p, _ := newTestPage(t)
	p.Update(1280, 800)

	settle(p, 2)
	p.Update(1280, 800)

	p.Update(1280, 400)
	if got := p.CurrentIndex(); got != 2 {
		t.Errorf("resize should keep the same section, got index %d", got)
	}
}

func TestRevealFramesAccumulate(t *testing.T) {
	p, _ := newTestPage(t)

	p.Update(1280, 800)
	if p.revealFrames[0] != 1 {
		t.Errorf("visible section should start revealing, got %d frames", p.revealFrames[0])
	}
	if p.revealFrames[3] != 0 {
		t.Errorf("off-screen section should not reveal, got %d frames", p.revealFrames[3])
	}

	for i := 0; i < style.SectionRevealFrames+10; i++ {
		p.Update(1280, 800)
	}
	if p.revealFrames[0] != style.SectionRevealFrames {
		t.Errorf("reveal should cap at %d frames, got %d", style.SectionRevealFrames, p.revealFrames[0])
	}
}

func TestUpdateIgnoresZeroViewport(t *testing.T) {
	p, manager := newTestPage(t)

	p.Update(0, 0)
	if manager.HasVisited("hero") {
		t.Error("no visits should be recorded without a viewport")
	}
}
