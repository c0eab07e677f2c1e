package folio

import (
	"testing"
	"time"

	"github.com/user-none/folio/achievements"
)

func TestNoticeVisibility(t *testing.T) {
	n := NewNotification()
	if n.IsVisible() {
		t.Error("new notification should have no visible notice")
	}

	n.ShowDefault("Saved")
	if !n.IsVisible() {
		t.Error("notice should be visible right after Show")
	}

	// Backdate past the duration
	n.mu.Lock()
	n.startTime = time.Now().Add(-4 * time.Second)
	n.mu.Unlock()
	if n.IsVisible() {
		t.Error("notice should expire after its duration")
	}
}

func TestShortNoticeDuration(t *testing.T) {
	n := NewNotification()
	n.ShowShort("Copied")

	n.mu.Lock()
	d := n.duration
	n.mu.Unlock()
	if d != time.Second {
		t.Errorf("short notice duration = %v, want 1s", d)
	}
}

func TestClearRemovesNotice(t *testing.T) {
	n := NewNotification()
	n.ShowDefault("Saved")
	n.Clear()
	if n.IsVisible() {
		t.Error("notice should be gone after Clear")
	}
}

func TestToastLifecycle(t *testing.T) {
	n := NewNotification()
	if n.ToastVisible() {
		t.Error("new notification should have no toast")
	}

	n.PresentToast(achievements.Toast{Icon: "I", Title: "Achievement Unlocked!", Text: "Initiate"})
	if !n.ToastVisible() {
		t.Error("toast should be visible after PresentToast")
	}

	n.DismissToast()
	if !n.ToastVisible() {
		t.Error("toast should stay visible through the exit fade")
	}

	// Backdate the dismissal past the exit fade
	n.mu.Lock()
	n.dismissedAt = time.Now().Add(-2 * achievements.ToastExitFor)
	n.mu.Unlock()
	if n.ToastVisible() {
		t.Error("toast should be gone once the exit fade completes")
	}
}

func TestClearLeavesToast(t *testing.T) {
	n := NewNotification()
	n.ShowDefault("Saved")
	n.PresentToast(achievements.Toast{Icon: "E", Title: "Achievement Unlocked!", Text: "Explorer"})

	n.Clear()
	if n.IsVisible() {
		t.Error("Clear should remove the notice")
	}
	if !n.ToastVisible() {
		t.Error("Clear should not touch a presented toast")
	}
}

func TestDismissWithoutToast(t *testing.T) {
	n := NewNotification()
	n.DismissToast()
	if n.ToastVisible() {
		t.Error("dismissing with no toast should not create one")
	}
}

func TestToastAlpha(t *testing.T) {
	n := NewNotification()

	n.mu.Lock()
	alpha := n.toastAlphaLocked()
	n.mu.Unlock()
	if alpha != 0 {
		t.Errorf("alpha with no toast = %v, want 0", alpha)
	}

	n.PresentToast(achievements.Toast{Icon: "M", Title: "Achievement Unlocked!", Text: "Member"})

	// Fully opaque once the entry fade has passed
	n.mu.Lock()
	n.presentedAt = time.Now().Add(-time.Second)
	alpha = n.toastAlphaLocked()
	n.mu.Unlock()
	if alpha != 1 {
		t.Errorf("alpha after fade-in = %v, want 1", alpha)
	}

	// Partially transparent midway through the exit fade
	n.mu.Lock()
	n.dismissedAt = time.Now().Add(-achievements.ToastExitFor / 2)
	alpha = n.toastAlphaLocked()
	n.mu.Unlock()
	if alpha <= 0 || alpha >= 1 {
		t.Errorf("alpha mid exit fade = %v, want between 0 and 1", alpha)
	}

	// Gone past the end of the exit fade
	n.mu.Lock()
	n.dismissedAt = time.Now().Add(-2 * achievements.ToastExitFor)
	alpha = n.toastAlphaLocked()
	n.mu.Unlock()
	if alpha != 0 {
		t.Errorf("alpha after exit fade = %v, want 0", alpha)
	}
}
