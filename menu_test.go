package folio

import "testing"

func TestNewQuickMenu(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	if m.IsVisible() {
		t.Error("should not be visible initially")
	}
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex should be 0, got %d", m.selectedIndex)
	}
}

func TestQuickMenuShow(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	m.Show()
	if !m.IsVisible() {
		t.Error("should be visible after Show()")
	}
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex should be 0 after Show(), got %d", m.selectedIndex)
	}
}

func TestQuickMenuHide(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	m.Show()
	m.Hide()
	if m.IsVisible() {
		t.Error("should not be visible after Hide()")
	}
}

func TestQuickMenuShowResetsState(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	m.selectedIndex = 3
	m.confirmingReset = true
	m.Show()
	if m.selectedIndex != 0 {
		t.Errorf("Show() should reset selectedIndex to 0, got %d", m.selectedIndex)
	}
	if m.confirmingReset {
		t.Error("Show() should leave the confirm state")
	}
}

func TestHandleSelectResume(t *testing.T) {
	resumed := false
	m := NewQuickMenu(func() { resumed = true }, nil, nil, nil, nil)

	m.Show()
	m.selectedIndex = int(QuickMenuResume)
	m.handleSelect()

	if !resumed {
		t.Error("onResume should have been called")
	}
	if m.IsVisible() {
		t.Error("menu should be hidden after Resume")
	}
}

func TestHandleSelectPreferences(t *testing.T) {
	opened := false
	m := NewQuickMenu(nil, func() { opened = true }, nil, nil, nil)

	m.Show()
	m.selectedIndex = int(QuickMenuPreferences)
	m.handleSelect()

	if !opened {
		t.Error("onPreferences should have been called")
	}
	if m.IsVisible() {
		t.Error("menu should be hidden after Preferences")
	}
}

func TestHandleSelectVault(t *testing.T) {
	jumped := false
	m := NewQuickMenu(nil, nil, func() { jumped = true }, nil, nil)

	m.Show()
	m.selectedIndex = int(QuickMenuVault)
	m.handleSelect()

	if !jumped {
		t.Error("onVault should have been called")
	}
	if m.IsVisible() {
		t.Error("menu should be hidden after Vault")
	}
}

func TestHandleSelectReset(t *testing.T) {
	resetCalled := false
	m := NewQuickMenu(nil, nil, nil, func() { resetCalled = true }, nil)

	m.Show()
	m.selectedIndex = int(QuickMenuReset)
	m.handleSelect()

	if resetCalled {
		t.Error("onReset should not fire before confirmation")
	}
	if !m.confirmingReset {
		t.Error("selecting Reset should enter the confirm state")
	}
	if !m.IsVisible() {
		t.Error("menu should stay open while confirming")
	}
	if m.selectedIndex != 1 {
		t.Errorf("confirm state should default to Cancel, got index %d", m.selectedIndex)
	}
}

func TestHandleSelectResetConfirmed(t *testing.T) {
	resetCalled := false
	m := NewQuickMenu(nil, nil, nil, func() { resetCalled = true }, nil)

	m.Show()
	m.selectedIndex = int(QuickMenuReset)
	m.handleSelect()

	m.selectedIndex = 0
	m.handleSelect()

	if !resetCalled {
		t.Error("onReset should fire after confirmation")
	}
	if m.IsVisible() {
		t.Error("menu should be hidden after a confirmed reset")
	}
}

func TestHandleSelectResetCancelled(t *testing.T) {
	resetCalled := false
	m := NewQuickMenu(nil, nil, nil, func() { resetCalled = true }, nil)

	m.Show()
	m.selectedIndex = int(QuickMenuReset)
	m.handleSelect()

	m.selectedIndex = 1
	m.handleSelect()

	if resetCalled {
		t.Error("onReset should not fire after cancel")
	}
	if m.confirmingReset {
		t.Error("cancel should leave the confirm state")
	}
	if !m.IsVisible() {
		t.Error("menu should stay open after cancel")
	}
	if m.selectedIndex != int(QuickMenuReset) {
		t.Errorf("cancel should land back on Reset, got index %d", m.selectedIndex)
	}
}

func TestCancelResetConfirm(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	m.Show()
	m.confirmingReset = true
	m.cancelResetConfirm()

	if m.confirmingReset {
		t.Error("cancelResetConfirm should leave the confirm state")
	}
	if m.selectedIndex != int(QuickMenuReset) {
		t.Errorf("cancelResetConfirm should select Reset, got index %d", m.selectedIndex)
	}
}

func TestHandleSelectQuit(t *testing.T) {
	quitCalled := false
	m := NewQuickMenu(nil, nil, nil, nil, func() { quitCalled = true })

	m.Show()
	m.selectedIndex = int(QuickMenuQuit)
	m.handleSelect()

	if !quitCalled {
		t.Error("onQuit should have been called")
	}
	if m.IsVisible() {
		t.Error("menu should be hidden after Quit")
	}
}

func TestHandleSelectNilCallbacks(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	// None of these should panic
	for opt := QuickMenuOption(0); opt < QuickMenuOptionCount; opt++ {
		m.Show()
		m.selectedIndex = int(opt)
		m.handleSelect()
	}

	// Confirm path with a nil reset callback
	m.Show()
	m.selectedIndex = int(QuickMenuReset)
	m.handleSelect()
	m.selectedIndex = 0
	m.handleSelect()
}

func TestQuickMenuOptionCounts(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	if m.optionCount() != int(QuickMenuOptionCount) {
		t.Errorf("main list should have %d options, got %d", QuickMenuOptionCount, m.optionCount())
	}
	if len(m.optionLabels()) != int(QuickMenuOptionCount) {
		t.Errorf("main list should have %d labels, got %d", QuickMenuOptionCount, len(m.optionLabels()))
	}

	m.confirmingReset = true
	if m.optionCount() != 2 {
		t.Errorf("confirm state should have 2 options, got %d", m.optionCount())
	}
	if len(m.optionLabels()) != 2 {
		t.Errorf("confirm state should have 2 labels, got %d", len(m.optionLabels()))
	}
}

func TestQuickMenuContainsPointHidden(t *testing.T) {
	m := NewQuickMenu(nil, nil, nil, nil, nil)

	if m.ContainsPoint(10, 10) {
		t.Error("hidden menu should contain no points")
	}
}
