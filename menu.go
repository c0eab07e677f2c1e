package folio

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/user-none/folio/style"
)

// QuickMenuOption represents a menu option
type QuickMenuOption int

const (
	QuickMenuResume QuickMenuOption = iota
	QuickMenuPreferences
	QuickMenuVault
	QuickMenuReset
	QuickMenuQuit
	QuickMenuOptionCount
)

// quickMenuLabels are the main menu rows in display order.
var quickMenuLabels = [QuickMenuOptionCount]string{
	"Resume",
	"Preferences",
	"Vault",
	"Reset Progress",
	"Quit",
}

// resetConfirmLabels are the rows shown while confirming a reset.
var resetConfirmLabels = []string{"Erase Everything", "Cancel"}

const resetConfirmQuestion = "Reset all progress?"

// QuickMenu is the Esc overlay: a centered panel over a dimmed page.
// Reset Progress flips into a two-row confirm state before anything is
// erased; Esc there backs out instead of resuming.
type QuickMenu struct {
	visible         bool
	confirmingReset bool
	selectedIndex   int

	onResume      func()
	onPreferences func()
	onVault       func()
	onReset       func()
	onQuit        func()

	// Cached layout info for mouse hit testing
	buttonRects [QuickMenuOptionCount]image.Rectangle
	rectCount   int

	// Cached images to avoid per-frame allocations
	cache struct {
		screenW, screenH int
		themeName        string
		optionCount      int
		confirming       bool
		panelW, panelH   int
		buttonW, buttonH int
		dimOverlay       *ebiten.Image
		panelBg          *ebiten.Image
		buttonBg         *ebiten.Image
		buttonBgSelected *ebiten.Image
	}

	// Pre-allocated draw options (reset each use)
	drawOpts ebiten.DrawImageOptions
	textOpts text.DrawOptions
}

// NewQuickMenu creates the menu with its action callbacks.
func NewQuickMenu(onResume, onPreferences, onVault, onReset, onQuit func()) *QuickMenu {
	return &QuickMenu{
		onResume:      onResume,
		onPreferences: onPreferences,
		onVault:       onVault,
		onReset:       onReset,
		onQuit:        onQuit,
	}
}

// Show displays the menu with the selection back on Resume.
func (m *QuickMenu) Show() {
	m.visible = true
	m.confirmingReset = false
	m.selectedIndex = 0
}

// Hide hides the menu
func (m *QuickMenu) Hide() {
	m.visible = false
	m.confirmingReset = false
}

// IsVisible returns whether the menu is visible
func (m *QuickMenu) IsVisible() bool {
	return m.visible
}

// optionCount returns the number of rows in the current state.
func (m *QuickMenu) optionCount() int {
	if m.confirmingReset {
		return len(resetConfirmLabels)
	}
	return int(QuickMenuOptionCount)
}

// optionLabels returns the row labels for the current state.
func (m *QuickMenu) optionLabels() []string {
	if m.confirmingReset {
		return resetConfirmLabels
	}
	return quickMenuLabels[:]
}

// ContainsPoint reports whether the point is over one of the menu rows.
// Used by the cursor to widen its ring over interactive targets.
func (m *QuickMenu) ContainsPoint(mx, my int) bool {
	if !m.visible {
		return false
	}
	pt := image.Pt(mx, my)
	for i := 0; i < m.rectCount; i++ {
		if pt.In(m.buttonRects[i]) {
			return true
		}
	}
	return false
}

// Update handles input for the menu
func (m *QuickMenu) Update() {
	if !m.visible {
		return
	}

	// ESC resumes from the main list but only backs out of a confirm
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if m.confirmingReset {
			m.cancelResetConfirm()
			return
		}
		m.selectedIndex = int(QuickMenuResume)
		m.handleSelect()
		return
	}

	count := m.optionCount()

	// Keyboard navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.selectedIndex--
		if m.selectedIndex < 0 {
			m.selectedIndex = count - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.selectedIndex++
		if m.selectedIndex >= count {
			m.selectedIndex = 0
		}
	}

	// Keyboard selection
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.handleSelect()
		return
	}

	// Mouse click
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		for i := 0; i < m.rectCount; i++ {
			if image.Pt(mx, my).In(m.buttonRects[i]) {
				m.selectedIndex = i
				m.handleSelect()
				return
			}
		}
	}

	// Mouse hover for selection highlight
	mx, my := ebiten.CursorPosition()
	for i := 0; i < m.rectCount; i++ {
		if image.Pt(mx, my).In(m.buttonRects[i]) {
			m.selectedIndex = i
			break
		}
	}
}

// handleSelect processes the current selection
func (m *QuickMenu) handleSelect() {
	if m.confirmingReset {
		switch m.selectedIndex {
		case 0:
			m.Hide()
			if m.onReset != nil {
				m.onReset()
			}
		case 1:
			m.cancelResetConfirm()
		}
		return
	}

	switch QuickMenuOption(m.selectedIndex) {
	case QuickMenuResume:
		m.Hide()
		if m.onResume != nil {
			m.onResume()
		}
	case QuickMenuPreferences:
		m.Hide()
		if m.onPreferences != nil {
			m.onPreferences()
		}
	case QuickMenuVault:
		m.Hide()
		if m.onVault != nil {
			m.onVault()
		}
	case QuickMenuReset:
		// Destructive, so ask first. Cancel is the default answer.
		m.confirmingReset = true
		m.selectedIndex = 1
	case QuickMenuQuit:
		m.Hide()
		if m.onQuit != nil {
			m.onQuit()
		}
	}
}

// cancelResetConfirm returns to the main list with Reset selected.
func (m *QuickMenu) cancelResetConfirm() {
	m.confirmingReset = false
	m.selectedIndex = int(QuickMenuReset)
}

// rebuildCache recreates cached images when screen dimensions change
func (m *QuickMenu) rebuildCache(screenW, screenH, optionCount int) {
	if m.cache.dimOverlay != nil {
		m.cache.dimOverlay.Deallocate()
	}
	if m.cache.panelBg != nil {
		m.cache.panelBg.Deallocate()
	}
	if m.cache.buttonBg != nil {
		m.cache.buttonBg.Deallocate()
	}
	if m.cache.buttonBgSelected != nil {
		m.cache.buttonBgSelected.Deallocate()
	}

	m.cache.screenW = screenW
	m.cache.screenH = screenH
	m.cache.themeName = style.CurrentThemeName
	m.cache.optionCount = optionCount
	m.cache.confirming = m.confirmingReset

	// Create dim overlay
	m.cache.dimOverlay = ebiten.NewImage(screenW, screenH)
	dimColor := style.DimOverlay
	dimColor.A = 128
	m.cache.dimOverlay.Fill(dimColor)

	// Calculate panel dimensions
	panelWidth := screenW * 40 / 100
	if panelWidth < style.QuickMenuMinWidth {
		panelWidth = style.QuickMenuMinWidth
	}
	if panelWidth > style.QuickMenuMaxWidth {
		panelWidth = style.QuickMenuMaxWidth
	}

	// Calculate button dimensions
	buttonWidth := panelWidth * 80 / 100
	buttonHeight := screenH * 8 / 100
	if buttonHeight < style.QuickMenuMinBtnHeight {
		buttonHeight = style.QuickMenuMinBtnHeight
	}
	if buttonHeight > style.QuickMenuMaxBtnHeight {
		buttonHeight = style.QuickMenuMaxBtnHeight
	}

	buttonSpacing := buttonHeight / 4
	padding := buttonHeight / 2

	// Panel height based on content; the confirm state reserves one
	// extra row for its question line.
	panelHeight := padding*2 + optionCount*buttonHeight + (optionCount-1)*buttonSpacing
	if m.confirmingReset {
		panelHeight += buttonHeight
	}

	m.cache.panelW = panelWidth
	m.cache.panelH = panelHeight
	m.cache.buttonW = buttonWidth
	m.cache.buttonH = buttonHeight

	// Create panel background
	m.cache.panelBg = ebiten.NewImage(panelWidth, panelHeight)
	m.cache.panelBg.Fill(style.Surface)

	// Draw panel border
	for x := 0; x < panelWidth; x++ {
		m.cache.panelBg.Set(x, 0, style.Border)
		m.cache.panelBg.Set(x, panelHeight-1, style.Border)
	}
	for y := 0; y < panelHeight; y++ {
		m.cache.panelBg.Set(0, y, style.Border)
		m.cache.panelBg.Set(panelWidth-1, y, style.Border)
	}

	// Create selected button background
	m.cache.buttonBgSelected = ebiten.NewImage(buttonWidth, buttonHeight)
	m.cache.buttonBgSelected.Fill(style.Primary)

	// Create shared unselected button background
	m.cache.buttonBg = ebiten.NewImage(buttonWidth, buttonHeight)
	m.cache.buttonBg.Fill(style.Surface)
	for x := 0; x < buttonWidth; x++ {
		m.cache.buttonBg.Set(x, 0, style.Border)
		m.cache.buttonBg.Set(x, buttonHeight-1, style.Border)
	}
	for y := 0; y < buttonHeight; y++ {
		m.cache.buttonBg.Set(0, y, style.Border)
		m.cache.buttonBg.Set(buttonWidth-1, y, style.Border)
	}
}

// Draw renders the menu
func (m *QuickMenu) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}

	bounds := screen.Bounds()
	screenW := bounds.Dx()
	screenH := bounds.Dy()
	optionCount := m.optionCount()

	// Rebuild cache if screen dimensions, theme, or state changed
	if m.cache.screenW != screenW || m.cache.screenH != screenH ||
		m.cache.themeName != style.CurrentThemeName ||
		m.cache.optionCount != optionCount || m.cache.confirming != m.confirmingReset {
		m.rebuildCache(screenW, screenH, optionCount)
	}

	// Draw dim overlay (reuse cached image)
	screen.DrawImage(m.cache.dimOverlay, nil)

	// Calculate positions using cached dimensions
	panelX := (screenW - m.cache.panelW) / 2
	panelY := (screenH - m.cache.panelH) / 2

	// Draw panel background (reuse cached image and draw options)
	m.drawOpts.GeoM.Reset()
	m.drawOpts.GeoM.Translate(float64(panelX), float64(panelY))
	screen.DrawImage(m.cache.panelBg, &m.drawOpts)

	buttonSpacing := m.cache.buttonH / 4
	padding := m.cache.buttonH / 2
	startY := panelY + padding

	// The confirm state leads with its question line
	if m.confirmingReset {
		m.textOpts = text.DrawOptions{}
		m.textOpts.GeoM.Translate(float64(panelX+m.cache.panelW/2), float64(startY+m.cache.buttonH/2))
		m.textOpts.PrimaryAlign = text.AlignCenter
		m.textOpts.SecondaryAlign = text.AlignCenter
		m.textOpts.ColorScale.ScaleWithColor(style.Text)
		text.Draw(screen, resetConfirmQuestion, *style.FontFace(), &m.textOpts)
		startY += m.cache.buttonH
	}

	labels := m.optionLabels()
	m.rectCount = len(labels)

	for i, optionText := range labels {
		buttonX := panelX + (m.cache.panelW-m.cache.buttonW)/2
		buttonY := startY + i*(m.cache.buttonH+buttonSpacing)

		// Cache button rect for mouse hit testing
		m.buttonRects[i] = image.Rect(buttonX, buttonY, buttonX+m.cache.buttonW, buttonY+m.cache.buttonH)

		// Select appropriate cached button image
		var btnImg *ebiten.Image
		if i == m.selectedIndex {
			btnImg = m.cache.buttonBgSelected
		} else {
			btnImg = m.cache.buttonBg
		}

		m.drawOpts.GeoM.Reset()
		m.drawOpts.GeoM.Translate(float64(buttonX), float64(buttonY))
		screen.DrawImage(btnImg, &m.drawOpts)

		// Draw text centered (reuse text options)
		m.textOpts = text.DrawOptions{}
		m.textOpts.GeoM.Translate(float64(buttonX+m.cache.buttonW/2), float64(buttonY+m.cache.buttonH/2))
		m.textOpts.PrimaryAlign = text.AlignCenter
		m.textOpts.SecondaryAlign = text.AlignCenter
		m.textOpts.ColorScale.ScaleWithColor(style.Text)
		text.Draw(screen, optionText, *style.FontFace(), &m.textOpts)
	}
}
