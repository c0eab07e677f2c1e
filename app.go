package folio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	ebitenuiInput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/user-none/folio/achievements"
	"github.com/user-none/folio/backdrop"
	"github.com/user-none/folio/screens"
	"github.com/user-none/folio/sections"
	"github.com/user-none/folio/storage"
	"github.com/user-none/folio/style"
	"github.com/user-none/folio/types"
)

// App is the main application struct that implements ebiten.Game
type App struct {
	ui *ebitenui.UI

	// Which surface owns input this frame
	overlay Overlay

	// Preferences store and the live window/text settings
	prefs  *storage.Prefs
	window storage.WindowPrefs

	// Unlock engine and page content
	manager *achievements.Manager
	content []sections.Section

	// Page and overlay surfaces
	page        *Page
	vault       *VaultView
	effects     *backdrop.Manager
	menu        *QuickMenu
	prefsScreen *screens.PreferencesScreen
	notices     *Notification
	ambience    *Ambience
	contact     *ContactActions
	cursor      *Cursor

	// Input manager for UI navigation
	inputManager *InputManager

	// Window tracking for persistence and responsive layouts
	windowWidth        int
	windowHeight       int
	lastWindowedWidth  int // Last non-fullscreen width (physical pixels)
	lastWindowedHeight int
	lastBuildWidth     int

	// Flags set from callbacks or goroutines, processed on the main thread
	rebuildPending    bool
	screenshotPending bool

	// HiDPI: current device scale factor tracked across Layout calls
	currentDPIScale float64

	lastGeometrySave time.Time
}

// Run is the public entry point. It initializes storage, builds the
// app, configures the window, and starts the Ebiten game loop.
func Run(opts Options) error {
	if opts.DataDir != "" {
		storage.SetBaseDir(opts.DataDir)
	}
	storage.Init("folio")

	app, err := newApp(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Folio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(storage.MinWindowWidth, storage.MinWindowHeight, -1, -1)
	ebiten.SetWindowSize(app.window.Width, app.window.Height)
	ebiten.SetWindowIcon(BuildWindowIcon())
	if opts.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// The page draws its own cursor
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(app); err != nil {
		return err
	}

	app.SaveAndClose()
	return nil
}

// newApp creates and wires the application for the given launch options.
func newApp(opts Options) (*App, error) {
	app := &App{overlay: OverlayNone}

	// Storage failures degrade to a session without persistence, they
	// never block launch.
	if err := storage.EnsureDirectories(); err != nil {
		log.Printf("[App] failed to create data directories: %v", err)
	}
	app.prefs = storage.OpenPrefs()

	// Window geometry and text scale
	app.window = storage.DefaultWindowPrefs()
	app.prefs.Load(storage.KeyWindow, &app.window)
	app.window = storage.SanitizeWindow(app.window)
	style.ApplyFontSize(app.window.FontSize)

	// Theme: the CLI flag overrides for this session only, so it is
	// applied after the saved choice but never written back.
	var themeName string
	app.prefs.Load(storage.KeyTheme, &themeName)
	if opts.Theme != "" {
		themeName = opts.Theme
	}
	style.ApplyThemeByName(themeName)

	app.notices = NewNotification()
	app.inputManager = NewInputManager()
	app.cursor = NewCursor()

	// Unlock engine
	app.manager = achievements.NewManager(app.prefs, achievements.SystemScheduler{})
	app.vault = NewVaultView(app.manager)
	app.manager.SetOnChange(app.vault.MarkDirty)
	app.manager.SetOnUnlock(func(achievements.Achievement) {
		app.notices.PlaySound(achievements.UnlockChime())
	})
	app.manager.Toasts().SetCallbacks(app.notices.PresentToast, app.notices.DismissToast)

	// Page content
	list, err := sections.Load()
	if err != nil {
		return nil, fmt.Errorf("load page content: %w", err)
	}
	app.content = list

	// Backdrop shader chain for the active theme
	app.effects = backdrop.NewManager()
	app.effects.SetPalette(style.Accent, style.Background)
	app.effects.PreloadEffects(style.CurrentBackdrop())

	app.page = NewPage(list, app.manager, app.vault, app.effects)

	// Contact shortcuts use the hero heading as the card display name
	if idx := sections.IndexOf(list, "contact"); idx >= 0 {
		app.contact = NewContactActions(list[0].Heading, list[idx], app.notices)
	}

	// Ambient audio. Audiophile unlocks the first time sound actually
	// starts, not when the preference merely says it should.
	app.ambience = NewAmbience(app.prefs,
		func() { app.manager.Unlock(achievements.AchievementAudiophile) },
		func(msg string) { app.notices.ShowDefault(msg) },
	)
	if !opts.Mute {
		app.ambience.Resume()
	}

	app.menu = NewQuickMenu(
		func() { app.overlay = OverlayNone },
		func() { app.openPreferences() },
		func() {
			app.overlay = OverlayNone
			app.page.ScrollToSection("vault")
		},
		func() { app.resetProgress() },
		func() { app.Exit() },
	)

	app.prefsScreen = screens.NewPreferencesScreen(app, app.prefs, &app.window, app.ambience, app.manager, app.handleThemeSelect)

	return app, nil
}

// handleThemeSelect applies a theme chosen in the preferences panel and
// persists it. Re-selecting the active theme is a no-op.
func (a *App) handleThemeSelect(name string) {
	if name == style.CurrentThemeName {
		return
	}

	style.ApplyThemeByName(name)
	a.prefs.Save(storage.KeyTheme, style.CurrentThemeName)
	a.effects.SetPalette(style.Accent, style.Background)
	a.effects.PreloadEffects(style.CurrentBackdrop())
	a.manager.Unlock(achievements.AchievementDesigner)
	a.rebuildPending = true
}

// openPreferences switches to the preferences overlay.
func (a *App) openPreferences() {
	a.overlay = OverlayPrefs
	a.prefsScreen.OnEnter()
	a.rebuildPrefsUI()
}

// rebuildPrefsUI rebuilds the preferences widget tree, preserving
// scroll position and focus across the rebuild.
func (a *App) rebuildPrefsUI() {
	a.prefsScreen.SaveScrollPosition()
	if a.ui != nil {
		a.prefsScreen.SaveFocusState(a.ui.GetFocusedWidget())
	}
	a.ui = &ebitenui.UI{Container: a.prefsScreen.Build()}
	a.lastBuildWidth = a.windowWidth
}

// resetProgress erases every unlock and visit.
func (a *App) resetProgress() {
	a.overlay = OverlayNone
	a.manager.Reset()
	a.notices.ShowDefault("All progress erased")
}

// Update implements ebiten.Game
func (a *App) Update() error {
	// Process any pending rebuild request (set from callbacks)
	if a.rebuildPending {
		a.rebuildPending = false
		if a.overlay == OverlayPrefs {
			a.rebuildPrefsUI()
		}
	}

	// Global keys work in every overlay (F12 screenshot, F11 fullscreen)
	screenshotRequested, fullscreenToggle := a.inputManager.Update()
	if screenshotRequested {
		a.screenshotPending = true
	}
	if fullscreenToggle {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch a.overlay {
	case OverlayMenu:
		// Keep ebitenui's global input handler in sync while no widget
		// tree is active. Without this its stale state reads as phantom
		// presses on the first preferences frame.
		ebitenuiInput.Update()
		ebitenuiInput.AfterUpdate()
		a.menu.Update()
		// A click or key inside the menu may have closed it without
		// going through a callback that moves the overlay.
		if !a.menu.IsVisible() && a.overlay == OverlayMenu {
			a.overlay = OverlayNone
		}
	case OverlayPrefs:
		a.updatePreferences()
	default:
		ebitenuiInput.Update()
		ebitenuiInput.AfterUpdate()
		a.updatePage()
	}

	a.maybeSaveGeometry()

	// The drawn cursor tracks the mouse in every overlay
	mx, my := ebiten.CursorPosition()
	hovering := a.menu.IsVisible() && a.menu.ContainsPoint(mx, my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	a.cursor.Update(hovering, pressed)

	return nil
}

// updatePreferences runs one frame of the preferences overlay.
func (a *App) updatePreferences() {
	// P toggles the panel closed again
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.ReturnToPage()
		return
	}

	nav := a.processUIInput()
	a.ui.Update()

	// A widget callback may have left the overlay during ui.Update
	if a.overlay != OverlayPrefs {
		return
	}

	if !a.rebuildPending {
		a.restorePendingFocus(a.prefsScreen)
	}
	if nav.FocusChanged {
		a.ensureFocusedVisible()
	}

	// Rebuild when the width changes so responsive layouts reflow
	if a.windowWidth > 0 && a.windowWidth != a.lastBuildWidth {
		a.rebuildPrefsUI()
	}
}

// updatePage runs one frame of the page itself: shortcuts, scrolling,
// and the visit detection that drives unlocks.
func (a *App) updatePage() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.overlay = OverlayMenu
		a.menu.Show()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.openPreferences()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		a.page.ScrollToSection("vault")
	}
	if a.contact != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			a.contact.CopyEmail()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyX) {
			a.contact.ExportCard()
		}
	}

	// Wheel scrolling, scaled to the viewport
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		a.page.ScrollBy(-wheelY * float64(a.windowHeight) * style.ScrollWheelSensitivity)
	}

	// Section-wise jumps
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.page.ScrollToIndex(a.page.CurrentIndex() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		a.page.ScrollToIndex(a.page.CurrentIndex() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		a.page.ScrollToIndex(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		a.page.ScrollToIndex(a.page.SectionCount() - 1)
	}

	// Held arrows give a smooth crawl
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		a.page.ScrollBy(float64(style.Px(12)))
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		a.page.ScrollBy(-float64(style.Px(12)))
	}

	a.page.Update(a.windowWidth, a.windowHeight)
}

// restorePendingFocus restores focus to a pending button if one exists
func (a *App) restorePendingFocus(screen types.FocusRestorer) {
	btn := screen.GetPendingFocusButton()
	if btn != nil {
		btn.Focus(true)
		screen.ClearPendingFocus()
	}
}

// processUIInput polls keyboard navigation and applies it to the
// preferences widget tree. Returns the navigation result for focus
// scroll handling.
func (a *App) processUIInput() UINavigation {
	if a.ui == nil {
		return UINavigation{}
	}

	nav := a.inputManager.GetUINavigation()

	if nav.Direction != types.DirNone {
		a.applySpatialNavigation(nav.Direction)
	}
	if nav.Back {
		a.ReturnToPage()
	}

	return nav
}

// applySpatialNavigation uses 2D spatial navigation to find the next
// focus target, falling back to linear tab order.
func (a *App) applySpatialNavigation(direction int) {
	focused := a.ui.GetFocusedWidget()

	if nextBtn := a.prefsScreen.FindFocusInDirection(focused, direction); nextBtn != nil {
		if focused != nil {
			focused.Focus(false)
		}
		nextBtn.Focus(true)
		return
	}

	if direction == types.DirUp || direction == types.DirLeft {
		a.ui.ChangeFocus(widget.FOCUS_PREVIOUS)
	} else {
		a.ui.ChangeFocus(widget.FOCUS_NEXT)
	}
}

// ensureFocusedVisible scrolls the preferences panel to keep the
// focused widget visible
func (a *App) ensureFocusedVisible() {
	if focused := a.ui.GetFocusedWidget(); focused != nil {
		a.prefsScreen.EnsureFocusedVisible(focused)
	}
}

// maybeSaveGeometry persists the windowed size on a slow interval so
// resizes survive a crash without writing every frame.
func (a *App) maybeSaveGeometry() {
	if time.Since(a.lastGeometrySave) < style.AutoSaveInterval {
		return
	}
	a.lastGeometrySave = time.Now()
	a.saveWindowGeometry()
}

// saveWindowGeometry records the current windowed size in logical
// pixels. Fullscreen sessions keep the last windowed size; a session
// that was fullscreen from launch has nothing to record.
func (a *App) saveWindowGeometry() {
	if a.lastWindowedWidth == 0 || a.lastWindowedHeight == 0 {
		return
	}

	s := style.DPIScale()
	w := int(float64(a.lastWindowedWidth) / s)
	h := int(float64(a.lastWindowedHeight) / s)
	if w < storage.MinWindowWidth || h < storage.MinWindowHeight {
		return
	}
	if w == a.window.Width && h == a.window.Height {
		return
	}

	a.window.Width = w
	a.window.Height = h
	a.prefs.Save(storage.KeyWindow, a.window)
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	if a.overlay == OverlayPrefs && a.ui != nil {
		screen.Fill(style.Background)
		a.ui.Draw(screen)
	} else {
		a.page.Draw(screen)
		a.menu.Draw(screen)
	}

	a.notices.Draw(screen)
	a.cursor.Draw(screen)

	// Capture after everything is drawn; the result notice lands on the
	// next frame so it never appears in its own screenshot.
	if a.screenshotPending {
		a.screenshotPending = false
		if path, err := TakeScreenshot(screen); err != nil {
			log.Printf("[App] screenshot failed: %v", err)
			a.notices.ShowShort("Screenshot failed")
		} else {
			a.notices.ShowShort("Saved " + filepath.Base(path))
		}
	}
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Query the device scale factor for HiDPI/Retina rendering
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		a.rebuildPending = true
	}

	// Return physical pixel dimensions so rendering runs at full resolution
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	a.windowWidth = w
	a.windowHeight = h
	// Track windowed dimensions separately so fullscreen doesn't
	// overwrite the size that gets persisted.
	if !ebiten.IsFullscreen() {
		a.lastWindowedWidth = w
		a.lastWindowedHeight = h
	}
	return w, h
}

// ScreenCallback implementations

// ReturnToPage leaves whichever overlay is open
func (a *App) ReturnToPage() {
	a.notices.Clear()
	a.overlay = OverlayNone
}

// Exit closes the application
func (a *App) Exit() {
	a.saveWindowGeometry()
	a.ambience.Close()
	a.notices.Close()

	// Clean exit using os.Exit to avoid log.Fatal's stack trace
	os.Exit(0)
}

// GetWindowWidth returns the current window width for responsive layouts
func (a *App) GetWindowWidth() int {
	return a.windowWidth
}

// RequestRebuild triggers a UI rebuild for the preferences overlay.
// Safe to call from widget callbacks; the rebuild happens on the main
// thread.
func (a *App) RequestRebuild() {
	a.rebuildPending = true
}

// SaveAndClose persists final state and releases audio resources after
// the game loop ends.
func (a *App) SaveAndClose() {
	a.saveWindowGeometry()
	a.ambience.Close()
	a.notices.Close()
}
