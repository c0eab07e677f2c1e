package screens

import (
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/folio/achievements"
	"github.com/user-none/folio/screens/prefs"
	"github.com/user-none/folio/storage"
	"github.com/user-none/folio/style"
	"github.com/user-none/folio/types"
)

// PreferencesScreen displays the preferences panel
type PreferencesScreen struct {
	BaseScreen // Embedded for focus restoration

	callback        ScreenCallback
	selectedSection int

	// Encapsulated sections
	appearance *prefs.AppearanceSection
	audio      *prefs.AudioSection
	data       *prefs.DataSection
}

// NewPreferencesScreen creates a new preferences screen.
// onThemeSelect is invoked with the chosen theme name; the app applies and
// persists it so theme side effects stay in one place.
func NewPreferencesScreen(callback ScreenCallback, store *storage.Prefs, window *storage.WindowPrefs, ambience types.AmbienceControl, manager *achievements.Manager, onThemeSelect func(name string)) *PreferencesScreen {
	s := &PreferencesScreen{
		callback:   callback,
		appearance: prefs.NewAppearanceSection(callback, store, window, onThemeSelect),
		audio:      prefs.NewAudioSection(callback, ambience),
		data:       prefs.NewDataSection(callback, manager, store),
	}
	s.InitBase()
	return s
}

// Build creates the preferences screen UI
func (s *PreferencesScreen) Build() *widget.Container {
	// Clear button references for fresh build
	s.ClearFocusButtons()

	rootContainer := style.ScreenContainer()

	// Header row = fixed, main content = stretch
	innerContainer := style.ScreenContentContainer([]bool{false, true})

	// Header with back button and title
	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	backButton := style.TextButton("Back", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.callback.ReturnToPage()
	})
	header.AddChild(backButton)

	title := widget.NewText(
		widget.TextOpts.Text("Preferences", style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	header.AddChild(title)

	innerContainer.AddChild(header)

	// Main content area with sidebar and content - use GridLayout for proper sizing
	mainContent := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			// Col 0 (sidebar) = fixed, Col 1 (content) = stretch
			// Row stretches vertically
			widget.GridLayoutOpts.Stretch([]bool{false, true}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
		)),
	)

	// Sidebar width: at least the minimum, grown to fit the widest label
	sidebarWidth := style.SettingsSidebarMinWidth
	measuredSidebar := int(style.MeasureWidth("Appearance")) +
		style.SmallSpacing*2 + style.ButtonPaddingSmall*2
	if measuredSidebar > sidebarWidth {
		sidebarWidth = measuredSidebar
	}

	sidebar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sidebarWidth, 0),
		),
	)

	sidebar.AddChild(s.buildSectionButton("Appearance", "section-appearance", 0))
	sidebar.AddChild(s.buildSectionButton("Audio", "section-audio", 1))
	sidebar.AddChild(s.buildSectionButton("Data", "section-data", 2))

	mainContent.AddChild(sidebar)

	// Content area
	contentArea := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{true}),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultPadding)),
		)),
	)

	// Section content - delegate to encapsulated sections
	switch s.selectedSection {
	case 0:
		contentArea.AddChild(s.appearance.Build(s))
	case 1:
		contentArea.AddChild(s.audio.Build(s))
	case 2:
		contentArea.AddChild(s.data.Build(s))
	}

	mainContent.AddChild(contentArea)
	innerContainer.AddChild(mainContent)
	rootContainer.AddChild(innerContainer)

	// Set up navigation zones
	s.setupNavigation()

	return rootContainer
}

// buildSectionButton creates one sidebar entry highlighting the active section
func (s *PreferencesScreen) buildSectionButton(label, focusKey string, index int) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.Image(style.ActiveButtonImage(s.selectedSection == index)),
		widget.ButtonOpts.Text(label, style.FontFace(), &widget.ButtonTextColor{
			Idle:     style.Text,
			Disabled: style.TextSecondary,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.selectedSection = index
			s.SetPendingFocus(focusKey)
			s.callback.RequestRebuild()
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	s.RegisterFocusButton(focusKey, btn)
	return btn
}

// setupNavigation registers navigation zones for the preferences screen
func (s *PreferencesScreen) setupNavigation() {
	// Sidebar zone (vertical)
	sidebarKeys := []string{"section-appearance", "section-audio", "section-data"}
	s.RegisterNavZone("sidebar", types.NavZoneVertical, sidebarKeys, 0)

	// Set up transitions from sidebar to content
	// The content zone names are set by the sections
	switch s.selectedSection {
	case 0: // Appearance - uses theme-list zone
		s.SetNavTransition("sidebar", types.DirRight, "theme-list", types.NavIndexFirst)
		s.SetNavTransition("theme-list", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("font-size", types.DirLeft, "sidebar", types.NavIndexFirst)
	case 1: // Audio
		s.SetNavTransition("sidebar", types.DirRight, "audio-ambience", types.NavIndexFirst)
		s.SetNavTransition("audio-ambience", types.DirLeft, "sidebar", types.NavIndexFirst)
		s.SetNavTransition("audio-volume", types.DirLeft, "sidebar", types.NavIndexFirst)
	case 2: // Data
		s.SetNavTransition("sidebar", types.DirRight, "data-reset", types.NavIndexFirst)
		s.SetNavTransition("data-reset", types.DirLeft, "sidebar", types.NavIndexFirst)
	}
}

// OnEnter is called when the preferences panel opens
func (s *PreferencesScreen) OnEnter() {
	s.SetPendingFocus("section-appearance") // Always defaults to Appearance when entering
}

// EnsureFocusedVisible scrolls the theme list to keep the focused widget visible
func (s *PreferencesScreen) EnsureFocusedVisible(focused widget.Focuser) {
	// Use the base implementation - all theme buttons should trigger scrolling
	s.BaseScreen.EnsureFocusedVisible(focused, nil)
}
