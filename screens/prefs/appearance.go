package prefs

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/folio/storage"
	"github.com/user-none/folio/style"
	"github.com/user-none/folio/types"
)

// AppearanceSection manages theme and font size settings
type AppearanceSection struct {
	callback types.ScreenCallback
	store    *storage.Prefs
	window   *storage.WindowPrefs

	// onSelect is invoked with the theme name when a theme card is clicked.
	// The app applies the theme, persists the choice and updates the backdrop.
	onSelect func(name string)
}

// NewAppearanceSection creates a new appearance section
func NewAppearanceSection(callback types.ScreenCallback, store *storage.Prefs, window *storage.WindowPrefs, onSelect func(name string)) *AppearanceSection {
	return &AppearanceSection{
		callback: callback,
		store:    store,
		window:   window,
		onSelect: onSelect,
	}
}

// Build creates the appearance section UI
func (a *AppearanceSection) Build(focus types.FocusManager) *widget.Container {
	// Use GridLayout so the scrollable list can stretch
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			// Row stretch: font row=no, theme label=no, theme list=YES
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, false, true}),
			widget.GridLayoutOpts.Spacing(0, style.DefaultSpacing),
		)),
	)

	// Font size row: label left, stepper right
	section.AddChild(a.buildFontSizeRow(focus))

	// Theme label
	themeLabel := widget.NewText(
		widget.TextOpts.Text("Theme", style.FontFace(), style.Accent),
	)
	section.AddChild(themeLabel)

	// Theme cards in scrollable list
	themeListContent := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	for _, theme := range style.AvailableThemes {
		themeListContent.AddChild(a.buildThemeCard(theme, focus))
	}

	// Wrap in scrollable container using existing style helper
	scrollContainer, vSlider, scrollWrapper := style.ScrollableContainer(style.ScrollableOpts{
		Content:     themeListContent,
		BgColor:     style.Background,
		BorderColor: style.Border,
		Spacing:     0,
		Padding:     style.SmallSpacing,
	})
	focus.SetScrollWidgets(scrollContainer, vSlider)
	// Restore scroll position after rebuild
	focus.RestoreScrollPosition()
	// Nothing restored (first open): start with the active theme in view
	if scrollContainer.ScrollTop == 0 {
		a.centerActiveTheme(scrollContainer, vSlider)
	}
	section.AddChild(scrollWrapper)

	a.setupNavigation(focus)

	return section
}

// centerActiveTheme estimates a starting scroll position that puts the
// current theme's card mid-list. Layout hasn't run yet at build time, so
// both card and viewport heights are estimates.
func (a *AppearanceSection) centerActiveTheme(scrollContainer *widget.ScrollContainer, vSlider *widget.Slider) {
	activeIdx := -1
	for i, theme := range style.AvailableThemes {
		if theme.Name == style.CurrentThemeName {
			activeIdx = i
			break
		}
	}
	if activeIdx <= 0 {
		return
	}

	cardHeight := themePreviewHeight() + style.DefaultSpacing
	totalHeight := len(style.AvailableThemes) * cardHeight
	if totalHeight <= 0 {
		return
	}
	viewportHeight := style.EstimatedViewportHeight
	targetY := activeIdx*cardHeight - viewportHeight/2 + cardHeight/2
	if targetY < 0 {
		targetY = 0
	}
	if totalHeight > viewportHeight && targetY > totalHeight-viewportHeight {
		targetY = totalHeight - viewportHeight
	}
	scrollTop := float64(targetY) / float64(totalHeight)
	if scrollTop > 1 {
		scrollTop = 1
	}
	scrollContainer.ScrollTop = scrollTop
	vSlider.Current = int(scrollTop * 1000)
}

// themePreviewHeight is the fixed height of a theme preview mockup
func themePreviewHeight() int {
	return style.Px(100)
}

// setupNavigation registers navigation zones for the appearance section
func (a *AppearanceSection) setupNavigation(focus types.FocusManager) {
	// Font size zone (horizontal)
	focus.RegisterNavZone("font-size", types.NavZoneHorizontal, []string{"font-decrease", "font-increase"}, 0)

	// Theme list zone (vertical)
	themeKeys := make([]string, len(style.AvailableThemes))
	for i, theme := range style.AvailableThemes {
		themeKeys[i] = fmt.Sprintf("theme-%s", theme.Name)
	}
	focus.RegisterNavZone("theme-list", types.NavZoneVertical, themeKeys, 0)

	// Vertical transitions between zones
	focus.SetNavTransition("font-size", types.DirDown, "theme-list", 0)
	focus.SetNavTransition("theme-list", types.DirUp, "font-size", 0)
}

// buildFontSizeRow creates the font size row with label left and +/- stepper right
func (a *AppearanceSection) buildFontSizeRow(focus types.FocusManager) *widget.Container {
	presets := storage.FontSizePresets
	currentSize := storage.ValidFontSize(a.window.FontSize)

	// Find current index in presets
	currentIdx := 0
	for i, p := range presets {
		if p == currentSize {
			currentIdx = i
			break
		}
	}

	// Outer container with background color
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, style.SettingsRowHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	// Label on left
	labelText := widget.NewText(
		widget.TextOpts.Text("Font Size", style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
	row.AddChild(labelText)

	// Controls group: [-] value [+]
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	// Decrease button
	decImage := style.ButtonImage()
	if currentIdx <= 0 {
		decImage = style.DisabledButtonImage()
	}
	decBtn := widget.NewButton(
		widget.ButtonOpts.Image(decImage),
		widget.ButtonOpts.Text("-", style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.stepFontSize(-1, "font-decrease", focus)
		}),
	)
	focus.RegisterFocusButton("font-decrease", decBtn)
	controls.AddChild(decBtn)

	// Size value display
	sizeLabel := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("%dpt", currentSize), style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.PxFont(50), 0),
		),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
	controls.AddChild(sizeLabel)

	// Increase button
	incImage := style.ButtonImage()
	if currentIdx >= len(presets)-1 {
		incImage = style.DisabledButtonImage()
	}
	incBtn := widget.NewButton(
		widget.ButtonOpts.Image(incImage),
		widget.ButtonOpts.Text("+", style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.stepFontSize(1, "font-increase", focus)
		}),
	)
	focus.RegisterFocusButton("font-increase", incBtn)
	controls.AddChild(incBtn)

	row.AddChild(controls)

	return row
}

// stepFontSize moves the font size one preset up or down, persists the
// window preferences and rebuilds so every face-dependent widget resizes.
func (a *AppearanceSection) stepFontSize(delta int, focusKey string, focus types.FocusManager) {
	presets := storage.FontSizePresets
	idx := 0
	for i, p := range presets {
		if p == storage.ValidFontSize(a.window.FontSize) {
			idx = i
			break
		}
	}
	next := idx + delta
	if next < 0 || next >= len(presets) {
		return
	}
	a.window.FontSize = presets[next]
	style.ApplyFontSize(a.window.FontSize)
	a.store.Save(storage.KeyWindow, *a.window)
	focus.SetPendingFocus(focusKey)
	a.callback.RequestRebuild()
}

// buildThemeCard creates a theme selection card with button and color preview
func (a *AppearanceSection) buildThemeCard(theme style.Theme, focus types.FocusManager) *widget.Container {
	themeName := theme.Name
	isActive := style.CurrentThemeName == themeName
	focusKey := fmt.Sprintf("theme-%s", themeName)

	// Use grid layout so preview can stretch
	card := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{false, true}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	// Theme button
	themeBtn := widget.NewButton(
		widget.ButtonOpts.Image(style.ActiveButtonImage(isActive)),
		widget.ButtonOpts.Text(themeName, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingMedium)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(style.PxFont(120), 0),
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if a.onSelect != nil {
				a.onSelect(themeName)
			}
			focus.SetPendingFocus(fmt.Sprintf("theme-%s", themeName))
			a.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton(focusKey, themeBtn)
	card.AddChild(themeBtn)

	// Theme preview mockup
	card.AddChild(a.buildThemePreview(theme))

	return card
}

// buildThemePreview creates a miniature page mockup rendered in the
// candidate theme's colors: heading, body line, unlock toast and badge row.
func (a *AppearanceSection) buildThemePreview(theme style.Theme) *widget.Container {
	previewHeight := themePreviewHeight()
	chipPadding := style.Px(4)

	// Outer container with theme's background color
	preview := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.Px(6))),
			widget.RowLayoutOpts.Spacing(style.Px(4)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, previewHeight),
		),
	)

	// Section heading and a body line
	heading := widget.NewText(
		widget.TextOpts.Text("Nexus", style.FontFace(), theme.Text),
	)
	preview.AddChild(heading)

	body := widget.NewText(
		widget.TextOpts.Text("Systems, signals and small machines.", style.FontFace(), theme.TextSecondary),
	)
	preview.AddChild(body)

	// Unlock toast chip
	toast := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Surface)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(chipPadding)),
		)),
	)
	toastText := widget.NewText(
		widget.TextOpts.Text("Achievement Unlocked!", style.FontFace(), theme.Accent),
	)
	toast.AddChild(toastText)
	preview.AddChild(toast)

	// Badge row: one unlocked badge, one locked, plus the accent marker
	badgeRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.Px(4)),
		)),
	)
	badgeRow.AddChild(a.buildPreviewBadge("I", theme.Primary, theme.Text))
	badgeRow.AddChild(a.buildPreviewBadge("E", theme.Surface, theme.TextSecondary))

	accentText := widget.NewText(
		widget.TextOpts.Text("*", style.FontFace(), theme.Accent),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	badgeRow.AddChild(accentText)

	preview.AddChild(badgeRow)

	return preview
}

// buildPreviewBadge creates one small badge square for the theme preview
func (a *AppearanceSection) buildPreviewBadge(glyph string, bg, fg color.NRGBA) *widget.Container {
	badge := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(style.Px(4))),
		)),
	)
	text := widget.NewText(
		widget.TextOpts.Text(glyph, style.FontFace(), fg),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	badge.AddChild(text)
	return badge
}
