package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background        = color.NRGBA{0x0f, 0x12, 0x20, 0xff} // Deep space blue
	Surface           = color.NRGBA{0x1a, 0x1f, 0x33, 0xff} // Slightly lighter
	Primary           = color.NRGBA{0x3d, 0x48, 0x80, 0xff} // Muted indigo
	PrimaryHover      = color.NRGBA{0x4d, 0x58, 0x90, 0xff}
	Text              = color.NRGBA{0xf0, 0xf2, 0xff, 0xff}
	TextSecondary     = color.NRGBA{0x9a, 0xa0, 0xb8, 0xff}
	Accent            = color.NRGBA{0x64, 0xff, 0xda, 0xff} // Mint glow
	Border            = color.NRGBA{0x2a, 0x30, 0x4d, 0xff}
	Black             = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	DimOverlay        = color.NRGBA{0x00, 0x00, 0x00, 0xff} // Base color for screen-dimming overlays (alpha applied per use)
	OverlayBackground = color.NRGBA{0x0f, 0x12, 0x20, 0xff} // Base color for floating element backgrounds (alpha applied per use)
)

// Theme holds all color values for a page theme, plus the backdrop
// shader chain it renders behind the content.
type Theme struct {
	Name              string
	Background        color.NRGBA
	Surface           color.NRGBA
	Primary           color.NRGBA
	PrimaryHover      color.NRGBA
	Text              color.NRGBA
	TextSecondary     color.NRGBA
	Accent            color.NRGBA
	Border            color.NRGBA
	Black             color.NRGBA
	DimOverlay        color.NRGBA
	OverlayBackground color.NRGBA
	Backdrop          []string
}

// Predefined themes
var (
	ThemeNexus = Theme{
		Name:              "Nexus",
		Background:        color.NRGBA{0x0f, 0x12, 0x20, 0xff}, // Deep space blue
		Surface:           color.NRGBA{0x1a, 0x1f, 0x33, 0xff},
		Primary:           color.NRGBA{0x3d, 0x48, 0x80, 0xff}, // Muted indigo
		PrimaryHover:      color.NRGBA{0x4d, 0x58, 0x90, 0xff},
		Text:              color.NRGBA{0xf0, 0xf2, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0x9a, 0xa0, 0xb8, 0xff},
		Accent:            color.NRGBA{0x64, 0xff, 0xda, 0xff}, // Mint glow
		Border:            color.NRGBA{0x2a, 0x30, 0x4d, 0xff},
		Black:             color.NRGBA{0x00, 0x00, 0x00, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0x0f, 0x12, 0x20, 0xff},
		Backdrop:          []string{"aurora", "grain", "vignette"},
	}

	ThemeDaybreak = Theme{
		Name:              "Daybreak",
		Background:        color.NRGBA{0xf4, 0xf1, 0xea, 0xff}, // Warm paper
		Surface:           color.NRGBA{0xff, 0xfc, 0xf5, 0xff},
		Primary:           color.NRGBA{0x2a, 0x6f, 0x97, 0xff}, // Sea blue
		PrimaryHover:      color.NRGBA{0x3a, 0x7f, 0xa7, 0xff},
		Text:              color.NRGBA{0x24, 0x28, 0x2e, 0xff}, // Near-black ink
		TextSecondary:     color.NRGBA{0x6b, 0x70, 0x78, 0xff},
		Accent:            color.NRGBA{0xd9, 0x77, 0x06, 0xff}, // Amber
		Border:            color.NRGBA{0xd8, 0xd3, 0xc8, 0xff},
		Black:             color.NRGBA{0x00, 0x00, 0x00, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0xf4, 0xf1, 0xea, 0xff},
		Backdrop:          []string{"aurora", "vignette"},
	}

	ThemeSynthwave = Theme{
		Name:              "Synthwave",
		Background:        color.NRGBA{0x16, 0x0a, 0x2b, 0xff}, // Midnight violet
		Surface:           color.NRGBA{0x24, 0x14, 0x40, 0xff},
		Primary:           color.NRGBA{0xb3, 0x1c, 0x8d, 0xff}, // Hot magenta
		PrimaryHover:      color.NRGBA{0xd3, 0x3c, 0xad, 0xff},
		Text:              color.NRGBA{0xff, 0xf6, 0xfd, 0xff},
		TextSecondary:     color.NRGBA{0xc8, 0x8a, 0xd8, 0xff},
		Accent:            color.NRGBA{0x00, 0xf0, 0xff, 0xff}, // Electric cyan
		Border:            color.NRGBA{0x45, 0x28, 0x6b, 0xff},
		Black:             color.NRGBA{0x00, 0x00, 0x00, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0x16, 0x0a, 0x2b, 0xff},
		Backdrop:          []string{"grid", "grain", "vignette"},
	}

	ThemeTerminal = Theme{
		Name:              "Terminal",
		Background:        color.NRGBA{0x06, 0x14, 0x08, 0xff}, // Phosphor black
		Surface:           color.NRGBA{0x0c, 0x24, 0x10, 0xff},
		Primary:           color.NRGBA{0x1e, 0x52, 0x28, 0xff},
		PrimaryHover:      color.NRGBA{0x2e, 0x6a, 0x38, 0xff},
		Text:              color.NRGBA{0x6b, 0xf1, 0x78, 0xff}, // CRT green
		TextSecondary:     color.NRGBA{0x3e, 0x94, 0x48, 0xff},
		Accent:            color.NRGBA{0xc6, 0xff, 0x4d, 0xff}, // Lime flash
		Border:            color.NRGBA{0x18, 0x3c, 0x20, 0xff},
		Black:             color.NRGBA{0x06, 0x14, 0x08, 0xff},
		DimOverlay:        color.NRGBA{0x06, 0x14, 0x08, 0xff},
		OverlayBackground: color.NRGBA{0x06, 0x14, 0x08, 0xff},
		Backdrop:          []string{"grid", "grain"},
	}

	ThemeEmber = Theme{
		Name:              "Ember",
		Background:        color.NRGBA{0x1c, 0x10, 0x0c, 0xff}, // Charred wood
		Surface:           color.NRGBA{0x2c, 0x1a, 0x12, 0xff},
		Primary:           color.NRGBA{0x8a, 0x32, 0x1a, 0xff}, // Burnt sienna
		PrimaryHover:      color.NRGBA{0xa4, 0x46, 0x28, 0xff},
		Text:              color.NRGBA{0xff, 0xf0, 0xe0, 0xff},
		TextSecondary:     color.NRGBA{0xc0, 0x96, 0x78, 0xff},
		Accent:            color.NRGBA{0xff, 0x9e, 0x2c, 0xff}, // Live coal
		Border:            color.NRGBA{0x46, 0x28, 0x1c, 0xff},
		Black:             color.NRGBA{0x00, 0x00, 0x00, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0x1c, 0x10, 0x0c, 0xff},
		Backdrop:          []string{"aurora", "grain", "vignette"},
	}

	ThemeMono = Theme{
		Name:              "Mono",
		Background:        color.NRGBA{0x11, 0x11, 0x11, 0xff}, // Ink
		Surface:           color.NRGBA{0x1f, 0x1f, 0x1f, 0xff},
		Primary:           color.NRGBA{0x44, 0x44, 0x44, 0xff},
		PrimaryHover:      color.NRGBA{0x5a, 0x5a, 0x5a, 0xff},
		Text:              color.NRGBA{0xf5, 0xf5, 0xf5, 0xff},
		TextSecondary:     color.NRGBA{0x8c, 0x8c, 0x8c, 0xff},
		Accent:            color.NRGBA{0xff, 0xff, 0xff, 0xff}, // Pure white
		Border:            color.NRGBA{0x33, 0x33, 0x33, 0xff},
		Black:             color.NRGBA{0x00, 0x00, 0x00, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0x11, 0x11, 0x11, 0xff},
		Backdrop:          []string{"grain", "vignette"},
	}

	// AvailableThemes lists all themes for UI selection
	AvailableThemes = []Theme{ThemeNexus, ThemeDaybreak, ThemeSynthwave, ThemeTerminal, ThemeEmber, ThemeMono}

	// CurrentThemeName tracks the active theme name
	CurrentThemeName = "Nexus"
)

// ThemeNames returns the list of valid theme name strings.
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// GetThemeByName returns theme by name, or ThemeNexus if not found
func GetThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNexus
}

// IsValidThemeName returns true if the name matches a known theme
func IsValidThemeName(name string) bool {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ApplyTheme updates package-level color variables from a theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	PrimaryHover = theme.PrimaryHover
	Text = theme.Text
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Border = theme.Border
	Black = theme.Black
	DimOverlay = theme.DimOverlay
	OverlayBackground = theme.OverlayBackground
	CurrentThemeName = theme.Name
}

// ApplyThemeByName applies theme by name with fallback to Nexus
func ApplyThemeByName(name string) {
	ApplyTheme(GetThemeByName(name))
}

// CurrentBackdrop returns the active theme's backdrop shader chain.
func CurrentBackdrop() []string {
	return GetThemeByName(CurrentThemeName).Backdrop
}

// currentFontSize is the current font size in points (default 16)
var currentFontSize float64 = 16

// dpiScale is the device pixel ratio (1.0 on non-retina, 2.0 on retina)
var dpiScale float64 = 1.0

// DPIScale returns the current device scale factor.
func DPIScale() float64 {
	return dpiScale
}

// Px converts a logical pixel value to physical pixels using the current DPI scale.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// PxFont converts a logical pixel value to physical pixels scaled by both DPI and font size.
func PxFont(logical int) int {
	return int(float64(logical) * FontScale() * dpiScale)
}

// SetDPIScale sets the DPI scale factor and recalculates all spatial vars.
func SetDPIScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	dpiScale = scale

	// Recalculate all non-font-dependent spatial vars from base constants
	DefaultPadding = Px(baseDefaultPadding)
	DefaultSpacing = Px(baseDefaultSpacing)
	SmallSpacing = Px(baseSmallSpacing)
	TinySpacing = Px(baseTinySpacing)
	LargeSpacing = Px(baseLargeSpacing)
	ButtonPaddingSmall = Px(baseButtonPaddingSmall)
	ButtonPaddingMedium = Px(baseButtonPaddingMedium)
	SettingsSidebarMinWidth = Px(baseSidebarMinWidth)
	ProgressBarWidth = Px(baseProgressBarWidth)
	ProgressBarHeight = Px(baseProgressBarHeight)
	AchievementNotifyMargin = Px(baseAchNotifyMargin)
	AchievementNotifyBadgeSize = Px(baseAchNotifyBadge)
	AchievementNotifyPaddingH = Px(baseAchNotifyPaddingH)
	AchievementNotifyPaddingV = Px(baseAchNotifyPaddingV)
	AchievementNotifySpacing = Px(baseAchNotifySpacing)
	AchievementNotifyBorder = Px(baseAchNotifyBorder)
	OverlayPadding = Px(baseOverlayPadding)
	OverlayMargin = Px(baseOverlayMargin)
	QuickMenuMinWidth = Px(baseQuickMenuMinWidth)
	QuickMenuMaxWidth = Px(baseQuickMenuMaxWidth)
	QuickMenuMinBtnHeight = Px(baseQuickMenuMinBtnH)
	QuickMenuMaxBtnHeight = Px(baseQuickMenuMaxBtnH)
	CursorDotRadius = float64(baseCursorDotRadius) * scale
	CursorRingRadius = float64(baseCursorRingRadius) * scale
	CursorRingHoverRadius = float64(baseCursorRingHover) * scale
	SectionMargin = Px(baseSectionMargin)

	// Recalculate font-dependent vars (they also incorporate DPI scale)
	ApplyFontSize(int(currentFontSize))
}

// sharedFontSource is the cached TrueType font source shared by all font faces
var sharedFontSource *text.GoTextFaceSource

// fontFace is the cached font face
var fontFace text.Face

// largeFontFace is the cached large font face for headings
var largeFontFace *text.GoTextFace

// titleFontFace is the cached oversized face for the hero heading
var titleFontFace *text.GoTextFace

// loadFontSource loads the shared GoTextFaceSource from goregular.TTF (once)
func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// FontFace returns the font face to use for UI text
func FontFace() *text.Face {
	if fontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &fontFace
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   currentFontSize,
		}
	}
	return &fontFace
}

// LargeFontFace returns a larger font face for section headings
func LargeFontFace() *text.GoTextFace {
	if largeFontFace == nil {
		source := loadFontSource()
		if source == nil {
			return nil
		}
		largeSize := currentFontSize * 2
		if largeSize > baseMaxLargeFontSize {
			largeSize = baseMaxLargeFontSize
		}
		largeFontFace = &text.GoTextFace{
			Source: source,
			Size:   largeSize,
		}
	}
	return largeFontFace
}

// TitleFontFace returns the oversized face used by the hero heading
func TitleFontFace() *text.GoTextFace {
	if titleFontFace == nil {
		source := loadFontSource()
		if source == nil {
			return nil
		}
		titleSize := currentFontSize * 4
		if titleSize > baseMaxTitleFontSize {
			titleSize = baseMaxTitleFontSize
		}
		titleFontFace = &text.GoTextFace{
			Source: source,
			Size:   titleSize,
		}
	}
	return titleFontFace
}

// FontScale returns the current font scale factor relative to the base size (16pt).
func FontScale() float64 {
	return currentFontSize / 16.0
}

// ApplyFontSize sets the font size and recalculates all font-dependent layout values.
func ApplyFontSize(size int) {
	s := float64(size)
	currentFontSize = s

	// Replace font faces in-place rather than nil-ing them. Existing widgets hold
	// &fontFace (a pointer to the package var), so setting fontFace = nil would cause
	// widgets to see a nil face and crash before the UI rebuild completes.
	source := loadFontSource()
	if source != nil {
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   s * dpiScale,
		}
		largeSize := s * 2
		if largeSize > baseMaxLargeFontSize {
			largeSize = baseMaxLargeFontSize
		}
		largeFontFace = &text.GoTextFace{
			Source: source,
			Size:   largeSize * dpiScale,
		}
		titleSize := s * 4
		if titleSize > baseMaxTitleFontSize {
			titleSize = baseMaxTitleFontSize
		}
		titleFontFace = &text.GoTextFace{
			Source: source,
			Size:   titleSize * dpiScale,
		}
	}

	// Scale font-dependent layout constants (font scale * DPI scale)
	scale := s / 16.0
	d := dpiScale
	// Badge and row use dampened scaling so they don't grow disproportionately.
	// (1 + fontScale) / 2 grows slower than text: at 2x font it's only 1.5x.
	badgeScale := (1 + scale) / 2
	AchievementRowHeight = int(baseAchievementRowHeight * badgeScale * d)
	AchievementBadgeSize = int(baseAchievementBadgeSize * badgeScale * d)
	SettingsRowHeight = int(baseSettingsRowHeight * scale * d)
	EstimatedViewportHeight = int(baseEstimatedViewportHeight * scale * d)
}

// ButtonImage creates a standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage creates a prominent button image set
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// DisabledButtonImage creates a disabled-looking button image set
func DisabledButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Border),
		Hover:    image.NewNineSliceColor(Border),
		Pressed:  image.NewNineSliceColor(Border),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ActiveButtonImage returns a button image based on active state.
// Used for toggle buttons like theme cards and sidebar items.
func ActiveButtonImage(active bool) *widget.ButtonImage {
	if active {
		return PrimaryButtonImage()
	}
	return ButtonImage()
}

// SliderButtonImage creates a slider handle button image
func SliderButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// SliderTrackImage creates a slider track image
func SliderTrackImage() *widget.SliderTrackImage {
	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceColor(Border),
		Hover: image.NewNineSliceColor(Border),
	}
}

// ScrollContainerImage creates a scroll container image
func ScrollContainerImage() *widget.ScrollContainerImage {
	return &widget.ScrollContainerImage{
		Idle: image.NewNineSliceColor(Background),
		Mask: image.NewNineSliceColor(Background),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}
