package style

import "time"

// Base constants (unexported) — these are the logical-pixel reference values.
// The corresponding exported vars are recalculated by SetDPIScale.
const (
	baseDefaultPadding      = 16
	baseDefaultSpacing      = 16
	baseSmallSpacing        = 8
	baseTinySpacing         = 4
	baseLargeSpacing        = 24
	baseButtonPaddingSmall  = 8
	baseButtonPaddingMedium = 12
	baseSidebarMinWidth     = 180
	baseProgressBarWidth    = 300
	baseProgressBarHeight   = 20

	// Overlay (notice/toast shared)
	baseOverlayPadding = 12
	baseOverlayMargin  = 8

	// Quick menu
	baseQuickMenuMinWidth = 150
	baseQuickMenuMaxWidth = 350
	baseQuickMenuMinBtnH  = 40
	baseQuickMenuMaxBtnH  = 60

	// Achievement toast
	baseAchNotifyMargin   = 20
	baseAchNotifyBadge    = 64
	baseAchNotifyPaddingH = 20
	baseAchNotifyPaddingV = 16
	baseAchNotifySpacing  = 6
	baseAchNotifyBorder   = 2

	// Cursor
	baseCursorDotRadius  = 4
	baseCursorRingRadius = 14
	baseCursorRingHover  = 22

	// Page sections
	baseSectionMargin = 48

	// Font-dependent base values (at 16pt, scale = 1.0)
	baseSettingsRowHeight       = 38
	baseEstimatedViewportHeight = 400
	baseAchievementRowHeight    = 92
	baseAchievementBadgeSize    = 56
	baseMaxLargeFontSize        = 48
	baseMaxTitleFontSize        = 96
)

// Layout vars used across the page and panels — DPI-scaled at runtime
// via SetDPIScale.
var (
	// Standard spacing and padding values
	DefaultPadding = baseDefaultPadding
	DefaultSpacing = baseDefaultSpacing
	SmallSpacing   = baseSmallSpacing
	TinySpacing    = baseTinySpacing
	LargeSpacing   = baseLargeSpacing

	// Button padding
	ButtonPaddingSmall  = baseButtonPaddingSmall
	ButtonPaddingMedium = baseButtonPaddingMedium
)

// Preferences panel vars
var SettingsSidebarMinWidth = baseSidebarMinWidth

// Font-dependent settings layout value (updated by ApplyFontSize)
var SettingsRowHeight = baseSettingsRowHeight

// Progress bar vars (vault display)
var (
	ProgressBarWidth  = baseProgressBarWidth
	ProgressBarHeight = baseProgressBarHeight
)

// Font-dependent scroll estimation (updated by ApplyFontSize)
var EstimatedViewportHeight = baseEstimatedViewportHeight

// Keyboard navigation timing constants
const (
	NavInitialDelay  = 400 * time.Millisecond // Delay before repeat starts
	NavStartInterval = 200 * time.Millisecond // Initial repeat interval
	NavMinInterval   = 25 * time.Millisecond  // Fastest repeat (cap)
	NavAcceleration  = 20 * time.Millisecond  // Speed increase per repeat
)

// Auto-save timing
const (
	AutoSaveInterval = 5 * time.Second
)

// Mouse wheel scroll sensitivity
const (
	ScrollWheelSensitivity = 0.05
)

// Page motion constants. Per-frame exponential easing factors; higher
// closes the gap faster.
const (
	PageScrollEase      = 0.12
	CursorDotEase       = 0.35
	CursorRingEase      = 0.18
	SectionRevealFrames = 40
)

// Overlay vars (shared by notice/toast)
var (
	OverlayPadding = baseOverlayPadding
	OverlayMargin  = baseOverlayMargin
)

// Quick menu vars
var (
	QuickMenuMinWidth     = baseQuickMenuMinWidth
	QuickMenuMaxWidth     = baseQuickMenuMaxWidth
	QuickMenuMinBtnHeight = baseQuickMenuMinBtnH
	QuickMenuMaxBtnHeight = baseQuickMenuMaxBtnH
)

// Achievement toast vars
var (
	AchievementNotifyMargin    = baseAchNotifyMargin
	AchievementNotifyBadgeSize = baseAchNotifyBadge
	AchievementNotifyPaddingH  = baseAchNotifyPaddingH
	AchievementNotifyPaddingV  = baseAchNotifyPaddingV
	AchievementNotifySpacing   = baseAchNotifySpacing
	AchievementNotifyBorder    = baseAchNotifyBorder
)

// Cursor vars (float because they feed vector drawing directly)
var (
	CursorDotRadius       = float64(baseCursorDotRadius)
	CursorRingRadius      = float64(baseCursorRingRadius)
	CursorRingHoverRadius = float64(baseCursorRingHover)
)

// Page section margin
var SectionMargin = baseSectionMargin

// Font-dependent achievement values (updated by ApplyFontSize)
var (
	AchievementBadgeSize = baseAchievementBadgeSize
	AchievementRowHeight = baseAchievementRowHeight
)
