package storage

import "math"

// Preference keys. Each key is backed by its own JSON file under the data
// directory so the concerns stay independently loadable and deletable.
const (
	KeyAchievements = "achievements" // {"unlocked": ["id", ...]}
	KeyAudio        = "audio"        // {"volume": 0.5, "wasPlaying": false}
	KeyTheme        = "theme"        // bare theme-id string
	KeyWindow       = "window"       // {"width", "height", "fontSize"}
)

// AudioPrefs is the persisted ambient audio preference.
type AudioPrefs struct {
	Volume     float64 `json:"volume"`
	WasPlaying bool    `json:"wasPlaying"`
}

// WindowPrefs is the persisted window geometry and text scale.
type WindowPrefs struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	FontSize int `json:"fontSize"`
}

// DefaultAudioPrefs returns the audio defaults used when nothing is saved.
func DefaultAudioPrefs() AudioPrefs {
	return AudioPrefs{
		Volume:     0.5,
		WasPlaying: false,
	}
}

// DefaultWindowPrefs returns the window defaults used when nothing is saved.
func DefaultWindowPrefs() WindowPrefs {
	return WindowPrefs{
		Width:    1280,
		Height:   800,
		FontSize: 16,
	}
}

// FontSizePresets lists the available font size options
var FontSizePresets = []int{10, 12, 14, 16, 18, 20, 24, 28, 32}

// Minimum window dimensions. Smaller saved values are treated as corrupt.
const (
	MinWindowWidth  = 960
	MinWindowHeight = 640
)

// ValidFontSize returns the nearest valid preset font size.
func ValidFontSize(size int) int {
	best := FontSizePresets[0]
	for _, p := range FontSizePresets {
		if abs(p-size) < abs(best-size) {
			best = p
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SanitizeAudio clamps a loaded audio preference into its valid range.
// Volume is 0.0-1.0; zero is a deliberate user setting and is preserved.
// Non-finite values fall back to the default volume.
func SanitizeAudio(a AudioPrefs) AudioPrefs {
	if math.IsNaN(a.Volume) || math.IsInf(a.Volume, 0) {
		a.Volume = DefaultAudioPrefs().Volume
	}
	if a.Volume < 0 {
		a.Volume = 0
	}
	if a.Volume > 1 {
		a.Volume = 1
	}
	return a
}

// SanitizeWindow enforces minimum window dimensions and snaps the font size
// to the nearest preset. Undersized or zero values get the defaults.
func SanitizeWindow(w WindowPrefs) WindowPrefs {
	defaults := DefaultWindowPrefs()
	if w.Width < MinWindowWidth {
		w.Width = defaults.Width
	}
	if w.Height < MinWindowHeight {
		w.Height = defaults.Height
	}
	w.FontSize = ValidFontSize(w.FontSize)
	return w
}
