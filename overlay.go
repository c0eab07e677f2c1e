package folio

// Overlay represents what currently owns input on top of the page
type Overlay int

const (
	// OverlayNone means the page itself is scrolling and handling keys
	OverlayNone Overlay = iota
	// OverlayMenu is the quick menu raised with Escape
	OverlayMenu
	// OverlayPrefs is the preferences panel raised with P
	OverlayPrefs
)

// String returns the string representation of the overlay
func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "Page"
	case OverlayMenu:
		return "Menu"
	case OverlayPrefs:
		return "Preferences"
	default:
		return "Unknown"
	}
}
