package folio

import "testing"

func TestOverlayString(t *testing.T) {
	tests := []struct {
		overlay  Overlay
		expected string
	}{
		{OverlayNone, "Page"},
		{OverlayMenu, "Menu"},
		{OverlayPrefs, "Preferences"},
		{Overlay(99), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.overlay.String()
			if got != tc.expected {
				t.Errorf("Overlay(%d).String() = %q, want %q", tc.overlay, got, tc.expected)
			}
		})
	}
}
