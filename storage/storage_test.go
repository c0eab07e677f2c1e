package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestValidFontSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"exact preset 10", 10, 10},
		{"exact preset 16", 16, 16},
		{"exact preset 32", 32, 32},
		{"between 10 and 12 equidistant picks lower", 11, 10},
		{"between 14 and 16 closer to 14", 15, 14},
		{"between 16 and 18", 17, 16},
		{"between 20 and 24 closer to 24", 23, 24},
		{"below minimum", 1, 10},
		{"above maximum", 100, 32},
		{"zero", 0, 10},
		{"negative", -5, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidFontSize(tc.input)
			if got != tc.expected {
				t.Errorf("ValidFontSize(%d) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDefaultAudioPrefs(t *testing.T) {
	a := DefaultAudioPrefs()
	if a.Volume != 0.5 {
		t.Errorf("expected default volume 0.5, got %f", a.Volume)
	}
	if a.WasPlaying {
		t.Error("expected wasPlaying false by default")
	}
}

func TestDefaultWindowPrefs(t *testing.T) {
	w := DefaultWindowPrefs()
	if w.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", w.Width)
	}
	if w.Height != 800 {
		t.Errorf("expected default height 800, got %d", w.Height)
	}
	if w.FontSize != 16 {
		t.Errorf("expected default font size 16, got %d", w.FontSize)
	}
}

func TestSanitizeAudio(t *testing.T) {
	tests := []struct {
		name     string
		input    AudioPrefs
		expected float64
	}{
		{"in range", AudioPrefs{Volume: 0.7}, 0.7},
		{"zero volume is preserved", AudioPrefs{Volume: 0}, 0},
		{"full volume", AudioPrefs{Volume: 1.0}, 1.0},
		{"negative clamps to zero", AudioPrefs{Volume: -0.3}, 0},
		{"above one clamps to one", AudioPrefs{Volume: 3.5}, 1.0},
		{"NaN falls back to default", AudioPrefs{Volume: math.NaN()}, 0.5},
		{"infinity falls back to default", AudioPrefs{Volume: math.Inf(1)}, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeAudio(tc.input)
			if got.Volume != tc.expected {
				t.Errorf("SanitizeAudio(%v).Volume = %f, want %f", tc.input.Volume, got.Volume, tc.expected)
			}
		})
	}
}

func TestSanitizeAudioPreservesWasPlaying(t *testing.T) {
	got := SanitizeAudio(AudioPrefs{Volume: 5, WasPlaying: true})
	if !got.WasPlaying {
		t.Error("wasPlaying should survive sanitizing")
	}
}

func TestSanitizeWindow(t *testing.T) {
	tests := []struct {
		name       string
		input      WindowPrefs
		wantWidth  int
		wantHeight int
		wantFont   int
	}{
		{"valid passes through", WindowPrefs{Width: 1024, Height: 768, FontSize: 14}, 1024, 768, 14},
		{"zero gets defaults and smallest font", WindowPrefs{}, 1280, 800, 10},
		{"undersized width", WindowPrefs{Width: 200, Height: 700, FontSize: 16}, 1280, 700, 16},
		{"undersized height", WindowPrefs{Width: 1000, Height: 100, FontSize: 16}, 1000, 800, 16},
		{"off-preset font snaps", WindowPrefs{Width: 1024, Height: 768, FontSize: 17}, 1024, 768, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeWindow(tc.input)
			if got.Width != tc.wantWidth || got.Height != tc.wantHeight || got.FontSize != tc.wantFont {
				t.Errorf("SanitizeWindow(%+v) = %+v, want {%d %d %d}",
					tc.input, got, tc.wantWidth, tc.wantHeight, tc.wantFont)
			}
		})
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	// Create temp directory
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.json")

	data := struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}{
		Name:  "test",
		Value: 42,
	}

	// Write file
	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}

	// Read back
	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	if err := ReadJSON(path, &result); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}

	if result.Name != data.Name || result.Value != data.Value {
		t.Errorf("data mismatch: expected %+v, got %+v", data, result)
	}

	// Verify temp file is cleaned up
	tmpPath := path + ".tmp"
	if _, err := os.Stat(tmpPath); !os.IsNotExist(err) {
		t.Error("temp file was not cleaned up")
	}
}

func TestAtomicWriteJSONInvalidDir(t *testing.T) {
	// Writing to a path under a file (not a directory) should fail
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "not_a_dir")
	os.WriteFile(filePath, []byte("file"), 0644)

	err := AtomicWriteJSON(filepath.Join(filePath, "sub", "test.json"), "data")
	if err == nil {
		t.Error("expected error when writing to invalid directory path")
	}
}

func TestReadJSONInvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "bad.json")

	// Write invalid JSON
	os.WriteFile(path, []byte("{invalid json}"), 0644)

	var result map[string]string
	err := ReadJSON(path, &result)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestReadJSONNonexistentFile(t *testing.T) {
	var result map[string]string
	err := ReadJSON("/nonexistent/path/file.json", &result)
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestSetBaseDirOverride(t *testing.T) {
	dir := t.TempDir()
	SetBaseDir(dir)
	defer SetBaseDir("")

	got, err := GetBaseDir()
	if err != nil {
		t.Fatalf("GetBaseDir: %v", err)
	}
	if got != dir {
		t.Errorf("base dir = %q, want %q", got, dir)
	}

	shots, err := GetScreenshotDir()
	if err != nil {
		t.Fatalf("GetScreenshotDir: %v", err)
	}
	if shots != filepath.Join(dir, "screenshots") {
		t.Errorf("screenshot dir = %q, want under override", shots)
	}
}
