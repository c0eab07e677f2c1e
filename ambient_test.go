package folio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/user-none/folio/storage"
)

func TestPadStreamFillsWholeFrames(t *testing.T) {
	s := newPadStream()

	buf := make([]byte, 1024)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if n != 1024 {
		t.Errorf("Read returned %d bytes, want 1024", n)
	}

	// Odd-sized buffer rounds down to whole stereo frames
	n, err = s.Read(make([]byte, 10))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if n != 8 {
		t.Errorf("Read of 10 bytes returned %d, want 8 (two frames)", n)
	}
}

func TestPadStreamTinyBuffer(t *testing.T) {
	s := newPadStream()

	n, err := s.Read(make([]byte, 3))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Read of 3 bytes returned %d, want 0", n)
	}
}

func TestPadStreamDeterministic(t *testing.T) {
	a := newPadStream()
	b := newPadStream()

	bufA := make([]byte, 4096)
	bufB := make([]byte, 4096)
	a.Read(bufA)
	b.Read(bufB)

	if !bytes.Equal(bufA, bufB) {
		t.Error("two fresh streams should synthesize identical samples")
	}
}

func TestPadStreamContinuousAcrossReads(t *testing.T) {
	split := newPadStream()
	whole := newPadStream()

	first := make([]byte, 2048)
	second := make([]byte, 2048)
	split.Read(first)
	split.Read(second)

	full := make([]byte, 4096)
	whole.Read(full)

	if !bytes.Equal(append(first, second...), full) {
		t.Error("split reads should produce the same stream as one read")
	}
}

func TestPadStreamAudibleAndBounded(t *testing.T) {
	s := newPadStream()

	// One second of audio
	buf := make([]byte, audioSampleRate*4)
	s.Read(buf)

	nonZero := 0
	for i := 0; i < len(buf); i += 2 {
		v := int16(binary.LittleEndian.Uint16(buf[i:]))
		if v != 0 {
			nonZero++
		}
		if v > 9000 || v < -9000 {
			t.Fatalf("sample %d out of range at offset %d", v, i)
		}
	}
	if nonZero == 0 {
		t.Error("pad should not be silent")
	}
}

func TestAmbienceVolumePersists(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewPrefs(dir)

	a := NewAmbience(store, nil, nil)
	a.SetVolume(0.3)

	if a.Volume() != 0.3 {
		t.Errorf("Volume = %v, want 0.3", a.Volume())
	}

	var saved storage.AudioPrefs
	if !store.Load(storage.KeyAudio, &saved) {
		t.Fatal("audio prefs should have been saved")
	}
	if saved.Volume != 0.3 {
		t.Errorf("saved volume = %v, want 0.3", saved.Volume)
	}
	if saved.WasPlaying {
		t.Error("wasPlaying should be false before any playback")
	}
}

func TestAmbienceVolumeClamped(t *testing.T) {
	a := NewAmbience(nil, nil, nil)

	a.SetVolume(1.7)
	if a.Volume() != 1.0 {
		t.Errorf("volume above range should clamp to 1, got %v", a.Volume())
	}

	a.SetVolume(-0.2)
	if a.Volume() != 0.0 {
		t.Errorf("volume below range should clamp to 0, got %v", a.Volume())
	}
}

func TestAmbienceLoadsSavedPrefs(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewPrefs(dir)
	store.Save(storage.KeyAudio, storage.AudioPrefs{Volume: 0.8, WasPlaying: true})

	a := NewAmbience(store, nil, nil)
	if a.Volume() != 0.8 {
		t.Errorf("Volume = %v, want saved 0.8", a.Volume())
	}
	// Saved playing state only takes effect via Resume, not at construction
	if a.Playing() {
		t.Error("should not be playing before Resume")
	}
}

func TestAmbienceSanitizesCorruptPrefs(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewPrefs(dir)
	store.Save(storage.KeyAudio, storage.AudioPrefs{Volume: 42.0, WasPlaying: false})

	a := NewAmbience(store, nil, nil)
	if a.Volume() < 0 || a.Volume() > 1 {
		t.Errorf("volume should be sanitized into [0,1], got %v", a.Volume())
	}
}
