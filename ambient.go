package folio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/user-none/folio/storage"
)

const audioSampleRate = 48000

// oto context singleton — shared between the ambient pad and notification chimes
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

// ensureOtoContext initializes the oto audio context on first use.
func ensureOtoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   audioSampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond, // Reduce OS AudioQueue from default ~100ms
		}
		var readyChan chan struct{}
		otoCtx, readyChan, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-readyChan
	})
	return otoCtx, otoInitErr
}

// padVoice is one synthesized voice of the ambient chord
type padVoice struct {
	freq    float64 // fundamental in Hz
	gain    float64 // peak amplitude contribution
	lfoRate float64 // amplitude swell rate in Hz
	pan     float64 // -1 full left .. 1 full right
}

// padVoices form a low D drone with fifth and octave, topped with a major
// third. The swell rates are mutually irrational-ish so the chord never
// settles into an audible loop.
var padVoices = []padVoice{
	{freq: 73.42, gain: 0.34, lfoRate: 0.043, pan: -0.4},  // D2
	{freq: 110.00, gain: 0.26, lfoRate: 0.067, pan: 0.4},  // A2
	{freq: 146.83, gain: 0.22, lfoRate: 0.031, pan: -0.2}, // D3
	{freq: 185.00, gain: 0.16, lfoRate: 0.053, pan: 0.2},  // F#3
}

// padStream synthesizes the ambient pad as an endless 48kHz stereo S16LE
// sample stream. oto pulls from it on its own goroutine; nothing else
// touches the stream once playback starts.
type padStream struct {
	pos int64 // absolute sample position, carried across reads
}

func newPadStream() *padStream {
	return &padStream{}
}

// Read fills p with as many whole stereo frames as fit. It never returns
// io.EOF: the pad plays until the player is paused or closed.
func (s *padStream) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}

	for i := 0; i < frames; i++ {
		t := float64(s.pos) / float64(audioSampleRate)

		var left, right float64
		for _, v := range padVoices {
			// Slow swell keeps the chord breathing instead of static
			swell := 0.6 + 0.4*math.Sin(2*math.Pi*v.lfoRate*t)
			// A detuned pair beats gently against itself
			wave := (math.Sin(2*math.Pi*v.freq*t) + math.Sin(2*math.Pi*v.freq*1.003*t)) * 0.5
			sample := wave * swell * v.gain

			left += sample * (1 - v.pan) / 2
			right += sample * (1 + v.pan) / 2
		}

		idx := i * 4
		l := int16(clampUnit(left) * 9000)
		r := int16(clampUnit(right) * 9000)
		p[idx] = byte(l)
		p[idx+1] = byte(l >> 8)
		p[idx+2] = byte(r)
		p[idx+3] = byte(r >> 8)

		s.pos++
	}

	return frames * 4, nil
}

func clampUnit(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}

// Ambience owns the looping ambient soundscape. Playback state and volume
// persist across sessions; when the audio device cannot be opened every
// control degrades to a logged no-op plus one user-facing notice.
type Ambience struct {
	mu         sync.Mutex
	store      *storage.Prefs
	player     *oto.Player
	playing    bool
	volume     float64
	wasPlaying bool // saved state from the previous session

	// onEnabled fires after playback successfully starts
	onEnabled func()
	// onUnavailable reports an audio init failure so the page can show a notice
	onUnavailable func(msg string)
}

// NewAmbience creates the ambience controller with saved preferences
// applied. Playback does not start here; call Resume for that.
func NewAmbience(store *storage.Prefs, onEnabled func(), onUnavailable func(msg string)) *Ambience {
	saved := storage.DefaultAudioPrefs()
	if store != nil {
		store.Load(storage.KeyAudio, &saved)
	}
	saved = storage.SanitizeAudio(saved)

	return &Ambience{
		store:         store,
		volume:        saved.Volume,
		wasPlaying:    saved.WasPlaying,
		onEnabled:     onEnabled,
		onUnavailable: onUnavailable,
	}
}

// Resume restarts playback if the soundscape was playing when the app
// last closed. The -mute flag skips the call entirely.
func (a *Ambience) Resume() {
	a.mu.Lock()
	resume := a.wasPlaying
	a.mu.Unlock()

	if resume {
		a.SetPlaying(true)
	}
}

// Playing reports whether the soundscape is currently audible
func (a *Ambience) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

// Volume returns the current volume in [0, 1]
func (a *Ambience) Volume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.volume
}

// SetVolume adjusts playback volume, clamped to [0, 1], and persists it
func (a *Ambience) SetVolume(volume float64) {
	if volume < 0 || math.IsNaN(volume) {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.volume = volume
	if a.player != nil {
		a.player.SetVolume(volume)
	}
	a.persistLocked()
}

// SetPlaying starts or pauses the soundscape. The player and audio
// context are created lazily on the first start so a muted session never
// opens the audio device.
func (a *Ambience) SetPlaying(playing bool) {
	var notify func()
	var unavailable func(string)

	a.mu.Lock()
	switch {
	case playing == a.playing:
		// no-op

	case !playing:
		if a.player != nil {
			a.player.Pause()
		}
		a.playing = false
		a.persistLocked()

	default:
		if a.player == nil {
			ctx, err := ensureOtoContext()
			if err != nil {
				unavailable = a.onUnavailable
				a.mu.Unlock()
				log.Printf("[Audio] ambient soundscape unavailable: %v", err)
				if unavailable != nil {
					unavailable("Audio is not available on this system")
				}
				return
			}
			player := ctx.NewPlayer(newPadStream())
			// Set volume before Play() to avoid a pop on the first frames
			player.SetVolume(a.volume)
			a.player = player
		}
		a.player.Play()
		a.playing = true
		a.persistLocked()
		notify = a.onEnabled
	}
	a.mu.Unlock()

	// Invoke outside the lock: the unlock path re-enters UI code
	if notify != nil {
		notify()
	}
}

// persistLocked saves the audio preferences. Caller holds a.mu.
func (a *Ambience) persistLocked() {
	if a.store == nil {
		return
	}
	a.store.Save(storage.KeyAudio, storage.AudioPrefs{
		Volume:     a.volume,
		WasPlaying: a.playing,
	})
}

// Close releases the audio player. Saved preferences are left untouched
// so a session that ends while playing resumes playing next launch.
func (a *Ambience) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.player != nil {
		a.player.Close()
		a.player = nil
	}
	a.playing = false
}
