package achievements

import "math"

// UnlockChime synthesizes the short chime played on unlock, as 48kHz
// stereo S16LE PCM ready for the audio player.
func UnlockChime() []byte {
	sampleRate := 48000
	duration := 0.7
	numSamples := int(float64(sampleRate) * duration)

	// Rising D major arpeggio (D4, F#4, A4) with a soft octave shimmer
	notes := []struct {
		freq   float64
		start  float64
		volume float64
	}{
		{293.66, 0.0, 0.4},
		{369.99, 0.09, 0.3},
		{440.00, 0.18, 0.3},
	}

	samples := make([]byte, numSamples*4) // 2 bytes * 2 channels

	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		sample := 0.0

		for _, note := range notes {
			if t < note.start {
				continue
			}

			noteT := t - note.start
			attackTime := 0.04
			decayTime := 0.5
			var envelope float64

			if noteT < attackTime {
				envelope = (1 - math.Cos(math.Pi*noteT/attackTime)) / 2
			} else {
				envelope = math.Exp(-2.8 * (noteT - attackTime) / decayTime)
			}

			fundamental := math.Sin(2 * math.Pi * note.freq * noteT)
			shimmer := math.Sin(2*math.Pi*note.freq*2*noteT) * 0.2
			sample += (fundamental + shimmer) * envelope * note.volume
		}

		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}

		value := int16(sample * 11000)

		idx := i * 4
		samples[idx] = byte(value)
		samples[idx+1] = byte(value >> 8)
		samples[idx+2] = byte(value)
		samples[idx+3] = byte(value >> 8)
	}

	return samples
}
