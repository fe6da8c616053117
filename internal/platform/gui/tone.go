package gui

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/vovakirdan/neon-pong/internal/sfx"
)

// SampleRate of generated cues.
const SampleRate = 44100

// tone describes the beep played for a cue.
type tone struct {
	freq float64
	dur  time.Duration
}

var tones = map[sfx.Sound]tone{
	sfx.SoundBounce:  {freq: 660, dur: 40 * time.Millisecond},
	sfx.SoundScore:   {freq: 220, dur: 250 * time.Millisecond},
	sfx.SoundPowerUp: {freq: 990, dur: 120 * time.Millisecond},
}

// squareWave renders a square wave as 16-bit little-endian stereo PCM, the
// format ebiten's audio players expect. The last few milliseconds fade out
// to avoid a click.
func squareWave(freq float64, dur time.Duration, rate int) []byte {
	n := int(dur.Seconds() * float64(rate))
	if n <= 0 || freq <= 0 {
		return nil
	}
	const amplitude = 0.15 * math.MaxInt16
	fade := rate / 200

	buf := make([]byte, n*4)
	for i := range n {
		phase := math.Mod(float64(i)*freq/float64(rate), 1)
		v := amplitude
		if phase >= 0.5 {
			v = -amplitude
		}
		if rest := n - i; rest < fade {
			v *= float64(rest) / float64(fade)
		}
		s := uint16(int16(v))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
