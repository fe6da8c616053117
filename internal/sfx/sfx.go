// Package sfx maps simulation events to sound cues and plays them through a
// front-end specific Player. Playback is best-effort.
package sfx

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/pong"
)

// Sound is a sound cue.
type Sound int

const (
	SoundBounce Sound = iota
	SoundScore
	SoundPowerUp
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundScore:
		return "score"
	case SoundPowerUp:
		return "powerup"
	default:
		return fmt.Sprintf("sound(%d)", int(s))
	}
}

// Player plays a cue. Implementations should return quickly.
type Player interface {
	Play(Sound) error
}

// ForEvent returns the cue for an event, if any.
func ForEvent(ev pong.Event) (Sound, bool) {
	switch e := ev.(type) {
	case pong.BounceEvent:
		return SoundBounce, true
	case pong.ScoreEvent:
		return SoundScore, true
	case pong.PowerUpEvent:
		if e.Change == pong.PowerUpActivated {
			return SoundPowerUp, true
		}
	}
	return 0, false
}

// Dispatch plays the cues for events. Failures are logged at debug level
// and otherwise ignored.
func Dispatch(events []pong.Event, p Player, logger *log.Logger) {
	if p == nil {
		return
	}
	for _, ev := range events {
		s, ok := ForEvent(ev)
		if !ok {
			continue
		}
		if err := p.Play(s); err != nil && logger != nil {
			logger.Debug("Sound playback failed", "sound", s, "error", err)
		}
	}
}

// Bell rings the terminal bell. Only score and power-up cues ring; bounces
// would be too noisy at terminal volume.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL for score and power-up cues.
func (b *Bell) Play(s Sound) error {
	if s == SoundBounce {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sound) error { return nil }
