//go:build ebiten

package gui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/neon-pong/internal/sfx"
)

// beeper plays generated tones through an ebiten audio context.
type beeper struct {
	ctx   *audio.Context
	clips map[sfx.Sound][]byte

	mu      sync.Mutex
	playing []*audio.Player // referenced until finished so they are not collected
}

func newBeeper() *beeper {
	b := &beeper{
		ctx:   audio.NewContext(SampleRate),
		clips: make(map[sfx.Sound][]byte, len(tones)),
	}
	for s, t := range tones {
		b.clips[s] = squareWave(t.freq, t.dur, SampleRate)
	}
	return b
}

func (b *beeper) Play(s sfx.Sound) error {
	clip, ok := b.clips[s]
	if !ok {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	live := b.playing[:0]
	for _, p := range b.playing {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	p := b.ctx.NewPlayerFromBytes(clip)
	p.Play()
	b.playing = append(live, p)
	return nil
}
