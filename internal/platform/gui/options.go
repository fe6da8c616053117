// Package gui is the desktop front end, a window drawn with ebiten. Builds
// without the ebiten tag get a Run that returns ErrNoGUI.
package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/pong"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("gui: built without the 'ebiten' tag")

// Options configures the desktop window.
type Options struct {
	Config   config.PongConfig
	Board    *leaderboard.Board
	Results  pong.ResultRecorder
	TickRate int
	Seed     int64
	Scale    float64 // Window size relative to the field
	Mute     bool
	Logger   *log.Logger
}

func (o Options) normalize() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

func (o Options) matchOptions() []pong.Option {
	opts := []pong.Option{
		pong.WithSeed(o.Seed),
		pong.WithTickRate(o.TickRate),
		pong.WithLogger(o.Logger),
	}
	if o.Board != nil {
		opts = append(opts, pong.WithRecorder(o.Board))
	}
	if o.Results != nil {
		opts = append(opts, pong.WithResults(o.Results))
	}
	return opts
}
