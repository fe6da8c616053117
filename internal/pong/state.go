package pong

import (
	"time"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Phase is the match lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// SlotState is the state of the single power-up slot.
type SlotState int

const (
	SlotEmpty   SlotState = iota
	SlotSpawned           // Pickup visible on the field
	SlotActive            // Effect running until ExpiresAt
)

// Slot is the power-up slot. Spawned and active are mutually exclusive, so
// at most one power-up exists at a time.
type Slot struct {
	State SlotState
	Kind  PowerUpKind

	// Spawned
	X, Y float64

	// Active
	ExpiresAt time.Duration // Match clock value at which the effect ends
	RestoreH  float64       // Paddle height before a grow was applied
	Factor    float64       // Ball velocity multiplier that was applied
}

// MatchState is the complete simulation state. It is a plain value; Step
// takes one and returns the next.
type MatchState struct {
	Phase  Phase
	Winner Side

	PlayerY float64 // Top edge of the player paddle
	AIY     float64 // Top edge of the AI paddle
	PaddleH float64 // Shared height of both paddles

	BallX, BallY   float64
	BallVX, BallVY float64

	PlayerScore int
	AIScore     int

	Slot Slot

	Clock time.Duration // Elapsed match time
	Tick  uint64
	RNG   SimpleRNG
}

// NewState returns a running match with centered paddles, zero scores and
// the first serve towards the AI.
func NewState(p Params, seed int64) MatchState {
	s := MatchState{
		Phase:   PhaseRunning,
		PaddleH: p.BasePaddleH,
		RNG:     NewRNG(seed),
	}
	s.PlayerY = p.FieldH/2 - s.PaddleH/2
	s.AIY = s.PlayerY
	s.resetBall(p, SidePlayer)
	return s
}

// resetBall centers the ball and serves it. After a player point (and on the
// opening serve) the ball travels right, after an AI point it travels left.
// The vertical direction is random.
func (s *MatchState) resetBall(p Params, scorer Side) {
	s.BallX = p.FieldW / 2
	s.BallY = p.FieldH / 2
	s.BallVX = p.BallBaseVX
	if scorer == SideAI {
		s.BallVX = -p.BallBaseVX
	}
	s.BallVY = p.BallBaseVY
	if s.RNG.Float64() <= 0.5 {
		s.BallVY = -p.BallBaseVY
	}
}

// clampPaddles keeps both paddles inside [0, FieldH-PaddleH].
func (s *MatchState) clampPaddles(p Params) {
	maxY := p.FieldH - s.PaddleH
	s.PlayerY = core.ClampF(s.PlayerY, 0, maxY)
	s.AIY = core.ClampF(s.AIY, 0, maxY)
}
