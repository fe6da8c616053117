package pong

import (
	"time"

	"github.com/vovakirdan/neon-pong/internal/config"
)

// Params are the fixed inputs of a match: field geometry, rules and the
// difficulty profile selected at start. They never change while a match runs.
type Params struct {
	FieldW, FieldH float64

	PaddleW     float64
	BasePaddleH float64
	PlayerX     float64 // Left edge of the player paddle
	AIX         float64 // Left edge of the AI paddle

	BallR float64
	Spin  float64

	Difficulty string
	AISpeed    float64
	BallBaseVX float64
	BallBaseVY float64
	AIJitter   float64
	AIDeadZone float64

	SpawnChance  float64
	PickupRadius float64
	SpawnMinX    float64
	SpawnMaxX    float64
	SpawnMinY    float64
	SpawnMaxY    float64
	PowerUpTime  time.Duration
	GrowFactor   float64
	SlowFactor   float64
	FastFactor   float64

	TargetScore  int
	TickDuration time.Duration

	PlayerName string
	PlayerTag  string
}

// NewParams derives match parameters from the configuration and a profile.
// tickRate is the number of ticks per second; values <= 0 mean 60.
func NewParams(cfg config.PongConfig, profile config.DifficultyProfile, tickRate int) Params {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Params{
		FieldW:       cfg.Field.Width,
		FieldH:       cfg.Field.Height,
		PaddleW:      cfg.Paddle.Width,
		BasePaddleH:  cfg.Paddle.Height,
		PlayerX:      cfg.Paddle.Inset,
		AIX:          cfg.Field.Width - cfg.Paddle.Width - cfg.Paddle.Inset,
		BallR:        cfg.Ball.Radius,
		Spin:         cfg.Ball.Spin,
		Difficulty:   profile.Name,
		AISpeed:      profile.AISpeed,
		BallBaseVX:   profile.BallBaseVX,
		BallBaseVY:   profile.BallBaseVY,
		AIJitter:     cfg.AI.Jitter,
		AIDeadZone:   cfg.AI.DeadZone,
		SpawnChance:  cfg.PowerUps.SpawnChance,
		PickupRadius: cfg.PowerUps.PickupRadius,
		SpawnMinX:    cfg.PowerUps.SpawnMinX,
		SpawnMaxX:    cfg.PowerUps.SpawnMaxX,
		SpawnMinY:    cfg.PowerUps.SpawnMinY,
		SpawnMaxY:    cfg.PowerUps.SpawnMaxY,
		PowerUpTime:  cfg.PowerUps.Duration(),
		GrowFactor:   cfg.PowerUps.GrowFactor,
		SlowFactor:   cfg.PowerUps.SlowFactor,
		FastFactor:   cfg.PowerUps.FastFactor,
		TargetScore:  cfg.Gameplay.TargetScore,
		TickDuration: time.Second / time.Duration(tickRate),
		PlayerName:   cfg.Player.Name,
		PlayerTag:    cfg.Player.Tag,
	}
}

// factor returns the multiplier a power-up kind applies.
func (p Params) factor(k PowerUpKind) float64 {
	switch k {
	case PowerUpPaddleGrow:
		return p.GrowFactor
	case PowerUpBallSlow:
		return p.SlowFactor
	case PowerUpBallFast:
		return p.FastFactor
	default:
		return 1
	}
}
