// Package config provides YAML/TOML game configuration loading and the
// difficulty presets for Neon Pong.
package config

import "time"

// PongConfig contains all tunable parameters of a match.
type PongConfig struct {
	Field        FieldConfig         `yaml:"field" toml:"field"`
	Paddle       PaddleConfig        `yaml:"paddle" toml:"paddle"`
	Ball         BallConfig          `yaml:"ball" toml:"ball"`
	AI           AIConfig            `yaml:"ai" toml:"ai"`
	PowerUps     PowerUpConfig       `yaml:"powerups" toml:"powerups"`
	Gameplay     GameplayConfig      `yaml:"gameplay" toml:"gameplay"`
	Player       PlayerConfig        `yaml:"player" toml:"player"`
	Difficulties []DifficultyProfile `yaml:"difficulties" toml:"difficulties"`
}

// FieldConfig defines the logical play field in field units (pixels in the
// browser and desktop front ends).
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Inset  float64 `yaml:"inset" toml:"inset"` // Gap between the side wall and the paddle
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Spin   float64 `yaml:"spin" toml:"spin"` // VY added per unit of off-center paddle contact
}

// AIConfig defines how the opponent tracks the ball.
type AIConfig struct {
	Jitter   float64 `yaml:"jitter" toml:"jitter"`       // Target is ballY +/- Jitter
	DeadZone float64 `yaml:"dead_zone" toml:"dead_zone"` // No movement while this close to target
}

// PowerUpConfig defines spawning and effects of power-ups.
type PowerUpConfig struct {
	SpawnChance  float64 `yaml:"spawn_chance" toml:"spawn_chance"` // Per tick, while the slot is empty
	PickupRadius float64 `yaml:"pickup_radius" toml:"pickup_radius"`
	DurationMS   int     `yaml:"duration_ms" toml:"duration_ms"`
	SpawnMinX    float64 `yaml:"spawn_min_x" toml:"spawn_min_x"` // Fractions of the field
	SpawnMaxX    float64 `yaml:"spawn_max_x" toml:"spawn_max_x"`
	SpawnMinY    float64 `yaml:"spawn_min_y" toml:"spawn_min_y"`
	SpawnMaxY    float64 `yaml:"spawn_max_y" toml:"spawn_max_y"`
	GrowFactor   float64 `yaml:"grow_factor" toml:"grow_factor"`
	SlowFactor   float64 `yaml:"slow_factor" toml:"slow_factor"`
	FastFactor   float64 `yaml:"fast_factor" toml:"fast_factor"`
}

// Duration returns how long an activated power-up stays in effect.
func (p PowerUpConfig) Duration() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	TargetScore    int    `yaml:"target_score" toml:"target_score"`
	LeaderboardTop int    `yaml:"leaderboard_top" toml:"leaderboard_top"`
	Difficulty     string `yaml:"difficulty" toml:"difficulty"` // Preselected preset, empty shows the picker
}

// PlayerConfig is the identity shown above the player paddle and stored in
// leaderboard entries.
type PlayerConfig struct {
	Name string `yaml:"name" toml:"name"`
	Tag  string `yaml:"tag" toml:"tag"`
}

// DifficultyProfile is a named preset fixed at match start.
type DifficultyProfile struct {
	Name       string  `yaml:"name" toml:"name"`
	AISpeed    float64 `yaml:"ai_speed" toml:"ai_speed"`
	BallBaseVX float64 `yaml:"ball_vx" toml:"ball_vx"`
	BallBaseVY float64 `yaml:"ball_vy" toml:"ball_vy"`
}
