package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  900,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  18,
			Height: 110,
			Inset:  32,
		},
		Ball: BallConfig{
			Radius: 13,
			Spin:   0.18,
		},
		AI: AIConfig{
			Jitter:   13,
			DeadZone: 16,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:  0.008,
			PickupRadius: 22,
			DurationMS:   4000,
			SpawnMinX:    0.2,
			SpawnMaxX:    0.8,
			SpawnMinY:    0.15,
			SpawnMaxY:    0.85,
			GrowFactor:   1.5,
			SlowFactor:   0.5,
			FastFactor:   1.7,
		},
		Gameplay: GameplayConfig{
			TargetScore:    5,
			LeaderboardTop: 7,
		},
		Player: PlayerConfig{
			Name: "Razal-Loop",
			Tag:  "The Addictive Game Experience!",
		},
		Difficulties: DefaultDifficulties(),
	}
}

// DefaultDifficulties returns the easy, medium and hard presets.
func DefaultDifficulties() []DifficultyProfile {
	return []DifficultyProfile{
		{Name: DifficultyEasy, AISpeed: 3, BallBaseVX: 6, BallBaseVY: 3},
		{Name: DifficultyMedium, AISpeed: 5, BallBaseVX: 7, BallBaseVY: 4},
		{Name: DifficultyHard, AISpeed: 9, BallBaseVX: 10, BallBaseVY: 6},
	}
}
