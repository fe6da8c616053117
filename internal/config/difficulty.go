package config

import (
	"errors"
	"fmt"
	"strings"
)

// Preset names.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ErrUnknownDifficulty is returned when a preset name is not configured.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Profile returns the preset with the given name (case-insensitive).
func (c PongConfig) Profile(name string) (DifficultyProfile, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range c.Difficulties {
		if strings.ToLower(p.Name) == want {
			return p, nil
		}
	}
	return DifficultyProfile{}, fmt.Errorf("config: %w %q", ErrUnknownDifficulty, name)
}

// DifficultyNames lists configured presets in declaration order.
func (c PongConfig) DifficultyNames() []string {
	names := make([]string, 0, len(c.Difficulties))
	for _, p := range c.Difficulties {
		names = append(names, p.Name)
	}
	return names
}
