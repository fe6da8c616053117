package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the Pong configuration.
// Search order: customPath -> ~/.neonpong/pong.yaml -> ~/.neonpong/pong.toml
// -> ./configs/pong.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (PongConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath("pong.yaml"),
		userConfigPath("pong.toml"),
		filepath.Join("configs", "pong.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := decode("pong.yaml", defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil
	}
	return cfg, nil
}

// decode parses data as TOML when path ends in .toml and as YAML otherwise,
// on top of the built-in defaults.
func decode(path string, data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	cfg.Difficulties = nil

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return PongConfig{}, err
	}
	if len(cfg.Difficulties) == 0 {
		cfg.Difficulties = DefaultDifficulties()
	}
	return cfg, nil
}

// Validate reports settings that would make a match unplayable.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Height <= 0 || c.Paddle.Height >= c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle height %v must be within the field", c.Paddle.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive"))
	}
	if c.Gameplay.TargetScore <= 0 {
		errs = append(errs, fmt.Errorf("target score must be positive"))
	}
	if c.PowerUps.SlowFactor <= 0 || c.PowerUps.FastFactor <= 0 || c.PowerUps.GrowFactor <= 0 {
		errs = append(errs, fmt.Errorf("power-up factors must be positive"))
	} else if grown := c.Paddle.Height * c.PowerUps.GrowFactor; grown >= c.Field.Height {
		errs = append(errs, fmt.Errorf("grown paddle height %v must be within the field", grown))
	}
	if c.Gameplay.Difficulty != "" {
		if _, err := c.Profile(c.Gameplay.Difficulty); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonpong", filename)
}
