// Package config provides YAML-based configuration loading for the smasher.
package config

import (
	"errors"
	"fmt"
)

// SmashConfig contains all tunable parameters of a round.
type SmashConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Actor     SpriteConfig   `yaml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Round     RoundConfig    `yaml:"round"`
	Audio     AudioConfig    `yaml:"audio"`
}

// FieldConfig defines the logical play-field in pixels. Entity positions are
// tracked in this space regardless of the terminal size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpriteConfig defines a sprite's bounding box.
type SpriteConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines asteroid parameters.
type ObstacleConfig struct {
	Width        int   `yaml:"width"`
	Height       int   `yaml:"height"`
	Speeds       []int `yaml:"speeds"`        // Allowed velocity magnitudes; sign is drawn separately
	InitialCount int   `yaml:"initial_count"` // Spawn target at round start
}

// RoundConfig defines the round timer.
type RoundConfig struct {
	TimeLimitMs int `yaml:"time_limit_ms"`
}

// AudioConfig defines the optional sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable round.
func (c SmashConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size must be positive, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		return fmt.Errorf("%w: actor size must be positive, got %dx%d", ErrInvalidConfig, c.Actor.Width, c.Actor.Height)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		return fmt.Errorf("%w: obstacle size must be positive, got %dx%d", ErrInvalidConfig, c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.Width >= c.Field.Width || c.Obstacles.Height >= c.Field.Height {
		return fmt.Errorf("%w: obstacle %dx%d does not fit the %dx%d field", ErrInvalidConfig,
			c.Obstacles.Width, c.Obstacles.Height, c.Field.Width, c.Field.Height)
	}
	if len(c.Obstacles.Speeds) == 0 {
		return fmt.Errorf("%w: obstacles.speeds is empty", ErrInvalidConfig)
	}
	for _, s := range c.Obstacles.Speeds {
		if s <= 0 {
			return fmt.Errorf("%w: obstacle speed must be positive, got %d", ErrInvalidConfig, s)
		}
		if s > c.Obstacles.Width || s > c.Obstacles.Height {
			return fmt.Errorf("%w: obstacle speed %d exceeds sprite size", ErrInvalidConfig, s)
		}
	}
	if c.Obstacles.InitialCount <= 0 {
		return fmt.Errorf("%w: obstacles.initial_count must be positive, got %d", ErrInvalidConfig, c.Obstacles.InitialCount)
	}
	if c.Round.TimeLimitMs <= 0 {
		return fmt.Errorf("%w: round.time_limit_ms must be positive, got %d", ErrInvalidConfig, c.Round.TimeLimitMs)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}
