package config

import (
	_ "embed"
)

//go:embed defaults/smasher.yaml
var defaultSmashYAML []byte

// DefaultSmashConfig returns the built-in configuration. It mirrors
// defaults/smasher.yaml and is used when the embedded file cannot be parsed.
func DefaultSmashConfig() SmashConfig {
	return SmashConfig{
		Field: FieldConfig{
			Width:  240,
			Height: 160,
		},
		Actor: SpriteConfig{
			Width:  12,
			Height: 12,
		},
		Obstacles: ObstacleConfig{
			Width:        16,
			Height:       16,
			Speeds:       []int{1, 2},
			InitialCount: 3,
		},
		Round: RoundConfig{
			TimeLimitMs: 120000,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
