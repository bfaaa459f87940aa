package config

import (
	_ "embed"
)

//go:embed defaults/coconuts.yaml
var defaultCoconutsYAML []byte

// DefaultCoconutsConfig returns the default Oh Coconuts configuration.
func DefaultCoconutsConfig() CoconutsConfig {
	return CoconutsConfig{
		Field: FieldConfig{
			Width:       600,
			Height:      620,
			BeachHeight: 100, // Beach line at 520
		},
		Timing: TimingConfig{
			TickRate:     30,
			DropInterval: 10,
			MaxTicks:     100,
		},
		Motion: MotionConfig{
			CoconutFall: 5,
			LaserRise:   10,
			CrabStep:    10,
		},
		Combat: CombatConfig{
			Proximity:     35,
			CrabDamage:    5,
			InitialHealth: 50,
			EyeOffsetX:    25,
			EyeOffsetY:    25,
		},
		Sprites: SpritesConfig{
			CrabWidth:    50,
			CoconutWidth: 50,
			LaserWidth:   10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCoconutsYAML
}
