package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadCoconuts loads the game configuration.
// Search order: customPath -> ~/.coconuts/configs/coconuts.yaml -> ./configs/coconuts.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadCoconuts(customPath string) (CoconutsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CoconutsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CoconutsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("coconuts.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "coconuts.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCoconutsYAML)
	if err != nil {
		return DefaultCoconutsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (CoconutsConfig, error) {
	cfg := DefaultCoconutsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CoconutsConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CoconutsConfig{}, err
	}
	return cfg, nil
}

// Encode renders the configuration as YAML.
func Encode(cfg CoconutsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable field.
func (c CoconutsConfig) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"field.beach_height", c.Field.BeachHeight},
		{"timing.tick_rate", c.Timing.TickRate},
		{"timing.drop_interval", c.Timing.DropInterval},
		{"timing.max_ticks", c.Timing.MaxTicks},
		{"motion.coconut_fall", c.Motion.CoconutFall},
		{"motion.laser_rise", c.Motion.LaserRise},
		{"motion.crab_step", c.Motion.CrabStep},
		{"combat.proximity", c.Combat.Proximity},
		{"combat.crab_damage", c.Combat.CrabDamage},
		{"combat.initial_health", c.Combat.InitialHealth},
		{"sprites.crab_width", c.Sprites.CrabWidth},
		{"sprites.coconut_width", c.Sprites.CoconutWidth},
		{"sprites.laser_width", c.Sprites.LaserWidth},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.v)
		}
	}

	if c.Field.BeachHeight >= c.Field.Height {
		return fmt.Errorf("%w: field.beach_height %d leaves no sky in a field of height %d",
			ErrInvalid, c.Field.BeachHeight, c.Field.Height)
	}
	if c.Sprites.CrabWidth > c.Field.Width {
		return fmt.Errorf("%w: sprites.crab_width %d exceeds field.width %d",
			ErrInvalid, c.Sprites.CrabWidth, c.Field.Width)
	}
	if c.Combat.EyeOffsetX < 0 || c.Combat.EyeOffsetY < 0 {
		return fmt.Errorf("%w: combat eye offsets must not be negative", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coconuts", "configs", filename)
}
