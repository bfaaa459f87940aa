// Package config provides YAML-based configuration loading for the
// coconuts simulation and its terminal front-end.
package config

// CoconutsConfig contains all configuration for the Oh Coconuts game.
type CoconutsConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Timing  TimingConfig  `yaml:"timing"`
	Motion  MotionConfig  `yaml:"motion"`
	Combat  CombatConfig  `yaml:"combat"`
	Sprites SpritesConfig `yaml:"sprites"`
}

// FieldConfig defines the playing field in abstract field units.
type FieldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	BeachHeight int `yaml:"beach_height"` // Bottom strip; its top edge is the beach line
}

// SkyHeight returns the height of the playable sky above the beach.
func (f FieldConfig) SkyHeight() int {
	return f.Height - f.BeachHeight
}

// TimingConfig defines the tick-based schedule.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`     // Ticks per second for the front-end driver
	DropInterval int `yaml:"drop_interval"` // A coconut may drop every N ticks
	MaxTicks     int `yaml:"max_ticks"`     // Earliest tick a round may end; it ends once no coconut is in flight
}

// MotionConfig defines per-tick movement in field units.
type MotionConfig struct {
	CoconutFall int `yaml:"coconut_fall"`
	LaserRise   int `yaml:"laser_rise"`
	CrabStep    int `yaml:"crab_step"` // Per key press
}

// CombatConfig defines collision and scoring parameters.
type CombatConfig struct {
	Proximity     int `yaml:"proximity"` // Max |dx| and |dy| for two entities to touch
	CrabDamage    int `yaml:"crab_damage"`
	InitialHealth int `yaml:"initial_health"`
	EyeOffsetX    int `yaml:"eye_offset_x"` // Laser spawn offset from the crab
	EyeOffsetY    int `yaml:"eye_offset_y"`
}

// SpritesConfig defines entity widths in field units.
type SpritesConfig struct {
	CrabWidth    int `yaml:"crab_width"`
	CoconutWidth int `yaml:"coconut_width"`
	LaserWidth   int `yaml:"laser_width"`
}
