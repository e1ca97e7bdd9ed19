package sandbox

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunable probabilities and motion constants of the sandbox.
type Params struct {
	// Granular motion.
	SlideChance float64 `yaml:"slide_chance"`

	// Fire behavior.
	FireSpreadChance  float64 `yaml:"fire_spread_chance"`
	FireDriftChance   float64 `yaml:"fire_drift_chance"`
	FireDecayChance   float64 `yaml:"fire_decay_chance"`
	FireFlickerChance float64 `yaml:"fire_flicker_chance"`

	// Actor motion.
	GravityAccel     float64 `yaml:"gravity_accel"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	WalkInterval     int     `yaml:"walk_interval"`
	BurnWalkInterval int     `yaml:"burn_walk_interval"`
	BurnCutoff       float64 `yaml:"burn_cutoff"`

	// Wall drawing.
	WallBrushRadius int     `yaml:"wall_brush_radius"`
	WallLinkDist    float64 `yaml:"wall_link_dist"`
}

// Config controls the sandbox dimensions, timing, and environment.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// TPS is the fixed simulation tick rate; MaxTicksPerFrame bounds how
	// many ticks a single Advance call may run.
	TPS              int `yaml:"tps"`
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"`

	// Gravity is +1 for downward gravity, -1 for reverse gravity.
	Gravity int `yaml:"gravity"`

	// Wind is 0 when disabled, otherwise ±1 for the push direction.
	Wind int `yaml:"wind"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            320,
		Height:           240,
		Seed:             1337,
		TPS:              55,
		MaxTicksPerFrame: 5,
		Gravity:          1,
		Wind:             0,
		Params: Params{
			SlideChance:       0.3,
			FireSpreadChance:  0.08,
			FireDriftChance:   0.4,
			FireDecayChance:   0.005,
			FireFlickerChance: 0.75,
			GravityAccel:      0.35,
			TerminalVelocity:  3.0,
			WalkInterval:      3,
			BurnWalkInterval:  1,
			BurnCutoff:        7.0,
			WallBrushRadius:   1,
			WallLinkDist:      24,
		},
	}
}

// Load reads a YAML config file, applying it over the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// Save writes the config as YAML to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). A "config" key names a YAML file loaded before the other
// overrides apply.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if path, ok := cfg["config"]; ok && path != "" {
		if loaded, err := Load(path); err == nil {
			c = loaded
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["wind"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Wind = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Gravity = parsed
		}
	}
	if v, ok := cfg["slide_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SlideChance = parsed
		}
	}
	if v, ok := cfg["fire_spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.FireSpreadChance = parsed
		}
	}
	if v, ok := cfg["fire_decay_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.FireDecayChance = parsed
		}
	}
	if v, ok := cfg["wall_link_dist"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WallLinkDist = parsed
		}
	}
	return c.normalized()
}

// normalized clamps config fields to usable values.
func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.TPS <= 0 {
		c.TPS = 55
	}
	if c.MaxTicksPerFrame <= 0 {
		c.MaxTicksPerFrame = 5
	}
	if c.Gravity >= 0 {
		c.Gravity = 1
	} else {
		c.Gravity = -1
	}
	if c.Wind > 0 {
		c.Wind = 1
	} else if c.Wind < 0 {
		c.Wind = -1
	}
	if c.Params.WalkInterval <= 0 {
		c.Params.WalkInterval = 1
	}
	if c.Params.BurnWalkInterval <= 0 {
		c.Params.BurnWalkInterval = 1
	}
	if c.Params.TerminalVelocity <= 0 {
		c.Params.TerminalVelocity = 1
	}
	if c.Params.WallBrushRadius < 0 {
		c.Params.WallBrushRadius = 0
	}
	return c
}
