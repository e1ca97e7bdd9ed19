package sandbox

import (
	"fmt"
	"strconv"

	"sandfall/internal/core"
)

// HUDStats reports the live counters shown at the top of the HUD panel.
func (w *World) HUDStats() []string {
	wind := "off"
	switch w.cfg.Wind {
	case 1:
		wind = "right"
	case -1:
		wind = "left"
	}
	gravity := "down"
	if w.cfg.Gravity < 0 {
		gravity = "up"
	}
	return []string{
		fmt.Sprintf("particles: %d", w.grid.SandCount()),
		fmt.Sprintf("actors: %d", len(w.actors)),
		fmt.Sprintf("wind: %s  gravity: %s", wind, gravity),
		fmt.Sprintf("time: %.1fs", w.elapsed),
	}
}

// Parameters reports the current tunables for HUD display.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("gravity", "Gravity sign", w.cfg.Gravity),
				intParam("wind", "Wind direction", w.cfg.Wind),
			},
		},
		{
			Name: "Sand",
			Params: []core.Parameter{
				floatParam("slide_chance", "Slide chance", p.SlideChance),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("fire_spread_chance", "Fire spread chance", p.FireSpreadChance),
				floatParam("fire_drift_chance", "Fire drift chance", p.FireDriftChance),
				floatParam("fire_decay_chance", "Fire decay chance", p.FireDecayChance),
				floatParam("fire_flicker_chance", "Fire flicker chance", p.FireFlickerChance),
			},
		},
		{
			Name: "Actors",
			Params: []core.Parameter{
				floatParam("gravity_accel", "Gravity accel", p.GravityAccel),
				floatParam("terminal_velocity", "Terminal velocity", p.TerminalVelocity),
				intParam("walk_interval", "Walk interval", p.WalkInterval),
				floatParam("burn_cutoff", "Burn cutoff (s)", p.BurnCutoff),
			},
		},
		{
			Name: "Walls",
			Params: []core.Parameter{
				intParam("wall_brush_radius", "Wall brush radius", p.WallBrushRadius),
				floatParam("wall_link_dist", "Wall link distance", p.WallLinkDist),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "slide_chance", Label: "Slide chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "fire_spread_chance", Label: "Fire spread", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "fire_decay_chance", Label: "Fire decay", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "walk_interval", Label: "Walk interval", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 30, HasMin: true, HasMax: true},
		{Key: "wall_link_dist", Label: "Wall link dist", Type: core.ParamTypeFloat, Step: 2, Min: 0, Max: 200, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable by key, clamping percent-style
// values above 1 into [0, 1] for the chance parameters.
func (w *World) SetFloatParameter(key string, value float64) bool {
	chance := func(v float64) float64 {
		if v > 1 {
			v = v / 100
		}
		if v > 1 {
			v = 1
		}
		if v < 0 {
			v = 0
		}
		return v
	}
	switch key {
	case "slide_chance":
		w.cfg.Params.SlideChance = chance(value)
	case "fire_spread_chance":
		w.cfg.Params.FireSpreadChance = chance(value)
	case "fire_drift_chance":
		w.cfg.Params.FireDriftChance = chance(value)
	case "fire_decay_chance":
		w.cfg.Params.FireDecayChance = chance(value)
	case "fire_flicker_chance":
		w.cfg.Params.FireFlickerChance = chance(value)
	case "gravity_accel":
		if value < 0 {
			return false
		}
		w.cfg.Params.GravityAccel = value
	case "terminal_velocity":
		if value <= 0 {
			return false
		}
		w.cfg.Params.TerminalVelocity = value
	case "burn_cutoff":
		if value < 0 {
			return false
		}
		w.cfg.Params.BurnCutoff = value
	case "wall_link_dist":
		if value < 0 {
			return false
		}
		w.cfg.Params.WallLinkDist = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable by key.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "walk_interval":
		if value < 1 {
			value = 1
		}
		w.cfg.Params.WalkInterval = value
	case "burn_walk_interval":
		if value < 1 {
			value = 1
		}
		w.cfg.Params.BurnWalkInterval = value
	case "wall_brush_radius":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.WallBrushRadius = value
	case "wind":
		w.SetWind(value)
	case "gravity":
		w.SetGravity(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
