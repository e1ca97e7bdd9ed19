package sandbox

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TPS != 55 {
		t.Fatalf("expected 55 TPS, got %d", cfg.TPS)
	}
	if cfg.MaxTicksPerFrame != 5 {
		t.Fatalf("expected tick cap 5, got %d", cfg.MaxTicksPerFrame)
	}
	if cfg.Gravity != 1 {
		t.Fatalf("expected downward gravity, got %d", cfg.Gravity)
	}
	if math.Abs(cfg.Params.SlideChance-0.3) > 1e-9 {
		t.Fatalf("expected slide chance 0.3, got %f", cfg.Params.SlideChance)
	}
	if math.Abs(cfg.Params.FireSpreadChance-0.08) > 1e-9 {
		t.Fatalf("expected fire spread chance 0.08, got %f", cfg.Params.FireSpreadChance)
	}
	if math.Abs(cfg.Params.BurnCutoff-7.0) > 1e-9 {
		t.Fatalf("expected 7s burn cutoff, got %f", cfg.Params.BurnCutoff)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "64",
		"h":            "48",
		"seed":         "7",
		"slide_chance": "0.5",
		"wind":         "-3",
		"gravity":      "-1",
	})
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Fatalf("dimensions not applied: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed not applied: %d", cfg.Seed)
	}
	if math.Abs(cfg.Params.SlideChance-0.5) > 1e-9 {
		t.Fatalf("slide chance not applied: %f", cfg.Params.SlideChance)
	}
	if cfg.Wind != -1 {
		t.Fatalf("wind must normalize to -1, got %d", cfg.Wind)
	}
	if cfg.Gravity != -1 {
		t.Fatalf("gravity not applied: %d", cfg.Gravity)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "not-a-number",
		"h":            "-10",
		"slide_chance": "-1",
	})
	def := DefaultConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Fatalf("invalid dimensions must keep defaults, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.SlideChance != def.Params.SlideChance {
		t.Fatalf("negative slide chance must keep default, got %f", cfg.Params.SlideChance)
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 99
	cfg.Height = 77
	cfg.Wind = 1
	cfg.Params.FireSpreadChance = 0.11
	cfg.Params.WallLinkDist = 33

	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Width != 99 || loaded.Height != 77 {
		t.Fatalf("dimensions lost in round trip: %dx%d", loaded.Width, loaded.Height)
	}
	if loaded.Wind != 1 {
		t.Fatalf("wind lost in round trip: %d", loaded.Wind)
	}
	if math.Abs(loaded.Params.FireSpreadChance-0.11) > 1e-9 {
		t.Fatalf("fire spread chance lost: %f", loaded.Params.FireSpreadChance)
	}
	if math.Abs(loaded.Params.WallLinkDist-33) > 1e-9 {
		t.Fatalf("wall link distance lost: %f", loaded.Params.WallLinkDist)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestSetFloatParameterClampsChances(t *testing.T) {
	w := newTestWorld(10, 10, nil)
	if !w.SetFloatParameter("fire_spread_chance", 50) {
		t.Fatal("expected fire spread chance to be adjustable")
	}
	if got := w.Config().Params.FireSpreadChance; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected percent-style input to map to 0.5, got %f", got)
	}
	if !w.SetFloatParameter("fire_spread_chance", 150) {
		t.Fatal("expected setter to clamp values above max")
	}
	if got := w.Config().Params.FireSpreadChance; math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected clamp to 1, got %f", got)
	}
	if w.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestSetIntParameter(t *testing.T) {
	w := newTestWorld(10, 10, nil)
	if !w.SetIntParameter("walk_interval", 5) {
		t.Fatal("expected walk interval to be adjustable")
	}
	if got := w.Config().Params.WalkInterval; got != 5 {
		t.Fatalf("expected walk interval 5, got %d", got)
	}
	if !w.SetIntParameter("walk_interval", 0) {
		t.Fatal("expected below-minimum value to clamp, not fail")
	}
	if got := w.Config().Params.WalkInterval; got != 1 {
		t.Fatalf("expected walk interval to clamp to 1, got %d", got)
	}
	if !w.SetIntParameter("gravity", -1) {
		t.Fatal("expected gravity to be adjustable")
	}
	if got := w.Gravity(); got != -1 {
		t.Fatalf("expected reverse gravity, got %d", got)
	}
}
