package sandbox

import "testing"

func newTestWorld(w, h int, mutate func(*Config)) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 99
	if mutate != nil {
		mutate(&cfg)
	}
	world := NewWithConfig(cfg)
	world.Reset(0)
	return world
}

// nonEmptyCount counts all cells holding any material.
func nonEmptyCount(w *World) int {
	n := 0
	for _, c := range w.Cells() {
		if Material(c) != Empty {
			n++
		}
	}
	return n
}

func sandPositions(w *World) [][2]int {
	var out [][2]int
	gw := w.Size().W
	for i, c := range w.Cells() {
		if Material(c) == Sand {
			out = append(out, [2]int{i % gw, i / gw})
		}
	}
	return out
}

func TestStraightFallTakesPriority(t *testing.T) {
	w := newTestWorld(11, 11, nil)
	w.Deposit(Sand, 5, 0, RGB{R: 1})

	w.Step()

	if got := w.Grid().MaterialAt(5, 1); got != Sand {
		t.Fatalf("expected straight fall to (5,1), got %v there", got)
	}
	if got := w.SandCount(); got != 1 {
		t.Fatalf("fall must conserve the particle, count %d", got)
	}
}

func TestAtMostOneMovePerTick(t *testing.T) {
	w := newTestWorld(20, 20, nil)
	w.Deposit(Sand, 10, 2, RGB{R: 1})

	w.Step()

	pos := sandPositions(w)
	if len(pos) != 1 {
		t.Fatalf("expected exactly one sand cell, got %d", len(pos))
	}
	dx, dy := pos[0][0]-10, pos[0][1]-2
	if dx < -1 || dx > 1 || dy < 0 || dy > 1 {
		t.Fatalf("particle moved more than one cell in a tick: dx=%d dy=%d", dx, dy)
	}
}

func TestParticleRestsOnGridFloor(t *testing.T) {
	w := newTestWorld(9, 9, func(cfg *Config) {
		cfg.Params.SlideChance = 0
	})
	w.Deposit(Sand, 4, 0, RGB{R: 1})

	for i := 0; i < 50; i++ {
		w.Step()
	}

	if got := w.Grid().MaterialAt(4, 8); got != Sand {
		t.Fatalf("expected particle resting on the bottom row, got %v at (4,8)", got)
	}
}

func TestSettlingAboveWallFloor(t *testing.T) {
	w := newTestWorld(20, 20, nil)
	w.Grid().StampLine(Wall, 0, 18, 19, 18, 0, RGB{R: 130})
	w.Deposit(Sand, 10, 2, RGB{R: 1})

	// Drop height 15, so a bounded number of ticks settles it.
	for i := 0; i < 120; i++ {
		w.Step()
	}

	pos := sandPositions(w)
	if len(pos) != 1 {
		t.Fatalf("expected the single grain to survive, got %d", len(pos))
	}
	if pos[0][1] != 17 {
		t.Fatalf("expected grain resting directly above the floor (row 17), got row %d", pos[0][1])
	}
}

func TestConservationUnderTicks(t *testing.T) {
	w := newTestWorld(30, 30, func(cfg *Config) {
		cfg.Params.FireDecayChance = 0
	})
	for x := 5; x < 25; x++ {
		w.Deposit(Sand, x, 3, RGB{R: 1})
	}
	initial := nonEmptyCount(w)

	for i := 0; i < 200; i++ {
		w.Step()
		if got := nonEmptyCount(w); got > initial {
			t.Fatalf("tick %d created matter: %d > %d", i, got, initial)
		}
	}
}

func TestWindPushesMovedParticles(t *testing.T) {
	w := newTestWorld(11, 11, func(cfg *Config) {
		cfg.Wind = 1
	})
	w.Deposit(Sand, 5, 0, RGB{R: 1})

	w.Step()

	if got := w.Grid().MaterialAt(6, 1); got != Sand {
		pos := sandPositions(w)
		t.Fatalf("expected fall plus wind push to land at (6,1), sand at %v", pos)
	}
}

func TestReverseGravityLiftsSand(t *testing.T) {
	w := newTestWorld(11, 11, func(cfg *Config) {
		cfg.Gravity = -1
	})
	w.Deposit(Sand, 5, 10, RGB{R: 1})

	w.Step()

	if got := w.Grid().MaterialAt(5, 9); got != Sand {
		t.Fatalf("expected particle to rise under reverse gravity, got %v at (5,9)", got)
	}
}

func TestFireRises(t *testing.T) {
	w := newTestWorld(11, 11, func(cfg *Config) {
		cfg.Params.FireDecayChance = 0
		cfg.Params.FireDriftChance = 0
	})
	w.Deposit(Fire, 5, 10, RGB{R: 255})

	w.Step()

	if got := w.Grid().MaterialAt(5, 9); got != Fire {
		t.Fatalf("expected fire to rise to (5,9), got %v", got)
	}
}

func TestFireDecays(t *testing.T) {
	w := newTestWorld(11, 11, func(cfg *Config) {
		cfg.Params.FireDecayChance = 1
	})
	w.Deposit(Fire, 5, 5, RGB{R: 255})

	w.Step()

	for i, c := range w.Cells() {
		if Material(c) == Fire {
			t.Fatalf("fire must fully decay with chance 1, found fire at %d", i)
		}
	}
}

func TestFireConsumesSandCluster(t *testing.T) {
	w := newTestWorld(30, 30, func(cfg *Config) {
		cfg.Params.FireDecayChance = 0
	})
	for y := 25; y <= 29; y++ {
		for x := 12; x <= 16; x++ {
			w.Deposit(Sand, x, y, RGB{R: 1})
		}
	}
	w.Deposit(Fire, 14, 27, RGB{R: 255})
	initial := nonEmptyCount(w)

	for i := 0; i < 2000; i++ {
		w.Step()
		if got := nonEmptyCount(w); got > initial {
			t.Fatalf("ignition must convert, not create: %d > %d at tick %d", got, initial, i)
		}
		if w.SandCount() == 0 {
			return
		}
	}
	t.Fatalf("sand cluster not consumed after 2000 ticks, %d grains left", w.SandCount())
}

func TestFireConsumesWalls(t *testing.T) {
	w := newTestWorld(20, 20, func(cfg *Config) {
		cfg.Params.FireDecayChance = 0
	})
	for x := 5; x <= 15; x++ {
		w.Deposit(Wall, x, 15, RGB{R: 130})
	}
	w.Deposit(Fire, 10, 16, RGB{R: 255})

	walls := func() int {
		n := 0
		for _, c := range w.Cells() {
			if Material(c) == Wall {
				n++
			}
		}
		return n
	}
	initial := walls()
	for i := 0; i < 2000; i++ {
		w.Step()
		if walls() < initial {
			return
		}
	}
	t.Fatal("fire never ignited an adjacent wall in 2000 ticks")
}

func TestStepDeterministicForSeed(t *testing.T) {
	run := func() []uint8 {
		w := newTestWorld(25, 25, nil)
		for x := 5; x < 20; x++ {
			w.Deposit(Sand, x, 2, RGB{R: uint8(x)})
		}
		w.Deposit(Fire, 12, 20, RGB{R: 255})
		for i := 0; i < 100; i++ {
			w.Step()
		}
		return append([]uint8(nil), w.Cells()...)
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at cell %d", i)
		}
	}
}
