package sandbox

import "testing"

func TestActorLandsOnWallFloor(t *testing.T) {
	w := newTestWorld(20, 20, nil)
	w.Grid().StampLine(Wall, 0, 18, 19, 18, 0, RGB{R: 130})
	w.SpawnActor(10, 5)

	for i := 0; i < 60; i++ {
		w.Step()
	}

	actors := w.Actors()
	if len(actors) != 1 {
		t.Fatalf("expected one live actor, got %d", len(actors))
	}
	a := actors[0]
	if !a.Alive {
		t.Fatal("actor above a floor must survive")
	}
	if !a.Grounded {
		t.Fatal("actor must be grounded after falling onto the floor")
	}
	if int(a.Y) != 17 {
		t.Fatalf("expected actor on row 17 (directly above floor), got %d", int(a.Y))
	}
}

func TestActorSurvivesIndefinitelyWithoutFire(t *testing.T) {
	w := newTestWorld(20, 20, nil)
	w.Grid().StampLine(Wall, 0, 18, 19, 18, 0, RGB{R: 130})
	w.SpawnActor(10, 17)

	for i := 0; i < 600; i++ {
		w.Step()
	}

	actors := w.Actors()
	if len(actors) != 1 || !actors[0].Alive {
		t.Fatal("actor on a safe floor must stay alive")
	}
	if y := int(actors[0].Y); y != 17 {
		t.Fatalf("walking on a flat floor must keep the actor on row 17, got %d", y)
	}
}

func TestActorWalksAlongFloor(t *testing.T) {
	w := newTestWorld(30, 20, nil)
	w.Grid().StampLine(Wall, 0, 18, 29, 18, 0, RGB{R: 130})
	w.SpawnActor(15, 17)

	startX := w.Actors()[0].X
	movedAway := false
	for i := 0; i < 100; i++ {
		w.Step()
		if w.Actors()[0].X != startX {
			movedAway = true
			break
		}
	}
	if !movedAway {
		t.Fatal("grounded actor never attempted a walk step")
	}
}

func TestActorClimbsOneCellStep(t *testing.T) {
	w := newTestWorld(30, 20, nil)
	w.Grid().StampLine(Wall, 0, 18, 29, 18, 0, RGB{R: 130})
	w.SpawnActor(15, 17)

	dir := w.Actors()[0].Dir
	stepX := 15 + 3*dir
	w.Deposit(Wall, stepX, 17, RGB{R: 130})

	climbed := false
	for i := 0; i < 200; i++ {
		w.Step()
		a := w.Actors()[0]
		if int(a.X) == stepX && int(a.Y) == 16 {
			climbed = true
			break
		}
	}
	if !climbed {
		t.Fatal("actor never climbed the one-cell step in its path")
	}
}

func TestActorFallsPastBottomAndDies(t *testing.T) {
	w := newTestWorld(20, 20, nil)
	w.SpawnActor(10, 2)

	for i := 0; i < 100; i++ {
		w.Step()
	}

	if got := len(w.Actors()); got != 0 {
		t.Fatalf("actor falling past the bottom must be removed, pool size %d", got)
	}
}

func TestSpawnOutOfBoundsIgnored(t *testing.T) {
	w := newTestWorld(20, 20, nil)
	w.SpawnActor(-5, 3)
	w.SpawnActor(3, 200)
	if got := len(w.Actors()); got != 0 {
		t.Fatalf("out-of-bounds spawns must be ignored, pool size %d", got)
	}
}

// firePit builds a wall pocket holding a single fire cell that cannot
// move or spread, with a wall floor beneath it.
func firePit(w *World, x, y int) {
	for dx := -1; dx <= 1; dx++ {
		w.Deposit(Wall, x+dx, y-1, RGB{R: 130})
		w.Deposit(Wall, x+dx, y+1, RGB{R: 130})
	}
	w.Deposit(Wall, x-1, y, RGB{R: 130})
	w.Deposit(Wall, x+1, y, RGB{R: 130})
	w.Deposit(Fire, x, y, RGB{R: 255})
}

func TestActorBurnsForCutoffThenDies(t *testing.T) {
	w := newTestWorld(20, 20, func(cfg *Config) {
		cfg.Params.FireDecayChance = 0
		cfg.Params.FireSpreadChance = 0
	})
	firePit(w, 10, 10)
	w.SpawnActor(10, 10)

	// Burn cutoff is 7 simulated seconds; at 55 TPS that is ~385 ticks.
	for i := 0; i < 300; i++ {
		w.Step()
	}
	actors := w.Actors()
	if len(actors) != 1 || !actors[0].Alive {
		t.Fatal("burning actor must still be alive before the cutoff")
	}
	if !actors[0].Burning {
		t.Fatal("actor standing in fire must be burning")
	}

	for i := 0; i < 200; i++ {
		w.Step()
	}
	if got := len(w.Actors()); got != 0 {
		t.Fatalf("actor must die after burning past the cutoff, pool size %d", got)
	}
}

func TestActorFallsThroughFire(t *testing.T) {
	w := newTestWorld(20, 20, func(cfg *Config) {
		cfg.Params.FireDecayChance = 0
		cfg.Params.FireSpreadChance = 0
	})
	firePit(w, 10, 10)
	// Remove the pit roof so an actor can drop in from above.
	w.Deposit(Empty, 10, 9, RGB{})
	w.SpawnActor(10, 7)

	ignited := false
	for i := 0; i < 60; i++ {
		w.Step()
		actors := w.Actors()
		if len(actors) == 1 && actors[0].Burning {
			ignited = true
			break
		}
	}
	if !ignited {
		t.Fatal("actor dropped into a fire pocket never ignited; fire must not act as support")
	}
}

func TestClearAllEmptiesActorPool(t *testing.T) {
	w := newTestWorld(20, 20, nil)
	w.Grid().StampLine(Wall, 0, 18, 19, 18, 0, RGB{R: 130})
	w.SpawnActor(5, 17)
	w.SpawnActor(10, 17)

	w.ClearAll()

	if got := len(w.Actors()); got != 0 {
		t.Fatalf("ClearAll must empty the actor pool, size %d", got)
	}
	if got := w.SandCount(); got != 0 {
		t.Fatalf("ClearAll must clear the grid, sand count %d", got)
	}
}
