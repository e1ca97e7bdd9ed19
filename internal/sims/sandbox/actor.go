package sandbox

// Actor is an autonomous walking figure living on the grid. Position is
// fractional while airborne and snaps to whole rows on the ground. The
// grid cell an actor occupies is always its truncated position.
type Actor struct {
	X, Y float64
	// VY is the vertical velocity in cells per tick, positive downward.
	VY  float64
	Dir int

	Grounded  bool
	WalkPhase int

	Burning   bool
	IgnitedAt float64

	Alive bool
}

// SpawnActor inserts a new actor at the given cell. Spawns outside the
// grid are ignored.
func (w *World) SpawnActor(x, y int) {
	if !w.grid.InBounds(x, y) {
		return
	}
	dir := w.rng.Sign()
	w.actors = append(w.actors, Actor{
		X:     float64(x),
		Y:     float64(y),
		Dir:   dir,
		Alive: true,
	})
}

// Actors exposes the live actor pool.
func (w *World) Actors() []Actor { return w.actors }

// stepActors removes actors that died last tick, then advances each
// survivor by one tick.
func (w *World) stepActors() {
	live := w.actors[:0]
	for _, a := range w.actors {
		if a.Alive {
			live = append(live, a)
		}
	}
	w.actors = live

	for i := range w.actors {
		w.stepActor(&w.actors[i])
	}
}

// stepActor runs the per-tick actor state machine: bounds check, fire
// contact, ground test, then either the grounded walk branch or the
// airborne fall branch. Invalid positions kill the actor rather than
// index outside the grid.
func (w *World) stepActor(a *Actor) {
	cx, cy := int(a.X), int(a.Y)
	if !w.grid.InBounds(cx, cy) {
		a.Alive = false
		return
	}

	if w.grid.MaterialAt(cx, cy) == Fire {
		if !a.Burning {
			a.Burning = true
			a.IgnitedAt = w.elapsed
		} else if w.elapsed-a.IgnitedAt > w.cfg.Params.BurnCutoff {
			a.Alive = false
			return
		}
	}

	down := w.cfg.Gravity
	if w.supported(cx, cy, down) {
		w.walkActor(a, cx, cy, down)
		return
	}
	w.fallActor(a, cx, cy, down)
}

// supported reports whether an actor standing at (cx, cy) has ground
// beneath it. The grid edge counts as a floor; fire does not support, so
// actors drop into flame.
func (w *World) supported(cx, cy, down int) bool {
	bx, by := cx, cy+down
	if !w.grid.InBounds(bx, by) {
		return true
	}
	switch w.grid.MaterialAt(bx, by) {
	case Wall, Sand:
		return true
	}
	return false
}

// walkActor handles the grounded branch: snap to the row, advance the
// walk phase, and on the phase boundary try to step or climb in the
// facing direction, reversing once when blocked.
func (w *World) walkActor(a *Actor, cx, cy, down int) {
	a.VY = 0
	a.Y = float64(cy)
	a.Grounded = true

	interval := w.cfg.Params.WalkInterval
	if a.Burning {
		interval = w.cfg.Params.BurnWalkInterval
	}
	a.WalkPhase++
	if a.WalkPhase < interval {
		return
	}
	a.WalkPhase = 0

	if w.tryWalk(a, cx, cy, a.Dir, down) {
		return
	}
	a.Dir = -a.Dir
	w.tryWalk(a, cx, cy, a.Dir, down)
}

// tryWalk attempts one step in direction dir: straight across first,
// then a one-cell climb. Empty and Fire cells are passable.
func (w *World) tryWalk(a *Actor, cx, cy, dir, down int) bool {
	if w.passable(cx+dir, cy) {
		a.X = float64(cx + dir)
		return true
	}
	if w.passable(cx+dir, cy-down) {
		a.X = float64(cx + dir)
		a.Y = float64(cy - down)
		return true
	}
	return false
}

// passable reports whether an actor may occupy (x, y).
func (w *World) passable(x, y int) bool {
	if !w.grid.InBounds(x, y) {
		return false
	}
	switch w.grid.MaterialAt(x, y) {
	case Empty, Fire:
		return true
	}
	return false
}

// fallActor handles the airborne branch: accelerate toward the gravity
// direction up to terminal velocity, integrate, and scan every row
// crossed this tick for the first supporting cell to land on. Crossing
// the gravity-side edge with no landing kills the actor.
func (w *World) fallActor(a *Actor, cx, cy, down int) {
	a.Grounded = false

	p := w.cfg.Params
	a.VY += p.GravityAccel * float64(down)
	if a.VY > p.TerminalVelocity {
		a.VY = p.TerminalVelocity
	}
	if a.VY < -p.TerminalVelocity {
		a.VY = -p.TerminalVelocity
	}

	targetY := a.Y + a.VY
	targetRow := int(targetY)

	for row := cy + down; ; row += down {
		if down > 0 && row > targetRow {
			break
		}
		if down < 0 && row < targetRow {
			break
		}
		if !w.grid.InBounds(cx, row) {
			a.Alive = false
			return
		}
		switch w.grid.MaterialAt(cx, row) {
		case Wall, Sand:
			a.Y = float64(row - down)
			a.VY = 0
			a.Grounded = true
			return
		}
	}

	if !w.grid.InBounds(cx, targetRow) {
		a.Alive = false
		return
	}
	a.Y = targetY
}
