package sandbox

// Open reports whether (x, y) is an in-bounds Empty cell a particle may
// move into. Out-of-bounds cells are closed, so particles pile up on the
// grid edges instead of escaping.
func (g *Grid) Open(x, y int) bool {
	return g.cells.InBounds(x, y) && Material(g.cells.At(x, y)) == Empty
}

// stepSand runs the granular pass: every sand cell is visited once in a
// freshly shuffled order and moves at most one cell (plus at most one
// wind push). Shuffling breaks the directional bias a raster scan would
// introduce when neighbors compete for the same destination.
func (w *World) stepSand() {
	coords := w.collect(Sand)
	w.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	gw := w.grid.W()
	down := w.cfg.Gravity
	for _, idx := range coords {
		// A cell relocated earlier this tick no longer holds sand.
		if Material(w.grid.Cells()[idx]) != Sand {
			continue
		}
		x, y := idx%gw, idx/gw

		nx, ny, moved := w.moveGranular(x, y, down, w.cfg.Params.SlideChance)
		if moved && w.cfg.Wind != 0 && w.grid.Open(nx+w.cfg.Wind, ny) {
			w.grid.move(w.grid.cells.Index(nx, ny), w.grid.cells.Index(nx+w.cfg.Wind, ny))
		}
	}
}

// stepFire runs the fire pass: ignition of flammable neighbors, rising
// motion against gravity, probabilistic burn-out, and color flicker.
func (w *World) stepFire() {
	coords := w.collect(Fire)
	w.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	gw := w.grid.W()
	rise := -w.cfg.Gravity
	p := w.cfg.Params
	for _, idx := range coords {
		if Material(w.grid.Cells()[idx]) != Fire {
			continue
		}
		x, y := idx%gw, idx/gw

		// Ignite flammable neighbors; this converts material, it never
		// creates new non-empty cells.
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !w.grid.InBounds(nx, ny) {
					continue
				}
				switch w.grid.MaterialAt(nx, ny) {
				case Sand, Wall:
					if w.rng.Chance(p.FireSpreadChance) {
						w.grid.Deposit(Fire, nx, ny, FireColor(w.rng))
					}
				}
			}
		}

		nx, ny, _ := w.moveGranular(x, y, rise, p.FireDriftChance)

		if w.rng.Chance(p.FireDecayChance) {
			w.grid.Deposit(Empty, nx, ny, RGB{})
			continue
		}
		if w.rng.Chance(p.FireFlickerChance) {
			w.grid.Deposit(Fire, nx, ny, FireColor(w.rng))
		}
	}
}

// moveGranular applies the shared movement policy for one particle at
// (x, y): straight toward dir first, then the two diagonals in random
// order, then a lateral drift with the given probability. It returns the
// particle's final position and whether it moved.
func (w *World) moveGranular(x, y, dir int, driftChance float64) (int, int, bool) {
	from := w.grid.cells.Index(x, y)

	if w.grid.Open(x, y+dir) {
		w.grid.move(from, w.grid.cells.Index(x, y+dir))
		return x, y + dir, true
	}

	side := w.rng.Sign()
	for _, d := range [2]int{side, -side} {
		if w.grid.Open(x+d, y+dir) {
			w.grid.move(from, w.grid.cells.Index(x+d, y+dir))
			return x + d, y + dir, true
		}
	}

	if w.rng.Chance(driftChance) {
		d := w.rng.Sign()
		if w.grid.Open(x+d, y) {
			w.grid.move(from, w.grid.cells.Index(x+d, y))
			return x + d, y, true
		}
	}
	return x, y, false
}

// collect gathers the linear indices of all cells holding the material
// into a reusable scratch slice. The snapshot is taken before any cell
// moves, giving the at-most-one-move-per-tick guarantee.
func (w *World) collect(m Material) []int {
	w.worklist = w.worklist[:0]
	for i, c := range w.grid.Cells() {
		if Material(c) == m {
			w.worklist = append(w.worklist, i)
		}
	}
	return w.worklist
}
