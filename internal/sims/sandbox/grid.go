package sandbox

import (
	"sandfall/internal/core"
)

// Material enumerates the closed set of cell types in the sandbox grid.
type Material uint8

const (
	// Empty marks a vacant cell; its color is meaningless.
	Empty Material = iota
	// Wall is immovable and removable only by erasing or fire.
	Wall
	// Sand falls and slides under gravity.
	Sand
	// Fire rises, spreads into sand and walls, and burns out.
	Fire
)

// RGB is the display color of a non-empty cell.
type RGB struct {
	R, G, B uint8
}

// Grid owns the material layer and the parallel per-cell color layer.
// All mutation goes through its methods; out-of-bounds writes are no-ops.
type Grid struct {
	cells *core.ByteGrid
	col   []RGB
	sand  int
}

// NewGrid allocates a grid with the given dimensions, all cells Empty.
func NewGrid(w, h int) *Grid {
	cells := core.NewByteGrid(w, h)
	return &Grid{
		cells: cells,
		col:   make([]RGB, cells.W*cells.H),
	}
}

// W returns the grid width in cells.
func (g *Grid) W() int { return g.cells.W }

// H returns the grid height in cells.
func (g *Grid) H() int { return g.cells.H }

// InBounds reports whether (x, y) addresses a cell inside the grid.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// MaterialAt returns the material at (x, y), or Empty when out of bounds.
func (g *Grid) MaterialAt(x, y int) Material {
	if !g.cells.InBounds(x, y) {
		return Empty
	}
	return Material(g.cells.At(x, y))
}

// ColorAt returns the color at (x, y), or the zero color when out of bounds.
func (g *Grid) ColorAt(x, y int) RGB {
	if !g.cells.InBounds(x, y) {
		return RGB{}
	}
	return g.col[g.cells.Index(x, y)]
}

// Cells exposes the raw material bytes for rendering and snapshots.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// Colors exposes the raw color layer for rendering and snapshots.
func (g *Grid) Colors() []RGB { return g.col }

// SandCount reports how many cells currently hold Sand.
func (g *Grid) SandCount() int { return g.sand }

// Deposit overwrites the cell at (x, y) with the material and color.
// Later deposits win; out-of-bounds coordinates are ignored.
func (g *Grid) Deposit(m Material, x, y int, c RGB) {
	if !g.cells.InBounds(x, y) {
		return
	}
	g.set(g.cells.Index(x, y), m, c)
}

// EraseCircle clears every cell within radius (inclusive, Euclidean) of
// the center to Empty. This is the only operation besides fire that can
// remove Wall cells.
func (g *Grid) EraseCircle(cx, cy, radius int) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= g.cells.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= g.cells.W {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.set(g.cells.Index(x, y), Empty, RGB{})
		}
	}
}

// StampDisc deposits the material in a filled disc around the center.
func (g *Grid) StampDisc(m Material, cx, cy, radius int, c RGB) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= g.cells.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= g.cells.W {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.set(g.cells.Index(x, y), m, c)
		}
	}
}

// StampLine deposits a thick stroke of the material along the discrete
// line from (x0, y0) to (x1, y1) using Bresenham stepping.
func (g *Grid) StampLine(m Material, x0, y0, x1, y1, radius int, c RGB) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.StampDisc(m, x0, y0, radius, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Clear resets the entire grid to Empty.
func (g *Grid) Clear() {
	g.cells.Clear()
	for i := range g.col {
		g.col[i] = RGB{}
	}
	g.sand = 0
}

// set writes the cell at a linear index, keeping the sand count current.
// Empty cells always carry the zero color.
func (g *Grid) set(idx int, m Material, c RGB) {
	prev := Material(g.cells.Cells()[idx])
	if prev == Sand {
		g.sand--
	}
	if m == Sand {
		g.sand++
	}
	if m == Empty {
		c = RGB{}
	}
	g.cells.Cells()[idx] = uint8(m)
	g.col[idx] = c
}

// move relocates the cell contents from one linear index to another,
// leaving the source Empty. The destination must be Empty.
func (g *Grid) move(from, to int) {
	m := Material(g.cells.Cells()[from])
	c := g.col[from]
	g.set(from, Empty, RGB{})
	g.set(to, m, c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
