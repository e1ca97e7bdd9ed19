package sandbox

import (
	"math"
	"time"

	"sandfall/internal/core"
	pkgcore "sandfall/pkg/core"
)

// World is the falling-particle sandbox: a dense material grid, a pool
// of walking actors, and a fixed-step clock. It implements core.Sim and
// is mutated only from the simulation loop; deposit and erase commands
// must be applied between ticks.
type World struct {
	cfg Config

	grid   *Grid
	actors []Actor

	clock   *core.FixedStep
	rng     *pkgcore.RNG
	elapsed float64
	tickDt  float64

	worklist []int
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalized()
	return &World{
		cfg:    cfg,
		grid:   NewGrid(cfg.Width, cfg.Height),
		clock:  core.NewFixedStep(cfg.TPS, cfg.MaxTicksPerFrame),
		rng:    pkgcore.NewRNG(cfg.Seed),
		tickDt: 1.0 / float64(cfg.TPS),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W(), H: w.grid.H()} }

// Cells exposes the raw material bytes of the grid.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Grid exposes the grid store for direct deposits and queries.
func (w *World) Grid() *Grid { return w.grid }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// SandCount reports how many cells currently hold Sand.
func (w *World) SandCount() int { return w.grid.SandCount() }

// Elapsed returns the simulated time in seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// Reset discards all grid contents and actors and reseeds the RNG. A
// zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Reseed(seed)
	w.grid.Clear()
	w.actors = w.actors[:0]
	w.elapsed = 0
	w.clock.Reset()
}

// Step advances the sandbox by exactly one tick: the sand pass, the
// fire pass, then the actor pass against the now-current grid.
func (w *World) Step() {
	w.stepSand()
	w.stepFire()
	w.stepActors()
	w.elapsed += w.tickDt
}

// Advance converts elapsed wall time into fixed ticks and runs them,
// capped per call; leftover time carries to the next call. It returns
// the number of ticks run.
func (w *World) Advance(dt float64) int {
	n := w.clock.Advance(time.Duration(dt * float64(time.Second)))
	for i := 0; i < n; i++ {
		w.Step()
	}
	return n
}

// Deposit sets one cell; out-of-bounds coordinates are ignored.
func (w *World) Deposit(m Material, x, y int, c RGB) {
	w.grid.Deposit(m, x, y, c)
}

// DepositBurst scatters count deposits of the material around the
// center with uniform jitter in each axis, for pour-style input.
func (w *World) DepositBurst(m Material, cx, cy, spreadX, spreadY int, c RGB, count int) {
	for i := 0; i < count; i++ {
		x, y := cx, cy
		if spreadX > 0 {
			x += w.rng.IntN(2*spreadX+1) - spreadX
		}
		if spreadY > 0 {
			y += w.rng.IntN(2*spreadY+1) - spreadY
		}
		w.grid.Deposit(m, x, y, c)
	}
}

// DrawWallSegment deposits a thick wall stroke along the line between
// two drag points. Points further apart than the configured link
// distance stamp an isolated blob instead, so a jumpy pointer cannot
// slash a wall across the whole grid.
func (w *World) DrawWallSegment(x0, y0, x1, y1 int) {
	r := w.cfg.Params.WallBrushRadius
	dx, dy := float64(x1-x0), float64(y1-y0)
	if math.Hypot(dx, dy) > w.cfg.Params.WallLinkDist {
		w.grid.StampDisc(Wall, x1, y1, r, wallColor)
		return
	}
	w.grid.StampLine(Wall, x0, y0, x1, y1, r, wallColor)
}

// EraseCircle clears a disc region to Empty.
func (w *World) EraseCircle(cx, cy, radius int) {
	w.grid.EraseCircle(cx, cy, radius)
}

// ClearAll resets the grid to Empty and empties the actor pool.
func (w *World) ClearAll() {
	w.grid.Clear()
	w.actors = w.actors[:0]
}

// SetWind sets the wind direction: 0 disables it, other values push
// already-moved sand one extra cell per tick in that direction.
func (w *World) SetWind(dir int) {
	if dir > 0 {
		dir = 1
	} else if dir < 0 {
		dir = -1
	}
	w.cfg.Wind = dir
}

// Wind returns the active wind direction.
func (w *World) Wind() int { return w.cfg.Wind }

// SetGravity flips between downward (+1) and reverse (-1) gravity.
func (w *World) SetGravity(sign int) {
	if sign >= 0 {
		w.cfg.Gravity = 1
	} else {
		w.cfg.Gravity = -1
	}
}

// Gravity returns the active gravity sign.
func (w *World) Gravity() int { return w.cfg.Gravity }

// RNG exposes the world's random source for host-side color jitter.
func (w *World) RNG() *pkgcore.RNG { return w.rng }

// Snapshot is a read-only copy of the visible sandbox state.
type Snapshot struct {
	W, H      int
	Materials []Material
	Colors    []RGB
	Actors    []Actor
}

// Snapshot copies the material, color, and actor state for rendering.
func (w *World) Snapshot() Snapshot {
	cells := w.grid.Cells()
	mats := make([]Material, len(cells))
	for i, c := range cells {
		mats[i] = Material(c)
	}
	return Snapshot{
		W:         w.grid.W(),
		H:         w.grid.H(),
		Materials: mats,
		Colors:    append([]RGB(nil), w.grid.Colors()...),
		Actors:    append([]Actor(nil), w.actors...),
	}
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
