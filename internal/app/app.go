//go:build ebiten

package app

import (
	"time"

	"sandfall/internal/render"
	"sandfall/internal/sims/sandbox"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudPanelWidth = 200

// brush selects what pointer painting deposits.
type brush int

const (
	brushSand brush = iota
	brushWall
	brushFire
)

// Game adapts a sandbox world to the ebiten.Game interface, translating
// pointer and key input into the sandbox command set.
type Game struct {
	world   *sandbox.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	brush    brush
	dragging bool
	prevX    int
	prevY    int

	last time.Time
}

// New constructs a Game for the provided sandbox world.
func New(world *sandbox.World, scale int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, hudPanelWidth),
		overlay: ui.NewOverlay(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	g.dragging = false
	g.last = time.Time{}
}

// Update handles per-frame input and advances the simulation by however
// many fixed ticks the elapsed frame time covers.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.ClearAll()
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.brush = brushSand
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.brush = brushWall
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.brush = brushFire
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.world.SetWind(nextWind(g.world.Wind()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.world.SetGravity(-g.world.Gravity())
	}

	cx, cy, onGrid := g.cursorCell()
	if onGrid && inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.world.SpawnActor(cx, cy)
	}

	g.handlePainting(cx, cy, onGrid)

	if g.hud != nil {
		g.hud.Update(g.world.Size().W * g.scale)
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now

	switch {
	case g.tickOnce:
		g.world.Step()
		g.tickOnce = false
	case !g.paused:
		g.world.Advance(dt)
	}
	return nil
}

// handlePainting applies the active brush while the left button is held
// and erases while the right button is held. Wall strokes connect the
// previous drag cell to the current one.
func (g *Game) handlePainting(cx, cy int, onGrid bool) {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if !left {
		g.dragging = false
	}
	if !onGrid {
		return
	}

	if left {
		switch g.brush {
		case brushSand:
			g.world.DepositBurst(sandbox.Sand, cx, cy, 2, 2, sandbox.SandColor(g.world.RNG()), 6)
		case brushWall:
			if !g.dragging {
				g.prevX, g.prevY = cx, cy
			}
			g.world.DrawWallSegment(g.prevX, g.prevY, cx, cy)
			g.prevX, g.prevY = cx, cy
		case brushFire:
			g.world.Deposit(sandbox.Fire, cx, cy, sandbox.FireColor(g.world.RNG()))
		}
		g.dragging = true
	}
	if right {
		g.world.EraseCircle(cx, cy, 6)
	}
}

// cursorCell maps the pointer position to grid coordinates.
func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	size := g.world.Size()
	return cx, cy, cx >= 0 && cx < size.W && cy >= 0 && cy < size.H
}

// Draw renders the current simulation state and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Snapshot(), g.scale)
	if g.hud != nil {
		size := g.world.Size()
		g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size: the scaled grid plus the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + hudPanelWidth, s.H * g.scale
}

// nextWind cycles the wind setting off -> right -> left -> off.
func nextWind(dir int) int {
	switch dir {
	case 0:
		return 1
	case 1:
		return -1
	default:
		return 0
	}
}
