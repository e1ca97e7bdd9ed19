//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"left drag   paint with active brush",
	"right drag  erase a disc",
	"1 / 2 / 3   brush: sand / wall / fire",
	"a           spawn actor at cursor",
	"w           cycle wind off/right/left",
	"g           flip gravity",
	"c           clear grid and actors",
	"space       pause",
	"n           single tick",
	"r           reset with seed",
	"q / esc     quit",
}

// Overlay draws a key-binding help panel, toggled with F1.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden help overlay.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw renders the help panel when visible.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if !o.visible {
		return
	}

	w := 260
	h := len(helpLines)*14 + 24

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(12, 12)
	op.ColorScale.Scale(0, 0, 0, 0.8)
	dst.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	y := 30
	for _, line := range helpLines {
		text.Draw(dst, line, face, 24, y, color.White)
		y += 14
	}
}
