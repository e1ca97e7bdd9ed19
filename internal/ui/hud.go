//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	HUDStats() []string
}

// HUD renders the stats and parameter panel to the right of the
// simulation view and applies parameter adjustments from the keyboard.
type HUD struct {
	sim     core.Sim
	width   int
	offsetX int

	controls    []core.ParameterControl
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update handles control selection and adjustment keys.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	step := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		step = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		step = -1
	}
	if step != 0 {
		h.adjust(h.controls[h.selected], step)
	}
}

// adjust moves the control's value by one step in the given direction,
// clamping to the declared bounds.
func (h *HUD) adjust(ctrl core.ParameterControl, dir int) {
	value, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	value += ctrl.Step * float64(dir)
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(value+0.5))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, value)
		}
	}
}

// currentValue looks up the control's present value in the parameter
// snapshot.
func (h *HUD) currentValue(key string) (float64, bool) {
	provider, ok := h.sim.(interface {
		Parameters() core.ParameterSnapshot
	})
	if !ok {
		return 0, false
	}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			if param.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw renders the panel at the given offset with the given height.
func (h *HUD) Draw(dst *ebiten.Image, offsetX, height int) {
	if h == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(height))
	op.GeoM.Translate(float64(offsetX), 0)
	op.ColorScale.Scale(0.09, 0.09, 0.12, 1)
	dst.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	x := offsetX + 8
	y := 16
	line := func(s string, clr color.Color) {
		text.Draw(dst, s, face, x, y, clr)
		y += 14
	}

	line("sandfall: "+h.sim.Name(), color.White)
	y += 6

	if provider, ok := h.sim.(statsProvider); ok {
		for _, s := range provider.HUDStats() {
			line(s, color.RGBA{R: 190, G: 190, B: 200, A: 255})
		}
		y += 6
	}

	for i, ctrl := range h.controls {
		value := "--"
		if v, ok := h.currentValue(ctrl.Key); ok {
			value = strconv.FormatFloat(v, 'g', 4, 64)
		}
		clr := color.Color(color.RGBA{R: 150, G: 150, B: 160, A: 255})
		marker := "  "
		if i == h.selected {
			clr = color.White
			marker = "> "
		}
		line(fmt.Sprintf("%s%s: %s", marker, ctrl.Label, value), clr)
	}

	y += 6
	line("[tab] select  [-/+] adjust", color.RGBA{R: 110, G: 110, B: 120, A: 255})
	line("[F1] help", color.RGBA{R: 110, G: 110, B: 120, A: 255})
}
