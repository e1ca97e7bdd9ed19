package sandbox

import pkgcore "sandfall/pkg/core"

// firePalette holds the colors fire cells flicker between.
var firePalette = []RGB{
	{R: 255, G: 60, B: 10},
	{R: 255, G: 110, B: 20},
	{R: 255, G: 160, B: 40},
	{R: 255, G: 210, B: 80},
}

// sandPalette holds the tints new sand grains are drawn from.
var sandPalette = []RGB{
	{R: 214, G: 174, B: 128},
	{R: 228, G: 185, B: 92},
	{R: 199, G: 164, B: 110},
	{R: 240, G: 203, B: 140},
}

// wallColor is the default stroke color for drawn walls.
var wallColor = RGB{R: 130, G: 130, B: 130}

// FireColor draws a random color from the flame palette.
func FireColor(rng *pkgcore.RNG) RGB {
	return firePalette[rng.IntN(len(firePalette))]
}

// SandColor draws a random tint from the sand palette.
func SandColor(rng *pkgcore.RNG) RGB {
	return sandPalette[rng.IntN(len(sandPalette))]
}

// WallColor returns the default wall stroke color.
func WallColor() RGB { return wallColor }
