package beach

import "image/color"

// Colours shared by the presentation adapters.
var (
	ColorSky        = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ColorDrySand    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColorDampSand   = color.RGBA{R: 128, G: 128, B: 0, A: 255}
	ColorSandEdge   = color.RGBA{R: 64, G: 64, B: 0, A: 255}
	ColorSea        = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorDeepWater  = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	ColorWood       = color.RGBA{R: 128, G: 0, B: 64, A: 255}
	ColorFire       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorSun        = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColorMoon       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorCliff      = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	ColorGrass      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorPlayer     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	ColorGrey       = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	ColorOutline    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorSeaOverlay = color.RGBA{R: 0, G: 0, B: 178, A: 178}
)

var particlePalette = []color.RGBA{
	Empty:    {},
	DrySand:  ColorDrySand,
	DampSand: ColorDampSand,
}

// Palette maps Particle values to colours; Empty is transparent.
func (w *World) Palette() []color.RGBA { return particlePalette }

// ParticlePalette is the palette used for particle grids outside a World.
func ParticlePalette() []color.RGBA { return particlePalette }

// BucketColor is the colour shown for bucket contents.
func BucketColor(b Bucket) color.RGBA {
	switch b {
	case BucketSand:
		return ColorDrySand
	case BucketWater:
		return ColorDeepWater
	case BucketDampSand:
		return ColorDampSand
	case BucketWood:
		return ColorWood
	default:
		return ColorSky
	}
}

// BurnColor blends from dry to damp sand as a burn's remaining fraction goes
// from 0 to 1.
func BurnColor(fraction float64) color.RGBA {
	return lerpRGBA(ColorDrySand, ColorDampSand, fraction)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
