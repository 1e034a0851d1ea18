// Package tty presents a beach World in a terminal through tcell.
package tty

import (
	"image/color"
	"math"

	"beach-weather/internal/sims/beach"
)

// Glyph is one terminal cell.
type Glyph struct {
	Rune   rune
	FG, BG color.RGBA
}

// Frame is a rasterized View, row-major, Cols by Rows glyphs.
type Frame struct {
	Cols, Rows int
	Glyphs     []Glyph
	// SceneCols and SceneRows bound the part of the frame showing the beach.
	SceneCols, SceneRows int
}

// At returns the glyph at (col, row), or a blank glyph out of range.
func (f Frame) At(col, row int) Glyph {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return Glyph{Rune: ' '}
	}
	return f.Glyphs[row*f.Cols+col]
}

// Row returns the runes of one row as a string.
func (f Frame) Row(row int) string {
	out := make([]rune, f.Cols)
	for c := range out {
		out[c] = f.At(c, row).Rune
	}
	return string(out)
}

func (f *Frame) set(col, row int, g Glyph) {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return
	}
	f.Glyphs[row*f.Cols+col] = g
}

// class is what a screen pixel shows. Later classes are more salient when
// several share a glyph.
type class uint8

const (
	clsSky class = iota
	clsBeach
	clsDry
	clsDamp
	clsCliff
	clsGrass
	clsMoon
	clsSun
	clsHotSun
	clsWood
	clsLadder
	clsDrop
	clsFire
	clsPlayer
	numClasses
)

type look struct {
	r  rune
	fg color.RGBA
}

var looks = [numClasses]look{
	clsSky:    {' ', beach.ColorSky},
	clsBeach:  {'▒', beach.ColorDampSand},
	clsDry:    {'░', beach.ColorDrySand},
	clsDamp:   {'▓', beach.ColorDampSand},
	clsCliff:  {'#', beach.ColorCliff},
	clsGrass:  {'"', beach.ColorGrass},
	clsMoon:   {'o', beach.ColorMoon},
	clsSun:    {'O', beach.ColorSun},
	clsHotSun: {'O', beach.ColorFire},
	clsWood:   {'=', beach.ColorWood},
	clsLadder: {'H', beach.ColorWood},
	clsDrop:   {'\'', beach.ColorSea},
	clsFire:   {'^', beach.ColorFire},
	clsPlayer: {'@', beach.ColorPlayer},
}

// weights bias the vote within a glyph towards small but important things.
var weights = [numClasses]int{
	clsWood:   8,
	clsLadder: 16,
	clsDrop:   24,
	clsFire:   32,
	clsPlayer: 1000,
}

// Rasterize downsamples v onto a cols by rows terminal. Each glyph covers a
// block of screen pixels twice as tall as it is wide.
func Rasterize(v beach.View, cols, rows int) Frame {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	f := Frame{Cols: cols, Rows: rows, Glyphs: make([]Glyph, cols*rows)}
	for i := range f.Glyphs {
		f.Glyphs[i] = Glyph{Rune: ' '}
	}
	if cols == 0 || rows == 0 {
		return f
	}

	sw, sh := v.Layout.ScreenWidth(), v.Layout.ScreenHeight()
	bw := max(ceilDiv(sw, cols), ceilDiv(sh, 2*rows), 1)
	bh := 2 * bw
	f.SceneCols = min(ceilDiv(sw, bw), cols)
	f.SceneRows = min(ceilDiv(sh, bh), rows)

	px := paint(v)
	var votes [numClasses]int
	for row := 0; row < f.SceneRows; row++ {
		for col := 0; col < f.SceneCols; col++ {
			votes = [numClasses]int{}
			for y := row * bh; y < min((row+1)*bh, sh); y++ {
				for x := col * bw; x < min((col+1)*bw, sw); x++ {
					votes[px[y*sw+x]]++
				}
			}
			best, score := clsSky, -1
			for c, n := range votes {
				if n == 0 {
					continue
				}
				s := n * max(weights[c], 1)
				if s > score {
					best, score = class(c), s
				}
			}
			g := Glyph{Rune: looks[best].r, FG: looks[best].fg, BG: beach.ColorSky}
			if best == clsSky {
				g.FG = beach.ColorSky
			}
			// Glyphs whose centre is under the sea take a water background.
			if row*bh+bh/2 >= v.SeaPixel {
				g.BG = beach.ColorDeepWater
			}
			f.set(col, row, g)
		}
	}

	drawHUD(&f, v)
	return f
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// canvas is a class per screen pixel.
type canvas struct {
	w, h int
	px   []class
}

func (c canvas) rect(x, y, w, h int, cl class) {
	for yy := max(y, 0); yy < min(y+h, c.h); yy++ {
		for xx := max(x, 0); xx < min(x+w, c.w); xx++ {
			c.px[yy*c.w+xx] = cl
		}
	}
}

func (c canvas) circle(cx, cy, r float64, cl class) {
	if r <= 0 {
		return
	}
	for y := max(int(cy-r), 0); y <= min(int(cy+r), c.h-1); y++ {
		for x := max(int(cx-r), 0); x <= min(int(cx+r), c.w-1); x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				c.px[y*c.w+x] = cl
			}
		}
	}
}

// paint draws v into a class per pixel, back to front in the same order as
// the GUI scene.
func paint(v beach.View) []class {
	l := v.Layout
	c := canvas{w: l.ScreenWidth(), h: l.ScreenHeight()}
	c.px = make([]class, c.w*c.h)
	beachY := l.BeachMax()
	c.rect(0, beachY, c.w, c.h-beachY, clsBeach)
	if v.State == beach.Menu {
		return c.px
	}

	sun := clsSun
	if v.Burning() {
		sun = clsHotSun
	}
	c.circle(float64(c.w-beach.SunRadius-1), beach.SunRadius, beach.SunRadius, sun)
	if p := v.SeaProgress; p > 0 {
		t := math.Pow(p, 3)
		x0, y0 := l.MoonStart()
		x1, y1 := l.MoonTarget()
		c.circle(x0+(x1-x0)*t, y0+(y1-y0)*t, float64(c.w)*p, clsMoon)
	}

	px, py := l.ParticlesX(), l.ParticlesY()
	for y := 0; y < py; y++ {
		for x := 0; x < px; x++ {
			switch beach.Particle(v.Particles[y*px+x]) {
			case beach.DrySand:
				c.px[y*c.w+x+beach.CellsOffset] = clsDry
			case beach.DampSand:
				c.px[y*c.w+x+beach.CellsOffset] = clsDamp
			}
		}
	}

	for _, b := range v.Burns {
		x, y := l.CellOrigin(b.CX, b.CY)
		c.rect(x+beach.CellsOffset, y+3*beach.CrenelHeight, beach.CellWidth, beach.CrenelHeight, clsFire)
	}
	for _, ld := range v.Ladders {
		x, y := l.CellOrigin(ld.CX, ld.CY)
		x += beach.CellsOffset
		c.rect(x+beach.LadderInset, y+1, 1, beach.CellHeight-1, clsLadder)
		c.rect(x+beach.CellWidth-beach.LadderInset-1, y+1, 1, beach.CellHeight-1, clsLadder)
		for r := 1; r <= 3; r++ {
			c.rect(x+beach.LadderInset, y+r*beach.CrenelHeight, beach.CellWidth-2*beach.LadderInset, 1, clsLadder)
		}
	}

	top := beach.CellHeight - beach.CellHeight/4
	c.rect(0, top, beach.CellsOffset/2, beachY-beach.CellHeight, clsCliff)
	c.rect(0, top, beach.CellsOffset/2, beach.CrenelOffset, clsGrass)
	c.rect(0, beachY-2*beach.LadderHeight, beach.LadderWidth, 2*beach.LadderHeight, clsWood)
	for _, ld := range v.Loose {
		c.rect(int(ld.X), int(ld.Y), beach.LadderWidth, beach.LadderHeight, clsWood)
	}

	for cy := 0; cy < l.CellsY; cy++ {
		for cx := 0; cx < l.CellsX; cx++ {
			if v.Cell(cx, cy) != beach.FullDamp {
				continue
			}
			x, y := l.CellOrigin(cx, cy)
			x += beach.CellsOffset
			c.rect(x+beach.CrenelOffset, y-beach.CrenelHeight, beach.CrenelWidth, beach.CrenelHeight, clsDamp)
			c.rect(x+3*beach.CrenelOffset+beach.CrenelWidth, y-beach.CrenelHeight, beach.CrenelWidth, beach.CrenelHeight, clsDamp)
		}
	}

	c.rect(int(v.Player.X), int(v.Player.Y)-beach.PlayerHeight+1, beach.PlayerWidth, beach.PlayerHeight, clsPlayer)
	for _, d := range v.Drops {
		c.rect(int(d.X*float64(c.w)), int(d.Y*float64(c.h)), 2, 2, clsDrop)
	}
	return c.px
}
