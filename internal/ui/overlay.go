//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"beach-weather/internal/core"
	"beach-weather/internal/sims/beach"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type telemetryProvider interface {
	Parameters() core.ParameterSnapshot
}

// Overlay draws debugging visuals on top of the scene while the world's debug
// flag is set: cell grid lines, ladder and burn markers, a wind arrow and a
// telemetry readout.
type Overlay struct {
	src      telemetryProvider
	layout   beach.Layout
	maxWind  float64
	showText bool
	showWind bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay reading telemetry from src. maxWind scales
// the wind arrow.
func NewOverlay(src telemetryProvider, layout beach.Layout, maxWind float64) *Overlay {
	o := &Overlay{src: src, layout: layout, maxWind: maxWind, showText: true, showWind: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showText = !o.showText
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWind = !o.showWind
	}
}

// Draw renders the overlay for v.
func (o *Overlay) Draw(screen *ebiten.Image, v beach.View) {
	if !v.Debug || v.State == beach.Menu {
		return
	}
	o.drawGrid(screen)
	o.drawMarkers(screen, v)
	if o.showWind && v.Weather.Wind {
		o.drawWind(screen, v.Weather.WindVelocity)
	}
	if o.showText {
		o.drawTelemetry(screen, v)
	}
}

var (
	gridColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ladderMark  = color.RGBA{R: 255, G: 128, B: 255, A: 255}
	burnMark    = color.RGBA{R: 255, G: 64, B: 0, A: 255}
	contextMark = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	beachY := float64(o.layout.BeachMax())
	right := float64(o.layout.ScreenWidth())
	for cx := 0; cx < o.layout.CellsX; cx++ {
		x := float64(beach.CellsOffset+cx*beach.CellWidth) + 0.5
		o.drawLine(screen, x, 0, x, beachY, 1, gridColor)
	}
	for cy := 0; cy <= o.layout.CellsY; cy++ {
		y := float64(cy*beach.CellHeight) + 0.5
		o.drawLine(screen, beach.CellsOffset, y, right, y, 1, gridColor)
	}
}

func (o *Overlay) cellCentre(cx, cy int) (float64, float64) {
	x, y := o.layout.CellOrigin(cx, cy)
	return float64(beach.CellsOffset+x) + beach.CellWidth/2, float64(y) + beach.CellHeight/2
}

func (o *Overlay) drawMarkers(screen *ebiten.Image, v beach.View) {
	for _, l := range v.Ladders {
		x, y := o.cellCentre(l.CX, l.CY)
		o.drawPoint(screen, x, y, 4, ladderMark)
	}
	for _, b := range v.Burns {
		x, y := o.cellCentre(b.CX, b.CY)
		// The bar shrinks as the burn runs down.
		half := beach.CellWidth / 2 * clamp01(b.Fraction)
		o.drawLine(screen, x-half, y, x+half, y, 2, burnMark)
	}
	if v.Context.InBounds {
		x, y := o.cellCentre(v.Context.CX, v.Context.CY)
		o.drawPoint(screen, x, y, 2, contextMark)
	}
}

// drawWind draws an arrow under the sun pointing downwind, longer and
// brighter as the wind picks up.
func (o *Overlay) drawWind(screen *ebiten.Image, velocity float64) {
	const (
		headAngle = math.Pi / 6
		maxLength = 3 * beach.CrenelWidth
	)
	speed := math.Abs(velocity)
	if speed == 0 {
		return
	}
	normalized := 1.0
	if o.maxWind > 0 {
		normalized = clamp01(speed / o.maxWind)
	}
	dir := math.Copysign(1, velocity)
	length := maxLength * (0.3 + 0.7*normalized)
	cx := float64(o.layout.ScreenWidth()) - beach.SunRadius - 1
	cy := float64(2*beach.SunRadius + beach.CrenelHeight)
	tailX := cx - dir*length/2
	tipX := cx + dir*length/2
	col := interpolateColor(normalized)
	o.drawLine(screen, tailX, cy, tipX, cy, 1.5, col)

	head := length * 0.3
	angle := math.Atan2(0, dir)
	o.drawLine(screen, tipX, cy, tipX-math.Cos(angle+headAngle)*head, cy-math.Sin(angle+headAngle)*head, 1.5, col)
	o.drawLine(screen, tipX, cy, tipX-math.Cos(angle-headAngle)*head, cy-math.Sin(angle-headAngle)*head, 1.5, col)
}

func (o *Overlay) drawTelemetry(screen *ebiten.Image, v beach.View) {
	snap := o.src.Parameters()
	value := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	clock := value("clock")
	if p, ok := snap.Lookup("clock"); ok {
		var t float64
		if _, err := fmt.Sscanf(p.Value, "%g", &t); err == nil {
			clock = fmt.Sprintf("%.1f", t)
		}
	}
	lines := []string{
		fmt.Sprintf("t %s %s", clock, v.State),
		fmt.Sprintf("sea %d", v.SeaPixel),
		fmt.Sprintf("burn %s loose %s", value("burning"), value("loose_ladders")),
		fmt.Sprintf("cell %d,%d %s", v.Context.CX, v.Context.CY, v.Player.Action),
		fmt.Sprintf("up %t down %t", v.Context.NearUpLadder, v.Context.NearDownLadder),
	}
	for i, line := range lines {
		drawText(screen, line, beach.CellsOffset+2, 1+i*glyphHeight, beach.ColorOutline)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
