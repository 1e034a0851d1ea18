//go:build ebiten

package render

import (
	"image/color"
	"math"

	"beach-weather/internal/sims/beach"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene draws a beach View at logical resolution: one screen pixel per
// particle.
type Scene struct {
	layout    beach.Layout
	particles *GridPainter
}

// NewScene sizes the particle painter for layout.
func NewScene(layout beach.Layout) *Scene {
	return &Scene{
		layout:    layout,
		particles: NewGridPainter(layout.ParticlesX(), layout.ParticlesY()),
	}
}

// Draw paints the world back to front. HUD elements are drawn separately.
func (s *Scene) Draw(screen *ebiten.Image, v beach.View) {
	screen.Fill(beach.ColorSky)
	if v.State == beach.Menu {
		s.drawBeach(screen)
		return
	}

	s.drawSky(screen, v)
	s.drawBeach(screen)
	s.particles.Blit(screen, v.Particles, beach.ParticlePalette(), beach.CellsOffset, 0)
	s.drawCellTops(screen, v)
	s.drawBurns(screen, v)
	s.drawLadders(screen, v)
	s.drawFires(screen, v)
	s.drawShore(screen)
	for _, l := range v.Loose {
		woodPlank(screen, float32(l.X), float32(l.Y))
	}

	// Crenels on rows at or above the player are drawn behind them.
	s.drawCrenels(screen, v, 0, v.Player.CY+1)
	fillRect(screen, float32(v.Player.X), float32(v.Player.Y)-beach.PlayerHeight+1,
		beach.PlayerWidth, beach.PlayerHeight, beach.ColorPlayer)
	s.drawCrenels(screen, v, v.Player.CY+1, s.layout.CellsY)

	sw := float32(s.layout.ScreenWidth())
	sh := float32(s.layout.ScreenHeight())
	sea := float32(v.SeaPixel)
	if sea < sh {
		fillRect(screen, 0, sea, sw, sh-sea, beach.ColorSeaOverlay)
	}
	for _, d := range v.Drops {
		fillRect(screen, float32(d.X)*sw, float32(d.Y)*sh, dropSize, dropSize, beach.ColorSea)
	}
}

const dropSize = 2

func (s *Scene) drawSky(screen *ebiten.Image, v beach.View) {
	sw := float32(s.layout.ScreenWidth())
	sun := beach.ColorSun
	if v.Burning() {
		sun = beach.ColorFire
	}
	vector.DrawFilledCircle(screen, sw-beach.SunRadius-1, beach.SunRadius, beach.SunRadius, sun, false)

	// The moon approaches on a cubic curve and grows with the tide.
	p := v.SeaProgress
	if p <= 0 {
		return
	}
	t := math.Pow(p, 3)
	x0, y0 := s.layout.MoonStart()
	x1, y1 := s.layout.MoonTarget()
	vector.DrawFilledCircle(screen,
		float32(x0+(x1-x0)*t), float32(y0+(y1-y0)*t),
		sw*float32(p), beach.ColorMoon, false)
}

func (s *Scene) drawBeach(screen *ebiten.Image) {
	sw := float32(s.layout.ScreenWidth())
	beachY := float32(s.layout.BeachMax())
	fillRect(screen, 0, beachY, sw, float32(s.layout.ScreenHeight())-beachY, beach.ColorDampSand)
	hline(screen, 0, sw, beachY, beach.ColorSandEdge)
}

func (s *Scene) cellOrigin(cx, cy int) (float32, float32) {
	x, y := s.layout.CellOrigin(cx, cy)
	return float32(x + beach.CellsOffset), float32(y)
}

func (s *Scene) drawCellTops(screen *ebiten.Image, v beach.View) {
	for cy := 0; cy < s.layout.CellsY; cy++ {
		for cx := 0; cx < s.layout.CellsX; cx++ {
			x, y := s.cellOrigin(cx, cy)
			switch v.Cell(cx, cy) {
			case beach.FullDamp:
				hline(screen, x, beach.CellWidth, y, beach.ColorSandEdge)
			case beach.FullDry:
				hline(screen, x, beach.CellWidth, y, beach.ColorDampSand)
			}
		}
	}
}

func (s *Scene) drawBurns(screen *ebiten.Image, v beach.View) {
	for _, b := range v.Burns {
		x, y := s.cellOrigin(b.CX, b.CY)
		fillRect(screen, x, y, beach.CellWidth, beach.CellHeight, beach.BurnColor(b.Fraction))
		hline(screen, x, beach.CellWidth, y, beach.ColorSandEdge)
	}
}

func (s *Scene) drawFires(screen *ebiten.Image, v beach.View) {
	for _, b := range v.Burns {
		x, y := s.cellOrigin(b.CX, b.CY)
		fillRect(screen, x, y+3*beach.CrenelHeight, beach.CellWidth, beach.CrenelHeight, beach.ColorFire)
	}
}

func (s *Scene) drawLadders(screen *ebiten.Image, v beach.View) {
	const rungs = 3
	for _, l := range v.Ladders {
		x, y := s.cellOrigin(l.CX, l.CY)
		left := x + beach.LadderInset
		right := x + beach.CellWidth - beach.LadderInset - 1
		vline(screen, left, y+1, beach.CellHeight-1, beach.ColorWood)
		vline(screen, right, y+1, beach.CellHeight-1, beach.ColorWood)
		for r := 1; r <= rungs; r++ {
			hline(screen, left, right-left+1, y+float32(r*beach.CrenelHeight), beach.ColorWood)
		}
	}
}

// drawShore paints the cliff with its grass cap and the wood pile under the
// tree.
func (s *Scene) drawShore(screen *ebiten.Image) {
	beachY := float32(s.layout.BeachMax())
	top := float32(beach.CellHeight - beach.CellHeight/4)
	fillRect(screen, 0, top, beach.CellsOffset/2, beachY-beach.CellHeight, beach.ColorCliff)
	fillRect(screen, 0, top, beach.CellsOffset/2, beach.CrenelOffset, beach.ColorGrass)

	woodPlank(screen, 0, beachY-beach.LadderHeight)
	woodPlank(screen, 0, beachY-2*beach.LadderHeight)
}

func woodPlank(screen *ebiten.Image, x, y float32) {
	fillRect(screen, x, y, beach.LadderWidth, beach.LadderHeight, beach.ColorWood)
	strokeRect(screen, x, y, beach.LadderWidth-1, beach.LadderHeight-1, beach.ColorOutline)
}

func (s *Scene) drawCrenels(screen *ebiten.Image, v beach.View, fromCY, toCY int) {
	if fromCY < 0 {
		fromCY = 0
	}
	for cy := fromCY; cy < toCY && cy < s.layout.CellsY; cy++ {
		for cx := 0; cx < s.layout.CellsX; cx++ {
			if v.Cell(cx, cy) != beach.FullDamp {
				continue
			}
			x, y := s.cellOrigin(cx, cy)
			crenel(screen, x+beach.CrenelOffset, y)
			crenel(screen, x+3*beach.CrenelOffset+beach.CrenelWidth, y)
		}
	}
}

// crenel draws one battlement standing on row y. The fill reaches one row
// into the cell to cover the cell's top edge.
func crenel(screen *ebiten.Image, x, y float32) {
	const w, h = beach.CrenelWidth, beach.CrenelHeight
	fillRect(screen, x+1, y-h, w-2, h+1, beach.ColorDampSand)
	vline(screen, x, y-h, h, beach.ColorSandEdge)
	vline(screen, x+w-1, y-h, h, beach.ColorSandEdge)
	hline(screen, x, w, y-h, beach.ColorSandEdge)
}

func fillRect(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, x, y, w, h, c, false)
}

func hline(dst *ebiten.Image, x, w, y float32, c color.Color) {
	fillRect(dst, x, y, w, 1, c)
}

func vline(dst *ebiten.Image, x, y, h float32, c color.Color) {
	fillRect(dst, x, y, 1, h, c)
}

// strokeRect outlines the pixels from (x, y) to (x+w, y+h) inclusive.
func strokeRect(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.StrokeRect(dst, x+0.5, y+0.5, w, h, 1, c, false)
}
