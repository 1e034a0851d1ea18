//go:build ebiten

package ui

import (
	"image/color"

	"beach-weather/internal/sims/beach"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the action keys, the bucket indicator and status banners in the
// strip below the beach line.
type HUD struct {
	layout beach.Layout
}

// NewHUD returns a HUD for layout.
func NewHUD(layout beach.Layout) *HUD {
	return &HUD{layout: layout}
}

// Draw paints the HUD for v.
func (h *HUD) Draw(screen *ebiten.Image, v beach.View) {
	sw := h.layout.ScreenWidth()
	sh := h.layout.ScreenHeight()
	if v.State == beach.Menu {
		drawText(screen, "F to start", sw/2-40-1, sh/2-4-1, beach.ColorText)
		return
	}

	h.drawKeys(screen, v)
	h.drawBucket(screen, v.Player.Bucket)

	switch v.State {
	case beach.Won:
		drawCentred(screen, "You made it!", sw/2, sh/2)
		drawCentred(screen, "Press F for menu", sw/2, sh/2+glyphHeight)
	case beach.Drowning:
		drawCentred(screen, "Oops...", sw/2, sh/2)
		drawCentred(screen, "Press F for menu", sw/2, sh/2+glyphHeight)
	case beach.Normal:
		if v.Weather.TideBanner {
			drawCentred(screen, "The tide is coming in!", sw/2, sh/2)
		}
	}
}

// keyColors returns the fill for the A and S keys. Pressing A with sand, or S
// with water, makes damp sand, so those keys take the damp sand colour.
func keyColors(b beach.Bucket) (water, sand color.RGBA) {
	water, sand = beach.ColorSea, beach.ColorDrySand
	switch b {
	case beach.BucketSand:
		water = beach.ColorDampSand
	case beach.BucketWater:
		sand = beach.ColorDampSand
	}
	return water, sand
}

func (h *HUD) drawKeys(screen *ebiten.Image, v beach.View) {
	sh := h.layout.ScreenHeight()
	bottom := sh - beach.KeyHeight - 1
	stride := beach.KeyWidth + beach.KeySpacing
	water, sand := keyColors(v.Player.Bucket)
	ctx := v.Context

	drawKey(screen, 0, bottom, water, "A", ctx.CanGetWater)
	drawKey(screen, stride, bottom, sand, "S", ctx.CanGetSand)
	drawKey(screen, stride, bottom-beach.KeyHeight-beach.KeySpacing, beach.ColorWood, "W", ctx.CanGetWood)
	drawKey(screen, 2*stride, bottom, beach.ColorSky, "D", ctx.CanDump)
}

func drawKey(screen *ebiten.Image, x, y int, fill color.RGBA, letter string, valid bool) {
	vector.StrokeRect(screen, float32(x)+0.5, float32(y)+0.5, beach.KeyWidth, beach.KeyHeight, 1, beach.ColorGrey, false)
	lx := x + (beach.KeyWidth+1-glyphWidth)/2
	ly := y + (beach.KeyHeight+1-glyphHeight)/2
	if !valid {
		drawText(screen, letter, lx, ly, beach.ColorGrey)
		return
	}
	vector.DrawFilledRect(screen, float32(x+1), float32(y+1), beach.KeyWidth-1, beach.KeyHeight-1, fill, false)
	drawText(screen, letter, lx, ly, beach.ColorText)
}

func (h *HUD) drawBucket(screen *ebiten.Image, b beach.Bucket) {
	sw := float32(h.layout.ScreenWidth())
	top := float32(h.layout.BeachMax() + 1)
	height := float32(h.layout.ScreenHeight()-h.layout.BeachMax()) - 1
	vector.DrawFilledRect(screen, sw-beach.BucketWidth, top, beach.BucketWidth, height, beach.ColorGrey, false)
	vector.DrawFilledRect(screen, sw-beach.BucketWidth+1, top, beach.BucketWidth-2, height-1, beach.BucketColor(b), false)
}

const (
	glyphWidth  = 7
	glyphHeight = 13
)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	face := basicfont.Face7x13
	text.Draw(dst, s, face, x, y+face.Ascent, c)
}

// drawCentred centres s on (x, y).
func drawCentred(dst *ebiten.Image, s string, x, y int) {
	drawText(dst, s, x-glyphWidth*len(s)/2-1, y-glyphHeight/2-1, beach.ColorText)
}
