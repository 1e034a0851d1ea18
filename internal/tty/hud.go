package tty

import (
	"image/color"

	"beach-weather/internal/sims/beach"
)

var (
	textColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dimColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	panelColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// drawHUD writes the status banners over the scene and the key legend on
// the first row below it.
func drawHUD(f *Frame, v beach.View) {
	mid := f.SceneRows / 2
	switch v.State {
	case beach.Menu:
		f.centred(mid, "F to start", textColor)
		return
	case beach.Won:
		f.centred(mid, "You made it!", textColor)
		f.centred(mid+1, "Press F for menu", textColor)
	case beach.Drowning:
		f.centred(mid, "Oops...", textColor)
		f.centred(mid+1, "Press F for menu", textColor)
	case beach.Normal:
		if v.Weather.TideBanner {
			f.centred(mid, "The tide is coming in!", textColor)
		}
	}

	row := f.SceneRows
	if row >= f.Rows {
		row = f.Rows - 1
	}
	ctx := v.Context
	col := 0
	for _, k := range []struct {
		label string
		ok    bool
	}{
		{"A water", ctx.CanGetWater},
		{"S sand", ctx.CanGetSand},
		{"W wood", ctx.CanGetWood},
		{"D dump", ctx.CanDump},
	} {
		fg := dimColor
		if k.ok {
			fg = textColor
		}
		col = f.text(col, row, k.label, fg, panelColor) + 1
	}
	bucket := "[" + v.Player.Bucket.String() + "]"
	f.text(col, row, bucket, panelColor, beach.BucketColor(v.Player.Bucket))
}

// text writes s at (col, row) and returns the column after it.
func (f *Frame) text(col, row int, s string, fg, bg color.RGBA) int {
	for _, r := range s {
		f.set(col, row, Glyph{Rune: r, FG: fg, BG: bg})
		col++
	}
	return col
}

// centred writes s centred on the scene, keeping the background underneath.
func (f *Frame) centred(row int, s string, fg color.RGBA) {
	col := (f.SceneCols - len([]rune(s))) / 2
	if col < 0 {
		col = 0
	}
	for _, r := range s {
		bg := f.At(col, row).BG
		f.set(col, row, Glyph{Rune: r, FG: fg, BG: bg})
		col++
	}
}
