//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a byte grid to an ebiten image through a palette.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates the backing image and pixel buffer.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Blit draws cells at (x, y) on dst. Cells with a transparent palette entry
// leave dst untouched.
func (p *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, x, y float64) {
	if len(cells) != p.w*p.h {
		return
	}
	fillPaletteRGBA(p.buf, cells, palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(p.img, op)
}
