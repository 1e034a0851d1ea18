package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// The dimensions are fixed at allocation; callers bounds-check with In before
// indexing.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-range coordinates read as zero.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.In(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set writes v at (x, y). Out-of-range writes are dropped.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.In(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Swap exchanges the values at two in-range positions.
func (g *ByteGrid) Swap(x1, y1, x2, y2 int) {
	i, j := g.Index(x1, y1), g.Index(x2, y2)
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// Count returns how many cells hold a non-zero value.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
