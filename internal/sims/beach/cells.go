package beach

// CastleCell is the aggregate state of one buildable tile.
type CastleCell uint8

const (
	NonFull CastleCell = iota
	FullDry
	FullDamp
)

func (c CastleCell) String() string {
	switch c {
	case NonFull:
		return "non-full"
	case FullDry:
		return "full-dry"
	case FullDamp:
		return "full-damp"
	default:
		return "unknown"
	}
}

// Full reports whether every particle under the cell is sand.
func (c CastleCell) Full() bool { return c == FullDry || c == FullDamp }

func cellFromParticle(p Particle) CastleCell {
	switch p {
	case DrySand:
		return FullDry
	case DampSand:
		return FullDamp
	default:
		return NonFull
	}
}

// CellGrid holds the castle cells, derived from the particle grid each tick.
type CellGrid struct {
	W, H  int
	cells []CastleCell
}

// NewCellGrid allocates an all-NonFull cell grid.
func NewCellGrid(w, h int) *CellGrid {
	return &CellGrid{W: w, H: h, cells: make([]CastleCell, w*h)}
}

// In reports whether (cx, cy) addresses a cell.
func (g *CellGrid) In(cx, cy int) bool {
	return cx >= 0 && cx < g.W && cy >= 0 && cy < g.H
}

// At returns the cell at (cx, cy); out-of-range cells read as NonFull.
func (g *CellGrid) At(cx, cy int) CastleCell {
	if !g.In(cx, cy) {
		return NonFull
	}
	return g.cells[cy*g.W+cx]
}

func (g *CellGrid) set(cx, cy int, c CastleCell) {
	if !g.In(cx, cy) {
		return
	}
	g.cells[cy*g.W+cx] = c
}

// Cells exposes the backing slice, row-major.
func (g *CellGrid) Cells() []CastleCell { return g.cells }

// Clear resets every cell to NonFull.
func (g *CellGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = NonFull
	}
}

// DeriveCell recomputes one cell from its particle footprint. An empty
// top-left particle marks the cell NonFull without scanning the rest of the
// footprint; otherwise the cell takes the minimum particle type present.
func DeriveCell(particles *ParticleGrid, cx, cy int) CastleCell {
	left, top := cx*CellWidth, cy*CellHeight
	first := particles.At(left, top)
	if first == Empty {
		return NonFull
	}
	kind := first
	for y := top; y < top+CellHeight; y++ {
		for x := left; x < left+CellWidth; x++ {
			if p := particles.At(x, y); p < kind {
				kind = p
			}
		}
		if kind == Empty {
			break
		}
	}
	return cellFromParticle(kind)
}

// Derive recomputes every cell from the particle grid.
func (g *CellGrid) Derive(particles *ParticleGrid) {
	for cy := 0; cy < g.H; cy++ {
		for cx := 0; cx < g.W; cx++ {
			g.cells[cy*g.W+cx] = DeriveCell(particles, cx, cy)
		}
	}
}

// fillCell rewrites the full particle footprint of a cell through fn and sets
// the cell state directly; the next derivation confirms it.
func fillCell(particles *ParticleGrid, cells *CellGrid, cx, cy int, state CastleCell, fn func(Particle) Particle) {
	if !cells.In(cx, cy) {
		return
	}
	particles.fillRect(cx*CellWidth, cy*CellHeight, CellWidth, CellHeight, fn)
	cells.set(cx, cy, state)
}
