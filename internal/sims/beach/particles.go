package beach

import "beach-weather/internal/core"

// Particle is the state of one fine-grained grid position. The ordering
// Empty < DrySand < DampSand is significant for cell derivation.
type Particle uint8

const (
	Empty Particle = iota
	DrySand
	DampSand
)

func (p Particle) String() string {
	switch p {
	case Empty:
		return "empty"
	case DrySand:
		return "dry"
	case DampSand:
		return "damp"
	default:
		return "unknown"
	}
}

// ParticleGrid is the fixed-size particle field under the castle cells.
type ParticleGrid struct {
	g *core.ByteGrid
}

// NewParticleGrid allocates an all-empty particle grid.
func NewParticleGrid(w, h int) *ParticleGrid {
	return &ParticleGrid{g: core.NewByteGrid(w, h)}
}

// Size reports the grid dimensions.
func (p *ParticleGrid) Size() core.Size { return core.Size{W: p.g.W, H: p.g.H} }

// Cells exposes the backing slice, one Particle value per byte, row-major.
func (p *ParticleGrid) Cells() []uint8 { return p.g.Cells() }

// At returns the particle at (x, y); out-of-range positions read as Empty.
func (p *ParticleGrid) At(x, y int) Particle { return Particle(p.g.At(x, y)) }

// Set writes a particle; out-of-range writes are dropped.
func (p *ParticleGrid) Set(x, y int, v Particle) { p.g.Set(x, y, uint8(v)) }

// Clear empties every position.
func (p *ParticleGrid) Clear() { p.g.Clear() }

// Count returns the number of non-empty particles.
func (p *ParticleGrid) Count() int { return p.g.Count() }

// Census counts dry and damp particles.
func (p *ParticleGrid) Census() (dry, damp int) {
	for _, v := range p.g.Cells() {
		switch Particle(v) {
		case DrySand:
			dry++
		case DampSand:
			damp++
		}
	}
	return dry, damp
}

// swapIfEmpty moves the particle at (x1, y1) to (x2, y2) when the target is in
// bounds and empty.
func (p *ParticleGrid) swapIfEmpty(x1, y1, x2, y2 int) bool {
	if !p.g.In(x2, y2) || Particle(p.g.At(x2, y2)) != Empty {
		return false
	}
	p.g.Swap(x1, y1, x2, y2)
	return true
}

type move struct{ dx, dy int }

type moveList struct {
	n int
	m [4]move
}

func (l *moveList) add(dx, dy int) {
	l.m[l.n] = move{dx, dy}
	l.n++
}

// candidateMoves lists the relative targets a particle tries, in order, during
// one settling pass. windDir is 0 when calm, otherwise the sign of the wind
// velocity. pref is the diagonal fall preference (+1 right, -1 left). cohesive
// is set when a damp particle has damp neighbours on both sides.
func candidateMoves(kind Particle, windDir, pref int, cohesive bool) moveList {
	var l moveList
	switch kind {
	case DrySand:
		if windDir == 0 {
			l.add(0, 1)
			l.add(pref, 1)
			l.add(-pref, 1)
			break
		}
		l.add(pref, 1)
		l.add(0, 1)
		l.add(pref, 0)
		l.add(-pref, 1)
	case DampSand:
		l.add(0, 1)
		if !cohesive {
			l.add(pref, 1)
			l.add(-pref, 1)
		}
	case Empty:
	}
	return l
}

// Pass runs one settling sweep. Rows are scanned bottom to top so a particle
// that fell this pass is not processed again lower down; the scan direction
// within a row is random when calm and follows the wind otherwise.
func (p *ParticleGrid) Pass(windDir int, rng *core.RNG) {
	w, h := p.g.W, p.g.H
	for y := h - 1; y >= 0; y-- {
		reverse := windDir < 0
		if windDir == 0 {
			reverse = rng.Bool()
		}
		for i := 0; i < w; i++ {
			x := i
			if reverse {
				x = w - 1 - i
			}
			p.settleAt(x, y, windDir, rng)
		}
	}
}

func (p *ParticleGrid) settleAt(x, y, windDir int, rng *core.RNG) {
	kind := p.At(x, y)
	if kind == Empty {
		return
	}
	cohesive := false
	if kind == DampSand {
		leftDamp := x > 0 && p.At(x-1, y) == DampSand
		rightDamp := x < p.g.W-1 && p.At(x+1, y) == DampSand
		cohesive = leftDamp && rightDamp
	}
	pref := windDir
	if pref == 0 {
		pref = rng.Sign()
	}
	moves := candidateMoves(kind, windDir, pref, cohesive)
	for i := 0; i < moves.n; i++ {
		m := moves.m[i]
		if p.swapIfEmpty(x, y, x+m.dx, y+m.dy) {
			return
		}
	}
}

// Wet converts every dry particle on or below row fromRow to damp and returns
// how many changed.
func (p *ParticleGrid) Wet(fromRow int) int {
	if fromRow < 0 {
		fromRow = 0
	}
	if fromRow >= p.g.H {
		return 0
	}
	cells := p.g.Cells()
	n := 0
	for i := p.g.Index(0, fromRow); i < len(cells); i++ {
		if Particle(cells[i]) == DrySand {
			cells[i] = uint8(DampSand)
			n++
		}
	}
	return n
}

// fillRect rewrites every particle in the rectangle through fn.
func (p *ParticleGrid) fillRect(x0, y0, w, h int, fn func(Particle) Particle) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if !p.g.In(x, y) {
				continue
			}
			p.Set(x, y, fn(p.At(x, y)))
		}
	}
}
