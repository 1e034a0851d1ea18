package beach

import "math"

// Ladder is a ladder fixed to a castle cell.
type Ladder struct {
	CX, CY int
}

// LooseLadder is a free ladder positioned by the top-left corner of its
// bounding box in screen pixels.
type LooseLadder struct {
	X, Y float64

	fallCharge float64
}

// Bottom returns the screen row just below the ladder.
func (l LooseLadder) Bottom() int { return int(l.Y) + LadderHeight }

// Structures is the ladder registry.
type Structures struct {
	Ladders []Ladder
	Loose   []LooseLadder
}

// Clear removes every ladder.
func (s *Structures) Clear() {
	s.Ladders = s.Ladders[:0]
	s.Loose = s.Loose[:0]
}

// HasLadder reports whether a fixed ladder occupies (cx, cy).
func (s *Structures) HasLadder(cx, cy int) bool {
	for _, l := range s.Ladders {
		if l.CX == cx && l.CY == cy {
			return true
		}
	}
	return false
}

// Place fixes a ladder to (cx, cy). It returns false when one is already there.
func (s *Structures) Place(cx, cy int) bool {
	if s.HasLadder(cx, cy) {
		return false
	}
	s.Ladders = append(s.Ladders, Ladder{CX: cx, CY: cy})
	return true
}

// Drop adds a loose ladder at the given screen position, snapped to whole pixels.
func (s *Structures) Drop(x, y float64) {
	s.Loose = append(s.Loose, LooseLadder{X: math.Floor(x), Y: math.Floor(y)})
}

// Take removes the loose ladder at index i.
func (s *Structures) Take(i int) {
	if i < 0 || i >= len(s.Loose) {
		return
	}
	s.Loose = append(s.Loose[:i], s.Loose[i+1:]...)
}

// NearLoose returns the index of the first loose ladder overlapping the
// player's reach, or -1. px is the player's left edge, py the player's feet.
func (s *Structures) NearLoose(px, py float64) int {
	for i, l := range s.Loose {
		if l.X <= px+PlayerWidth-1 &&
			l.X+LadderWidth-1 >= px &&
			py >= l.Y-CrenelHeight &&
			py-PlayerHeight+1 <= l.Y+LadderHeight-1 {
			return i
		}
	}
	return -1
}

// Sweep converts every fixed ladder whose cell is no longer full, or is at or
// below the sea surface, into a loose ladder resting at the cell's lower edge.
// It returns the converted ladders.
func (s *Structures) Sweep(cells *CellGrid, seaPx int) []Ladder {
	var loosened []Ladder
	kept := s.Ladders[:0]
	for _, l := range s.Ladders {
		underWater := seaPx <= l.CY*CellHeight
		if cells.At(l.CX, l.CY).Full() && !underWater {
			kept = append(kept, l)
			continue
		}
		s.Loose = append(s.Loose, LooseLadder{
			X: float64(CellsOffset + l.CX*CellWidth),
			Y: float64((l.CY+1)*CellHeight - LadderHeight),
		})
		loosened = append(loosened, l)
	}
	s.Ladders = kept
	return loosened
}

// resting reports whether a loose ladder is supported by the beach, the sea
// surface, or the top of a full cell under any part of it.
func resting(l LooseLadder, cells *CellGrid, layout Layout, seaPx int) bool {
	bottom := l.Bottom()
	if bottom >= layout.BeachMax() || bottom >= seaPx {
		return true
	}
	if bottom%CellHeight != 0 {
		return false
	}
	cy := bottom / CellHeight
	left := floorDiv(int(l.X)-CellsOffset, CellWidth)
	right := floorDiv(int(l.X)+LadderWidth-1-CellsOffset, CellWidth)
	for cx := left; cx <= right; cx++ {
		if cells.At(cx, cy).Full() {
			return true
		}
	}
	return false
}

// SettleLoose lets unsupported loose ladders fall one pixel per accumulated
// pixel of fall distance, then lifts any ladder below the sea surface to float
// on it.
func (s *Structures) SettleLoose(cells *CellGrid, layout Layout, seaPx int, dt float64) {
	for i := range s.Loose {
		l := &s.Loose[i]
		if resting(*l, cells, layout, seaPx) {
			l.fallCharge = 0
		} else {
			l.fallCharge += dt * PlayerFallSpeed
			for l.fallCharge >= 1 {
				l.fallCharge--
				l.Y++
				if resting(*l, cells, layout, seaPx) {
					l.fallCharge = 0
					break
				}
			}
		}
		if l.Bottom() > seaPx {
			l.Y = float64(seaPx - LadderHeight)
		}
	}
}

// Floating reports whether the ladder rests exactly on the sea surface.
func (l LooseLadder) Floating(seaPx int) bool {
	return l.Y == float64(seaPx-LadderHeight)
}

// PushFloating moves every floating ladder one pixel in direction dir, keeping
// it inside the build area.
func (s *Structures) PushFloating(dir int, seaPx int, layout Layout) {
	for i := range s.Loose {
		l := &s.Loose[i]
		if !l.Floating(seaPx) {
			continue
		}
		switch {
		case dir > 0 && l.X+LadderWidth-1 < float64(layout.ScreenWidth()-1):
			l.X++
		case dir < 0 && l.X > CellsOffset:
			l.X--
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
