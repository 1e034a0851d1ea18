package beach

// BurnView is a sunburn as seen by a presentation adapter.
type BurnView struct {
	CellPos
	Remaining float64
	// Fraction is the remaining share of the burn, 1 when fresh.
	Fraction float64
}

// PlayerView is the player as seen by a presentation adapter.
type PlayerView struct {
	X, Y   float64
	CX, CY int
	Bucket Bucket
	Action Action
}

// View is a read-only copy of the world taken after Step. Adapters may keep
// it across frames; it shares no memory with the world.
type View struct {
	Layout Layout
	State  GameState
	Debug  bool

	// Particles holds one Particle value per byte, row-major, sized
	// Layout.ParticlesX() by Layout.ParticlesY().
	Particles []uint8
	// Cells holds the castle cells, row-major, Layout.CellsX wide.
	Cells   []CastleCell
	Ladders []Ladder
	Loose   []LooseLadder
	Burns   []BurnView
	Drops   []Raindrop

	Player  PlayerView
	Context PlayerContext

	Weather  Weather
	SeaPixel int
	// SeaProgress runs from 0 at the starting tide to 1 when the sea reaches
	// the top of the screen.
	SeaProgress float64
}

// Cell returns the castle cell at (cx, cy), NonFull when out of range.
func (v View) Cell(cx, cy int) CastleCell {
	if !v.Layout.InCells(cx, cy) {
		return NonFull
	}
	return v.Cells[cy*v.Layout.CellsX+cx]
}

// Burning reports whether any cell is drying out.
func (v View) Burning() bool { return len(v.Burns) > 0 }

// View copies the state a presentation adapter needs.
func (w *World) View() View {
	v := View{
		Layout:    w.layout,
		State:     w.state,
		Debug:     w.debug,
		Particles: append([]uint8(nil), w.particles.Cells()...),
		Cells:     append([]CastleCell(nil), w.cells.Cells()...),
		Ladders:   append([]Ladder(nil), w.structures.Ladders...),
		Loose:     append([]LooseLadder(nil), w.structures.Loose...),
		Drops:     append([]Raindrop(nil), w.drops...),
		Player: PlayerView{
			X:      w.player.X,
			Y:      w.player.Y,
			CX:     w.ctx.CX,
			CY:     w.ctx.CY,
			Bucket: w.player.Bucket,
			Action: w.action,
		},
		Context:  w.ctx,
		Weather:  w.weather,
		SeaPixel: w.SeaPixel(),
	}
	if start := w.layout.SeaStart(); start > 0 {
		v.SeaProgress = 1 - w.weather.SeaLevel/start
	}
	v.Burns = make([]BurnView, len(w.burns))
	for i, b := range w.burns {
		frac := 0.0
		if w.cfg.Params.SunburnTime > 0 {
			frac = b.Remaining / w.cfg.Params.SunburnTime
		}
		v.Burns[i] = BurnView{CellPos: b.CellPos, Remaining: b.Remaining, Fraction: frac}
	}
	return v
}
