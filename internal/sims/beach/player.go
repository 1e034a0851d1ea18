package beach

import "math"

// Bucket is what the player is carrying.
type Bucket uint8

const (
	BucketEmpty Bucket = iota
	BucketSand
	BucketWater
	BucketDampSand
	BucketWood
)

func (b Bucket) String() string {
	switch b {
	case BucketEmpty:
		return "empty"
	case BucketSand:
		return "sand"
	case BucketWater:
		return "water"
	case BucketDampSand:
		return "damp sand"
	case BucketWood:
		return "wood"
	default:
		return "unknown"
	}
}

// Action is the intent resolved for a single tick.
type Action uint8

const (
	Idle Action = iota
	GettingSand
	GettingWater
	GettingDampSand
	GettingWood
	PouringSand
	PouringWater
	PouringDampSand
	SettingLadder
)

func (a Action) String() string {
	switch a {
	case Idle:
		return "idle"
	case GettingSand:
		return "getting sand"
	case GettingWater:
		return "getting water"
	case GettingDampSand:
		return "getting damp sand"
	case GettingWood:
		return "getting wood"
	case PouringSand:
		return "pouring sand"
	case PouringWater:
		return "pouring water"
	case PouringDampSand:
		return "pouring damp sand"
	case SettingLadder:
		return "setting ladder"
	default:
		return "unknown"
	}
}

// Input is the per-frame control state. Movement fields are held keys, the
// rest are edge-triggered presses.
type Input struct {
	Left, Right, Up, Down bool

	GetSand  bool
	GetWater bool
	GetWood  bool
	Dump     bool

	ToggleRain  bool
	ToggleWind  bool
	ToggleTide  bool
	ToggleDebug bool

	Confirm bool
}

// Player holds the continuous player state. X is the left edge and Y the
// bottom row (feet) of the player, in screen pixels.
type Player struct {
	X, Y   float64
	Bucket Bucket

	fallCharge float64
}

func newPlayer(layout Layout) Player {
	return Player{X: 60, Y: float64(layout.BeachMax() - 1)}
}

// PlayerContext is every flag derived from the player's position against the
// world, computed once per tick and shared by the action resolver and the
// presentation adapters.
type PlayerContext struct {
	CX, CY int

	InBounds       bool
	NearTree       bool
	NearWater      bool
	NearUpLadder   bool
	NearDownLadder bool
	OnCellFloor    bool
	Falling        bool
	// NearLoose is the index of an overlapping loose ladder, or -1.
	NearLoose int

	CanGetSand  bool
	CanGetWater bool
	CanGetWood  bool
	CanDump     bool
}

// playerCell returns the cell under the player's horizontal centre and feet.
func playerCell(x, y float64) (int, int) {
	cx := int(math.Floor((x + PlayerWidth/2 - CellsOffset) / CellWidth))
	cy := int(math.Floor(y / CellHeight))
	return cx, cy
}

func onCellFloor(y float64) bool {
	return int(y)%CellHeight == CellHeight-1
}

// wouldFall reports whether a player at (x, y) lacks footing: neither edge of
// the footprint is above a full damp cell (and not on the beach), or the feet
// are between cell floors.
func (w *World) wouldFall(x, y float64) bool {
	left := int(math.Floor((x - CellsOffset) / CellWidth))
	right := int(math.Floor((x + PlayerWidth - 1 - CellsOffset) / CellWidth))
	cy := int(math.Floor(y / CellHeight))
	canStand := cy >= w.layout.CellsY-1 ||
		w.cells.At(left, cy+1) == FullDamp ||
		w.cells.At(right, cy+1) == FullDamp
	return !canStand || !onCellFloor(y)
}

// accepts reports whether pouring bucket b onto a cell in state c changes it.
func (w *World) accepts(b Bucket, c CastleCell, cx, cy int) bool {
	switch b {
	case BucketSand:
		return c == NonFull
	case BucketWater:
		return c == FullDry || (c == FullDamp && w.Burning(cx, cy))
	case BucketDampSand:
		return c == NonFull || c == FullDry
	case BucketWood:
		return true
	default:
		return false
	}
}

// resolvePlayerContext derives the player's flags from the current state
// without mutating it.
func (w *World) resolvePlayerContext() PlayerContext {
	p := w.player
	seaPx := w.SeaPixel()
	cx, cy := playerCell(p.X, p.Y)
	ctx := PlayerContext{
		CX:          cx,
		CY:          cy,
		InBounds:    w.layout.InCells(cx, cy),
		NearTree:    cx == -1 && cy == w.layout.CellsY-1,
		NearWater:   p.Y >= float64(seaPx-CrenelHeight-1),
		OnCellFloor: onCellFloor(p.Y),
		NearLoose:   w.structures.NearLoose(p.X, p.Y),
	}
	inCell := w.structures.HasLadder(cx, cy)
	inBelow := w.structures.HasLadder(cx, cy+1)
	ctx.NearUpLadder = inCell
	ctx.NearDownLadder = (inCell && !ctx.OnCellFloor) || (inBelow && ctx.OnCellFloor)
	ctx.Falling = w.wouldFall(p.X, p.Y) && !ctx.NearUpLadder && !ctx.NearDownLadder

	ctx.CanGetSand = !ctx.Falling
	ctx.CanGetWater = !ctx.Falling && ctx.NearWater
	ctx.CanGetWood = !ctx.Falling && (ctx.NearTree || ctx.NearLoose >= 0)
	ctx.CanDump = ctx.InBounds && p.Bucket != BucketEmpty &&
		w.accepts(p.Bucket, w.cells.At(cx, cy), cx, cy)
	return ctx
}

// ResolveIntent maps this frame's presses to a single action, gated by the
// context flags. Later keys take precedence.
func ResolveIntent(ctx PlayerContext, b Bucket, in Input) Action {
	action := Idle
	if in.GetSand && ctx.CanGetSand {
		action = GettingSand
		if b == BucketWater {
			action = GettingDampSand
		}
	}
	if in.GetWater && ctx.CanGetWater {
		action = GettingWater
		if b == BucketSand {
			action = GettingDampSand
		}
	}
	if in.GetWood && ctx.CanGetWood {
		action = GettingWood
	}
	if in.Dump && ctx.CanDump {
		switch b {
		case BucketSand:
			action = PouringSand
		case BucketWater:
			action = PouringWater
		case BucketDampSand:
			action = PouringDampSand
		case BucketWood:
			action = SettingLadder
		}
	}
	return action
}

// dropLadder lets go of held wood as a loose ladder at the player's feet.
func (w *World) dropLadder() {
	p := w.player
	w.structures.Drop(p.X+PlayerWidth/2-CellsOffset/2, p.Y-CellHeight/4+1)
}

func (w *World) fill(b Bucket) {
	if w.player.Bucket == BucketWood {
		w.dropLadder()
	}
	w.player.Bucket = b
}

// applyAction mutates the world for the resolved action. Actions whose target
// cannot take the held material leave everything unchanged.
func (w *World) applyAction(a Action, ctx PlayerContext) {
	cx, cy := ctx.CX, ctx.CY
	switch a {
	case Idle:
	case GettingSand:
		w.fill(BucketSand)
	case GettingWater:
		w.fill(BucketWater)
	case GettingDampSand:
		w.fill(BucketDampSand)
	case GettingWood:
		w.fill(BucketWood)
		if !ctx.NearTree {
			w.structures.Take(ctx.NearLoose)
		}
	case PouringSand:
		if w.cells.At(cx, cy) == NonFull {
			fillCell(w.particles, w.cells, cx, cy, FullDry, func(p Particle) Particle {
				if p == DampSand {
					return p
				}
				return DrySand
			})
			w.player.Bucket = BucketEmpty
		}
	case PouringWater:
		// Dampening a dry cell also clears any burn recorded at the same
		// position, matching the damp-cell case.
		switch w.cells.At(cx, cy) {
		case FullDry:
			fillCell(w.particles, w.cells, cx, cy, FullDamp, damp)
			w.player.Bucket = BucketEmpty
			fallthrough
		case FullDamp:
			if w.extinguish(cx, cy) {
				w.player.Bucket = BucketEmpty
			}
		}
	case PouringDampSand:
		switch w.cells.At(cx, cy) {
		case NonFull, FullDry:
			fillCell(w.particles, w.cells, cx, cy, FullDamp, damp)
			w.player.Bucket = BucketEmpty
		}
	case SettingLadder:
		if !w.cells.At(cx, cy).Full() || !w.structures.Place(cx, cy) {
			w.dropLadder()
		}
		w.player.Bucket = BucketEmpty
	}
}

func damp(Particle) Particle { return DampSand }

// movePlayer integrates input and falling, then clamps to the screen.
func (w *World) movePlayer(dt float64, in Input) {
	p := &w.player
	if in.Left {
		p.X -= PlayerSpeedX * dt
	}
	if in.Right {
		p.X += PlayerSpeedX * dt
	}
	if in.Up && w.ctx.NearUpLadder {
		p.Y -= PlayerSpeedY * dt
	}
	if in.Down && w.ctx.NearDownLadder {
		p.Y += PlayerSpeedY * dt
	}

	// Falls are applied one pixel at a time so a thin floor is never skipped.
	if w.wouldFall(p.X, p.Y) && !w.ctx.NearUpLadder && !w.ctx.NearDownLadder {
		p.fallCharge += dt * PlayerFallSpeed
		for p.fallCharge >= 1 {
			p.fallCharge--
			p.Y++
			if !w.wouldFall(p.X, p.Y) || p.Y >= float64(w.layout.BeachMax()-1) {
				p.fallCharge = 0
				break
			}
		}
	} else {
		p.fallCharge = 0
	}

	p.X = math.Max(math.Min(p.X, float64(w.layout.ScreenWidth()-PlayerWidth)), -float64(PlayerWidth)/2)
	p.Y = math.Max(math.Min(p.Y, float64(w.layout.BeachMax()-1)), float64(PlayerHeight-1))
}

// stepPlayer runs one tick of the player controller in the Normal state.
func (w *World) stepPlayer(dt float64, in Input) {
	w.movePlayer(dt, in)

	seaPx := w.SeaPixel()
	if w.player.Y-PlayerHeight+1 >= float64(seaPx) {
		w.setState(Drowning)
	}
	if w.player.Y < CellHeight {
		w.setState(Won)
	}
	if w.state != Normal {
		w.ctx = PlayerContext{NearLoose: -1}
		w.ctx.CX, w.ctx.CY = playerCell(w.player.X, w.player.Y)
		w.action = Idle
		return
	}

	w.ctx = w.resolvePlayerContext()
	w.applyToggles(in)
	w.action = ResolveIntent(w.ctx, w.player.Bucket, in)
	w.applyAction(w.action, w.ctx)
	if w.action != Idle {
		w.ctx = w.resolvePlayerContext()
	}
}

func (w *World) applyToggles(in Input) {
	wx := &w.weather
	if in.ToggleRain {
		wx.Raining = !wx.Raining
	}
	if in.ToggleWind {
		wx.Wind = !wx.Wind
		wx.WindVelocity = w.gust()
	}
	if in.ToggleTide {
		wx.SeaRising = !wx.SeaRising
	}
	if in.ToggleDebug {
		w.debug = !w.debug
	}
}
