package beach

// Cell geometry is derived from a single balance constant so that the key
// icons, crenels and the space below the beach line all fit on whole pixels:
//
//	2*keyHeight + crenelOffset + 2 = 4*crenelHeight
//	crenelHeight = crenelWidth = 2*crenelOffset
//
// which gives 7*crenelOffset = 2*(keyHeight+1) = balanceMult.
const (
	balanceMult = 28

	CrenelOffset = balanceMult / 7
	CrenelWidth  = 2 * CrenelOffset
	CrenelHeight = CrenelWidth

	KeyWidth   = balanceMult/2 - 1
	KeyHeight  = KeyWidth
	KeySpacing = CrenelOffset

	// CellWidth and CellHeight are the particle footprint of one castle cell.
	CellWidth  = 4*CrenelOffset + 2*CrenelWidth
	CellHeight = 4 * CrenelHeight

	// CellsOffset is the non-buildable strip on the left edge holding the
	// tree, cliffs and wood pile.
	CellsOffset = CellWidth

	PlayerWidth  = 3 * CrenelOffset
	PlayerHeight = 6 * CrenelOffset

	// LadderWidth and LadderHeight size a loose ladder's bounding box.
	LadderWidth  = CellsOffset
	LadderHeight = CellHeight / 4
	// LadderInset is the horizontal inset of a fixed ladder's rails.
	LadderInset = CrenelOffset + CrenelWidth - 1

	BucketWidth = 3*CrenelOffset + CrenelWidth
	SunRadius   = 2 * CrenelWidth

	PlayerSpeedX     = float64(2 * CellWidth)
	PlayerSpeedY     = float64(2 * CellHeight)
	PlayerFallSpeed  = float64(4 * CellHeight)
	PlayerDrownSpeed = float64(CellHeight)

	DefaultCellsX = 9
	DefaultCellsY = 9
)

// Layout holds the screen-space dimensions implied by a cell grid size. All
// positions in the simulation are in screen pixels except particle and cell
// indices, which exclude CellsOffset.
type Layout struct {
	CellsX, CellsY int
}

// ParticlesX returns the particle grid width.
func (l Layout) ParticlesX() int { return l.CellsX * CellWidth }

// ParticlesY returns the particle grid height.
func (l Layout) ParticlesY() int { return l.CellsY * CellHeight }

// ScreenWidth returns the full logical screen width in pixels.
func (l Layout) ScreenWidth() int { return CellsOffset + l.ParticlesX() }

// BeachMax is the screen row of the beach line; the build area sits above it.
func (l Layout) BeachMax() int { return l.ParticlesY() }

// ScreenHeight returns the logical screen height, including the UI strip
// below the beach line.
func (l Layout) ScreenHeight() int { return l.BeachMax() + CellHeight }

// SeaStart is the initial sea level in normalized screen units, one crenel
// below the beach line.
func (l Layout) SeaStart() float64 {
	return float64(l.BeachMax()+CrenelHeight) / float64(l.ScreenHeight())
}

// SeaPixel converts a normalized sea level into a screen row.
func (l Layout) SeaPixel(level float64) int {
	return int(level * float64(l.ScreenHeight()))
}

// CellOrigin returns the particle coordinates of a cell's top-left corner.
func (l Layout) CellOrigin(cx, cy int) (int, int) {
	return cx * CellWidth, cy * CellHeight
}

// InCells reports whether (cx, cy) addresses a castle cell.
func (l Layout) InCells(cx, cy int) bool {
	return cx >= 0 && cx < l.CellsX && cy >= 0 && cy < l.CellsY
}

// MoonStart and MoonTarget bound the moon's path as the tide rises.
func (l Layout) MoonStart() (float64, float64) {
	return float64(CellsOffset + CellWidth), float64(CellHeight)
}

// MoonTarget is where the moon ends up when the sea reaches the top.
func (l Layout) MoonTarget() (float64, float64) {
	return float64(CellsOffset + CellWidth*l.CellsX/2), float64(l.BeachMax())
}
