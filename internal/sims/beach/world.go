package beach

import (
	"log/slog"

	"beach-weather/internal/core"

	"github.com/aquilax/go-perlin"
)

// GameState is the session phase.
type GameState uint8

const (
	Menu GameState = iota
	Normal
	Drowning
	Won
)

func (s GameState) String() string {
	switch s {
	case Menu:
		return "menu"
	case Normal:
		return "normal"
	case Drowning:
		return "drowning"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Stats counts session events for telemetry and tuning runs.
type Stats struct {
	Passes          int
	BurnsStarted    int
	BurnsFinished   int
	LaddersLoosened int
	DropsSpawned    int
	PeakDrops       int
}

// World owns the whole simulation: particles, cells, ladders, hazards and the
// player. It is advanced by Step from a single goroutine; presentation code
// reads it through View after Step returns.
type World struct {
	cfg    Config
	layout Layout
	log    *slog.Logger

	rng   *core.RNG
	noise *perlin.Perlin

	state GameState
	clock float64
	debug bool

	particles  *ParticleGrid
	cells      *CellGrid
	structures Structures

	player Player
	ctx    PlayerContext
	action Action

	weather Weather
	hazards hazardClock
	burns   []Sunburn
	drops   []Raindrop

	stats Stats
}

// New returns a Beach simulation with the provided cell counts using defaults.
func New(cellsX, cellsY int) *World {
	cfg := DefaultConfig()
	cfg.CellsX = cellsX
	cfg.CellsY = cellsY
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// world starts on the menu.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.sanitized()
	layout := cfg.Layout()
	w := &World{
		cfg:       cfg,
		layout:    layout,
		log:       slog.New(slog.DiscardHandler),
		particles: NewParticleGrid(layout.ParticlesX(), layout.ParticlesY()),
		cells:     NewCellGrid(cfg.CellsX, cfg.CellsY),
	}
	w.Reset(cfg.Seed)
	w.state = Menu
	return w
}

// SetLogger routes session events to l. A nil logger discards them.
func (w *World) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	w.log = l
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "beach" }

// Size reports the particle grid dimensions.
func (w *World) Size() core.Size { return w.particles.Size() }

// Layout returns the screen geometry.
func (w *World) Layout() Layout { return w.layout }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// State returns the session phase.
func (w *World) State() GameState { return w.state }

// Stats returns the session counters.
func (w *World) Stats() Stats { return w.stats }

// Cells exposes the particle grid, one Particle value per byte.
func (w *World) Cells() []uint8 { return w.particles.Cells() }

// SeaPixel returns the sea surface as a screen row.
func (w *World) SeaPixel() int { return w.layout.SeaPixel(w.weather.SeaLevel) }

// Reset restores every session variable to its initial value and reseeds the
// random sources. The session phase is left unchanged.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	w.noise = perlin.NewPerlin(2, 2, 3, seed)
	w.clock = 0
	w.debug = false

	w.particles.Clear()
	w.cells.Clear()
	w.structures.Clear()

	w.player = newPlayer(w.layout)
	w.ctx = PlayerContext{NearLoose: -1}
	w.action = Idle

	w.weather = Weather{
		WindVelocity: w.cfg.Params.WindSpeed,
		SeaLevel:     w.layout.SeaStart(),
	}
	w.hazards = newHazardClock(w.cfg.Params)
	w.burns = w.burns[:0]
	w.drops = w.drops[:0]
	w.stats = Stats{}
}

// Start begins a fresh session from the fixed initial layout.
func (w *World) Start() {
	w.Reset(w.cfg.Seed)
	w.setState(Normal)
	w.ctx = w.resolvePlayerContext()
}

func (w *World) setState(s GameState) {
	if w.state == s {
		return
	}
	w.log.Info("session state", "from", w.state.String(), "to", s.String(), "clock", w.clock)
	w.state = s
}

// Step advances the world by dt seconds with the given input. The phases run
// in a fixed order: hazard timers, loose ladder physics, tide wetting, wind on
// floating debris, particle settling, cell derivation, ladder validity, then
// the player.
func (w *World) Step(dt float64, in Input) {
	if dt < 0 {
		dt = 0
	}
	switch w.state {
	case Menu:
		if in.Confirm {
			w.Start()
		}
		return
	case Drowning, Won:
		if in.Confirm {
			w.setState(Menu)
			return
		}
	}

	w.clock += dt
	w.stepHazards(dt)

	seaPx := w.SeaPixel()
	w.structures.SettleLoose(w.cells, w.layout, seaPx, dt)
	w.particles.Wet(seaPx - CrenelHeight)
	w.pushDebris(dt, seaPx)
	w.settle(dt)
	w.cells.Derive(w.particles)
	for _, l := range w.structures.Sweep(w.cells, seaPx) {
		w.stats.LaddersLoosened++
		w.log.Debug("ladder loosened", "cx", l.CX, "cy", l.CY)
	}

	switch w.state {
	case Normal:
		w.stepPlayer(dt, in)
	case Drowning:
		if w.player.Y-PlayerHeight+1 < float64(w.layout.ScreenHeight()) {
			w.player.Y += PlayerDrownSpeed * dt
		}
		w.ctx.CX, w.ctx.CY = playerCell(w.player.X, w.player.Y)
	}
}
