package beach

import (
	"math"

	"beach-weather/internal/core"
)

// CellPos addresses a castle cell.
type CellPos struct {
	CX, CY int
}

// Sunburn tracks a damp cell drying out in the sun.
type Sunburn struct {
	CellPos
	Remaining float64
}

// Raindrop is a falling drop in normalized screen coordinates.
type Raindrop struct {
	X, Y float64
}

// Weather is the environment state shared by every hazard.
type Weather struct {
	Raining      bool
	Wind         bool
	WindVelocity float64
	SeaRising    bool
	// SeaLevel is the sea surface in normalized screen units; smaller is higher.
	SeaLevel   float64
	TideBanner bool
}

type hazardClock struct {
	sunburn   core.RateAccumulator
	windOn    core.RateAccumulator
	windStop  float64
	rainSpawn core.RateAccumulator
	woodPush  core.RateAccumulator
	moves     core.RateAccumulator

	rainCounting bool
	rainTimer    float64
	tideCounting bool
	tideTimer    float64
	bannerTimer  float64
}

func newHazardClock(p Params) hazardClock {
	return hazardClock{
		sunburn:      core.NewRateAccumulator(p.SunburnEventRate),
		windOn:       core.NewRateAccumulator(p.WindEventRate),
		rainSpawn:    core.NewRateAccumulator(p.RainRate),
		woodPush:     core.NewRateAccumulator(p.WindWoodPushRate),
		moves:        core.NewRateAccumulator(p.ParticleMoveRate),
		rainCounting: true,
		tideCounting: true,
	}
}

// SampleCells picks up to quota cells from candidates in a single pass. Each
// candidate is accepted with probability min(quota left / candidates left, 1),
// so the selection is fair without knowing the count in advance. An accepted
// candidate for which skip reports true is dropped without using up quota;
// skip may be nil.
func SampleCells(candidates []CellPos, quota int, rng *core.RNG, skip func(CellPos) bool) []CellPos {
	var picked []CellPos
	remaining := len(candidates)
	for _, c := range candidates {
		if quota <= 0 {
			break
		}
		p := math.Min(float64(quota)/float64(remaining), 1)
		if rng.Float64() < p && (skip == nil || !skip(c)) {
			picked = append(picked, c)
			quota--
		}
		remaining--
	}
	return picked
}

// burnCandidates lists full damp cells whose bottom row is above the sea.
func (w *World) burnCandidates(seaPx int) []CellPos {
	var out []CellPos
	for cx := 0; cx < w.cells.W; cx++ {
		for cy := 0; cy < w.cells.H; cy++ {
			if w.cells.At(cx, cy) == FullDamp && CellHeight*(cy+1)-1 < seaPx {
				out = append(out, CellPos{CX: cx, CY: cy})
			}
		}
	}
	return out
}

func (w *World) burnIndex(cx, cy int) int {
	for i, b := range w.burns {
		if b.CX == cx && b.CY == cy {
			return i
		}
	}
	return -1
}

// Burning reports whether the cell at (cx, cy) has an active sunburn.
func (w *World) Burning(cx, cy int) bool { return w.burnIndex(cx, cy) >= 0 }

// extinguish drops the sunburn record at (cx, cy) without drying the cell.
func (w *World) extinguish(cx, cy int) bool {
	i := w.burnIndex(cx, cy)
	if i < 0 {
		return false
	}
	w.burns = append(w.burns[:i], w.burns[i+1:]...)
	w.log.Debug("sunburn extinguished", "cx", cx, "cy", cy)
	return true
}

// triggerSunburn starts up to SunburnQuota new burns on exposed damp cells.
func (w *World) triggerSunburn(seaPx int) {
	burning := func(c CellPos) bool { return w.Burning(c.CX, c.CY) }
	for _, c := range SampleCells(w.burnCandidates(seaPx), w.cfg.Params.SunburnQuota, w.rng, burning) {
		w.burns = append(w.burns, Sunburn{CellPos: c, Remaining: w.cfg.Params.SunburnTime})
		w.stats.BurnsStarted++
		w.log.Debug("sunburn started", "cx", c.CX, "cy", c.CY)
	}
}

// burnDown advances every sunburn; finished cells dry out completely.
func (w *World) burnDown(dt float64) {
	kept := w.burns[:0]
	for _, b := range w.burns {
		b.Remaining -= dt
		if b.Remaining > 0 {
			kept = append(kept, b)
			continue
		}
		fillCell(w.particles, w.cells, b.CX, b.CY, NonFull, func(Particle) Particle { return DrySand })
		w.stats.BurnsFinished++
		w.log.Debug("sunburn dried cell", "cx", b.CX, "cy", b.CY)
	}
	w.burns = kept
}

// maxWindSpeed bounds the wind velocity including gusts.
func (w *World) maxWindSpeed() float64 {
	return w.cfg.Params.WindSpeed * (1 + w.cfg.Params.WindGustScale)
}

// gust returns a wind velocity with a random sign and a noise-scaled magnitude.
func (w *World) gust() float64 {
	scale := w.cfg.Params.WindGustScale
	factor := 1.0
	if scale > 0 && w.noise != nil {
		n := math.Max(-1, math.Min(1, w.noise.Noise1D(w.clock*0.1)))
		factor = 1 + scale*n
	}
	sign := 1.0
	if w.weather.WindVelocity < 0 {
		sign = -1
	}
	return sign * float64(w.rng.Sign()) * w.cfg.Params.WindSpeed * factor
}

func (w *World) windDir() int {
	if !w.weather.Wind {
		return 0
	}
	if w.weather.WindVelocity > 0 {
		return 1
	}
	return -1
}

// rainBand returns the normalized horizontal band in which raindrops live;
// it extends past the screen so that wind-blown drops can drift in.
func (w *World) rainBand() (float64, float64) {
	fall := w.cfg.Params.RainFallSpeed
	if fall <= 0 {
		return 0, 1
	}
	reach := w.maxWindSpeed() / fall
	return -reach, 1 + reach
}

// stepHazards runs every hazard timer for one frame.
func (w *World) stepHazards(dt float64) {
	p := w.cfg.Params
	h := &w.hazards
	wx := &w.weather

	if wx.SeaRising && wx.SeaLevel > 0 {
		wx.SeaLevel = math.Max(0, wx.SeaLevel-p.SeaRiseRate*dt)
	}
	seaPx := w.SeaPixel()

	if w.state != Won {
		w.burnDown(dt)
	}
	for n := h.sunburn.Tick(dt); n > 0; n-- {
		w.triggerSunburn(seaPx)
	}

	if wx.Wind {
		h.windStop += dt
		if h.windStop >= p.WindEventDuration {
			wx.Wind = false
			h.windStop = 0
			w.log.Debug("wind dropped")
		}
	}
	for n := h.windOn.Tick(dt); n > 0; n-- {
		wx.Wind = true
		wx.WindVelocity = w.gust()
		w.log.Debug("wind gust", "velocity", wx.WindVelocity)
	}

	if h.rainCounting {
		h.rainTimer += dt
		if h.rainTimer >= p.TimeToRain {
			h.rainCounting = false
			wx.Raining = true
			w.log.Info("rain started", "clock", w.clock)
		}
	}

	if h.tideCounting {
		h.tideTimer += dt
		if h.tideTimer >= p.TimeToTide {
			h.tideCounting = false
			wx.SeaRising = true
			wx.TideBanner = true
			w.log.Info("tide coming in", "clock", w.clock)
		}
	}
	if wx.TideBanner {
		h.bannerTimer += dt
		if h.bannerTimer >= p.TideDisplayTime {
			wx.TideBanner = false
		}
	}

	w.stepRain(dt)
}

// stepRain moves, culls and spawns raindrops.
func (w *World) stepRain(dt float64) {
	wx := &w.weather
	minX, maxX := w.rainBand()
	kept := w.drops[:0]
	for _, d := range w.drops {
		if wx.Wind {
			d.X += wx.WindVelocity * dt
		}
		d.Y += w.cfg.Params.RainFallSpeed * dt
		if d.Y > wx.SeaLevel || d.X < minX || d.X > maxX {
			continue
		}
		kept = append(kept, d)
	}
	w.drops = kept

	if !wx.Raining {
		return
	}
	for n := w.hazards.rainSpawn.Tick(dt); n > 0; n-- {
		w.drops = append(w.drops, Raindrop{X: minX + (maxX-minX)*w.rng.Float64()})
		w.stats.DropsSpawned++
	}
	if len(w.drops) > w.stats.PeakDrops {
		w.stats.PeakDrops = len(w.drops)
	}
}

// pushDebris blows floating loose ladders along the sea surface.
func (w *World) pushDebris(dt float64, seaPx int) {
	dir := w.windDir()
	if dir == 0 {
		return
	}
	for n := w.hazards.woodPush.Tick(dt); n > 0; n-- {
		w.structures.PushFloating(dir, seaPx, w.layout)
	}
}

// settle runs however many particle passes the move accumulator allows.
func (w *World) settle(dt float64) {
	if w.state == Won {
		return
	}
	dir := w.windDir()
	for n := w.hazards.moves.Tick(dt); n > 0; n-- {
		w.particles.Pass(dir, w.rng)
		w.stats.Passes++
	}
}
