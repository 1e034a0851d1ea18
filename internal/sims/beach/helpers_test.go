package beach

import "testing"

// calmConfig returns a small world with every timed hazard switched off.
func calmConfig(cellsX, cellsY int) Config {
	cfg := DefaultConfig()
	cfg.CellsX = cellsX
	cfg.CellsY = cellsY
	cfg.Params.SunburnEventRate = 0
	cfg.Params.WindEventRate = 0
	cfg.Params.TimeToRain = 1e9
	cfg.Params.TimeToTide = 1e9
	return cfg
}

func startedWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w := NewWithConfig(cfg)
	w.Start()
	if w.State() != Normal {
		t.Fatalf("expected a started world to be in the normal state, got %v", w.State())
	}
	return w
}

const frame = 1.0 / 60.0

func (w *World) stepN(n int, in Input) {
	for i := 0; i < n; i++ {
		w.Step(frame, in)
	}
}

func (w *World) buildDamp(cx, cy int) {
	fillCell(w.particles, w.cells, cx, cy, FullDamp, damp)
}

// buildDampRow fills every cell in row cy. A full-width layer has no free
// diagonal for its edge particles, so it stays full while the world steps.
func (w *World) buildDampRow(cy int) {
	for cx := 0; cx < w.cells.W; cx++ {
		w.buildDamp(cx, cy)
	}
}
