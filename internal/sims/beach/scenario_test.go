package beach

import (
	"fmt"
	"testing"
)

func TestIdlePlayerDrownsAfterTheTideTurns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellsX = 5
	cfg.CellsY = 5
	layout := cfg.Layout()

	res := RunScenario(cfg, Scenario{Castle: DefaultCastle(layout), Duration: 150})
	if res.FinalState != Drowning {
		t.Fatalf("expected the idle player to drown, final state %v after %.1fs", res.FinalState, res.TimeSimulated)
	}
	// The sea needs roughly 48s past the tide turn to reach the player's head.
	if res.DrownedAt < 85 || res.DrownedAt > 92 {
		t.Fatalf("expected drowning between 85s and 92s, got %.2fs", res.DrownedAt)
	}
	if res.InitialParticles != len(DefaultCastle(layout))*CellWidth*CellHeight {
		t.Fatalf("unexpected initial particle count %d", res.InitialParticles)
	}
	if res.PeakParticles < res.InitialParticles || res.FinalParticles == 0 {
		t.Fatalf("unexpected particle counts: initial %d, peak %d, final %d", res.InitialParticles, res.PeakParticles, res.FinalParticles)
	}
	if res.FinalSeaLevel >= layout.SeaStart() {
		t.Fatalf("expected the sea to have risen, level %.3f", res.FinalSeaLevel)
	}
	if res.Stats.Passes == 0 {
		t.Fatalf("expected settling passes to run")
	}
}

func TestScenarioLaddersNeedFullCells(t *testing.T) {
	cfg := calmConfig(3, 3)
	res := RunScenario(cfg, Scenario{
		Castle:   []CellPos{{CX: 0, CY: 2}, {CX: 1, CY: 2}, {CX: 2, CY: 2}},
		Ladders:  []CellPos{{CX: 0, CY: 2}, {CX: 1, CY: 1}},
		Duration: 0.5,
	})
	if res.FullCells != 3 {
		t.Fatalf("expected three full cells, got %d", res.FullCells)
	}
	if res.Stats.LaddersLoosened != 0 {
		t.Fatalf("a ladder on an open cell should never be placed, %d loosened", res.Stats.LaddersLoosened)
	}
	if res.DrownedAt != -1 {
		t.Fatalf("nobody should drown in half a second")
	}
}

func TestRunScenariosKeepsJobOrder(t *testing.T) {
	var jobs []ScenarioJob
	for i := 0; i < 6; i++ {
		cfg := calmConfig(3, 3)
		cfg.Seed = int64(i + 1)
		cfg.Params.TimeToTide = 0
		cfg.Params.SeaRiseRate = 0.05 * float64(i+1)
		jobs = append(jobs, ScenarioJob{
			Label:    fmt.Sprintf("rise-%d", i),
			Config:   cfg,
			Scenario: Scenario{Duration: 20},
		})
	}

	out := RunScenarios(jobs, 3)
	if len(out) != len(jobs) {
		t.Fatalf("expected %d outcomes, got %d", len(jobs), len(out))
	}
	for i, o := range out {
		if o.Job.Label != jobs[i].Label {
			t.Fatalf("outcome %d has label %q, expected %q", i, o.Job.Label, jobs[i].Label)
		}
		if o.Result.FinalState != Drowning {
			t.Fatalf("%s: expected drowning, got %v", o.Job.Label, o.Result.FinalState)
		}
		if i > 0 && o.Result.DrownedAt > out[i-1].Result.DrownedAt {
			t.Fatalf("%s: a faster tide drowned later (%.2f > %.2f)", o.Job.Label, o.Result.DrownedAt, out[i-1].Result.DrownedAt)
		}
	}

	serial := RunScenarios(jobs[:2], 1)
	if serial[1].Result != out[1].Result {
		t.Fatalf("worker count changed the outcome of %s", jobs[1].Label)
	}
}
