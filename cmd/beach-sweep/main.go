package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"beach-weather/internal/sims/beach"
)

type paramSet struct {
	seaRise     float64
	sunburnRate float64
	towerHeight int
}

func (p paramSet) String() string {
	return fmt.Sprintf("rise=%.4f sunburn=%.4f tower=%d", p.seaRise, p.sunburnRate, p.towerHeight)
}

// overrides collects repeated -set key=value flags.
type overrides map[string]string

func (o overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (o overrides) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	o[k] = v
	return nil
}

// tower stacks a two-cell-wide column of height cells in the middle of the
// beach.
func tower(layout beach.Layout, height int) []beach.CellPos {
	mid := layout.CellsX / 2
	var out []beach.CellPos
	for h := 0; h < height && h < layout.CellsY; h++ {
		cy := layout.CellsY - 1 - h
		out = append(out, beach.CellPos{CX: mid, CY: cy})
		if mid+1 < layout.CellsX {
			out = append(out, beach.CellPos{CX: mid + 1, CY: cy})
		}
	}
	return out
}

func main() {
	duration := flag.Float64("duration", 180, "simulated seconds per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "number of results to print")
	verbose := flag.Bool("v", false, "log each scenario result")
	sets := overrides{}
	flag.Var(sets, "set", "base config override key=value (repeatable)")
	flag.Parse()

	base := beach.FromMap(sets)
	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *duration <= 0 {
		log.Fatalf("duration must be positive, got %v", *duration)
	}

	riseOptions := []float64{1.0 / 600.0, 1.0 / 300.0, 1.0 / 150.0}
	sunburnOptions := []float64{0, 1.0 / 60.0, 1.0 / 30.0, 1.0 / 10.0}
	heightOptions := []int{1, 2, 3, 4}

	var jobs []beach.ScenarioJob
	for _, rise := range riseOptions {
		for _, sun := range sunburnOptions {
			for _, h := range heightOptions {
				p := paramSet{seaRise: rise, sunburnRate: sun, towerHeight: h}
				cfg := base
				cfg.Params.SeaRiseRate = rise
				cfg.Params.SunburnEventRate = sun
				jobs = append(jobs, beach.ScenarioJob{
					Label:    p.String(),
					Config:   cfg,
					Scenario: beach.Scenario{Castle: tower(cfg.Layout(), h), Duration: *duration},
				})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %.0fs each, base %s)\n", len(jobs), *workers, *duration, sets)
	start := time.Now()
	outcomes := beach.RunScenarios(jobs, *workers)
	elapsed := time.Since(start)

	for _, o := range outcomes {
		slog.Debug("scenario finished", "job", o.Job.Label, "state", o.Result.FinalState, "drowned_at", o.Result.DrownedAt)
	}

	// Survivors first, then the longest time to drown.
	sort.SliceStable(outcomes, func(i, j int) bool {
		a, b := outcomes[i].Result, outcomes[j].Result
		if (a.DrownedAt < 0) != (b.DrownedAt < 0) {
			return a.DrownedAt < 0
		}
		return a.DrownedAt > b.DrownedAt
	})

	fmt.Printf("Completed in %s\n", elapsed.Truncate(time.Millisecond))
	limit := *top
	if limit <= 0 || limit > len(outcomes) {
		limit = len(outcomes)
	}
	for i := 0; i < limit; i++ {
		o := outcomes[i]
		r := o.Result
		drowned := "survived"
		if r.DrownedAt >= 0 {
			drowned = fmt.Sprintf("drowned %.1fs", r.DrownedAt)
		}
		fmt.Printf("%2d. %-40s %-16s cells=%d burns=%d/%d loosened=%d particles=%d..%d peakDrops=%d\n",
			i+1, o.Job.Label, drowned, r.FullCells, r.Stats.BurnsFinished, r.Stats.BurnsStarted,
			r.Stats.LaddersLoosened, r.FinalParticles, r.PeakParticles, r.Stats.PeakDrops)
	}
}
