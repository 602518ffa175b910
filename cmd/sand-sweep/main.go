package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/sand"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	seed       int64
	pourFrames int
	radius     int
	dunes      int
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d pour=%d radius=%d dunes=%d", s.seed, s.pourFrames, s.radius, s.dunes)
}

type scenarioResult struct {
	scenario    scenario
	settled     bool
	settleFrame int
	poured      int
	survivors   int
	pileHeight  int
	baseWidth   int
}

func (r scenarioResult) lost() int { return r.poured - r.survivors }

func main() {
	width := flag.Int("w", 120, "grid columns")
	height := flag.Int("h", 90, "grid rows")
	steps := flag.Int("steps", 600, "maximum frames to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds per parameter combination")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", sand.DefaultConfig().Seed, "base seed the per-scenario seeds derive from")
	flag.Parse()

	base := sand.DefaultConfig()
	base.Width = *width
	base.Height = *height

	pourOptions := []int{20, 60, 120}
	radiusOptions := []int{0, 1, 3}
	duneOptions := []int{0, *height / 6}

	seedList := deriveSeeds(*seed, *seeds)

	var sets []scenario
	for _, pour := range pourOptions {
		for _, radius := range radiusOptions {
			for _, dunes := range duneOptions {
				for _, s := range seedList {
					sets = append(sets, scenario{seed: s, pourFrames: pour, radius: radius, dunes: dunes})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, up to %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var pool errgroup.Group

	for i := 0; i < max(1, *workers); i++ {
		pool.Go(func() error {
			for sc := range jobs {
				results <- runScenario(base, sc, *steps)
			}
			return nil
		})
	}

	go func() {
		pool.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	unsettled := 0
	for res := range results {
		all = append(all, res)
		if !res.settled {
			unsettled++
			fmt.Printf("Still moving after %d steps: %s\n", *steps, res.scenario)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].settleFrame > all[j].settleFrame })
	elapsed := time.Since(start)

	fmt.Printf("\nSlowest 5 to settle (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) frame=%d poured=%d survivors=%d lost=%d height=%d base=%d %s\n",
			i+1, res.settleFrame, res.poured, res.survivors, res.lost(), res.pileHeight, res.baseWidth, res.scenario)
	}
	fmt.Printf("\n%d of %d scenarios settled\n", len(all)-unsettled, len(all))
}

// deriveSeeds expands base into n reproducible sub-seeds, shared by every
// parameter combination so results compare like for like.
func deriveSeeds(base int64, n int) []int64 {
	rng := core.NewRNG(base)
	out := make([]int64, max(0, n))
	for i := range out {
		out[i] = rng.Int64()
	}
	return out
}

// runScenario pours at the top center for pourFrames frames, then steps until
// the grid stops changing or the step budget runs out.
func runScenario(base sand.Config, sc scenario, steps int) scenarioResult {
	cfg := base
	cfg.Seed = sc.seed
	cfg.Radius = sc.radius
	cfg.DuneHeight = sc.dunes

	world := sand.NewWithConfig(cfg)
	world.Reset(sc.seed)

	size := world.Size()
	col := size.W / 2
	row := min(4, size.H-1)

	res := scenarioResult{scenario: sc}
	for step := 0; step < steps; step++ {
		if step < sc.pourFrames {
			before := world.Count()
			world.Apply(sand.Input{Place: true, Column: col, Row: row})
			res.poured += world.Count() - before
		}
		world.Step()
		if step >= sc.pourFrames && !world.Changed() {
			res.settled = true
			res.settleFrame = step + 1
			break
		}
	}
	if !res.settled {
		res.settleFrame = steps
	}

	res.survivors = world.Count()
	res.pileHeight, res.baseWidth = pileShape(world.Grid())
	return res
}

// pileShape returns the height of the tallest column and the number of
// columns that hold any sand.
func pileShape(g *sand.Grid) (height, base int) {
	for c := 0; c < g.Columns(); c++ {
		for r := 0; r < g.Rows(); r++ {
			if g.Occupied(c, r) {
				height = max(height, g.Rows()-r)
				base++
				break
			}
		}
	}
	return height, base
}
