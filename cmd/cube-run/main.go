package main

import (
	"flag"
	"log"
	"time"

	"cube-ca/internal/app"
	"cube-ca/internal/core"
	"cube-ca/internal/sims/cube"
	"cube-ca/pkg/lattice"
)

func main() {
	steps := flag.Int("steps", 200, "generations to run (0 runs until extinction)")
	every := flag.Int("every", 10, "log stats every N generations")
	tps := flag.Int("tps", 0, "pace generations per second (0 runs flat out)")
	var overrides app.KVList
	flag.Var(&overrides, "set", "cube parameter override in key=value form (repeatable)")
	flag.Parse()

	params, err := overrides.Map()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := cube.Parse(params)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	world, err := cube.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("build world: %v", err)
	}

	log.Printf("cube %dx%dx%d boundary=%s rule=%s p=%.4f max_life=%d seed=%d workers=%d",
		cfg.Width, cfg.Height, cfg.Depth, cfg.Boundary, cfg.Rule, cfg.Probability, cfg.MaxLife, world.Seed(), cfg.Workers)
	logStats(world.Stats())

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}
	start := time.Now()
	res := run(world, *steps, *every, pacer, logStats)
	elapsed := time.Since(start)

	if res.extinct {
		log.Printf("extinct at generation %d", res.last.Generation)
	}
	log.Printf("ran %d generations in %s (%.1f gen/s), peak alive %d",
		res.last.Generation, elapsed.Round(time.Millisecond), float64(res.last.Generation)/max(elapsed.Seconds(), 1e-9), res.peak)
}

type runResult struct {
	last    lattice.Stats
	peak    int
	extinct bool
}

// run steps world until steps generations have passed or nothing is left to
// show. report is called every `every` generations and on the final one.
func run(world *cube.World, steps, every int, pacer *core.FixedStep, report func(lattice.Stats)) runResult {
	res := runResult{last: world.Stats(), peak: world.Stats().Alive}
	for i := 0; steps <= 0 || i < steps; i++ {
		if pacer != nil {
			pacer.Wait()
		}
		world.Step()
		st := world.Stats()
		res.last = st
		res.peak = max(res.peak, st.Alive)
		if st.Alive == 0 && st.Visible == 0 {
			res.extinct = true
			report(st)
			return res
		}
		if every > 0 && st.Generation%uint64(every) == 0 {
			report(st)
		}
	}
	if every <= 0 || res.last.Generation%uint64(every) != 0 {
		report(res.last)
	}
	return res
}

func logStats(st lattice.Stats) {
	log.Printf("gen %5d alive %7d visible %7d births %6d deaths %6d",
		st.Generation, st.Alive, st.Visible, st.Births, st.Deaths)
}
