package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"cube-ca/internal/sims/cube"
	"cube-ca/pkg/lattice"
)

type scenario struct {
	probability float64
	rule        lattice.Rule
	boundary    lattice.Boundary
}

func (s scenario) String() string {
	return fmt.Sprintf("p=%.3f rule=%s boundary=%s", s.probability, s.rule, s.boundary)
}

type scenarioResult struct {
	scenario
	finalAlive   int
	finalVisible int
	peakAlive    int
	// extinctAt is the generation nothing was left alive or visible, or 0.
	extinctAt uint64
	err       error
}

var (
	probabilityOptions = []float64{0.01, 0.05, 0.1, 0.2, 0.3}
	ruleOptions        = []string{"4/4", "4/4-5", "4-5/4", "5-7/6", "4-6/3,5", "2-6/4,6-7"}
	boundaryOptions    = []lattice.Boundary{lattice.Toroidal, lattice.FrozenBorder}
)

func main() {
	steps := flag.Int("steps", 120, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 24, "lattice edge length")
	seed := flag.Int64("seed", 1337, "seed used for every scenario")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	base := cube.DefaultConfig()
	base.Width, base.Height, base.Depth = *size, *size, *size
	base.Seed = *seed
	// Scenarios run side by side, so each engine stays sequential.
	base.Workers = 1
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sets, err := scenarios()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %d³)\n", len(sets), *workers, *steps, *size)

	start := time.Now()
	all := sweep(base, sets, *steps, max(*workers, 1))
	elapsed := time.Since(start)

	for _, res := range all {
		if res.err != nil {
			log.Printf("%s: %v", res.scenario, res.err)
		}
	}
	rank(all)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fate := "survived"
		if res.extinctAt > 0 {
			fate = fmt.Sprintf("extinct@%d", res.extinctAt)
		}
		fmt.Printf("%2d) alive=%d visible=%d peak=%d %s %s\n",
			i+1, res.finalAlive, res.finalVisible, res.peakAlive, fate, res.scenario)
	}
}

func scenarios() ([]scenario, error) {
	var sets []scenario
	for _, p := range probabilityOptions {
		for _, text := range ruleOptions {
			rule, err := lattice.ParseRule(text)
			if err != nil {
				return nil, err
			}
			for _, b := range boundaryOptions {
				sets = append(sets, scenario{probability: p, rule: rule, boundary: b})
			}
		}
	}
	return sets, nil
}

// sweep evaluates every scenario on a pool of workers. Results arrive in
// completion order.
func sweep(base cube.Config, sets []scenario, steps, workers int) []scenarioResult {
	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	return all
}

func runScenario(base cube.Config, sc scenario, steps int) scenarioResult {
	cfg := base
	cfg.Probability = sc.probability
	cfg.Rule = sc.rule
	cfg.Boundary = sc.boundary

	res := scenarioResult{scenario: sc}
	world, err := cube.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}
	res.peakAlive = world.Stats().Alive
	for i := 0; i < steps; i++ {
		world.Step()
		st := world.Stats()
		res.peakAlive = max(res.peakAlive, st.Alive)
		res.finalAlive, res.finalVisible = st.Alive, st.Visible
		if st.Alive == 0 && st.Visible == 0 {
			res.extinctAt = st.Generation
			break
		}
	}
	return res
}

// rank orders survivors by final population, then extinct runs by how long
// they lasted. Failed scenarios sink to the end.
func rank(all []scenarioResult) {
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if (a.err == nil) != (b.err == nil) {
			return a.err == nil
		}
		if (a.extinctAt == 0) != (b.extinctAt == 0) {
			return a.extinctAt == 0
		}
		if a.extinctAt != b.extinctAt {
			return a.extinctAt > b.extinctAt
		}
		return a.finalAlive > b.finalAlive
	})
}
