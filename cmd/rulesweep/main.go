// Command rulesweep runs every survive/birth range pair from one starting
// grid and writes a CSV row per rule describing how the run ended.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"time"

	"lifeterm/internal/core"
	"lifeterm/internal/seed"
	"lifeterm/internal/sims/life"
	"lifeterm/internal/sweep"
)

func main() {
	width := flag.Int("width", 64, "grid width for the random start")
	height := flag.Int("height", 64, "grid height for the random start")
	seedSpec := flag.String("seed", "", "seed file or randW,H; overrides -width and -height")
	rngSeed := flag.Int64("rng-seed", 1337, "seed for the random start")
	steps := flag.Int("steps", 200, "generations to simulate per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	presetsOnly := flag.Bool("presets", false, "sweep only the named presets")
	out := flag.String("out", "", "write CSV to this file instead of stdout")
	flag.Parse()

	rng := core.NewRNG(*rngSeed)
	var (
		start *core.Grid
		err   error
	)
	if *seedSpec != "" {
		start, err = seed.Resolve(*seedSpec, rng)
	} else {
		start, err = seed.Random(*width, *height, rng)
	}
	if err != nil {
		fail(err)
	}

	rules := sweep.AllRules()
	if *presetsOnly {
		rules = rules[:0]
		for _, p := range life.Presets() {
			rules = append(rules, p.Rules)
		}
	}

	fmt.Fprintf(os.Stderr, "Sweeping %d rules on %dx%d (%d workers, %d steps)\n",
		len(rules), start.Width(), start.Height(), *workers, *steps)

	began := time.Now()
	results := sweep.Sweep(start, rules, *steps, *workers)
	elapsed := time.Since(began)

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		w = f
	}
	if err := sweep.WriteCSV(w, results); err != nil {
		fail(err)
	}

	tally := sweep.Tally(results)
	fmt.Fprintf(os.Stderr, "\nOutcomes (elapsed %s): extinct=%d still=%d oscillating=%d active=%d\n",
		elapsed.Round(time.Millisecond), tally[sweep.Extinct], tally[sweep.Still], tally[sweep.Oscillating], tally[sweep.Active])

	active := make([]sweep.Result, 0, tally[sweep.Active])
	for _, r := range results {
		if r.Outcome == sweep.Active {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Mean > active[j].Mean })
	if len(active) > 0 {
		fmt.Fprintf(os.Stderr, "\nTop active rules by mean population:\n")
	}
	for i := 0; i < len(active) && i < 5; i++ {
		r := active[i]
		fmt.Fprintf(os.Stderr, "%2d) %s final=%d peak=%d mean=%.1f\n", i+1, r.Rule, r.Final, r.Peak, r.Mean)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "rulesweep:", err)
	os.Exit(1)
}
