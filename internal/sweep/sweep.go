// Package sweep runs many rules from the same starting grid and classifies
// where each one ends up.
package sweep

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"

	"lifeterm/internal/core"
	"lifeterm/internal/sims/life"
	"lifeterm/internal/stats"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	Extinct     Outcome = "extinct"
	Still       Outcome = "still"
	Oscillating Outcome = "oscillating"
	Active      Outcome = "active"
)

// Result is one CSV row of a sweep.
type Result struct {
	Rule        string  `csv:"rule"`
	Survive     string  `csv:"survive"`
	Birth       string  `csv:"birth"`
	Generations int     `csv:"generations"`
	Final       int     `csv:"final"`
	Peak        int     `csv:"peak"`
	Mean        float64 `csv:"mean"`
	Outcome     Outcome `csv:"outcome"`

	rules life.Rules `csv:"-"`
}

// AllRules enumerates every pair of valid survive and birth ranges.
func AllRules() []life.Rules {
	var ranges []life.Range
	for min := 0; min <= life.MaxNeighbors; min++ {
		for max := min; max <= life.MaxNeighbors; max++ {
			ranges = append(ranges, life.Range{Min: min, Max: max})
		}
	}
	out := make([]life.Rules, 0, len(ranges)*len(ranges))
	for _, s := range ranges {
		for _, b := range ranges {
			out = append(out, life.Rules{Survive: s, Birth: b})
		}
	}
	return out
}

// Run advances a copy of start for up to steps generations under rules. It
// stops early once the grid dies out, freezes, or repeats with period 2.
func Run(start *core.Grid, rules life.Rules, steps int) Result {
	sim := life.New(start.Clone(), rules)
	var tr stats.Tracker
	cur := sim.Grid()
	tr.Observe(cur.Population())

	var before, last *core.Grid
	outcome := Active
	for i := 0; i < steps; i++ {
		before, last = last, cur
		sim.Step()
		cur = sim.Grid()
		tr.Observe(cur.Population())
		if o, done := classify(cur, last, before); done {
			outcome = o
			break
		}
	}

	s := tr.Summary()
	return Result{
		Rule:        rules.String(),
		Survive:     rules.Survive.String(),
		Birth:       rules.Birth.String(),
		Generations: sim.Generation(),
		Final:       s.Final,
		Peak:        s.Peak,
		Mean:        s.Mean,
		Outcome:     outcome,
		rules:       rules,
	}
}

func classify(cur, last, before *core.Grid) (Outcome, bool) {
	switch {
	case cur.Population() == 0:
		return Extinct, true
	case cur.Equal(last):
		return Still, true
	case before != nil && cur.Equal(before):
		return Oscillating, true
	}
	return Active, false
}

// Sweep evaluates every rule on its own simulation using a pool of workers.
// Results are ordered by survive range, then birth range.
func Sweep(start *core.Grid, rules []life.Rules, steps, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan life.Rules)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				results <- Run(start, r, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, r := range rules {
			jobs <- r
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(rules))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return less(all[i].rules, all[j].rules) })
	return all
}

func less(a, b life.Rules) bool {
	if a.Survive != b.Survive {
		return rangeLess(a.Survive, b.Survive)
	}
	return rangeLess(a.Birth, b.Birth)
}

func rangeLess(a, b life.Range) bool {
	if a.Min != b.Min {
		return a.Min < b.Min
	}
	return a.Max < b.Max
}

// Tally counts results per outcome.
func Tally(results []Result) map[Outcome]int {
	out := map[Outcome]int{}
	for _, r := range results {
		out[r.Outcome]++
	}
	return out
}

// WriteCSV writes the results with a header row.
func WriteCSV(w io.Writer, results []Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("writing sweep results: %w", err)
	}
	return nil
}
