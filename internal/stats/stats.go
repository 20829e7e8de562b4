// Package stats summarizes population over a run.
package stats

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tracker records one population sample per observed generation.
type Tracker struct {
	samples []float64
}

// Observe records the population of one generation.
func (t *Tracker) Observe(population int) {
	t.samples = append(t.samples, float64(population))
}

// Len returns the number of observed generations.
func (t *Tracker) Len() int { return len(t.samples) }

// Summary aggregates the observed populations.
type Summary struct {
	Generations int     `csv:"generations"`
	Final       int     `csv:"final"`
	Peak        int     `csv:"peak"`
	Min         int     `csv:"min"`
	Mean        float64 `csv:"mean"`
	StdDev      float64 `csv:"stddev"`
}

// Summary computes the aggregate. An empty tracker yields the zero Summary.
func (t *Tracker) Summary() Summary {
	n := len(t.samples)
	if n == 0 {
		return Summary{}
	}
	s := Summary{
		Generations: n,
		Final:       int(t.samples[n-1]),
		Peak:        int(floats.Max(t.samples)),
		Min:         int(floats.Min(t.samples)),
	}
	if n == 1 {
		s.Mean = t.samples[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(t.samples, nil)
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Int("final", s.Final),
		slog.Int("peak", s.Peak),
		slog.Int("min", s.Min),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
	)
}
