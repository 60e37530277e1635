package assess

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DistanceStats aggregates the computable distances of one batch run.
type DistanceStats struct {
	Count  int
	MeanKM float64
	P50KM  float64
	P90KM  float64
	MaxKM  float64
}

// Summary is the operator-facing digest printed after a run: per-label row
// counts plus distance statistics over the rows whose distance was
// computable.
type Summary struct {
	Total    int
	Counts   map[string]int
	Distance DistanceStats
}

// Summarize counts the labels and computes distance statistics, ignoring
// NaN distances (missing positions).
func Summarize(labels []string, distances []float64) Summary {
	s := Summary{Total: len(labels), Counts: make(map[string]int, 4)}
	for _, l := range labels {
		s.Counts[l]++
	}
	known := make([]float64, 0, len(distances))
	for _, d := range distances {
		if !math.IsNaN(d) {
			known = append(known, d)
		}
	}
	if len(known) == 0 {
		return s
	}
	sort.Float64s(known)
	s.Distance = DistanceStats{
		Count:  len(known),
		MeanKM: stat.Mean(known, nil),
		P50KM:  stat.Quantile(0.5, stat.Empirical, known, nil),
		P90KM:  stat.Quantile(0.9, stat.Empirical, known, nil),
		MaxKM:  known[len(known)-1],
	}
	return s
}

// SortedLabels returns the count keys in lexical order for stable printing.
func (s Summary) SortedLabels() []string {
	keys := make([]string, 0, len(s.Counts))
	for k := range s.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
