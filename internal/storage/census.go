package storage

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// SpeciesStats summarizes one species over a run.
type SpeciesStats struct {
	Species string
	Mean    float64
	StdDev  float64
	Min     int
	Max     int
	Last    int
}

// Summary computes per-species statistics over every sampled tick of a run.
// A species missing from a sample counts as zero at that tick.
func (s *Store) Summary(runID string) ([]SpeciesStats, error) {
	samples, err := s.Samples(runID)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("storage: run %q has no census samples", runID)
	}

	tickIndex := make(map[uint64]int)
	var ticks []uint64
	for _, smp := range samples {
		if _, ok := tickIndex[smp.Tick]; !ok {
			tickIndex[smp.Tick] = len(ticks)
			ticks = append(ticks, smp.Tick)
		}
	}

	series := make(map[string][]float64)
	for _, smp := range samples {
		xs, ok := series[smp.Species]
		if !ok {
			xs = make([]float64, len(ticks))
			series[smp.Species] = xs
		}
		xs[tickIndex[smp.Tick]] = float64(smp.Count)
	}

	result := make([]SpeciesStats, 0, len(series))
	for species, xs := range series {
		st := SpeciesStats{Species: species, Last: int(xs[len(xs)-1])}
		st.Mean, st.StdDev = stat.MeanStdDev(xs, nil)
		if len(xs) < 2 {
			st.StdDev = 0
		}
		st.Min, st.Max = int(xs[0]), int(xs[0])
		for _, x := range xs {
			st.Min, st.Max = min(st.Min, int(x)), max(st.Max, int(x))
		}
		result = append(result, st)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Species < result[j].Species
	})
	return result, nil
}

// ExportCSV writes every census sample of a run to w, with a header row.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	samples, err := s.Samples(runID)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(samples, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}
