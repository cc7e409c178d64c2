// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultseries

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// A Stat summarizes one column of a series.
type Stat struct {
	Min, Max, Mean, GeoMean float64
}

func newStat(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{}
	}
	lo, hi := stats.Bounds(xs)
	return Stat{Min: lo, Max: hi, Mean: stats.Mean(xs), GeoMean: stats.GeoMean(xs)}
}

// A Summary describes an Aligned series and its scores as a whole.
type Summary struct {
	N          int
	Throughput Stat
	Delay      Stat
	Score      Stat

	// Best is the index of the highest-scoring point, or -1 if
	// there are no points.
	Best int
}

// Summarize computes a Summary of a and its (non-log) scores.
func Summarize(a *Aligned, scores Scores) Summary {
	s := Summary{
		N:          a.Len(),
		Throughput: newStat(a.Throughput),
		Delay:      newStat(a.Delay),
		Score:      newStat(scores),
		Best:       -1,
	}
	for i, v := range scores {
		if s.Best < 0 || v > scores[s.Best] {
			s.Best = i
		}
	}
	return s
}

// A WindowBest is the best score among runs sharing a window size.
type WindowBest struct {
	Window int
	Runs   int
	Score  float64
}

// BestPerWindow groups the points of a by window size and returns the
// maximum score and number of runs of each group, in ascending window
// order. This is mostly useful for sweeps, where many parameter tuples
// share a window.
func BestPerWindow(a *Aligned, scores Scores) []WindowBest {
	if a.Len() == 0 {
		return nil
	}
	in := table.NewBuilder(nil).
		Add("window", a.Table().MustColumn("window")).
		Add("score", []float64(scores)).
		Done()
	out := ggstat.Agg("window")(ggstat.AggMax("score"), ggstat.AggCount("runs")).F(in)
	t := table.Flatten(out)

	windows := t.MustColumn("window").([]int)
	best := t.MustColumn("max score").([]float64)
	runs := t.MustColumn("runs").([]int)
	res := make([]WindowBest, len(windows))
	for i := range res {
		res[i] = WindowBest{Window: windows[i], Runs: runs[i], Score: best[i]}
	}
	return res
}
