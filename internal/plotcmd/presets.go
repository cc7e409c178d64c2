// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcmd

import (
	"math/rand"

	"github.com/datagrump/grumpstat/paramkey"
	"github.com/datagrump/grumpstat/resultchart"
	"github.com/datagrump/grumpstat/resultfmt"
)

// Axis labels of the throughput-delay chart.
const (
	DelayAxisLabel      = "95th percentile signal delay (ms)"
	ThroughputAxisLabel = "Average throughput (Mbits/s)"
)

func defaults() Config {
	return Config{
		Options: DefaultOptions(),
		Suffix:  resultfmt.DefaultSuffix,
		Style:   resultchart.DefaultStyle(),
	}
}

// WindowConfig returns the configuration for static-window
// experiments, whose result files are named by window size alone.
// Charts are written as A, A-score, and A-score-log.
func WindowConfig() *Config {
	c := defaults()
	c.Scheme = paramkey.Window
	c.Prefix = "A"
	c.Scatter = resultchart.Chart{
		Title: "Throughput-delay plot",
		X: resultchart.Axis{
			Label:  DelayAxisLabel,
			Log:    true,
			Invert: true,
			Ticks:  []float64{70, 100, 200, 300, 400, 500, 1000, 2000, 4000, 8000},
		},
		Y: resultchart.Axis{Label: ThroughputAxisLabel, Min: 0, Max: 6},
	}
	c.ScatterLabels = windowOffset
	c.Score = resultchart.Chart{
		Title: "Score vs window size plot",
		X: resultchart.Axis{
			Label: "Window size (static)",
			Log:   true,
			Ticks: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		},
	}
	return &c
}

// windowOffset nudges the labels of windows 60, 80, and 100 clear of
// each other; they crowd together near the knee of the curve.
func windowOffset(_ int, k paramkey.Key) (xf, yf float64) {
	switch w := paramkey.First(k); w {
	case 60, 80, 100:
		return 1.17 + float64(w-80)/200, 0.95 + float64(w)/10000
	}
	return 0.98, 1.025
}

// SweepConfig returns the configuration for AIMD parameter sweeps.
// Charts are written as prefix, prefix-score, and prefix-score-log,
// and the score charts are plotted against xlabel. Scatter labels are
// jittered vertically by a generator seeded with seed, so the same
// seed gives the same chart.
func SweepConfig(prefix, xlabel string, seed int64) *Config {
	c := defaults()
	c.Scheme = paramkey.Sweep
	c.Prefix = prefix
	c.Scatter = resultchart.Chart{
		Title: "Throughput-delay plot",
		X: resultchart.Axis{
			Label:  DelayAxisLabel,
			Log:    true,
			Invert: true,
			Ticks:  []float64{500, 1000, 2000, 4000, 8000},
			Min:    500,
			Max:    8000,
		},
		Y: resultchart.Axis{Label: ThroughputAxisLabel, Min: 4, Max: 5.5},
	}
	c.ScatterLabels = jitterOffset(rand.New(rand.NewSource(seed)))
	c.Score = resultchart.Chart{
		Title: "Score vs " + xlabel + " plot",
		X: resultchart.Axis{
			Label: xlabel,
			Log:   true,
			Ticks: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	}
	c.AnnotateScores = true
	c.PerWindow = true
	return &c
}

func jitterOffset(r *rand.Rand) resultchart.LabelOffset {
	return func(int, paramkey.Key) (xf, yf float64) {
		return 1.05, 1 + (r.Float64()-0.5)*0.05
	}
}
