// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultchart draws throughput-delay and score charts of
// experiment results.
//
// The package only draws what it is given. All styling comes from an
// explicit Style, and per-chart layout (titles, scales, ticks, limits)
// from a Chart.
package resultchart

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/datagrump/grumpstat/paramkey"
	"github.com/datagrump/grumpstat/resultseries"
)

// An Axis describes one axis of a chart.
type Axis struct {
	Label string

	// Log selects a logarithmic scale. All data on the axis must
	// then be positive.
	Log bool

	// Invert draws the axis from high to low values.
	Invert bool

	// Ticks, if non-empty, are the only tick positions, labeled
	// with their plain decimal values. The axis range is widened
	// to include them.
	Ticks []float64

	// Min and Max fix the axis range if Min < Max.
	Min, Max float64
}

// A Chart describes the layout of one chart.
type Chart struct {
	Title string
	X, Y  Axis
}

// A LabelOffset positions the annotation of point i, whose key is k.
// The annotation is drawn at the point's coordinates multiplied by
// xf and yf.
type LabelOffset func(i int, k paramkey.Key) (xf, yf float64)

// FixedOffset returns a LabelOffset that places every annotation at
// the same relative offset.
func FixedOffset(xf, yf float64) LabelOffset {
	return func(int, paramkey.Key) (float64, float64) { return xf, yf }
}

// ThroughputDelay draws a scatter of a's points with delay on the X
// axis and throughput on the Y axis, annotating each point with its
// key. If off is nil, annotations are drawn on the points.
func ThroughputDelay(a *resultseries.Aligned, c Chart, st Style, off LabelOffset) (*plot.Plot, error) {
	if off == nil {
		off = FixedOffset(1, 1)
	}
	if err := checkAxis("X", c.X, a.Delay); err != nil {
		return nil, err
	}
	if err := checkAxis("Y", c.Y, a.Throughput); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, a.Len())
	lpts := make(plotter.XYs, a.Len())
	names := make([]string, a.Len())
	for i, k := range a.Keys {
		pts[i] = plotter.XY{X: a.Delay[i], Y: a.Throughput[i]}
		xf, yf := off(i, k)
		lpts[i] = plotter.XY{X: a.Delay[i] * xf, Y: a.Throughput[i] * yf}
		names[i] = k.String()
	}

	p := newPlot(c, st)
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: st.ScatterColor, Radius: st.ScatterRadius, Shape: draw.CircleGlyph{}}
	p.Add(sc)

	if a.Len() > 0 {
		labels, err := newLabels(lpts, names, st)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	finish(p, c)
	return p, nil
}

// Score draws scores against x, one marker per point. If keys is
// non-nil, each point is annotated with its key.
func Score(x []float64, scores resultseries.Scores, keys []paramkey.Key, c Chart, st Style) (*plot.Plot, error) {
	if len(x) != len(scores) || (keys != nil && len(keys) != len(scores)) {
		panic("resultchart: x, scores, and keys must have equal lengths")
	}
	if err := checkAxis("X", c.X, x); err != nil {
		return nil, err
	}
	if err := checkAxis("Y", c.Y, scores); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: scores[i]}
	}

	p := newPlot(c, st)
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: st.MarkerColor, Radius: st.MarkerRadius, Shape: draw.CircleGlyph{}}
	p.Add(sc)

	if len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		labels, err := newLabels(pts, names, st)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	finish(p, c)
	return p, nil
}

func newPlot(c Chart, st Style) *plot.Plot {
	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = st.TitleSize

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = st.LabelSize
		ax.Tick.Label.Font.Size = st.TickSize
		ax.LineStyle.Color = st.AxisColor
		ax.LineStyle.Width = st.AxisWidth
		ax.Tick.LineStyle.Color = st.AxisColor
	}
	p.X.Label.Text = c.X.Label
	p.Y.Label.Text = c.Y.Label

	if st.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = st.GridColor
		grid.Horizontal.Color = st.GridColor
		p.Add(grid)
	}
	return p
}

func newLabels(pts plotter.XYs, names []string, st Style) (*plotter.Labels, error) {
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = st.AnnotationSize
	}
	return labels, nil
}

// finish applies c's scales, ticks, and ranges to p. It must run after
// all plotters are added, since adding a plotter grows the axis range.
func finish(p *plot.Plot, c Chart) {
	c.X.apply(&p.X)
	c.Y.apply(&p.Y)
}

func (a Axis) apply(pa *plot.Axis) {
	var scale plot.Normalizer = plot.LinearScale{}
	if a.Log {
		scale = plot.LogScale{}
	}
	if a.Invert {
		scale = plot.InvertedScale{Normalizer: scale}
	}
	pa.Scale = scale

	switch {
	case len(a.Ticks) > 0:
		pa.Tick.Marker = constantTicks(a.Ticks)
		for _, t := range a.Ticks {
			pa.Min = math.Min(pa.Min, t)
			pa.Max = math.Max(pa.Max, t)
		}
	case a.Log:
		pa.Tick.Marker = plot.LogTicks{}
	}

	if a.Min < a.Max {
		pa.Min, pa.Max = a.Min, a.Max
	}
}

func constantTicks(vals []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(vals))
	for i, v := range vals {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}

// checkAxis reports data or ticks that a log axis cannot show. Left
// alone, the log scale would panic while drawing.
func checkAxis(name string, a Axis, data []float64) error {
	if !a.Log {
		return nil
	}
	for _, v := range data {
		if !(v > 0) {
			return fmt.Errorf("%s axis %q: log scale needs positive values, have %g", name, a.Label, v)
		}
	}
	for _, v := range a.Ticks {
		if !(v > 0) {
			return fmt.Errorf("%s axis %q: log scale needs positive ticks, have %g", name, a.Label, v)
		}
	}
	if a.Min < a.Max && !(a.Min > 0) {
		return fmt.Errorf("%s axis %q: log scale needs a positive minimum, have %g", name, a.Label, a.Min)
	}
	return nil
}
