// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultchart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// A Style holds the presentation settings shared by every chart a run
// produces. The zero Style is not useful; start from DefaultStyle.
type Style struct {
	// Width and Height are the figure size.
	Width, Height vg.Length

	// DPI is the resolution of raster (PNG) output.
	DPI int

	TitleSize      vg.Length // chart title
	LabelSize      vg.Length // axis labels
	TickSize       vg.Length // tick labels
	AnnotationSize vg.Length // per-point key annotations

	// ScatterRadius is the glyph radius of throughput-delay points,
	// and ScatterColor their fill.
	ScatterRadius vg.Length
	ScatterColor  color.Color

	// MarkerRadius is the glyph radius of score points, and
	// MarkerColor their fill.
	MarkerRadius vg.Length
	MarkerColor  color.Color

	AxisColor color.Color
	AxisWidth vg.Length

	// Grid draws grid lines at the major ticks in GridColor.
	Grid      bool
	GridColor color.Color
}

// DefaultStyle returns the house style: a 14x8 inch figure with large
// type, grey axes, and a faint grid.
func DefaultStyle() Style {
	grey := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	return Style{
		Width:  14 * vg.Inch,
		Height: 8 * vg.Inch,
		DPI:    100,

		TitleSize:      vg.Points(20),
		LabelSize:      vg.Points(20),
		TickSize:       vg.Points(18),
		AnnotationSize: vg.Points(16),

		// Half-transparent blue, about 200 pt² in area.
		ScatterRadius: vg.Points(7),
		ScatterColor:  color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x80},

		MarkerRadius: vg.Points(6),
		MarkerColor:  color.NRGBA{R: 0xff, A: 0xff},

		AxisColor: grey,
		AxisWidth: vg.Points(3),

		Grid:      true,
		GridColor: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x66},
	}
}
