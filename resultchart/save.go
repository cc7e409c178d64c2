// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultchart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Formats lists the output formats supported by Write and Save.
var Formats = []string{"pdf", "svg", "png"}

func newCanvas(format string, st Style) (vg.CanvasWriterTo, error) {
	w, h := st.Width, st.Height
	switch format {
	case "pdf":
		return vgpdf.New(w, h), nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(st.DPI), vgimg.UseBackgroundColor(color.White))}, nil
	}
	return nil, fmt.Errorf("unsupported chart format %q", format)
}

// Write draws p at the size given by st and writes it to w in the
// given format, one of Formats.
func Write(w io.Writer, p *plot.Plot, st Style, format string) error {
	c, err := newCanvas(format, st)
	if err != nil {
		return err
	}
	p.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// Save writes p to the file path. The format is taken from the
// path's extension. If writing fails, the file is removed.
func Save(p *plot.Plot, st Style, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	c, err := newCanvas(format, st)
	if err != nil {
		return err
	}
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = c.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}
