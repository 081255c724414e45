// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timingchart draws timing reports as line charts.
package timingchart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/prioritetsko/grapher/timingfmt"
)

var background = color.White

const lineWidth = 1.5

// Plot builds a line chart of doc. Each series becomes one line whose
// i'th point is (i+1, Samples[i]), labeled in the legend with the
// series name. Series with no samples still get a legend entry.
func Plot(doc *timingfmt.Document, opts *Options) (*plot.Plot, error) {
	p, _, err := newPlot(doc, opts)
	return p, err
}

func newPlot(doc *timingfmt.Document, opts *Options) (*plot.Plot, []*plotter.Line, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Tick.Marker = IntegerTicks{}
	p.BackgroundColor = background

	// Lower right.
	p.Legend.Top = false
	p.Legend.Left = false

	colors := seriesColors(doc.Len())
	lines := make([]*plotter.Line, 0, doc.Len())
	for i, s := range doc.Series {
		pts := make(plotter.XYs, len(s.Samples))
		for j, v := range s.Samples {
			pts[j].X = float64(j + 1)
			pts[j].Y = v
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, nil, fmt.Errorf("series %d (%s): %w", i, s.Name, err)
		}
		l.Color = colors[i]
		l.Width = vg.Points(lineWidth)
		lines = append(lines, l)

		if len(pts) > 0 {
			p.Add(l)
		}
		p.Legend.Add(s.Name, l)
	}
	return p, lines, nil
}

// seriesColors returns n line colors. Up to eight series get the
// Dark2 palette; beyond that colors come from plotutil and repeat.
func seriesColors(n int) []color.Color {
	const minBrewer, maxBrewer = 3, 8
	if n <= maxBrewer {
		k := n
		if k < minBrewer {
			k = minBrewer
		}
		if pal, err := brewer.GetPalette(brewer.TypeQualitative, "Dark2", k); err == nil {
			return pal.Colors()[:n]
		}
	}
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = plotutil.Color(i)
	}
	return colors
}

// Write draws doc and encodes the image to w in the format selected by
// opts.OutputPath. It does not open OutputPath.
func Write(w io.Writer, doc *timingfmt.Document, opts *Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	p, err := Plot(doc, opts)
	if err != nil {
		return err
	}
	can, err := opts.canvas()
	if err != nil {
		return err
	}
	p.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}

// Render draws doc and writes the image to opts.OutputPath, replacing
// any existing file. The image is written to a temporary file in the
// same directory and renamed into place, so on failure an existing
// chart is left untouched.
func Render(doc *timingfmt.Document, opts *Options) (err error) {
	// Validate before creating anything so a bad configuration
	// leaves nothing behind.
	if err := opts.Validate(); err != nil {
		return err
	}
	dir, base := filepath.Split(opts.OutputPath)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()
	if err := Write(f, doc, opts); err != nil {
		return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}
	// CreateTemp uses mode 0600; give the chart the usual mode.
	if err := f.Chmod(0644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, opts.OutputPath)
}
