// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingchart

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls the appearance and destination of a chart.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// OutputPath is the image file to write. Its extension selects
	// the format: .png, .jpg, .jpeg, .tif or .tiff.
	OutputPath string

	Width, Height vg.Length
	DPI           int
}

// DefaultOptions returns the options the grapher command uses.
func DefaultOptions() *Options {
	return &Options{
		Title:      "Execution Time Per Thread",
		XLabel:     "Threads",
		YLabel:     "Milliseconds",
		OutputPath: "results.png",
		Width:      6.4 * vg.Inch,
		Height:     4.8 * vg.Inch,
		DPI:        100,
	}
}

// Validate reports whether o describes a chart that can be written.
func (o *Options) Validate() error {
	if o.OutputPath == "" {
		return fmt.Errorf("output path is empty")
	}
	if _, err := o.format(); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("chart size %vx%v is not positive", o.Width, o.Height)
	}
	if o.DPI <= 0 {
		return fmt.Errorf("DPI %d is not positive", o.DPI)
	}
	return nil
}

type imageFormat int

const (
	formatPNG imageFormat = iota
	formatJPEG
	formatTIFF
)

func (o *Options) format() (imageFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(o.OutputPath)); ext {
	case ".png":
		return formatPNG, nil
	case ".jpg", ".jpeg":
		return formatJPEG, nil
	case ".tif", ".tiff":
		return formatTIFF, nil
	default:
		return 0, fmt.Errorf("%s: unsupported image format %q", o.OutputPath, ext)
	}
}

// canvas returns an empty canvas of the configured size and format.
func (o *Options) canvas() (vg.CanvasWriterTo, error) {
	f, err := o.format()
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI), vgimg.UseBackgroundColor(background))
	switch f {
	case formatJPEG:
		return vgimg.JpegCanvas{Canvas: c}, nil
	case formatTIFF:
		return vgimg.TiffCanvas{Canvas: c}, nil
	}
	return vgimg.PngCanvas{Canvas: c}, nil
}
