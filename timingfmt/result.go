// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

// Header is a header line, which opens a new series.
type Header struct {
	// Name is the configuration name, such as "FIFO".
	Name string

	fileName string
	line     int
}

// Pos returns the file name and line number of the header line.
func (h *Header) Pos() (fileName string, line int) {
	return h.fileName, h.line
}

// Sample is a data line, which belongs to the most recent header.
type Sample struct {
	// Threads is the thread count printed on the line. It is not
	// the sample's position in its series and is not used to plot it.
	Threads int

	// Milliseconds is the measured execution time.
	Milliseconds float64

	fileName string
	line     int
}

// Pos returns the file name and line number of the data line.
func (s *Sample) Pos() (fileName string, line int) {
	return s.fileName, s.line
}

// A Series is the sequence of samples that followed one header line.
type Series struct {
	Name string

	// Samples are in input order. The x position of Samples[i] is i+1.
	Samples []float64
}

// Clone makes a copy of s that shares no state with s.
func (s *Series) Clone() *Series {
	s2 := &Series{Name: s.Name}
	if s.Samples != nil {
		s2.Samples = append([]float64(nil), s.Samples...)
	}
	return s2
}

// A Document is every series in a timing report, in the order their
// headers appeared. Duplicate names are kept as separate series.
type Document struct {
	Series []*Series
}

// Len returns the number of series in d.
func (d *Document) Len() int {
	return len(d.Series)
}

// Clone makes a deep copy of d.
func (d *Document) Clone() *Document {
	d2 := &Document{Series: make([]*Series, len(d.Series))}
	for i, s := range d.Series {
		d2.Series[i] = s.Clone()
	}
	return d2
}
