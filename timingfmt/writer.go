// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// A Writer writes the timing report format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes timing reports to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes Record rec to w. A *Header is written as a header line
// and a *Sample as a data line. Writing a *SyntaxError is a no-op.
func (w *Writer) Write(rec Record) error {
	switch rec := rec.(type) {
	case *Header:
		if err := w.writeHeader(rec.Name); err != nil {
			return err
		}
	case *Sample:
		if err := w.writeSample(rec.Threads, rec.Milliseconds); err != nil {
			return err
		}
	case *SyntaxError:
		// Ignore
		return nil
	default:
		return fmt.Errorf("unknown Record type %T", rec)
	}
	return w.flush()
}

// WriteDocument writes every series in doc. Samples are numbered from
// 1 within each series, which is how the harness prints them.
//
// If a series cannot be written, none of it is; the series before it
// have already been written to w.
func (w *Writer) WriteDocument(doc *Document) error {
	for _, s := range doc.Series {
		if err := w.writeSeries(s); err != nil {
			w.buf.Reset()
			return err
		}
		if err := w.flush(); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeSeries(s *Series) error {
	if err := w.writeHeader(s.Name); err != nil {
		return err
	}
	for i, v := range s.Samples {
		if err := w.writeSample(i+1, v); err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
	}
	return nil
}

// writeHeader and writeSample refuse anything Reader would not read back.
func (w *Writer) writeHeader(name string) error {
	if !nameRE.MatchString(name) {
		return fmt.Errorf("invalid series name %q", name)
	}
	w.buf.Write(headerPrefix)
	w.buf.WriteString(name)
	w.buf.WriteString(":\n")
	return nil
}

func (w *Writer) writeSample(threads int, ms float64) error {
	if threads < 0 {
		return fmt.Errorf("negative thread count %d", threads)
	}
	if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return fmt.Errorf("invalid time %v ms", ms)
	}
	if ms == 0 {
		ms = 0 // not -0
	}
	fmt.Fprintf(&w.buf, "Threads: %d | Milliseconds: %s\n", threads, strconv.FormatFloat(ms, 'f', -1, 64))
	return nil
}

// flush writes the buffer out to the io.Writer. Writes to the buffer
// can't fail, so only this can.
func (w *Writer) flush() error {
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
