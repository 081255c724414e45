// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

import (
	"math"
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	const input = `Execution time per thread for the FIFO:
Threads: 1 | Milliseconds: 12.5
Threads: 3 | Milliseconds: 6
Execution time per thread for the Empty:
Execution time per thread for the LIFO:
Threads: 2 | Milliseconds: 0.125
`

	out := new(strings.Builder)
	w := NewWriter(out)
	r := NewReader(strings.NewReader(input), "test")
	for r.Scan() {
		if err := w.Write(r.Result()); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}

	if out.String() != input {
		t.Fatalf("want:\n%sgot:\n%s", input, out.String())
	}
}

func TestWriteDocument(t *testing.T) {
	doc := &Document{Series: []*Series{
		{Name: "A", Samples: []float64{3.5, 2}},
		{Name: "B"},
	}}
	const want = `Execution time per thread for the A:
Threads: 1 | Milliseconds: 3.5
Threads: 2 | Milliseconds: 2
Execution time per thread for the B:
`
	out := new(strings.Builder)
	if err := NewWriter(out).WriteDocument(doc); err != nil {
		t.Fatal(err)
	}
	if out.String() != want {
		t.Fatalf("want:\n%sgot:\n%s", want, out.String())
	}

	// Whatever WriteDocument writes, Parse reads back.
	got, err := Parse(strings.NewReader(out.String()), "test")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || len(got.Series[0].Samples) != 2 || got.Series[0].Samples[0] != 3.5 {
		t.Errorf("re-parsed document differs: %+v", got.Series)
	}
}

func TestWriterSyntaxError(t *testing.T) {
	out := new(strings.Builder)
	if err := NewWriter(out).Write(&SyntaxError{"f", 1, "x"}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("want no output for *SyntaxError, got %q", out.String())
	}
}

func TestWriterRejects(t *testing.T) {
	for _, rec := range []Record{
		&Header{Name: ""},
		&Header{Name: "A-B"},
		&Header{Name: "A B"},
		&Sample{Threads: 1, Milliseconds: -1},
		&Sample{Threads: 1, Milliseconds: math.NaN()},
		&Sample{Threads: 1, Milliseconds: math.Inf(1)},
		&Sample{Threads: -1, Milliseconds: 1},
	} {
		out := new(strings.Builder)
		if err := NewWriter(out).Write(rec); err == nil {
			t.Errorf("Write(%+v) succeeded, wrote %q", rec, out.String())
		}
		if out.Len() != 0 {
			t.Errorf("Write(%+v) wrote %q on error", rec, out.String())
		}
	}
}

func TestWriteDocumentRejects(t *testing.T) {
	doc := &Document{Series: []*Series{
		{Name: "A", Samples: []float64{1}},
		{Name: "B", Samples: []float64{2, math.NaN()}},
		{Name: "C", Samples: []float64{3}},
	}}
	out := new(strings.Builder)
	w := NewWriter(out)
	if err := w.WriteDocument(doc); err == nil {
		t.Fatal("WriteDocument succeeded with a NaN sample")
	}
	const want = `Execution time per thread for the A:
Threads: 1 | Milliseconds: 1
`
	if out.String() != want {
		t.Fatalf("want:\n%sgot:\n%s", want, out.String())
	}

	// The rejected series does not leak into later writes.
	if err := w.WriteDocument(&Document{Series: []*Series{{Name: "D"}}}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimPrefix(out.String(), want); got != "Execution time per thread for the D:\n" {
		t.Errorf("unexpected output after rejected series: %q", got)
	}
}

func TestWriteNegativeZero(t *testing.T) {
	doc := &Document{Series: []*Series{{Name: "A", Samples: []float64{math.Copysign(0, -1)}}}}
	out := new(strings.Builder)
	if err := NewWriter(out).WriteDocument(doc); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(strings.NewReader(out.String()), "test"); err != nil {
		t.Errorf("written -0 does not parse back: %v\n%s", err, out.String())
	}
}
