// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
)

type lineKind int

const (
	lineNone lineKind = iota
	lineHeader
	lineData
)

// lineMatch is the classification of a single input line. Only the
// fields for kind are set.
type lineMatch struct {
	kind lineKind

	name string // lineHeader

	threads int     // lineData
	ms      float64 // lineData
}

var (
	headerPrefix = []byte("Execution time per thread for the ")
	dataPrefix   = []byte("Threads:")

	headerRE = regexp.MustCompile(`^Execution time per thread for the ([\p{L}\p{N}_]+):$`)
	nameRE   = regexp.MustCompile(`^[\p{L}\p{N}_]+$`)
	dataRE   = regexp.MustCompile(`^Threads:[ \t]+([0-9]+) \| Milliseconds:[ \t]+([0-9]+\.?[0-9]*|\.[0-9]+)$`)
)

// classify matches line against the header and then the data grammar.
// line must not include its terminator.
func classify(line []byte) lineMatch {
	// Both patterns are anchored on a literal prefix, so check that
	// before running the regexp.
	if bytes.HasPrefix(line, headerPrefix) {
		if m := headerRE.FindSubmatch(line); m != nil {
			return lineMatch{kind: lineHeader, name: string(m[1])}
		}
		return lineMatch{}
	}
	if bytes.HasPrefix(line, dataPrefix) {
		m := dataRE.FindSubmatch(line)
		if m == nil {
			return lineMatch{}
		}
		threads, err := strconv.Atoi(string(m[1]))
		if err != nil {
			// The regexp admits only digits, so this is ErrRange.
			// The count is informational; saturate it.
			threads = math.MaxInt
		}
		ms, err := strconv.ParseFloat(string(m[2]), 64)
		if err != nil {
			// Only ErrRange is possible here. An infinite time
			// cannot be plotted, so reject the line.
			return lineMatch{}
		}
		return lineMatch{kind: lineData, threads: threads, ms: ms}
	}
	return lineMatch{}
}
