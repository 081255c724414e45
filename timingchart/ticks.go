// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingchart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// maxIntegerTicks bounds the number of intervals between ticks.
const maxIntegerTicks = 10

// IntegerTicks is a plot.Ticker that only places major ticks on whole
// numbers. The step between ticks is 1, 2 or 5 times a power of ten,
// whichever is the smallest that keeps the count near maxIntegerTicks.
type IntegerTicks struct{}

var _ plot.Ticker = IntegerTicks{}

// Ticks returns the integer ticks in [min, max].
func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	lo, hi := math.Ceil(min), math.Floor(max)
	if lo > hi {
		return nil
	}
	step := integerStep(hi - lo)
	var ticks []plot.Tick
	for v := math.Ceil(lo/step) * step; v <= hi; v += step {
		if v == 0 {
			v = 0 // not -0
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 0, 64)})
	}
	return ticks
}

// integerStep returns the smallest round step that divides span into at
// most maxIntegerTicks intervals.
func integerStep(span float64) float64 {
	for mag := 1.0; ; mag *= 10 {
		for _, m := range [...]float64{1, 2, 5} {
			if step := m * mag; span/step <= maxIntegerTicks {
				return step
			}
		}
	}
}
