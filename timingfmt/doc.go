// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timingfmt reads and writes the timing report printed by the
// priority queue benchmark harness.
//
// A report is a sequence of sections. Each section starts with a
// header line naming the queue implementation, followed by one data
// line per thread count:
//
//	Execution time per thread for the FIFO:
//	Threads: 1 | Milliseconds: 12.5
//	Threads: 2 | Milliseconds: 6.3
//
// The name is one or more letters, digits, or underscores. The thread
// count is a decimal integer and the time is a non-negative decimal
// number. A section may be empty. Every other line, including a blank
// line or a data line before the first header, is a syntax error, and
// reading stops at the first one.
//
// The thread count is checked but not retained for plotting: sample i
// of a series is always plotted at x = i+1.
package timingfmt
