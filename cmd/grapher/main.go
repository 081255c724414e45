// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Grapher charts the timing report of the priority queue benchmark.
//
// Usage:
//
//	java PrioritetskoTester 8 10000 10000 | grapher
//
// Grapher reads the report from standard input and writes a line chart
// with one line per queue implementation to results.png in the current
// directory, replacing any existing file. Each line plots a queue's
// execution times in the order they were reported, at x = 1, 2, ....
//
// The input is a sequence of sections such as
//
//	Execution time per thread for the FIFO:
//	Threads: 1 | Milliseconds: 30.5
//	Threads: 2 | Milliseconds: 18.25
//
// Any line that is not a header, or a data line following a header,
// stops grapher with a diagnostic and exit status 1 before any chart
// is written.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prioritetsko/grapher/timingchart"
	"github.com/prioritetsko/grapher/timingfmt"
)

func main() {
	os.Exit(grapher(os.Stdin, os.Stderr, os.Args[1:], timingchart.DefaultOptions()))
}

// grapher runs the command and returns its exit status.
func grapher(stdin io.Reader, stderr io.Writer, args []string, opts *timingchart.Options) int {
	logger := log.New(stderr, "grapher: ", 0)

	flags := flag.NewFlagSet("grapher", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: grapher < report.txt\n")
		fmt.Fprintf(stderr, "Reads a timing report on stdin and writes %s.\n", opts.OutputPath)
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return 2
	}

	if err := run(stdin, opts); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

// run parses all of r before rendering, so a syntax error never
// produces an output file.
func run(r io.Reader, opts *timingchart.Options) error {
	doc, err := timingfmt.Parse(r, "<stdin>")
	if err != nil {
		return err
	}
	return timingchart.Render(doc, opts)
}
