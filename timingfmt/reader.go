// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

import (
	"bufio"
	"fmt"
	"io"
)

// A Reader reads the timing report format.
//
// Its API is modeled on bufio.Scanner. Unlike the scanner, the first
// syntax error is fatal: Scan returns false and Err reports the
// *SyntaxError.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error

	fileName string
	line     int

	// open reports whether a header has been read, so data lines
	// have a series to belong to.
	open bool

	rec Record
}

// A SyntaxError represents a syntax error on a particular line of a
// timing report.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// maxLineLen is the longest line, including its terminator, the
// Reader accepts. Longer lines are syntax errors.
const maxLineLen = 1 << 20

// errIncorrect is the common prefix of every syntax error message.
const errIncorrect = "the data file's syntax is incorrect"

var noResult = &SyntaxError{"", 0, "Reader.Scan has not returned a record"}

// NewReader constructs a reader to parse the timing report format
// from r. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// newSyntaxError returns a *SyntaxError at the Reader's current position.
func (r *Reader) newSyntaxError(detail string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, errIncorrect + ": " + detail}
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLineLen)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.open = false
	r.rec = nil
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Result method to get the
// record. If Scan reaches EOF, hits an I/O error, or reads a line that
// is not valid at its position, it returns false, in which case the
// caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err == bufio.ErrTooLong {
			r.line++
			r.err = r.newSyntaxError(fmt.Sprintf("line longer than %d bytes", maxLineLen))
		} else if err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		}
		r.rec = nil
		return false
	}
	r.line++

	m := classify(r.s.Bytes())
	switch m.kind {
	case lineHeader:
		r.open = true
		r.rec = &Header{Name: m.name, fileName: r.fileName, line: r.line}
		return true
	case lineData:
		if !r.open {
			r.err = r.newSyntaxError("data line before any header")
			break
		}
		r.rec = &Sample{Threads: m.threads, Milliseconds: m.ms, fileName: r.fileName, line: r.line}
		return true
	default:
		if !r.open {
			r.err = r.newSyntaxError("expected a header line")
		} else {
			r.err = r.newSyntaxError("expected a header or data line")
		}
	}
	r.rec = nil
	return false
}

// A Record is a single record read from a timing report. It is either
// a *Header or a *Sample.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file. If this record was not read
	// from a file, it returns "", 0.
	Pos() (fileName string, line int)
}

var _ Record = (*Header)(nil)
var _ Record = (*Sample)(nil)
var _ Record = (*SyntaxError)(nil)

// Result returns the record that was just read by Scan. This is either
// a *Header or a *Sample.
//
// If Scan has never been called, or the last call returned false,
// Result returns a *SyntaxError.
func (r *Reader) Result() Record {
	if r.rec == nil {
		return noResult
	}
	return r.rec
}

// Err returns the error that stopped the Reader: a *SyntaxError, or a
// non-EOF I/O error. It returns nil if the input was read to EOF.
func (r *Reader) Err() error {
	return r.err
}
