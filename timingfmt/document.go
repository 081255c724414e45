// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

import (
	"fmt"
	"io"
)

// Parse reads a complete timing report from r and groups its samples
// into series. fileName is used in error messages.
//
// Parse stops at the first error. In that case it returns a nil
// Document and the error, which is a *SyntaxError for malformed input.
func Parse(r io.Reader, fileName string) (*Document, error) {
	doc := new(Document)
	var cur *Series
	reader := NewReader(r, fileName)
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *Header:
			cur = &Series{Name: rec.Name}
			doc.Series = append(doc.Series, cur)
		case *Sample:
			// The Reader rejects data lines before the
			// first header, so cur is set.
			cur.Samples = append(cur.Samples, rec.Milliseconds)
		default:
			panic(fmt.Sprintf("unexpected record type %T", rec))
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}
