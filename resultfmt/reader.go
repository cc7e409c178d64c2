// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultfmt reads datagrump experiment result files.
//
// A result file is plain text with one metric per line:
//
//	Average capacity: 5.04 Mbits/s
//	Average throughput: 4.5 Mbits/s (89.3% utilization)
//	95th percentile per-packet queueing delay: 1150 ms
//	95th percentile signal delay: 1200 ms
//
// Only lines containing "Average" or "delay" are kept. Each kept line
// is split at its first colon into a label and a value, and the value
// is a number followed by optional unit text. Other lines are ignored.
package resultfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Labels of the two metrics every result file must provide.
const (
	ThroughputLabel = "Average throughput"
	DelayLabel      = "95th percentile signal delay"
)

// maxLineLen bounds the length of a single line. Longer lines fail
// the parse.
const maxLineLen = 16 << 20

var (
	averageMarker = []byte("Average")
	delayMarker   = []byte("delay")
)

// A Field is one labeled metric line from a result file.
type Field struct {
	Label string
	Value string // raw text after the colon
	Line  int    // 1-based line number
}

// A Record holds the metric fields read from one result file.
type Record struct {
	// FileName is the name of the file the record was read from.
	// It is used in error messages.
	FileName string

	// Fields lists the fields in the order they first appeared.
	// If a label appears more than once, its last value wins.
	Fields []Field

	index map[string]int
}

// Parse reads a result file from r. fileName is used in error
// messages; it is purely diagnostic.
//
// A file with no matching lines produces an empty Record; asking it
// for a metric fails with a *MissingFieldError.
func Parse(r io.Reader, fileName string) (*Record, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	rec := &Record{FileName: fileName}
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineLen)
	line := 0
	for s.Scan() {
		line++
		text := s.Bytes()
		if !bytes.Contains(text, delayMarker) && !bytes.Contains(text, averageMarker) {
			continue
		}
		i := bytes.IndexByte(text, ':')
		if i < 0 {
			// Not a "label: value" line.
			continue
		}
		label := string(bytes.TrimSpace(text[:i]))
		rec.set(Field{Label: label, Value: string(text[i+1:]), Line: line})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, line, err)
	}
	return rec, nil
}

func (r *Record) set(f Field) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[f.Label]; ok {
		r.Fields[i] = f
		return
	}
	r.index[f.Label] = len(r.Fields)
	r.Fields = append(r.Fields, f)
}

// Lookup returns the field with the given label.
func (r *Record) Lookup(label string) (Field, bool) {
	i, ok := r.index[label]
	if !ok {
		return Field{}, false
	}
	return r.Fields[i], true
}
