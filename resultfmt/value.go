// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// A MissingFieldError reports that a record has no field with the
// requested label.
type MissingFieldError struct {
	FileName string
	Label    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing %q", e.FileName, e.Label)
}

// A FormatError reports a field whose value does not start with a
// number.
type FormatError struct {
	FileName string
	Line     int
	Label    string
	Value    string
	Err      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s: bad value %q: %v", e.FileName, e.Line, e.Label, strings.TrimSpace(e.Value), e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Value returns the numeric value of the field with the given label:
// the first whitespace-separated token of its value text, parsed as a
// float. It fails with a *MissingFieldError if there is no such field,
// or a *FormatError if the token is absent or not a number.
func (r *Record) Value(label string) (float64, error) {
	f, ok := r.Lookup(label)
	if !ok {
		return 0, &MissingFieldError{r.FileName, label}
	}
	tok, _ := splitValue(f.Value)
	if tok == "" {
		return 0, &FormatError{r.FileName, f.Line, label, f.Value, strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &FormatError{r.FileName, f.Line, label, f.Value, err}
	}
	return v, nil
}

// Unit returns the text following the number in the field with the
// given label, such as "Mbits/s" or "ms". It returns "" if the field
// is missing or has no unit text.
func (r *Record) Unit(label string) string {
	f, ok := r.Lookup(label)
	if !ok {
		return ""
	}
	_, rest := splitValue(f.Value)
	return rest
}

// Throughput returns the record's average throughput in Mbit/s.
func (r *Record) Throughput() (float64, error) {
	return r.Value(ThroughputLabel)
}

// Delay returns the record's 95th percentile signal delay in ms.
func (r *Record) Delay() (float64, error) {
	return r.Value(DelayLabel)
}

// splitValue splits value text into its first field and the remaining
// text, both with surrounding whitespace removed.
func splitValue(s string) (tok, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, isSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
