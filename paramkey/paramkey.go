// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paramkey decodes experiment parameter keys from result file
// names.
//
// A result file is named after the parameters of the run that produced
// it, for example "100.txt" for a run with a static window of 100, or
// "50_2_1_30.txt" for an AIMD run with window 50, additive increase 2,
// multiplicative decrease 1, and timeout 30. A Scheme describes how
// such a name (minus its extension) splits into integers, and Decode
// turns it into a Key.
//
// A Key is either a Scalar or a Tuple. All Keys produced by one Scheme
// have the same variant, and only Keys of the same variant can be
// ordered against each other.
package paramkey

import (
	"fmt"
	"strconv"
	"strings"
)

// A Key identifies one experiment run. It is either a Scalar or a
// Tuple. Keys are comparable and may be used as map keys.
type Key interface {
	// Ints returns the key's components in order.
	Ints() []int

	// String returns the key formatted for display.
	String() string

	isKey()
}

// A Scalar is a single-integer key, such as a static window size.
type Scalar int

func (s Scalar) Ints() []int { return []int{int(s)} }

func (s Scalar) String() string { return strconv.Itoa(int(s)) }

// Less reports whether s sorts before o.
func (s Scalar) Less(o Scalar) bool { return s < o }

func (Scalar) isKey() {}

// A Tuple is the key of a window/increase/decrease/timeout sweep.
type Tuple struct {
	Window   int
	Increase int
	Decrease int
	Timeout  int
}

func (t Tuple) Ints() []int { return []int{t.Window, t.Increase, t.Decrease, t.Timeout} }

// String formats t like "(50, 2, 1, 30)".
func (t Tuple) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", t.Window, t.Increase, t.Decrease, t.Timeout)
}

// Less reports whether t sorts before o. Tuples are ordered
// lexicographically by Window, Increase, Decrease, then Timeout.
func (t Tuple) Less(o Tuple) bool {
	a, b := t.Ints(), o.Ints()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (Tuple) isKey() {}

// First returns the first component of k. For both variants this is
// the window size.
func First(k Key) int {
	switch k := k.(type) {
	case Scalar:
		return int(k)
	case Tuple:
		return k.Window
	}
	panic(fmt.Sprintf("unknown key type %T", k))
}

// A ParseError reports a file name stem that does not decode to a Key
// under some Scheme.
type ParseError struct {
	Stem string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing key %q: %s", e.Stem, e.Msg)
}

// A Scheme describes how a file name stem encodes a Key.
type Scheme struct {
	// Delim separates the integer components of the stem.
	Delim string

	// Arity is the number of components. It must be 1 (Scalar) or
	// 4 (Tuple).
	Arity int
}

var (
	// Window is the scheme of static-window experiments, whose
	// results are named "<window>.txt".
	Window = Scheme{Delim: "_", Arity: 1}

	// Sweep is the scheme of AIMD parameter sweeps, whose results
	// are named "<window>_<increase>_<decrease>_<timeout>.txt".
	Sweep = Scheme{Delim: "_", Arity: 4}
)

// Decode parses stem as a Key. It fails with a *ParseError if stem
// has the wrong number of components or any component is not an
// integer. Nothing is silently dropped.
func (s Scheme) Decode(stem string) (Key, error) {
	if s.Arity != 1 && s.Arity != 4 {
		return nil, &ParseError{stem, fmt.Sprintf("unsupported arity %d", s.Arity)}
	}
	toks := []string{stem}
	if s.Delim != "" {
		toks = strings.Split(stem, s.Delim)
	}
	if len(toks) != s.Arity {
		return nil, &ParseError{stem, fmt.Sprintf("want %d %q-separated integers, have %d fields", s.Arity, s.Delim, len(toks))}
	}
	vals := make([]int, len(toks))
	for i, tok := range toks {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{stem, fmt.Sprintf("field %d: %q is not an integer", i+1, tok)}
		}
		vals[i] = v
	}
	if s.Arity == 1 {
		return Scalar(vals[0]), nil
	}
	return Tuple{vals[0], vals[1], vals[2], vals[3]}, nil
}

// Encode formats k as a stem under Scheme s. For canonical stems
// (no leading zeros or plus signs), Encode(Decode(stem)) == stem.
func (s Scheme) Encode(k Key) string {
	ints := k.Ints()
	toks := make([]string, len(ints))
	for i, v := range ints {
		toks[i] = strconv.Itoa(v)
	}
	return strings.Join(toks, s.Delim)
}
