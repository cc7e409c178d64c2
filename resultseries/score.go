// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultseries

import (
	"fmt"
	"math"

	"github.com/datagrump/grumpstat/paramkey"
)

// ScoreScale converts throughput (Mbit/s) over delay (ms) to
// throughput over delay in seconds.
const ScoreScale = 1000.0

// ScoreOptions configures Score.
type ScoreOptions struct {
	// Log replaces each score with its natural logarithm.
	Log bool
}

// Scores holds one score per point of an Aligned series.
type Scores []float64

// A DivisionError reports a point whose delay is zero.
type DivisionError struct {
	Key paramkey.Key
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("key %s: score undefined for zero delay", e.Key)
}

// A DomainError reports a point whose score has no logarithm.
type DomainError struct {
	Key   paramkey.Key
	Score float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("key %s: cannot take log of score %g", e.Key, e.Score)
}

// Score computes Throughput[i]/Delay[i]*ScoreScale for each point of a,
// or the natural log of that if opts.Log is set.
//
// A zero delay fails with a *DivisionError rather than producing an
// infinity, and with opts.Log a score <= 0 fails with a *DomainError.
func Score(a *Aligned, opts ScoreOptions) (Scores, error) {
	s := make(Scores, a.Len())
	for i := range s {
		if a.Delay[i] == 0 {
			return nil, &DivisionError{a.Keys[i]}
		}
		v := a.Throughput[i] / a.Delay[i] * ScoreScale
		if opts.Log {
			if !(v > 0) {
				return nil, &DomainError{a.Keys[i], v}
			}
			v = math.Log(v)
		}
		s[i] = v
	}
	return s, nil
}
