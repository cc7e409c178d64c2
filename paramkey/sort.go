// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramkey

import (
	"fmt"
	"sort"
)

// Less reports whether a comes before b. It panics if a and b are
// different Key variants.
func Less(a, b Key) bool {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return a.Less(b)
		}
	case Tuple:
		if b, ok := b.(Tuple); ok {
			return a.Less(b)
		}
	}
	panic(fmt.Sprintf("cannot compare %T key with %T key", a, b))
}

// Sort sorts keys in ascending order. All keys must be the same
// variant.
//
// This is equivalent to using Less with the sort package but checks
// the variant once rather than on every comparison.
func Sort(keys []Key) {
	if len(keys) == 0 {
		return
	}
	switch keys[0].(type) {
	case Scalar:
		s := make([]Scalar, len(keys))
		for i, k := range keys {
			k, ok := k.(Scalar)
			if !ok {
				panic(fmt.Sprintf("cannot sort %T key with Scalar keys", keys[i]))
			}
			s[i] = k
		}
		sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
		for i := range s {
			keys[i] = s[i]
		}
	case Tuple:
		t := make([]Tuple, len(keys))
		for i, k := range keys {
			k, ok := k.(Tuple)
			if !ok {
				panic(fmt.Sprintf("cannot sort %T key with Tuple keys", keys[i]))
			}
			t[i] = k
		}
		sort.Slice(t, func(i, j int) bool { return t[i].Less(t[j]) })
		for i := range t {
			keys[i] = t[i]
		}
	default:
		panic(fmt.Sprintf("unknown key type %T", keys[0]))
	}
}
