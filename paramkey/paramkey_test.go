// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramkey

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		scheme Scheme
		stem   string
		want   Key
	}{
		{Window, "100", Scalar(100)},
		{Window, "1", Scalar(1)},
		{Window, "-3", Scalar(-3)},
		{Window, "007", Scalar(7)},
		{Sweep, "50_2_1_30", Tuple{50, 2, 1, 30}},
		{Sweep, "0_0_0_0", Tuple{}},
		{Scheme{Delim: ".", Arity: 4}, "1.2.3.4", Tuple{1, 2, 3, 4}},
	} {
		got, err := test.scheme.Decode(test.stem)
		if err != nil {
			t.Errorf("%+v.Decode(%q): unexpected error %v", test.scheme, test.stem, err)
			continue
		}
		if got != test.want {
			t.Errorf("%+v.Decode(%q) = %#v, want %#v", test.scheme, test.stem, got, test.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		scheme Scheme
		stem   string
	}{
		{Window, "abc"},
		{Window, ""},
		{Window, "1_2"},
		{Window, "10.5"},
		{Sweep, "1_2"},
		{Sweep, "1_2_3_4_5"},
		{Sweep, "50_2_x_30"},
		{Sweep, "50__1_30"},
		{Scheme{Delim: "_", Arity: 2}, "1_2"},
	} {
		k, err := test.scheme.Decode(test.stem)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%+v.Decode(%q) = %v, %v; want *ParseError", test.scheme, test.stem, k, err)
			continue
		}
		if perr.Stem != test.stem {
			t.Errorf("%+v.Decode(%q): error stem %q", test.scheme, test.stem, perr.Stem)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		k := Tuple{r.Intn(1000), r.Intn(10), r.Intn(10), r.Intn(500)}
		stem := Sweep.Encode(k)
		got, err := Sweep.Decode(stem)
		if err != nil {
			t.Fatalf("Decode(%q): %v", stem, err)
		}
		if got != k {
			t.Fatalf("Decode(Encode(%v)) = %v", k, got)
		}
		if again := Sweep.Encode(got); again != stem {
			t.Fatalf("Encode(Decode(%q)) = %q", stem, again)
		}
	}
	for _, stem := range []string{"1", "80", "1000"} {
		k, err := Window.Decode(stem)
		if err != nil {
			t.Fatalf("Decode(%q): %v", stem, err)
		}
		if got := Window.Encode(k); got != stem {
			t.Errorf("Encode(Decode(%q)) = %q", stem, got)
		}
	}
}

func TestSort(t *testing.T) {
	check := func(keys []Key, want ...string) {
		t.Helper()
		Sort(keys)
		var got []string
		for _, k := range keys {
			got = append(got, k.String())
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		for i := 1; i < len(keys); i++ {
			if Less(keys[i], keys[i-1]) {
				t.Errorf("keys not ascending at %d: %v", i, keys)
			}
		}
	}

	check([]Key{Scalar(100), Scalar(20), Scalar(5), Scalar(1000)}, "5", "20", "100", "1000")
	check([]Key{
		Tuple{50, 2, 1, 30},
		Tuple{10, 5, 1, 30},
		Tuple{50, 1, 9, 9},
		Tuple{50, 2, 1, 10},
	}, "(10, 5, 1, 30)", "(50, 1, 9, 9)", "(50, 2, 1, 10)", "(50, 2, 1, 30)")
	check(nil)
}

func TestSortMixedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sort of mixed keys did not panic")
		}
	}()
	Sort([]Key{Scalar(1), Tuple{1, 2, 3, 4}})
}

func TestFirst(t *testing.T) {
	if got := First(Scalar(80)); got != 80 {
		t.Errorf("First(Scalar(80)) = %d", got)
	}
	if got := First(Tuple{50, 2, 1, 30}); got != 50 {
		t.Errorf("First(Tuple) = %d", got)
	}
}
