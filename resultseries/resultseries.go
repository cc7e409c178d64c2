// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultseries turns a directory's worth of experiment
// results into ordered throughput/delay series and derived scores.
//
// The pipeline is linear: Load decodes file names into parameter keys
// and reads each file into a DataSet, Build sorts the keys and emits
// index-aligned key/throughput/delay sequences, and Score derives
// throughput/delay*1000 (optionally its natural log) per point. Any
// error aborts the pipeline; there is no partial output.
package resultseries

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/datagrump/grumpstat/paramkey"
	"github.com/datagrump/grumpstat/resultfmt"
)

// A DataSet maps each experiment's parameter key to the metrics read
// from its result file. Keys are unique.
type DataSet struct {
	recs map[paramkey.Key]*resultfmt.Record
	keys []paramkey.Key // insertion order
}

// NewDataSet returns an empty DataSet.
func NewDataSet() *DataSet {
	return &DataSet{recs: make(map[paramkey.Key]*resultfmt.Record)}
}

// Add records rec under key k. Two files must not decode to the same
// key (for example "7.txt" and "007.txt"); Add reports a
// *paramkey.ParseError if k is already present.
func (d *DataSet) Add(k paramkey.Key, rec *resultfmt.Record) error {
	if prev, ok := d.recs[k]; ok {
		return &paramkey.ParseError{
			Stem: k.String(),
			Msg:  fmt.Sprintf("%s and %s decode to the same key", prev.FileName, rec.FileName),
		}
	}
	d.recs[k] = rec
	d.keys = append(d.keys, k)
	return nil
}

// Len returns the number of entries in d.
func (d *DataSet) Len() int { return len(d.keys) }

// Record returns the record stored under k, or nil.
func (d *DataSet) Record(k paramkey.Key) *resultfmt.Record { return d.recs[k] }

// Keys returns d's keys in ascending order.
func (d *DataSet) Keys() []paramkey.Key {
	keys := append([]paramkey.Key(nil), d.keys...)
	paramkey.Sort(keys)
	return keys
}

// Load decodes each file's stem under scheme and reads the file into
// a new DataSet. Files are read one at a time, in order, and Load
// stops at the first error.
func Load(files []resultfmt.File, scheme paramkey.Scheme) (*DataSet, error) {
	ds := NewDataSet()
	for _, f := range files {
		k, err := scheme.Decode(f.Stem())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path, err)
		}
		rec, err := resultfmt.ReadFile(f)
		if err != nil {
			return nil, err
		}
		if err := ds.Add(k, rec); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Aligned holds three index-aligned sequences sorted by key:
// Throughput[i] and Delay[i] were read from the file whose key is
// Keys[i]. An Aligned is not modified after Build returns it.
type Aligned struct {
	Keys       []paramkey.Key
	Throughput []float64 // Mbit/s
	Delay      []float64 // ms
}

// Build produces the aligned series of ds in ascending key order.
// It does not interpolate or skip: a record missing either metric
// fails with a *resultfmt.MissingFieldError, and an unparseable
// value with a *resultfmt.FormatError.
func Build(ds *DataSet) (*Aligned, error) {
	keys := ds.Keys()
	a := &Aligned{
		Keys:       keys,
		Throughput: make([]float64, 0, len(keys)),
		Delay:      make([]float64, 0, len(keys)),
	}
	for _, k := range keys {
		rec := ds.recs[k]
		tput, err := rec.Throughput()
		if err != nil {
			return nil, err
		}
		delay, err := rec.Delay()
		if err != nil {
			return nil, err
		}
		a.Throughput = append(a.Throughput, tput)
		a.Delay = append(a.Delay, delay)
	}
	return a, nil
}

// Len returns the number of points in a.
func (a *Aligned) Len() int { return len(a.Keys) }

// Windows returns the window size (first key component) of each point.
func (a *Aligned) Windows() []float64 {
	xs := make([]float64, len(a.Keys))
	for i, k := range a.Keys {
		xs[i] = float64(paramkey.First(k))
	}
	return xs
}

// Table returns a as a table with columns "key", "window",
// "throughput", and "delay".
func (a *Aligned) Table() *table.Table {
	keys := make([]string, len(a.Keys))
	windows := make([]int, len(a.Keys))
	for i, k := range a.Keys {
		keys[i] = k.String()
		windows[i] = paramkey.First(k)
	}
	return new(table.Builder).
		Add("key", keys).
		Add("window", windows).
		Add("throughput", a.Throughput).
		Add("delay", a.Delay).
		Done()
}
