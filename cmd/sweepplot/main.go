// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sweepplot charts the results of an AIMD parameter sweep.
//
// Usage:
//
//	sweepplot [flags] prefix xlabel
//
// Sweepplot reads every regular file named
// <window>_<increase>_<decrease>_<timeout>.txt in the input directory.
// Each run is scored as throughput (Mbit/s) over 95th percentile signal
// delay (s), exactly as windowplot does.
//
// It writes prefix.pdf, a scatter of throughput against delay with each
// point labeled by its parameter tuple, and prefix-score.pdf and
// prefix-score-log.pdf, the score and its natural log against the
// initial window size, whose axis is labeled xlabel. Labels on the
// scatter are jittered vertically so that runs with similar results
// stay legible; the -seed flag fixes the jitter.
//
// The summary printed to standard output ends with the best score
// among the runs sharing each window size.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/datagrump/grumpstat/internal/plotcmd"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("sweepplot: ")
	log.SetFlags(0)

	if err := sweepplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, plotcmd.ErrUsage) {
			exit(2)
		}
		log.Print(err)
		exit(1)
	}
}

func sweepplot(w, wErr io.Writer, args []string) error {
	opts := plotcmd.DefaultOptions()

	flags := flag.NewFlagSet("sweepplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: sweepplot [flags] prefix xlabel\n")
		fmt.Fprintf(wErr, "flags:\n")
		flags.PrintDefaults()
	}
	opts.RegisterFlags(flags)
	flagSeed := flags.Int64("seed", 1, "seed the label jitter with `n`")
	flagVerbose := flags.Bool("v", false, "log progress to standard error")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", plotcmd.ErrUsage, err)
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return fmt.Errorf("%w: want prefix and xlabel", plotcmd.ErrUsage)
	}

	c := plotcmd.SweepConfig(flags.Arg(0), flags.Arg(1), *flagSeed)
	c.Options = opts
	if err := c.Check(); err != nil {
		fmt.Fprintln(wErr, err)
		flags.Usage()
		return err
	}
	if *flagVerbose {
		c.Logf = log.New(wErr, "sweepplot: ", 0).Printf
	}

	return plotcmd.Run(w, c)
}
