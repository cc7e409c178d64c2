// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Windowplot charts the results of static-window congestion control
// experiments.
//
// Usage:
//
//	windowplot [flags]
//
// Windowplot reads every regular file named <window>.txt in the input
// directory, where <window> is the integer window size of the run.
// From each file it takes the "Average throughput" (Mbits/s) and the
// "95th percentile signal delay" (ms) lines, and scores the run as
//
//	throughput / delay * 1000
//
// that is, throughput in Mbit/s over delay in seconds.
//
// It writes three charts to the output directory: A.pdf, a scatter of
// throughput against delay with each point labeled by its window size;
// A-score.pdf, the score against window size; and A-score-log.pdf, the
// natural log of the score against window size. The -format flag
// selects svg or png output instead.
//
// A summary of the runs is printed to standard output: a table of the
// runs with their scores, followed by the best run and the range of
// each metric. The -summary flag selects csv or html output instead,
// or none.
//
// Any unreadable file, malformed file name, missing metric, or zero
// delay aborts the run with an error naming the file or key.
//
// Example
//
// Given the files 10.txt, 80.txt, and 500.txt in the directory runs,
//
//	$ windowplot -dir runs -o charts
//	key  throughput  delay    score  log score
//	10          1.2     90  13.3333     2.5903
//	80          4.5   1200   3.7500     1.3218
//	500           5   6000   0.8333    -0.1823
//
//	3 points, best 10 with score 13.3333
//	throughput 1.2 to 5 Mbit/s, geomean 3
//	delay 90 to 6000 ms, geomean 865.3
//	score 0.8333 to 13.33, mean 5.972
//
// and charts/A.pdf, charts/A-score.pdf, and charts/A-score-log.pdf
// hold the charts.
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
	log.SetPrefix("windowplot: ")
	log.SetFlags(0)

	if err := windowplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, plotcmd.ErrUsage) {
			exit(2)
		}
		log.Print(err)
		exit(1)
	}
}

func windowplot(w, wErr io.Writer, args []string) error {
	c := plotcmd.WindowConfig()

	flags := flag.NewFlagSet("windowplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: windowplot [flags]\n")
		fmt.Fprintf(wErr, "flags:\n")
		flags.PrintDefaults()
	}
	c.RegisterFlags(flags)
	flagVerbose := flags.Bool("v", false, "log progress to standard error")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", plotcmd.ErrUsage, err)
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return fmt.Errorf("%w: unexpected arguments", plotcmd.ErrUsage)
	}
	if err := c.Check(); err != nil {
		fmt.Fprintln(wErr, err)
		flags.Usage()
		return err
	}
	if *flagVerbose {
		c.Logf = log.New(wErr, "windowplot: ", 0).Printf
	}

	return plotcmd.Run(w, c)
}
