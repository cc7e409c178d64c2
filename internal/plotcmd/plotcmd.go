// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcmd implements the pipeline shared by the windowplot
// and sweepplot commands: scan a directory for result files, build
// the aligned series, compute scores, draw the three charts, and print
// a summary.
package plotcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"

	"github.com/datagrump/grumpstat/paramkey"
	"github.com/datagrump/grumpstat/resultchart"
	"github.com/datagrump/grumpstat/resultfmt"
	"github.com/datagrump/grumpstat/resultseries"
)

// ErrUsage is returned (wrapped) for bad command lines. Commands exit
// with status 2 for it.
var ErrUsage = errors.New("usage error")

// Score chart Y axis labels.
const (
	ScoreLabel    = "throughput(Mbit/s)/delay(s)"
	LogScoreLabel = "log(throughput(Mbit/s)/delay(s))"
)

// Options holds the settings both commands take from the command
// line.
type Options struct {
	// Dir is the directory holding the result files.
	Dir string

	// OutDir is the directory charts are written to, and Format
	// their extension.
	OutDir string
	Format string

	// Summary selects the summary printed to standard output:
	// "text", "csv", "html", or "none".
	Summary string
}

// DefaultOptions returns the command-line defaults: read and write
// the current directory, PDF charts, and a text summary.
func DefaultOptions() Options {
	return Options{Dir: ".", OutDir: ".", Format: "pdf", Summary: "text"}
}

// RegisterFlags defines the flags common to both commands on fs,
// storing their values in o.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.Dir, "dir", o.Dir, "read result files from `directory`")
	fs.StringVar(&o.OutDir, "o", o.OutDir, "write charts into `directory`")
	fs.StringVar(&o.Format, "format", o.Format, "chart `format`: "+strings.Join(resultchart.Formats, ", "))
	fs.StringVar(&o.Summary, "summary", o.Summary, "print a summary in `form`: text, csv, html, or none")
}

// Config configures one run of the pipeline.
type Config struct {
	Options

	// Scheme decodes result file names into keys.
	Scheme paramkey.Scheme

	// Suffix is the file name suffix result files share.
	Suffix string

	// Chart files are named Prefix, Prefix-score, and
	// Prefix-score-log in OutDir.
	Prefix string

	// Scatter lays out the throughput-delay chart, and
	// ScatterLabels places its annotations.
	Scatter       resultchart.Chart
	ScatterLabels resultchart.LabelOffset

	// Score lays out the score charts. Its Y axis label is set
	// per chart.
	Score resultchart.Chart

	// AnnotateScores labels each score point with its key.
	AnnotateScores bool

	// PerWindow adds the best score per window to the summary.
	PerWindow bool

	Style resultchart.Style

	// Logf, if non-nil, receives progress messages.
	Logf func(format string, args ...interface{})
}

// Check validates c's user-settable fields.
func (c *Config) Check() error {
	ok := false
	for _, f := range resultchart.Formats {
		ok = ok || c.Format == f
	}
	if !ok {
		return fmt.Errorf("%w: unknown chart format %q", ErrUsage, c.Format)
	}
	switch c.Summary {
	case "text", "csv", "html", "none":
	default:
		return fmt.Errorf("%w: unknown summary form %q", ErrUsage, c.Summary)
	}
	if c.Prefix == "" {
		return fmt.Errorf("%w: empty output prefix", ErrUsage)
	}
	return nil
}

func (c *Config) logf(format string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// Outputs returns the paths of the throughput-delay, score, and log
// score charts.
func (c *Config) Outputs() (scatter, score, logScore string) {
	path := func(suffix string) string {
		return filepath.Join(c.OutDir, c.Prefix+suffix+"."+c.Format)
	}
	return path(""), path("-score"), path("-score-log")
}

// Run executes the pipeline described by c, printing the summary to
// stdout. Any error aborts the run.
func Run(stdout io.Writer, c *Config) error {
	if err := c.Check(); err != nil {
		return err
	}

	files, err := resultfmt.Scan(c.Dir, c.Suffix)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no *%s result files in %s", c.Suffix, c.Dir)
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	c.logf("reading %d files: %s", len(files), strings.Join(names, " "))

	ds, err := resultseries.Load(files, c.Scheme)
	if err != nil {
		return err
	}
	a, err := resultseries.Build(ds)
	if err != nil {
		return err
	}
	scores, err := resultseries.Score(a, resultseries.ScoreOptions{})
	if err != nil {
		return err
	}
	logScores, err := resultseries.Score(a, resultseries.ScoreOptions{Log: true})
	if err != nil {
		return err
	}
	for i, k := range a.Keys {
		c.logf("%s: throughput %g, delay %g, score %g", k, a.Throughput[i], a.Delay[i], scores[i])
	}

	charts, err := c.charts(a, scores, logScores)
	if err != nil {
		return err
	}
	if err := c.saveAll(charts); err != nil {
		return err
	}

	return writeSummary(stdout, c, a, scores, logScores)
}

// A chartFile is a drawn chart and the path it is saved to.
type chartFile struct {
	path string
	plot *plot.Plot
}

// charts builds the throughput-delay, score, and log score charts
// without writing anything.
func (c *Config) charts(a *resultseries.Aligned, scores, logScores resultseries.Scores) ([]chartFile, error) {
	scatterPath, scorePath, logScorePath := c.Outputs()
	p, err := resultchart.ThroughputDelay(a, c.Scatter, c.Style, c.ScatterLabels)
	if err != nil {
		return nil, err
	}
	out := []chartFile{{scatterPath, p}}

	var keys []paramkey.Key
	if c.AnnotateScores {
		keys = a.Keys
	}
	for _, sc := range []struct {
		path   string
		label  string
		scores resultseries.Scores
	}{
		{scorePath, ScoreLabel, scores},
		{logScorePath, LogScoreLabel, logScores},
	} {
		chart := c.Score
		chart.Y.Label = sc.label
		p, err := resultchart.Score(a.Windows(), sc.scores, keys, chart, c.Style)
		if err != nil {
			return nil, err
		}
		out = append(out, chartFile{sc.path, p})
	}
	return out, nil
}

// saveAll writes every chart. If one fails, the charts already
// written are removed.
func (c *Config) saveAll(charts []chartFile) error {
	for i, cf := range charts {
		if err := c.save(cf.plot, cf.path); err != nil {
			for _, done := range charts[:i] {
				os.Remove(done.path)
			}
			return err
		}
	}
	return nil
}

func (c *Config) save(p *plot.Plot, path string) error {
	if err := resultchart.Save(p, c.Style, path); err != nil {
		return err
	}
	c.logf("wrote %s", path)
	return nil
}
