// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/google/safehtml/template"

	"github.com/datagrump/grumpstat/resultseries"
)

func writeSummary(w io.Writer, c *Config, a *resultseries.Aligned, scores, logScores resultseries.Scores) error {
	switch c.Summary {
	case "text":
		return writeText(w, c, a, scores, logScores)
	case "csv":
		return writeCSV(w, c, a, scores, logScores)
	case "html":
		return writeHTML(w, c, a, scores, logScores)
	}
	return nil
}

// writeText prints one row per point followed by whole-series
// statistics and, for sweeps, the best score of each window size.
func writeText(w io.Writer, c *Config, a *resultseries.Aligned, scores, logScores resultseries.Scores) error {
	at := a.Table()
	t := table.NewBuilder(nil).
		Add("key", at.MustColumn("key")).
		Add("throughput", at.MustColumn("throughput")).
		Add("delay", at.MustColumn("delay")).
		Add("score", []float64(scores)).
		Add("log score", []float64(logScores)).
		Done()
	if err := table.Fprint(w, t, "%s", "%g", "%g", "%.4f", "%.4f"); err != nil {
		return err
	}

	s := resultseries.Summarize(a, scores)
	fmt.Fprintf(w, "\n%d points, best %s with score %.4f\n", s.N, a.Keys[s.Best], scores[s.Best])
	fmt.Fprintf(w, "throughput %.4g to %.4g Mbit/s, geomean %.4g\n", s.Throughput.Min, s.Throughput.Max, s.Throughput.GeoMean)
	fmt.Fprintf(w, "delay %.4g to %.4g ms, geomean %.4g\n", s.Delay.Min, s.Delay.Max, s.Delay.GeoMean)
	if _, err := fmt.Fprintf(w, "score %.4g to %.4g, mean %.4g\n", s.Score.Min, s.Score.Max, s.Score.Mean); err != nil {
		return err
	}

	if !c.PerWindow {
		return nil
	}
	best := resultseries.BestPerWindow(a, scores)
	var windows, runs []int
	var top []float64
	for _, b := range best {
		windows = append(windows, b.Window)
		runs = append(runs, b.Runs)
		top = append(top, b.Score)
	}
	bt := table.NewBuilder(nil).
		Add("window", windows).
		Add("runs", runs).
		Add("max score", top).
		Done()
	fmt.Fprintf(w, "\nbest score per window:\n")
	return table.Fprint(w, bt, "%d", "%d", "%.4f")
}

func writeCSV(w io.Writer, c *Config, a *resultseries.Aligned, scores, logScores resultseries.Scores) error {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	cw := csv.NewWriter(w)
	cw.Write([]string{"key", "window", "throughput", "delay", "score", "log_score"})
	windows := a.Windows()
	for i, k := range a.Keys {
		cw.Write([]string{c.Scheme.Encode(k), f(windows[i]), f(a.Throughput[i]), f(a.Delay[i]), f(scores[i]), f(logScores[i])})
	}
	cw.Flush()
	return cw.Error()
}

const summaryHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
td, th { padding: 0 1em; text-align: right; }
td:first-child, th:first-child { text-align: left; }
.best { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<tr><th>key</th><th>throughput (Mbit/s)</th><th>delay (ms)</th><th>score</th><th>log score</th></tr>
{{- range .Rows}}
<tr{{if .Best}} class="best"{{end}}><td>{{.Key}}</td><td>{{.Throughput}}</td><td>{{.Delay}}</td><td>{{.Score}}</td><td>{{.LogScore}}</td></tr>
{{- end}}
</table>
{{- with .Charts}}
<ul>
{{- range .}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryHTML))

type htmlRow struct {
	Key        string
	Throughput string
	Delay      string
	Score      string
	LogScore   string
	Best       bool
}

func writeHTML(w io.Writer, c *Config, a *resultseries.Aligned, scores, logScores resultseries.Scores) error {
	s := resultseries.Summarize(a, scores)
	rows := make([]htmlRow, a.Len())
	for i, k := range a.Keys {
		rows[i] = htmlRow{
			Key:        k.String(),
			Throughput: fmt.Sprintf("%g", a.Throughput[i]),
			Delay:      fmt.Sprintf("%g", a.Delay[i]),
			Score:      fmt.Sprintf("%.4f", scores[i]),
			LogScore:   fmt.Sprintf("%.4f", logScores[i]),
			Best:       i == s.Best,
		}
	}
	scatter, score, logScore := c.Outputs()
	return summaryTmpl.Execute(w, struct {
		Title  string
		Rows   []htmlRow
		Charts []string
	}{c.Scatter.Title, rows, []string{scatter, score, logScore}})
}
