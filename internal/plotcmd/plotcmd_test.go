// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/datagrump/grumpstat/paramkey"
	"github.com/datagrump/grumpstat/resultseries"
)

func result(tput, delay string) string {
	return fmt.Sprintf("Average capacity: 5.04 Mbits/s\nAverage throughput: %s Mbits/s (89.3%% utilization)\n95th percentile signal delay: %s ms\n", tput, delay)
}

// setup writes files (name to contents) into a fresh directory and
// returns a configuration reading from it and writing charts to
// another fresh directory.
func setup(t *testing.T, c *Config, files map[string]string) *Config {
	t.Helper()
	c.Dir = t.TempDir()
	c.OutDir = t.TempDir()
	c.Style.DPI = 20
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(c.Dir, name), []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

var windowFiles = map[string]string{
	"10.txt":    result("1.2", "90"),
	"500.txt":   result("5", "6000"),
	"80.txt":    result("4.5", "1200"),
	"notes.md":  "ignored",
	"README":    "ignored",
	"50.txt.gz": "ignored",
}

func TestRunCSV(t *testing.T) {
	c := setup(t, WindowConfig(), windowFiles)
	c.Summary = "csv"
	var out bytes.Buffer
	if err := Run(&out, c); err != nil {
		t.Fatal(err)
	}
	want := `key,window,throughput,delay,score,log_score
10,10,1.2,90,13.333333333333332,2.5902671654458267
80,80,4.5,1200,3.75,1.3217558399823195
500,500,5,6000,0.8333333333333334,-0.1823215567939546
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"A.pdf", "A-score.pdf", "A-score-log.pdf"} {
		data, err := os.ReadFile(filepath.Join(c.OutDir, name))
		if err != nil {
			t.Error(err)
			continue
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("%s is not a PDF", name)
		}
	}
}

func TestRunText(t *testing.T) {
	c := setup(t, WindowConfig(), windowFiles)
	var out bytes.Buffer
	if err := Run(&out, c); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"key  throughput  delay    score  log score\n",
		"80          4.5   1200   3.7500     1.3218\n",
		"3 points, best 10 with score 13.3333\n",
		"throughput 1.2 to 5 Mbit/s, geomean 3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary lacks %q; got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "per window") {
		t.Errorf("window summary includes per-window table:\n%s", got)
	}
}

func TestRunSweep(t *testing.T) {
	c := SweepConfig("B", "window", 1)
	c = setup(t, c, map[string]string{
		"50_1_2_30.txt":  result("4.5", "1200"),
		"50_2_1_30.txt":  result("4.8", "1000"),
		"100_1_2_30.txt": result("5", "4000"),
	})
	c.Format = "svg"
	var out bytes.Buffer
	if err := Run(&out, c); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"(50, 2, 1, 30)",
		"best (50, 2, 1, 30) with score 4.8000\n",
		"best score per window:\nwindow  runs  max score\n    50     2     4.8000\n   100     1     1.2500\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary lacks %q; got:\n%s", want, got)
		}
	}
	for _, name := range []string{"B.svg", "B-score.svg", "B-score-log.svg"} {
		if _, err := os.Stat(filepath.Join(c.OutDir, name)); err != nil {
			t.Error(err)
		}
	}
}

func TestRunHTML(t *testing.T) {
	c := setup(t, WindowConfig(), windowFiles)
	c.Summary = "html"
	var out bytes.Buffer
	if err := Run(&out, c); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"<title>Throughput-delay plot</title>",
		`<tr class="best"><td>10</td>`,
		"<td>3.7500</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML lacks %q; got:\n%s", want, got)
		}
	}
}

func TestRunErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"empty", map[string]string{"README": "x"}, "no *.txt result files"},
		{"badkey", map[string]string{"10.txt": result("1", "2"), "ten.txt": result("1", "2")}, `parsing key "ten"`},
		{"missing", map[string]string{"10.txt": "Average capacity: 5 Mbits/s\n"}, `missing "Average throughput"`},
		{"zerodelay", map[string]string{"10.txt": result("1", "0")}, "key 10"},
		// The scatter draws, but window 0 has no place on the
		// score chart's log axis.
		{"zerowindow", map[string]string{"0.txt": result("1.2", "90"), "80.txt": result("4.5", "1200")}, "log scale needs positive values"},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := setup(t, WindowConfig(), test.files)
			c.Summary = "none"
			var out bytes.Buffer
			err := Run(&out, c)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Fatalf("Run error = %v, want one containing %q", err, test.want)
			}
			if out.Len() != 0 {
				t.Errorf("failed run printed %q", out.String())
			}
			assertEmpty(t, c.OutDir)
		})
	}

	c := setup(t, WindowConfig(), windowFiles)
	c.Summary = "none"
	c.Format = "gif"
	if err := Run(new(bytes.Buffer), c); !errors.Is(err, ErrUsage) {
		t.Errorf("Run with format gif: %v, want ErrUsage", err)
	}
	c.Format = "pdf"
	c.Summary = "yaml"
	if err := Run(new(bytes.Buffer), c); !errors.Is(err, ErrUsage) {
		t.Errorf("Run with summary yaml: %v, want ErrUsage", err)
	}
}

func TestRunSaveError(t *testing.T) {
	c := setup(t, WindowConfig(), windowFiles)
	c.Summary = "none"
	// A directory in the way of the last chart makes its save fail
	// after the first two are written.
	_, _, logScore := c.Outputs()
	if err := os.Mkdir(logScore, 0777); err != nil {
		t.Fatal(err)
	}
	if err := Run(new(bytes.Buffer), c); err == nil {
		t.Fatal("Run succeeded with an unwritable chart path")
	}
	ents, err := os.ReadDir(c.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, ent := range ents {
		names = append(names, ent.Name())
	}
	if want := []string{"A-score-log.pdf"}; !cmp.Equal(want, names) {
		t.Errorf("output directory holds %v, want only %v", names, want)
	}
}

func assertEmpty(t *testing.T, dir string) {
	t.Helper()
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, ent := range ents {
		t.Errorf("failed run left %s behind", filepath.Join(dir, ent.Name()))
	}
}

func TestOptionsFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := DefaultOptions()
	opts.RegisterFlags(fs)
	if err := fs.Parse([]string{"-dir", "in", "-o", "out", "-format", "svg", "-summary", "csv"}); err != nil {
		t.Fatal(err)
	}
	c := SweepConfig("B", "window", 1)
	c.Options = opts
	want := Options{Dir: "in", OutDir: "out", Format: "svg", Summary: "csv"}
	if diff := cmp.Diff(want, c.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	// Every flag lands in Options.
	fs.VisitAll(func(f *flag.Flag) {
		if f.Value.String() == f.DefValue {
			t.Errorf("flag -%s was not set", f.Name)
		}
	})
}

func TestRunDivisionError(t *testing.T) {
	c := setup(t, WindowConfig(), map[string]string{"10.txt": result("1", "0")})
	err := Run(new(bytes.Buffer), c)
	var de *resultseries.DivisionError
	if !errors.As(err, &de) || de.Key != paramkey.Scalar(10) {
		t.Errorf("Run error = %v, want *DivisionError for key 10", err)
	}
}

func TestWindowOffset(t *testing.T) {
	for _, test := range []struct {
		w      int
		xf, yf float64
	}{
		{10, 0.98, 1.025},
		{60, 1.07, 0.956},
		{80, 1.17, 0.958},
		{100, 1.27, 0.96},
		{500, 0.98, 1.025},
	} {
		xf, yf := windowOffset(0, paramkey.Scalar(test.w))
		if !near(xf, test.xf) || !near(yf, test.yf) {
			t.Errorf("windowOffset(%d) = %v, %v, want %v, %v", test.w, xf, yf, test.xf, test.yf)
		}
	}
}

func TestJitterSeeded(t *testing.T) {
	k := paramkey.Tuple{Window: 50, Increase: 1, Decrease: 2, Timeout: 30}
	a, b := SweepConfig("B", "w", 7), SweepConfig("B", "w", 7)
	for i := 0; i < 5; i++ {
		ax, ay := a.ScatterLabels(i, k)
		bx, by := b.ScatterLabels(i, k)
		if ax != 1.05 || ax != bx || ay != by {
			t.Fatalf("label %d: offsets %v,%v and %v,%v differ", i, ax, ay, bx, by)
		}
		if ay < 0.975 || ay > 1.025 {
			t.Errorf("label %d: y factor %v out of range", i, ay)
		}
	}
}

func TestOutputs(t *testing.T) {
	c := SweepConfig("runs/B", "window", 1)
	c.OutDir = "out"
	c.Format = "png"
	got := make([]string, 3)
	got[0], got[1], got[2] = c.Outputs()
	want := []string{
		filepath.Join("out", "runs/B.png"),
		filepath.Join("out", "runs/B-score.png"),
		filepath.Join("out", "runs/B-score-log.png"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Outputs mismatch (-want +got):\n%s", diff)
	}
	if got := c.Score.Title; got != "Score vs window plot" {
		t.Errorf("score title = %q", got)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
