// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports differences between expected and actual
// command output for golden-file tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Diff returns a unified diff from want to got, or "" if they are
// equal. If the diff command is unavailable or fails, it returns both
// texts in full so the caller still has something to report.
func Diff(want, got []byte) string {
	if string(want) == string(got) {
		return ""
	}
	dump := func(reason string) string {
		return fmt.Sprintf("%s\nwant:\n%sgot:\n%s", reason, want, got)
	}
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return dump("diff command unavailable")
	}

	d, err := os.MkdirTemp("", "grumpstat-diff")
	if err != nil {
		return dump(err.Error())
	}
	defer os.RemoveAll(d)
	for name, data := range map[string][]byte{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(d, name), data, 0666); err != nil {
			return dump(err.Error())
		}
	}

	c := exec.Command(cmd, "-Nu", "want", "got")
	c.Dir = d
	data, err := c.CombinedOutput()
	if len(data) == 0 {
		// diff exits non-zero when the files differ, so only a
		// silent failure is an error.
		reason := "diff printed nothing"
		if err != nil {
			reason = err.Error()
		}
		return dump(reason)
	}
	return string(data)
}
