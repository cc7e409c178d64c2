// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultSuffix is the file name suffix of experiment result files.
const DefaultSuffix = ".txt"

// A File is an experiment result file found by Scan.
type File struct {
	// Name is the base name of the file, such as "100.txt".
	Name string

	// Path is the path used to open the file.
	Path string

	// Suffix is the suffix Scan matched against Name.
	Suffix string
}

// Stem returns f's name without its suffix. For "50_2_1_30.txt" this
// is "50_2_1_30".
func (f File) Stem() string {
	return strings.TrimSuffix(f.Name, f.Suffix)
}

// Scan lists the regular files directly inside dir whose names end in
// suffix, sorted by name. Directories, symlinks, and other non-regular
// entries are skipped, as are files that don't match suffix. Symlinks
// are not followed, even to regular files. Scan does not recurse.
func Scan(dir, suffix string) ([]File, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []File
	for _, ent := range ents {
		if !ent.Type().IsRegular() {
			continue
		}
		name := ent.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		files = append(files, File{
			Name:   name,
			Path:   filepath.Join(dir, name),
			Suffix: suffix,
		})
	}
	// ReadDir already sorts by name, but don't depend on it.
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// ReadFile reads and parses the result file f. The file is closed
// before ReadFile returns, whether or not parsing succeeded.
func ReadFile(f File) (*Record, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file, f.Path)
}
