// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Package copyright checks that Go source files carry the project
// license header.
package copyright

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Header is the first line of every Go source file.
const Header = "// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE."

// Missing returns the Go files under root whose first line is not
// Header. Directories starting with "_" or "." and testdata are
// skipped, as the go command skips them.
func Missing(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		ok, err := hasHeader(path)
		if err != nil {
			return err
		}
		if !ok {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func hasHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	if !s.Scan() {
		return false, s.Err()
	}
	return s.Text() == Header, nil
}
