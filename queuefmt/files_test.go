// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuefmt

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A,1: 10 msg/sec\nnoise\nA,2: 20 msg/sec\n")
	b := writeFile(t, dir, "b.txt", "B: 0.000000100 sec/round-trip\n")
	empty := writeFile(t, dir, "empty.txt", "")

	files := Files{Paths: []string{a, empty, b}, AllowStdin: true}
	got, err := files.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if i < 2 {
			if file, _ := got[i].Pos(); file != a {
				t.Errorf("[%d] from %s, want %s", i, file, a)
			}
		} else if file, _ := got[i].Pos(); file != b {
			t.Errorf("[%d] from %s, want %s", i, file, b)
		}
		got[i].fileName, got[i].line = "", 0
	}
	compareMeasurements(t, got, []Measurement{
		m("A,1", 10, "msg/sec"),
		m("A,2", 20, "msg/sec"),
		m("B", 0.0000001, "sec/round-trip"),
	})
}

func TestFilesMissing(t *testing.T) {
	files := Files{Paths: []string{filepath.Join(t.TempDir(), "missing.txt")}}
	if files.Scan() {
		t.Fatal("Scan succeeded on a missing file")
	}
	if !os.IsNotExist(files.Err()) {
		t.Errorf("got error %v, want not-exist error", files.Err())
	}
}
