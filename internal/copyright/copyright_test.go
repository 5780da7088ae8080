// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package copyright

import (
	"os"
	"path/filepath"
	"testing"
)

func TestModuleHeaders(t *testing.T) {
	missing, err := Missing(filepath.Join("..", ".."))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range missing {
		t.Errorf("%s: missing license header", path)
	}
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"good.go":          Header + "\n\npackage p\n",
		"bad.go":           "// Copyright 2009 Someone Else.\n\npackage p\n",
		"notes.txt":        "not Go",
		"_skip/bad.go":     "package p\n",
		"testdata/data.go": "package p\n",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
	}
	missing, err := Missing(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(missing) != 1 || filepath.Base(missing[0]) != "bad.go" || filepath.Base(filepath.Dir(missing[0])) == "_skip" {
		t.Errorf("got %v, want only bad.go", missing)
	}
}
