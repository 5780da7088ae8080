// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Package diff describes the differences between tool outputs in
// tests.
package diff

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a human-readable description of the differences
// between want and got, or "" if they are equal. If the "diff"
// command is available, it returns a unified diff labeled "want" and
// "got"; otherwise it quotes both inputs.
func Diff(want, got []byte) string {
	if bytes.Equal(want, got) {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}

	dir, err := os.MkdirTemp("", "queuediff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)
	for name, data := range map[string][]byte{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0666); err != nil {
			return err.Error()
		}
	}

	cmd := exec.Command("diff", "-Nu", "want", "got")
	cmd.Dir = dir
	data, err := cmd.CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files
		// differ. Ignore that as long as there is output.
		return string(data)
	}
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("want:\n%sgot:\n%s", want, got)
}
