// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/max0x7ba/atomic-queue/perf/internal/diff"
)

func TestFormats(t *testing.T) {
	golden(t, "best", "throughput.txt")
	golden(t, "summary", "-summary", "throughput.txt")
	golden(t, "highcharts", "-highcharts", "throughput.txt")
	golden(t, "empty", "empty.txt")
}

func TestErrors(t *testing.T) {
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	for _, test := range []struct {
		args []string
		want string
	}{
		// A malformed name aborts the run with no output.
		{[]string{"bad.txt"}, `bad.txt:2: series "AtomicQueue": want queue,threads[,topology]`},
		{[]string{"-summary", "-highcharts", "throughput.txt"}, "mutually exclusive"},
		{[]string{"missing.txt"}, "missing.txt"},
	} {
		var stdout, stderr bytes.Buffer
		err := run(&stdout, &stderr, test.args)
		if err == nil {
			t.Errorf("%v: want error, got none", test.args)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%v: want error containing %q, got %q", test.args, test.want, err)
		}
		if stdout.Len() != 0 {
			t.Errorf("%v: unexpected output on error:\n%s", test.args, stdout.Bytes())
		}
	}
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	var got, gotErr bytes.Buffer
	t.Logf("scalability2json %s", strings.Join(args, " "))
	if err := run(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
}

// compare runs in testdata.
func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()
	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	if d := diff.Diff(want, got); d != "" {
		t.Errorf("%s differs:\n%s", filepath.Join("testdata", wantPath), d)
		gotPath := name + ".got-" + sub
		if err := os.WriteFile(gotPath, got, 0666); err != nil {
			t.Fatalf("error writing %s: %s", gotPath, err)
		}
	}
}
