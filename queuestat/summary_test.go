// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"math"
	"strings"
	"testing"

	"github.com/max0x7ba/atomic-queue/perf/queuefmt"
)

func aeq(x, y float64) bool {
	return math.Abs(x-y) <= 1e-9*math.Max(1, math.Abs(x))
}

func TestSummarize(t *testing.T) {
	check := func(name string, got, want float64) {
		t.Helper()
		if !aeq(got, want) {
			t.Errorf("%s: want %v, got %v", name, want, got)
		}
	}

	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := Summarize(values)
	if s.N != 8 {
		t.Errorf("N: want 8, got %d", s.N)
	}
	check("Min", s.Min, 2)
	check("Max", s.Max, 9)
	check("Mean", s.Mean, 5)
	check("Median", s.Median, 4.5)
	// Sample standard deviation, sqrt(32/7).
	check("StdDev", s.StdDev, 2.138089935299395)
	if math.Abs(s.StdDev-2.138) > 0.0005 {
		t.Errorf("StdDev: want ~2.138, got %v", s.StdDev)
	}

	// Summarize must not reorder its input.
	if values[0] != 2 || values[7] != 9 || values[4] != 5 {
		t.Errorf("Summarize modified its input: %v", values)
	}

	one := Summarize([]float64{42})
	check("single Min", one.Min, 42)
	check("single Max", one.Max, 42)
	check("single Median", one.Median, 42)
	if one.StdDev != 0 {
		t.Errorf("single StdDev: want 0, got %v", one.StdDev)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	if a, b := Summarize(values), Summarize(values); a != b {
		t.Errorf("summaries differ:\n%+v\n%+v", a, b)
	}

	var c Collection
	c.AddAll(readAll(t, "A: 1 msg/sec\nA: 3 msg/sec\nB: 2 msg/sec\n"))
	first := make([]Summary, 0)
	for _, m := range c.All() {
		first = append(first, m.Summary)
	}
	for i, m := range c.All() {
		if m.Summary != first[i] {
			t.Errorf("%s: second pass gave %+v, first %+v", m.Series, m.Summary, first[i])
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Summarize of no values did not panic")
		}
	}()
	Summarize(nil)
}

// readAll parses benchmark output with the permissive syntax.
func readAll(t *testing.T, data string) []queuefmt.Measurement {
	t.Helper()
	r := queuefmt.NewReader(strings.NewReader(data), "test", queuefmt.Permissive)
	var ms []queuefmt.Measurement
	for r.Scan() {
		ms = append(ms, r.Measurement())
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	return ms
}
