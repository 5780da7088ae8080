// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"github.com/aclements/go-moremath/stats"
)

// A Summary holds the descriptive statistics of one group of
// measurements.
type Summary struct {
	N        int
	Min, Max float64
	Mean     float64
	Median   float64

	// StdDev is the sample standard deviation, dividing by N-1.
	// It is 0 for a group of one value.
	StdDev float64
}

// Summarize computes the statistics of values, which must not be
// empty. values is not modified.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		panic("queuestat: Summarize of empty sample")
	}
	s := stats.Sample{Xs: values}
	var sum Summary
	sum.N = len(values)
	sum.Min, sum.Max = s.Bounds()
	sum.Mean = s.Mean()
	sum.Median = s.Quantile(0.5)
	sum.StdDev = s.StdDev()
	return sum
}
