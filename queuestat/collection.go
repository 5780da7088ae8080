// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Package queuestat computes and formats statistics about queue
// benchmark results.
//
// A Collection groups measurements by series name and unit. Each group
// reduces to a Summary, which the Format functions render as a console
// table, a tab-separated CSV file, JSON or an HTML page. Scalability
// builds the (queue, threads) view of throughput results used for
// charts.
package queuestat

import (
	"sort"

	"github.com/max0x7ba/atomic-queue/perf/queuefmt"
	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// A Collection is a collection of benchmark measurements.
type Collection struct {
	// Series and Units give the set of series names and units
	// from the keys in Metrics in the order they were first read.
	Series, Units []string

	// Metrics holds the accumulated measurements for each key.
	Metrics map[Key]*Metrics

	// keys lists the keys of Metrics in the order they were
	// created.
	keys []Key
}

// A Key identifies one group of measurements: one unit (such as
// "msg/sec") of one series (such as "AtomicQueue, 1,s").
type Key struct {
	Series, Unit string
}

// A Metrics holds the measurements of a single unit for all runs of a
// particular series.
type Metrics struct {
	Key
	Values []float64 // measured values, in input order

	// Summary holds the statistics of Values. It is computed by
	// Collection.Summaries and is zero before that.
	Summary Summary

	stale bool // Summary does not reflect Values
}

// Best returns the better of m's bounds for its unit: the maximum
// throughput or the minimum round-trip time.
func (m *Metrics) Best() float64 {
	return queueunit.Best(m.Unit, m.Summary.Min, m.Summary.Max)
}

// addMetrics returns the metrics with the given key from c,
// creating a new one if needed.
func (c *Collection) addMetrics(key Key) *Metrics {
	if c.Metrics == nil {
		c.Metrics = make(map[Key]*Metrics)
	}
	if m, ok := c.Metrics[key]; ok {
		return m
	}

	addString := func(strings *[]string, add string) {
		for _, s := range *strings {
			if s == add {
				return
			}
		}
		*strings = append(*strings, add)
	}
	addString(&c.Series, key.Series)
	addString(&c.Units, key.Unit)
	m := &Metrics{Key: key}
	c.Metrics[key] = m
	c.keys = append(c.keys, key)
	return m
}

// Add adds a single measurement to c.
func (c *Collection) Add(m queuefmt.Measurement) {
	metrics := c.addMetrics(Key{Series: m.Name, Unit: m.Unit})
	metrics.Values = append(metrics.Values, m.Value)
	metrics.stale = true
}

// AddAll adds measurements to c in order.
func (c *Collection) AddAll(ms []queuefmt.Measurement) {
	for _, m := range ms {
		c.Add(m)
	}
}

// Summaries returns the groups measured in unit in the order their
// series were first read, with Summary filled in. If there are no
// measurements in unit, it returns an empty slice.
func (c *Collection) Summaries(unit string) []*Metrics {
	out := []*Metrics{}
	for _, m := range c.All() {
		if m.Unit == unit {
			out = append(out, m)
		}
	}
	return out
}

// SortedSummaries is like Summaries, but orders the groups by series
// name.
func (c *Collection) SortedSummaries(unit string) []*Metrics {
	out := c.Summaries(unit)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Series < out[j].Series
	})
	return out
}

// All returns every group in the order it was first read, with
// Summary filled in.
func (c *Collection) All() []*Metrics {
	out := make([]*Metrics, 0, len(c.keys))
	for _, key := range c.keys {
		m := c.Metrics[key]
		if len(m.Values) == 0 {
			// Guard Summarize; Add never creates such a group.
			continue
		}
		if m.stale {
			m.Summary = Summarize(m.Values)
			m.stale = false
		}
		out = append(out, m)
	}
	return out
}

// ReportUnits returns the units of c in report order: throughput,
// then round-trip time, then any other units in the order they were
// first read.
func (c *Collection) ReportUnits() []string {
	var out []string
	has := func(unit string) bool {
		for _, u := range c.Units {
			if u == unit {
				return true
			}
		}
		return false
	}
	for _, unit := range []string{queueunit.Throughput, queueunit.RoundTrip} {
		if has(unit) {
			out = append(out, unit)
		}
	}
	for _, unit := range c.Units {
		if unit != queueunit.Throughput && unit != queueunit.RoundTrip {
			out = append(out, unit)
		}
	}
	return out
}
