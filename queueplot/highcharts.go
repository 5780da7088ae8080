// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queueplot

import (
	"math"

	"github.com/max0x7ba/atomic-queue/perf/queuestat"
	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// A HighchartsSeries is one entry of a Highcharts "series" array.
// Each queue has a "column" series with its best value followed by an
// "errorbar" series with its [min, max] range linked to the column.
type HighchartsSeries struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Color    string `json:"color,omitempty"`
	Index    *int   `json:"index,omitempty"`
	LinkedTo string `json:"linkedTo,omitempty"`
	Data     any    `json:"data"`
}

// A HighchartsPoint is a point with an explicit category position.
type HighchartsPoint struct {
	X int   `json:"x"`
	Y int64 `json:"y"`
}

func newSeries(name, typ string, style Style, data any) HighchartsSeries {
	s := HighchartsSeries{Name: name, Type: typ, Color: style.Hex(), Data: data}
	if style.Index >= 0 {
		index := style.Index
		s.Index = &index
	}
	if typ == "errorbar" {
		s.LinkedTo = ":previous"
	}
	return s
}

// ScalabilityHighcharts returns column and errorbar series of the
// throughput in st: the best (maximum) value and the [min, max] range
// of each thread count, in msg/sec.
func ScalabilityHighcharts(st *queuestat.ScalabilityTable) []HighchartsSeries {
	out := []HighchartsSeries{}
	for i, q := range st.Queues {
		style := StyleOf(q, i)
		best, ranges := [][]int64{}, [][]int64{}
		for _, c := range st.QueueCells(q) {
			s := c.Summary
			threads := int64(c.Threads)
			best = append(best, []int64{threads, round(s.Max)})
			ranges = append(ranges, []int64{threads, round(s.Min), round(s.Max)})
		}
		out = append(out, newSeries(q, "column", style, best), newSeries(q, "errorbar", style, ranges))
	}
	return out
}

// LatencyHighcharts returns column and errorbar series of the
// round-trip times in c, in nanoseconds. Queues with a fixed Index are
// placed at that category; others follow in input order.
func LatencyHighcharts(c *queuestat.Collection) []HighchartsSeries {
	out := []HighchartsSeries{}
	next := len(Styles)
	for i, m := range c.Summaries(queueunit.RoundTrip) {
		style := StyleOf(m.Series, i)
		x := style.Index
		if x < 0 {
			x = next
			next++
		}
		s := m.Summary
		best := []HighchartsPoint{{X: x, Y: queueunit.Nanoseconds(s.Min)}}
		ranges := [][]int64{{int64(x), queueunit.Nanoseconds(s.Min), queueunit.Nanoseconds(s.Max)}}
		out = append(out, newSeries(m.Series, "column", style, best), newSeries(m.Series, "errorbar", style, ranges))
	}
	return out
}

func round(x float64) int64 {
	return int64(math.Round(x))
}
