// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"io"
	"strconv"

	"github.com/max0x7ba/atomic-queue/perf/internal/texttab"
	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// FormatText appends a fixed-width text formatting of c to w. There
// is one table per unit, throughput first, with series sorted by name.
// Units without measurements are omitted.
func FormatText(w io.Writer, c *Collection) error {
	first := true
	for _, unit := range c.ReportUnits() {
		ms := c.SortedSummaries(unit)
		if len(ms) == 0 {
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false

		var tab texttab.Table
		tab.Row().Cell(unit)
		for _, h := range []string{"best", "min", "max", "mean", "median", "stdev", "n"} {
			tab.Cell(h, texttab.Right)
		}
		for _, m := range ms {
			s := m.Summary
			tab.Row().Cell(m.Series)
			for _, v := range []float64{m.Best(), s.Min, s.Max, s.Mean, s.Median, s.StdDev} {
				tab.Cell(queueunit.Format(v, unit), texttab.Right)
			}
			tab.Cell(strconv.Itoa(s.N), texttab.Right)
		}
		if err := tab.Format(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatBestText appends the best-of-N pivot bt to w: one row per
// thread count and one column per queue. Queues not measured at a
// thread count have an empty cell.
func FormatBestText(w io.Writer, bt *BestTable) error {
	if len(bt.Queues) == 0 {
		return nil
	}
	var tab texttab.Table
	tab.Row().Cell("threads")
	for _, q := range bt.Queues {
		tab.Cell(q, texttab.Right)
	}
	for _, threads := range bt.Threads {
		tab.Row().Cell(strconv.Itoa(threads), texttab.Right)
		for _, q := range bt.Queues {
			s := ""
			if v, ok := bt.Get(q, threads); ok {
				s = queueunit.Commas(v)
			}
			tab.Cell(s, texttab.Right)
		}
	}
	return tab.Format(w)
}
