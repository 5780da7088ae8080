// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FormatCSV appends a tab-separated CSV formatting of c to w: a header
// row followed by one row per group in the order the groups were first
// read. A collection without measurements produces only the header.
func FormatCSV(w io.Writer, c *Collection) error {
	csvw := csv.NewWriter(w)
	csvw.Comma = '\t'
	csvw.Write([]string{"name", "min", "max", "mean", "stdev"})
	for _, m := range c.All() {
		s := m.Summary
		csvw.Write([]string{m.Series, strof(s.Min), strof(s.Max), strof(s.Mean), strof(s.StdDev)})
	}
	csvw.Flush()
	return csvw.Error()
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
