// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"io"
	"strconv"

	"github.com/google/safehtml/template"

	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

var htmlTemplate = template.Must(template.New("").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.queuestat { border-collapse: collapse; }
.queuestat th:nth-child(1) { text-align: left; }
.queuestat td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.queuestat th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
{{- range .Tables}}
<table class="queuestat">
<tr><th>{{.Unit}}<th>best<th>min<th>max<th>mean<th>median<th>stdev<th>n
{{- range .Rows}}
<tr><td>{{.Series}}{{range .Cells}}<td>{{.}}{{end}}
{{- end}}
</table>
{{- else}}
<p>no data</p>
{{- end}}
</body>
</html>
`))

type htmlPage struct {
	Title  string
	Tables []htmlTable
}

type htmlTable struct {
	Unit string
	Rows []htmlRow
}

type htmlRow struct {
	Series string
	Cells  []string
}

// FormatHTML appends a standalone HTML page to w with one table per
// unit, laid out like FormatText.
func FormatHTML(w io.Writer, title string, c *Collection) error {
	page := htmlPage{Title: title}
	for _, unit := range c.ReportUnits() {
		ms := c.SortedSummaries(unit)
		if len(ms) == 0 {
			continue
		}
		t := htmlTable{Unit: unit}
		for _, m := range ms {
			s := m.Summary
			row := htmlRow{Series: m.Series}
			for _, v := range []float64{m.Best(), s.Min, s.Max, s.Mean, s.Median, s.StdDev} {
				row.Cells = append(row.Cells, queueunit.Format(v, unit))
			}
			row.Cells = append(row.Cells, strconv.Itoa(s.N))
			t.Rows = append(t.Rows, row)
		}
		page.Tables = append(page.Tables, t)
	}
	return htmlTemplate.Execute(w, page)
}
