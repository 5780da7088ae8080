// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Package texttab lays out console tables with aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Its methods return the Table so callers can chain them to build up
// a row at once:
//
//	tab.Row().Cell("name").Cell("min", Right)
type Table struct {
	rows [][]cell
	cols int
}

type cell struct {
	value      string
	leftMargin string
	alignment  align
}

// A CellOption modifies a cell as it is added.
type CellOption func(c *cell)

// LeftMargin sets the text printed between a cell and the column to
// its left. The default is a single space, or nothing in the first
// column.
func LeftMargin(x string) CellOption {
	return func(c *cell) {
		c.leftMargin = x
	}
}

var (
	Left   CellOption = func(c *cell) { c.alignment = alignLeft }
	Center CellOption = func(c *cell) { c.alignment = alignCenter }
	Right  CellOption = func(c *cell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) lpad(s string, w int) string {
	switch a {
	default:
		return s
	case alignCenter:
		l := (w - utf8.RuneCountInString(s)) / 2
		return fmt.Sprintf("%*s%s", l, "", s)
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	row := &t.rows[len(t.rows)-1]
	c := cell{value: value, leftMargin: " "}
	if len(*row) == 0 || value == "" {
		c.leftMargin = ""
	}
	for _, o := range opts {
		o(&c)
	}
	*row = append(*row, c)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	// Collect the widest margin and value of each column.
	lmargin := make([]int, t.cols)
	width := make([]int, t.cols)
	for _, row := range t.rows {
		for col, c := range row {
			lmargin[col] = max(lmargin[col], utf8.RuneCountInString(c.leftMargin))
		}
	}
	for _, row := range t.rows {
		for col, c := range row {
			width[col] = max(width[col], utf8.RuneCountInString(c.value))
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		// pending is the padding owed before the next
		// printed cell. It is dropped at the end of the
		// row so lines carry no trailing spaces.
		pending := 0
		for col, c := range row {
			if strings.TrimSpace(c.value) == "" && strings.TrimSpace(c.leftMargin) == "" {
				pending += lmargin[col] + width[col]
				continue
			}
			fmt.Fprintf(&line, "%*s%*s", pending, "", lmargin[col], c.leftMargin)
			s := c.alignment.lpad(c.value, width[col])
			line.WriteString(s)
			pending = width[col] - utf8.RuneCountInString(s)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
