// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.lpad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, "abc")
	check("abc", alignCenter, 10, "   abc")
	check("abc", alignRight, 10, "       abc")
	check("µs", alignRight, 4, "  µs")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		tab = Table{}
	}

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a b c\nd e f\n")

	// Padding, without trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a    b c\nlong e long\n")

	// Cell alignment.
	tab.Row().Cell("a", Left).Cell("b", Center).Cell("c", Right)
	tab.Row().Cell("xxx").Cell("xxx").Cell("xxx")
	check("a    b    c\nxxx xxx xxx\n")

	// Right-aligned numbers.
	tab.Row().Cell("name").Cell("max", Right)
	tab.Row().Cell("AtomicQueue").Cell("27,473,115", Right)
	tab.Row().Cell("Q").Cell("9", Right)
	check("name               max\nAtomicQueue 27,473,115\nQ                    9\n")

	// Margins.
	tab.Row().Cell("a").Cell("b", LeftMargin("  "))
	tab.Row().Cell("c").Cell("d")
	tab.Row().Cell("e").Cell("f", LeftMargin("|"))
	check("a  b\nc  d\ne |f\n")

	// Empty cells in the middle and missing cells at the end.
	tab.Row().Cell("a").Cell("").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	tab.Row().Cell("g")
	check("a   c\nd e f\ng\n")

	// Blank rows.
	tab.Row().Cell("a")
	tab.Row()
	tab.Row().Cell("b")
	check("a\n\nb\n")

	// Empty table.
	check("")
}
