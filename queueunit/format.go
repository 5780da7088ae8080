// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queueunit

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Commas rounds v to the nearest integer and formats it with ","
// separating groups of thousands, e.g. 12345678.4 => "12,345,678".
func Commas(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Format formats a value measured in unit the way the benchmarks
// print it: throughput as a comma-separated integer, round-trip times
// in seconds with nine decimal places. Values in other units use the
// shortest representation that reads back exactly.
func Format(v float64, unit string) string {
	switch unit {
	case Throughput:
		return Commas(v)
	case RoundTrip:
		return strconv.FormatFloat(v, 'f', 9, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatExact is like Format, but the result always parses back to
// exactly v. Values that Format would round keep every decimal place
// they need, still with thousands separators for throughput.
func FormatExact(v float64, unit string) string {
	if s := Format(v, unit); parsesTo(s, v) {
		return s
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unit != Throughput {
		return s
	}
	return groupThousands(s)
}

func parsesTo(s string, v float64) bool {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return err == nil && f == v
}

// groupThousands inserts "," between groups of three digits in the
// integer part of the decimal number s.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(frac)
	return b.String()
}

// Nanoseconds converts seconds to whole nanoseconds, rounding to the
// nearest integer so that 3e-7 becomes 300 rather than 299.
func Nanoseconds(sec float64) int64 {
	return int64(math.Round(sec * 1e9))
}
