// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queueunit

import (
	"strings"
	"sync"
)

type tidyEntry struct {
	tidied string
	factor float64
}

var tidyCache sync.Map // unit string -> *tidyEntry

// Tidy normalizes a value with a pre-scaled time unit into seconds.
// For example, 146 "ns/round-trip" becomes 1.46e-7 "sec/round-trip".
// Units already in base form are returned unchanged.
func Tidy(value float64, unit string) (tidiedValue float64, tidiedUnit string) {
	newUnit, factor := tidyUnit(unit)
	return value * factor, newUnit
}

func tidyUnit(unit string) (tidied string, factor float64) {
	// Fast path for what the benchmarks print.
	switch unit {
	case Throughput, RoundTrip:
		return unit, 1
	}
	if !(strings.Contains(unit, "s") || strings.Contains(unit, "µ")) {
		return unit, 1
	}

	if te, ok := tidyCache.Load(unit); ok {
		te := te.(*tidyEntry)
		return te.tidied, te.factor
	}
	tidied, factor = tidyUnitUncached(unit)
	tidyCache.Store(unit, &tidyEntry{tidied, factor})
	return
}

var timePrefixes = map[string]float64{
	"ns": 1e-9,
	"us": 1e-6,
	"µs": 1e-6,
	"ms": 1e-3,
}

func tidyUnitUncached(unit string) (tidied string, factor float64) {
	type edit struct {
		pos, len int
	}

	factor = 1
	p := newParser(unit)
	var edits []edit
	for p.next() {
		if p.denom {
			// "msg/ms" is a rate; leave it alone.
			continue
		}
		if f, ok := timePrefixes[p.tok]; ok {
			edits = append(edits, edit{p.pos, len(p.tok)})
			factor *= f
		}
	}
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		unit = unit[:e.pos] + "sec" + unit[e.pos+e.len:]
	}
	return unit, factor
}
