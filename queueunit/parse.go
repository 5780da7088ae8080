// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Package queueunit names the units printed by the queue benchmarks
// and formats values in those units.
package queueunit

import (
	"fmt"
	"unicode"
)

// Units printed by the throughput and ping-pong benchmarks.
const (
	Throughput = "msg/sec"
	RoundTrip  = "sec/round-trip"
)

// A Direction says which end of a unit's range is the better result.
type Direction int

const (
	// HigherIsBetter is the direction of rates such as "msg/sec".
	HigherIsBetter Direction = iota
	// LowerIsBetter is the direction of durations such as
	// "sec/round-trip".
	LowerIsBetter
)

func (d Direction) String() string {
	switch d {
	case HigherIsBetter:
		return "HigherIsBetter"
	case LowerIsBetter:
		return "LowerIsBetter"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionOf returns the Direction of unit. A unit that measures time
// in its numerator is LowerIsBetter; anything else is a rate or a
// count and is HigherIsBetter.
func DirectionOf(unit string) Direction {
	p := newParser(unit)
	for p.next() {
		if p.denom {
			continue
		}
		switch p.tok {
		case "sec", "s", "ns", "us", "µs", "ms":
			return LowerIsBetter
		}
	}
	return HigherIsBetter
}

// Best returns the better of the bounds lo and hi of a sample measured
// in unit: hi for HigherIsBetter units and lo otherwise.
func Best(unit string, lo, hi float64) float64 {
	if DirectionOf(unit) == LowerIsBetter {
		return lo
	}
	return hi
}

type parser struct {
	rest string // unparsed unit
	rpos int    // bytes consumed from original unit

	// Current token
	tok   string
	pos   int  // byte offset of tok in original unit
	denom bool // current token is in denominator
}

func newParser(unit string) *parser {
	return &parser{rest: unit}
}

func (p *parser) next() bool {
	// Consume separators.
	for i, r := range p.rest {
		if r == '*' {
			p.denom = false
		} else if r == '/' {
			p.denom = true
		} else if !(r == '-' || unicode.IsSpace(r)) {
			p.rpos += i
			p.rest = p.rest[i:]
			goto tok
		}
	}
	p.rest = ""
	return false

tok:
	end := len(p.rest)
	for i, r := range p.rest {
		if r == '*' || r == '/' || r == '-' || unicode.IsSpace(r) {
			end = i
			break
		}
	}
	p.tok = p.rest[:end]
	p.pos = p.rpos
	p.rpos += end
	p.rest = p.rest[end:]
	return true
}
