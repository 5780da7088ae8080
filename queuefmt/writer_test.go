// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuefmt

import (
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	const want = `AtomicQueue, 1,s: 27,473,115 msg/sec
AtomicQueue: 0.000000146 sec/round-trip
Other: 2.5 ops
`
	ms := []Measurement{
		m("AtomicQueue, 1,s", 27473115, "msg/sec"),
		m("AtomicQueue", 0.000000146, "sec/round-trip"),
		m("Other", 2.5, "ops"),
	}

	var out strings.Builder
	w := NewWriter(&out)
	for _, meas := range ms {
		if err := w.Write(meas); err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != want {
		t.Errorf("got:\n%swant:\n%s", out.String(), want)
	}

	// The output reads back to the same measurements.
	compareMeasurements(t, parseAll(t, out.String(), Permissive), ms)
}

func TestWriterExact(t *testing.T) {
	const input = `Q,1: 1,234.5 msg/sec
Q: 0.0000001234 sec/round-trip
Q,2: 98,765,432.125 msg/sec
Q: 146 ns/round-trip
`
	const want = `Q,1: 1,234.5 msg/sec
Q: 0.0000001234 sec/round-trip
Q,2: 98,765,432.125 msg/sec
Q: 0.000000146 sec/round-trip
`
	ms := parseAll(t, input, Permissive)
	var out strings.Builder
	w := NewWriter(&out)
	for _, meas := range ms {
		if err := w.Write(meas); err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != want {
		t.Errorf("got:\n%swant:\n%s", out.String(), want)
	}
	compareMeasurements(t, parseAll(t, out.String(), Permissive), ms)
}
