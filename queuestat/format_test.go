// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"strings"
	"testing"
)

const reportInput = scalabilityInput + `Queue: 0.000000100 sec/round-trip
Queue: 0.000000200 sec/round-trip
Queue: 0.000000300 sec/round-trip
`

func reportCollection(t *testing.T) *Collection {
	t.Helper()
	c := new(Collection)
	c.AddAll(readAll(t, reportInput))
	return c
}

func TestFormatText(t *testing.T) {
	var buf strings.Builder
	if err := FormatText(&buf, reportCollection(t)); err != nil {
		t.Fatal(err)
	}
	want := `msg/sec            best       min       max      mean    median   stdev n
AtomicQueue,1 1,200,000 1,000,000 1,200,000 1,100,000 1,100,000 141,421 2
AtomicQueue,2 2,500,000 2,500,000 2,500,000 2,500,000 2,500,000       0 1

sec/round-trip        best         min         max        mean      median       stdev n
Queue          0.000000100 0.000000100 0.000000300 0.000000200 0.000000200 0.000000100 3
`
	if buf.String() != want {
		t.Errorf("want:\n%sgot:\n%s", want, buf.String())
	}

	buf.Reset()
	if err := FormatText(&buf, new(Collection)); err != nil || buf.Len() != 0 {
		t.Errorf("empty collection: want no output, got %q, %v", buf.String(), err)
	}
}

func TestFormatCSV(t *testing.T) {
	var buf strings.Builder
	if err := FormatCSV(&buf, reportCollection(t)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 5 || lines[4] != "" {
		t.Fatalf("want header, 3 rows and a final newline, got %q", buf.String())
	}
	if lines[0] != "name\tmin\tmax\tmean\tstdev" {
		t.Errorf("header: got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "AtomicQueue,1\t1000000\t1200000\t1100000\t141421.356") {
		t.Errorf("row 1: got %q", lines[1])
	}
	if lines[2] != "AtomicQueue,2\t2500000\t2500000\t2500000\t0" {
		t.Errorf("row 2: got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "Queue\t0.0000001\t0.0000003\t") {
		t.Errorf("row 3: got %q", lines[3])
	}

	buf.Reset()
	if err := FormatCSV(&buf, new(Collection)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "name\tmin\tmax\tmean\tstdev\n" {
		t.Errorf("empty collection: got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	check := func(name string, v any, want string) {
		t.Helper()
		var buf strings.Builder
		if err := WriteJSON(&buf, v); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != want+"\n" {
			t.Errorf("%s:\nwant %s\ngot  %s", name, want, got)
		}
	}

	st, err := Scalability(readAll(t, scalabilityInput))
	if err != nil {
		t.Fatal(err)
	}
	check("scalability summary", ScalabilitySummaryJSON(st),
		`{"AtomicQueue":[[1,1000000,1200000,1100000,141421],[2,2500000,2500000,2500000,0]]}`)
	check("scalability", ScalabilityJSON(st.Best()),
		`{"AtomicQueue":{"1":1200000,"2":2500000}}`)

	c := reportCollection(t)
	check("latency summary", LatencySummaryJSON(c), `{"Queue":[100,300,200,100]}`)
	check("latency", LatencyJSON(c), `{"Queue":1e-7}`)

	// Members keep insertion order rather than sorting.
	var c2 Collection
	c2.AddAll(readAll(t, "zeta: 0.000000002 sec/round-trip\nalpha: 0.000000001 sec/round-trip\n"))
	check("latency order", LatencySummaryJSON(&c2), `{"zeta":[2,2,2,0],"alpha":[1,1,1,0]}`)

	check("no data", LatencyJSON(new(Collection)), `{}`)
}

func TestFormatHTML(t *testing.T) {
	var buf strings.Builder
	if err := FormatHTML(&buf, "Queue <benchmarks>", reportCollection(t)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"<title>Queue &lt;benchmarks&gt;</title>",
		"<tr><th>msg/sec<th>best",
		"<tr><td>AtomicQueue,1<td>1,200,000<td>1,000,000",
		"<tr><td>Queue<td>0.000000100",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}

	buf.Reset()
	if err := FormatHTML(&buf, "empty", new(Collection)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<p>no data</p>") {
		t.Errorf("empty collection: got\n%s", buf.String())
	}
}
