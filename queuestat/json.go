// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// An Object is a JSON object that keeps its members in insertion
// order.
type Object []Member

// A Member is one name/value pair of an Object.
type Member struct {
	Name  string
	Value any
}

// Set appends the member name: value to o.
func (o *Object) Set(name string, value any) {
	*o = append(*o, Member{name, value})
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(m.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// LatencyJSON returns the best (minimum) round-trip time of every
// round-trip series in c, in seconds:
//
//	{"AtomicQueue":1.46e-7, ...}
func LatencyJSON(c *Collection) Object {
	obj := Object{}
	for _, m := range c.Summaries(queueunit.RoundTrip) {
		obj.Set(m.Series, m.Summary.Min)
	}
	return obj
}

// LatencySummaryJSON returns the round-trip statistics of every
// series in c as whole nanoseconds:
//
//	{"AtomicQueue":[min,max,mean,stdev], ...}
func LatencySummaryJSON(c *Collection) Object {
	obj := Object{}
	for _, m := range c.Summaries(queueunit.RoundTrip) {
		s := m.Summary
		obj.Set(m.Series, []int64{
			queueunit.Nanoseconds(s.Min),
			queueunit.Nanoseconds(s.Max),
			queueunit.Nanoseconds(s.Mean),
			queueunit.Nanoseconds(s.StdDev),
		})
	}
	return obj
}

// ScalabilityJSON returns the best-of-N throughput of every queue
// keyed by thread count. Thread counts a queue was not measured at
// are omitted.
//
//	{"AtomicQueue":{"1":27473115,"2":13780199}, ...}
func ScalabilityJSON(bt *BestTable) Object {
	obj := Object{}
	for _, q := range bt.Queues {
		series := Object{}
		for _, p := range bt.Series(q) {
			series.Set(strconv.Itoa(p.Threads), round(p.Value))
		}
		obj.Set(q, series)
	}
	return obj
}

// ScalabilitySummaryJSON returns the throughput statistics of every
// queue, one row per thread count, rounded to integers:
//
//	{"AtomicQueue":[[threads,min,max,mean,stdev], ...], ...}
func ScalabilitySummaryJSON(st *ScalabilityTable) Object {
	obj := Object{}
	for _, q := range st.Queues {
		rows := [][]int64{}
		for _, c := range st.QueueCells(q) {
			s := c.Summary
			rows = append(rows, []int64{int64(c.Threads), round(s.Min), round(s.Max), round(s.Mean), round(s.StdDev)})
		}
		obj.Set(q, rows)
	}
	return obj
}

func round(x float64) int64 {
	return int64(math.Round(x))
}

// WriteJSON writes v to w as a single line of JSON.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
