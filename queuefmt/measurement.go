// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Package queuefmt reads and writes the text printed by the queue
// benchmarks.
//
// Each interesting line has the form
//
//	<name>: <value> <unit>
//
// where value may use "," to separate thousands. The throughput
// benchmarks encode the queue, the number of producer/consumer threads
// and the thread placement in the name:
//
//	                     AtomicQueue, 1,s:  27,473,115 msg/sec
//	                     AtomicQueue: 0.000000146 sec/round-trip
//
// Every other line (banners, warnings, blank lines) is ignored.
package queuefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// A Measurement is a single value read from a benchmark output line.
type Measurement struct {
	// Name is the series name as printed, without leading space.
	Name string

	// Unit is the (tidied) unit of Value, such as "msg/sec".
	Unit string

	Value float64

	// fileName and line record where this Measurement was read from.
	fileName string
	line     int
}

// Pos returns the file name and 1-based line number of a Measurement
// read by a Reader. For Measurements that were not read from a file,
// it returns "", 0.
func (m Measurement) Pos() (fileName string, line int) {
	return m.fileName, m.line
}

// Key parses m.Name as a scalability series key. If the name does not
// have the "queue,threads[,topology]" shape, the returned
// *FormatError carries m's position.
func (m Measurement) Key() (Key, error) {
	k, err := ParseKey(m.Name)
	if err != nil {
		ferr := err.(*FormatError)
		ferr.FileName, ferr.Line = m.fileName, m.line
		return Key{}, ferr
	}
	return k, nil
}

// A Key identifies one scalability series: a queue measured with a
// given number of producer and consumer threads.
type Key struct {
	Queue   string
	Threads int

	// Topology is the optional third name field. The benchmarks
	// print "s" or "i" for the thread placement.
	Topology string
}

func (k Key) String() string {
	s := k.Queue + "," + strconv.Itoa(k.Threads)
	if k.Topology != "" {
		s += "," + k.Topology
	}
	return s
}

// A FormatError reports a series name that lacks the
// "queue,threads[,topology]" shape where a thread count is required.
// Such input means the benchmark harness printed something
// unexpected, so callers treat it as fatal.
type FormatError struct {
	FileName string // may be ""
	Line     int    // 0 if unknown
	Name     string
	Msg      string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("series %q: %s", e.Name, e.Msg)
	if e.FileName == "" && e.Line == 0 {
		return msg
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, msg)
}

// ParseKey splits a series name of the form "queue,threads" or
// "queue,threads,topology". Spaces around fields are ignored and any
// fields after the topology are discarded.
func ParseKey(name string) (Key, error) {
	fields := strings.Split(name, ",")
	if len(fields) < 2 {
		return Key{}, &FormatError{Name: name, Msg: "want queue,threads[,topology]"}
	}
	threads, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Key{}, &FormatError{Name: name, Msg: fmt.Sprintf("thread count %q is not an integer", strings.TrimSpace(fields[1]))}
	}
	k := Key{Queue: strings.TrimSpace(fields[0]), Threads: threads}
	if len(fields) > 2 {
		k.Topology = strings.TrimSpace(fields[2])
	}
	return k, nil
}
