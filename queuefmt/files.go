// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuefmt

import (
	"io"
	"os"
)

// Files reads the measurements of several benchmark outputs in turn,
// as if they were one input.
type Files struct {
	// Paths names the inputs, in reading order.
	Paths []string

	// AllowStdin makes "-" name standard input, and an empty Paths
	// mean standard input alone. Command-line tools want this.
	AllowStdin bool

	// Syntax selects the name syntax of every input.
	Syntax Syntax

	started bool
	next    int // index into queue of the next input to open
	queue   []string

	reader Reader
	cur    io.ReadCloser // nil between inputs
	err    error
}

func (f *Files) start() {
	f.started = true
	f.queue = f.Paths
	if f.AllowStdin && len(f.Paths) == 0 {
		f.queue = []string{"-"}
	}
}

// open makes the next input current. It reports false when there are
// no inputs left or the input cannot be opened.
func (f *Files) open() bool {
	if f.next == len(f.queue) {
		return false
	}
	path := f.queue[f.next]
	f.next++
	if f.AllowStdin && path == "-" {
		f.cur = io.NopCloser(os.Stdin)
		f.reader.Reset(os.Stdin, "<stdin>", f.Syntax)
		return true
	}
	file, err := os.Open(path)
	if err != nil {
		f.err = err
		return false
	}
	f.cur = file
	f.reader.Reset(file, path, f.Syntax)
	return true
}

// Scan advances to the next measurement of the inputs and reports
// whether there is one. It returns false at the end of the last input
// and on the first error, which Err then returns.
func (f *Files) Scan() bool {
	if !f.started {
		f.start()
	}
	for f.err == nil {
		if f.cur == nil && !f.open() {
			return false
		}
		if f.reader.Scan() {
			return true
		}
		f.cur.Close()
		f.cur = nil
		f.err = f.reader.Err()
	}
	return false
}

// Measurement returns the measurement that was just read by Scan.
func (f *Files) Measurement() Measurement {
	return f.reader.Measurement()
}

// Err returns the error that stopped Scan, or nil if every input was
// read to the end.
func (f *Files) Err() error {
	return f.err
}

// ReadAll scans the remaining inputs to completion and returns every
// measurement in input order.
func (f *Files) ReadAll() ([]Measurement, error) {
	var ms []Measurement
	for f.Scan() {
		ms = append(ms, f.Measurement())
	}
	return ms, f.Err()
}
