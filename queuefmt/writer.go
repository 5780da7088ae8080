// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuefmt

import (
	"bytes"
	"io"

	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// A Writer writes measurements in the benchmark output format.
// The output can be read back with a Permissive Reader.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes measurements to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes m as a single "name: value unit" line. Throughputs are
// written with thousands separators and round-trip times with nine
// decimal places, as the benchmarks print them, unless that would
// change the value; then the value keeps all of its decimal places.
func (w *Writer) Write(m Measurement) error {
	w.buf.Reset()
	w.buf.WriteString(m.Name)
	w.buf.WriteString(": ")
	w.buf.WriteString(queueunit.FormatExact(m.Value, m.Unit))
	w.buf.WriteByte(' ')
	w.buf.WriteString(m.Unit)
	w.buf.WriteByte('\n')

	_, err := w.w.Write(w.buf.Bytes())
	return err
}
