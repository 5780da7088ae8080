// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuefmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// A Syntax selects how much of a line may form the series name.
type Syntax int

const (
	// Permissive accepts any characters in the name, up to the
	// first ": <number> <unit>" that completes the line pattern.
	// This handles padded names such as "AtomicQueue, 1,s".
	Permissive Syntax = iota
	// Strict accepts only non-whitespace characters in the name.
	Strict
)

func (s Syntax) String() string {
	switch s {
	case Permissive:
		return "Permissive"
	case Strict:
		return "Strict"
	}
	return fmt.Sprintf("Syntax(%d)", int(s))
}

var lineRE = [...]*regexp.Regexp{
	Permissive: regexp.MustCompile(`^\s*(.+?):\s+([,0-9]*\.?[,0-9]*)\s+(\S+)`),
	Strict:     regexp.MustCompile(`^\s*(\S+):\s+([,0-9]*\.?[,0-9]*)\s+(\S+)`),
}

// A Reader reads measurements from benchmark output.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	br  *bufio.Reader
	buf []byte // current line
	re  *regexp.Regexp
	err error // current I/O error

	m Measurement

	fileName string
	line     int
}

// NewReader constructs a reader to parse benchmark output from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, syntax Syntax) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName, syntax)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string, syntax Syntax) {
	if syntax != Strict {
		syntax = Permissive
	}
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.br = bufio.NewReader(ior)
	r.buf = r.buf[:0]
	r.re = lineRE[syntax]
	r.err = nil
	r.m = Measurement{}
	r.fileName = fileName
	r.line = 0
}

// Scan advances the reader to the next measurement and reports
// whether one was read. Lines that do not look like measurements are
// skipped. If Scan reaches EOF or an I/O error occurs, it returns
// false, in which case the caller should use the Err method to check
// for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for {
		line, tooLong, err := r.readLine()
		if err != nil {
			if err != io.EOF {
				r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
			}
			return false
		}
		r.line++
		if tooLong {
			continue
		}
		sub := r.re.FindSubmatch(line)
		if sub == nil {
			continue
		}
		val, ok := atof(sub[2])
		if !ok {
			continue
		}
		val, unit := queueunit.Tidy(val, string(sub[3]))
		r.m = Measurement{
			Name:     string(sub[1]),
			Unit:     unit,
			Value:    val,
			fileName: r.fileName,
			line:     r.line,
		}
		return true
	}
}

// maxLine bounds the lines the Reader matches. Longer lines are
// consumed and skipped like any other line that is not a measurement.
const maxLine = 1 << 20

// readLine returns the next line without its line terminator. It
// reports tooLong, and returns no text, for a line longer than
// maxLine. At the end of the input it returns io.EOF.
func (r *Reader) readLine() (line []byte, tooLong bool, err error) {
	r.buf = r.buf[:0]
	n := 0
	for {
		frag, err := r.br.ReadSlice('\n')
		n += len(frag)
		if len(r.buf)+len(frag) > maxLine {
			tooLong = true
		}
		if !tooLong {
			r.buf = append(r.buf, frag...)
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && n > 0 {
			err = nil
		}
		if err != nil {
			return nil, false, err
		}
		if tooLong {
			return nil, true, nil
		}
		return bytes.TrimRight(r.buf, "\r\n"), false, nil
	}
}

// Measurement returns the measurement that was just read by Scan.
func (r *Reader) Measurement() Measurement {
	return r.m
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// atof parses a number that may contain thousands separators. The
// benchmarks print integer throughputs, so try that first.
func atof(x []byte) (float64, bool) {
	var val int64
	digits := 0
	for _, ch := range x {
		if ch == ',' {
			continue
		}
		digit := ch - '0'
		if digit >= 10 {
			goto fail
		}
		if val > (math.MaxInt64-10)/10 {
			goto fail // avoid int64 overflow
		}
		val = (val * 10) + int64(digit)
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return float64(val), true

fail:
	buf := make([]byte, 0, len(x))
	for _, ch := range x {
		if ch != ',' {
			buf = append(buf, ch)
		}
	}
	f, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
