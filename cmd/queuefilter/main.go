// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Queuefilter reads queue benchmark results from input files, filters
// them, and writes the remaining measurements to stdout. If no inputs
// are provided, it reads from stdin.
//
// Usage:
//
//	queuefilter [-unit unit] [-series regexp] [inputs...]
//
// A measurement is kept if its unit equals -unit, when given, and its
// series name matches the regular expression -series, when given.
// Lines that are not measurements are dropped. Kept measurements are
// written one per line in the form "name: value unit", so the output
// can be fed to the other queue tools:
//
//	queuefilter -unit msg/sec -series '^Optimist' results.txt | plotscalability
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/max0x7ba/atomic-queue/perf/queuefmt"
)

func main() {
	log.SetPrefix("queuefilter: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("queuefilter", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: queuefilter [-unit unit] [-series regexp] [inputs...]\n")
		flags.PrintDefaults()
	}
	flagUnit := flags.String("unit", "", "keep only measurements in `unit`, such as msg/sec")
	flagSeries := flags.String("series", "", "keep only series whose name matches `regexp`")
	flagStrict := flags.Bool("strict", false, "require series names without white space")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var series *regexp.Regexp
	if *flagSeries != "" {
		var err error
		series, err = regexp.Compile(*flagSeries)
		if err != nil {
			return fmt.Errorf("bad -series: %w", err)
		}
	}

	syntax := queuefmt.Permissive
	if *flagStrict {
		syntax = queuefmt.Strict
	}
	var out bytes.Buffer
	writer := queuefmt.NewWriter(&out)
	files := queuefmt.Files{Paths: flags.Args(), AllowStdin: true, Syntax: syntax}
	for files.Scan() {
		m := files.Measurement()
		if *flagUnit != "" && m.Unit != *flagUnit {
			continue
		}
		if series != nil && !series.MatchString(m.Name) {
			continue
		}
		if err := writer.Write(m); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := files.Err(); err != nil {
		return err
	}
	_, err := stdout.Write(out.Bytes())
	return err
}
