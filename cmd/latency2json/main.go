// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Latency2json converts round-trip benchmark results to JSON.
//
// Usage:
//
//	latency2json [flags] [inputs...]
//
// Latency2json reads sec/round-trip measurements from the input files,
// or from standard input if there are none, and prints the best
// (minimum) round-trip time of every series in seconds:
//
//	{"AtomicQueue":1.58e-7,"OptimistAtomicQueue":1.46e-7}
//
// With -summary it prints [min, max, mean, stdev] of every series in
// nanoseconds rounded to integers:
//
//	{"AtomicQueue":[158,171,164,6]}
//
// The standard deviation is the sample standard deviation (divided by
// N-1), and every value is rounded to the nearest nanosecond, not
// truncated. For round trips of 1e-7, 2e-7 and 3e-7 seconds the summary
// is [100,300,200,100]; a truncated population deviation would give
// [100,300,200,81].
//
// With -highcharts it prints an array of Highcharts "column" and
// "errorbar" series in nanoseconds. Queues with a fixed chart position
// are placed there; the others follow in input order.
//
// Series keep the order in which they first appear in the input.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/max0x7ba/atomic-queue/perf/queuefmt"
	"github.com/max0x7ba/atomic-queue/perf/queueplot"
	"github.com/max0x7ba/atomic-queue/perf/queuestat"
)

func main() {
	log.SetPrefix("latency2json: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("latency2json", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: latency2json [flags] [inputs...]\n")
		flags.PrintDefaults()
	}
	flagSummary := flags.Bool("summary", false, "print [min, max, mean, stdev] in nanoseconds per series")
	flagHighcharts := flags.Bool("highcharts", false, "print Highcharts column and errorbar series")
	flagStrict := flags.Bool("strict", false, "require series names without white space")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *flagSummary && *flagHighcharts {
		return fmt.Errorf("-summary and -highcharts are mutually exclusive")
	}

	syntax := queuefmt.Permissive
	if *flagStrict {
		syntax = queuefmt.Strict
	}
	files := queuefmt.Files{Paths: flags.Args(), AllowStdin: true, Syntax: syntax}
	ms, err := files.ReadAll()
	if err != nil {
		return err
	}
	c := new(queuestat.Collection)
	c.AddAll(ms)

	var v any
	switch {
	case *flagSummary:
		v = queuestat.LatencySummaryJSON(c)
	case *flagHighcharts:
		v = queueplot.LatencyHighcharts(c)
	default:
		v = queuestat.LatencyJSON(c)
	}
	var out bytes.Buffer
	if err := queuestat.WriteJSON(&out, v); err != nil {
		return err
	}
	_, err = stdout.Write(out.Bytes())
	return err
}
