// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Scalability2json converts throughput benchmark results to JSON.
//
// Usage:
//
//	scalability2json [flags] [inputs...]
//
// Scalability2json reads msg/sec measurements named
// "queue,threads[,topology]" from the input files, or from standard
// input if there are none, and prints the best (maximum) throughput of
// every queue at every thread count:
//
//	{"AtomicQueue":{"1":27473115,"2":14356982}}
//
// With -summary it prints the statistics of every thread count
// instead, as [threads, min, max, mean, stdev] in msg/sec rounded to
// integers:
//
//	{"AtomicQueue":[[1,26000001,27473115,26736558,1041612]]}
//
// With -highcharts it prints an array of Highcharts "column" and
// "errorbar" series.
//
// Queues keep the order in which they first appear in the input.
// A throughput series whose name lacks a thread count is an error and
// nothing is printed.
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
	log.SetPrefix("scalability2json: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("scalability2json", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: scalability2json [flags] [inputs...]\n")
		flags.PrintDefaults()
	}
	flagSummary := flags.Bool("summary", false, "print [threads, min, max, mean, stdev] per thread count")
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
	st, err := queuestat.Scalability(ms)
	if err != nil {
		return err
	}

	var v any
	switch {
	case *flagSummary:
		v = queuestat.ScalabilitySummaryJSON(st)
	case *flagHighcharts:
		v = queueplot.ScalabilityHighcharts(st)
	default:
		v = queuestat.ScalabilityJSON(st.Best())
	}
	var out bytes.Buffer
	if err := queuestat.WriteJSON(&out, v); err != nil {
		return err
	}
	_, err = stdout.Write(out.Bytes())
	return err
}
