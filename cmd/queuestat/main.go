// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Queuestat summarizes the results of the queue benchmarks.
//
// Usage:
//
//	queuestat [flags] [inputs...]
//
// Queuestat reads benchmark output from the input files, or from
// standard input if there are none, and prints a table per unit
// (msg/sec, then sec/round-trip) with one row per series, sorted by
// name:
//
//	$ queuestat results.txt
//	msg/sec                           best        min        max       mean     median   stdev n
//	AtomicQueue, 1,s            27,473,115 26,000,001 27,473,115 26,736,558 26,736,558 1,041,612 2
//	...
//
// The "best" column is the maximum throughput or the minimum
// round-trip time. The standard deviation is the sample standard
// deviation.
//
// Queuestat also writes the statistics of every series, in input
// order, to the tab-separated file named by -o (results.csv by
// default; -o= disables it).
//
// The -scalability flag prints the best-of-N throughput pivot instead:
// one row per thread count and one column per queue. Throughput series
// names must then have the form "queue,threads[,topology]".
//
// The -html flag also writes the tables as an HTML page to the named
// file.
//
// By default series names may contain spaces, as the benchmarks pad
// them. The -strict flag requires names without white space.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/max0x7ba/atomic-queue/perf/queuefmt"
	"github.com/max0x7ba/atomic-queue/perf/queuestat"
)

func main() {
	log.SetPrefix("queuestat: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("queuestat", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: queuestat [flags] [inputs...]\n")
		flags.PrintDefaults()
	}
	flagCSV := flags.String("o", "results.csv", "write per-series statistics to tab-separated `file`")
	flagScalability := flags.Bool("scalability", false, "print the best-of-N throughput by thread count")
	flagHTML := flags.String("html", "", "also write the tables as HTML to `file`")
	flagStrict := flags.Bool("strict", false, "require series names without white space")
	if err := flags.Parse(args); err != nil {
		return err
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

	// Produce every output before writing any of them.
	var out bytes.Buffer
	if *flagScalability {
		st, err := queuestat.Scalability(ms)
		if err != nil {
			return err
		}
		if err := queuestat.FormatBestText(&out, st.Best()); err != nil {
			return err
		}
	} else if err := queuestat.FormatText(&out, c); err != nil {
		return err
	}

	var csvOut, htmlOut bytes.Buffer
	if *flagCSV != "" {
		if err := queuestat.FormatCSV(&csvOut, c); err != nil {
			return err
		}
	}
	if *flagHTML != "" {
		if err := queuestat.FormatHTML(&htmlOut, "Queue benchmark results", c); err != nil {
			return err
		}
	}

	if *flagCSV != "" {
		if err := os.WriteFile(*flagCSV, csvOut.Bytes(), 0666); err != nil {
			return err
		}
	}
	if *flagHTML != "" {
		if err := os.WriteFile(*flagHTML, htmlOut.Bytes(), 0666); err != nil {
			return err
		}
	}
	if out.Len() == 0 {
		fmt.Fprintln(stderr, "no data")
		return nil
	}
	_, err = stdout.Write(out.Bytes())
	return err
}
