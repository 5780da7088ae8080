// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Plotscalability charts queue throughput against the thread count.
//
// Usage:
//
//	plotscalability [flags] [inputs...]
//
// Plotscalability reads msg/sec measurements named
// "queue,threads[,topology]" from the input files, or from standard
// input if there are none. It prints the best (maximum) throughput of
// every queue at every thread count:
//
//	threads AtomicQueue OptimistAtomicQueue
//	      1  27,473,115          41,962,016
//	      2  14,356,982          26,001,140
//
// and draws the same numbers as one line per queue into the image
// file named by -o (scalability.png by default). The extension of the
// file selects the format: .png, .svg, .pdf, .eps, .jpg or .tif.
//
// By default the throughput axis spans a fixed range so that charts
// of different runs can be compared. Queues faster than the range are
// clipped, with a warning on standard error. The flag -axes=auto fits
// the axes to the data instead.
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
	log.SetPrefix("plotscalability: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("plotscalability", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: plotscalability [flags] [inputs...]\n")
		flags.PrintDefaults()
	}
	flagOut := flags.String("o", "scalability.png", "write the chart to `file`")
	flagAxes := flags.String("axes", queueplot.FixedAxes.String(), "axis `policy`: fixed or auto")
	flagTitle := flags.String("title", "Scalability", "chart `title`")
	flagStrict := flags.Bool("strict", false, "require series names without white space")
	if err := flags.Parse(args); err != nil {
		return err
	}
	axes, err := queueplot.ParseAxes(*flagAxes)
	if err != nil {
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
	st, err := queuestat.Scalability(ms)
	if err != nil {
		return err
	}
	bt := st.Best()
	if len(bt.Queues) == 0 {
		fmt.Fprintln(stderr, "no data")
		return nil
	}

	var out bytes.Buffer
	if err := queuestat.FormatBestText(&out, bt); err != nil {
		return err
	}
	chart, err := queueplot.Scalability(bt, queueplot.Options{Title: *flagTitle, Axes: axes})
	if err != nil {
		return err
	}
	for _, q := range chart.Clipped() {
		fmt.Fprintf(stderr, "warning: %s exceeds the %s throughput axis and is clipped; use -axes=auto\n", q, axes)
	}
	if err := chart.Save(*flagOut); err != nil {
		return err
	}
	_, err = stdout.Write(out.Bytes())
	return err
}
