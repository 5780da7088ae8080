// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queueplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/max0x7ba/atomic-queue/perf/queuestat"
	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// Axes selects how the chart axes are scaled.
type Axes int

const (
	// FixedAxes uses a fixed throughput range of [-1e6, 12e7]
	// msg/sec with a tick every 1e7, sized for the reference
	// machines.
	FixedAxes Axes = iota
	// AutoAxes derives the ranges from the data.
	AutoAxes
)

func (a Axes) String() string {
	switch a {
	case FixedAxes:
		return "fixed"
	case AutoAxes:
		return "auto"
	}
	return fmt.Sprintf("Axes(%d)", int(a))
}

// ParseAxes parses "fixed" or "auto".
func ParseAxes(s string) (Axes, error) {
	switch s {
	case "fixed":
		return FixedAxes, nil
	case "auto":
		return AutoAxes, nil
	}
	return 0, fmt.Errorf("unknown axes %q, want fixed or auto", s)
}

// Fixed axis range and tick spacing.
const (
	fixedYMin  = -1e6
	fixedYMax  = 12e7
	fixedYStep = 1e7
)

// Options configures a chart.
type Options struct {
	Title string // default "Scalability"
	Axes  Axes
}

// A Chart is a scalability plot along with the series drawn on it.
type Chart struct {
	*plot.Plot

	Series []Series
}

// A Series is one queue's line on a Chart.
type Series struct {
	Queue  string
	Style  Style
	Line   *plotter.Line
	Points *plotter.Scatter
}

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no throughput data")

// Scalability charts the best-of-N throughput in bt: thread count on
// the X axis and msg/sec on the Y axis, one line per queue.
func Scalability(bt *queuestat.BestTable, opts Options) (*Chart, error) {
	if len(bt.Queues) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "Scalability"
	}
	p.X.Label.Text = "number of producers, number of consumers"
	p.Y.Label.Text = queueunit.Throughput
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	c := &Chart{Plot: p}
	for i, q := range bt.Queues {
		pts := bt.Series(q)
		xys := make(plotter.XYs, len(pts))
		for j, pt := range pts {
			xys[j].X = float64(pt.Threads)
			xys[j].Y = pt.Value
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q, err)
		}
		style := StyleOf(q, i)
		line.Color = style.Color
		line.Width = vg.Points(1.5)
		points.Color = style.Color
		points.Shape = style.Glyph
		points.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(q, line, points)
		c.Series = append(c.Series, Series{q, style, line, points})
	}

	applyAxes(p, opts.Axes)
	return c, nil
}

// applyAxes sets the ranges and tick marks of p for every series at
// once.
func applyAxes(p *plot.Plot, axes Axes) {
	p.X.Tick.Marker = stepTicks{step: 1, label: func(v float64) string {
		return strconv.Itoa(int(math.Round(v)))
	}}
	switch axes {
	case FixedAxes:
		p.Y.Min, p.Y.Max = fixedYMin, fixedYMax
		p.Y.Tick.Marker = stepTicks{step: fixedYStep, label: queueunit.Commas}
	case AutoAxes:
		p.Y.Tick.Marker = commaTicks{}
	}
}

// stepTicks places a labeled tick at every multiple of step.
type stepTicks struct {
	step  float64
	label func(float64) string
}

func (t stepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := math.Ceil(min / t.step); i*t.step <= max; i++ {
		v := i * t.step
		ticks = append(ticks, plot.Tick{Value: v, Label: t.label(v)})
	}
	return ticks
}

// commaTicks is plot.DefaultTicks with thousands separators in the
// labels.
type commaTicks struct{}

func (commaTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = queueunit.Commas(ticks[i].Value)
		}
	}
	return ticks
}

// Clipped returns the queues that have points outside the Y range of
// c. Only FixedAxes charts can clip.
func (c *Chart) Clipped() []string {
	var out []string
	for _, s := range c.Series {
		for _, pt := range s.Points.XYs {
			if pt.Y < c.Y.Min || pt.Y > c.Y.Max {
				out = append(out, s.Queue)
				break
			}
		}
	}
	return out
}

// Default image size.
const (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

// Save writes c to file in the format named by its extension, such as
// ".png", ".svg" or ".pdf".
func (c *Chart) Save(file string) error {
	return c.Plot.Save(Width, Height, file)
}

// Encode writes c to w in format, such as "png" or "svg".
func (c *Chart) Encode(w io.Writer, format string) error {
	wt, err := c.Plot.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
