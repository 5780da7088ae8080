// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

// Package queueplot draws throughput charts of queue benchmark
// results and produces series for Highcharts pages.
package queueplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
)

// A Style is how one queue is drawn.
type Style struct {
	Color color.RGBA
	Glyph draw.GlyphDrawer

	// Index orders the queue on Highcharts pages. It is -1 for
	// queues without a fixed place.
	Index int
}

// Hex returns s.Color in "#RRGGBB" form.
func (s Style) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", s.Color.R, s.Color.G, s.Color.B)
}

func rgb(c uint32) color.RGBA {
	return color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xFF}
}

// Glyph families: squares for lock-based and third-party queues,
// crosses for the plain atomic queues and circles for the
// optimist (blocking) variants.
var (
	square = draw.BoxGlyph{}
	cross  = draw.CrossGlyph{}
	circle = draw.CircleGlyph{}
)

// Styles maps known queue names to their fixed styles.
var Styles = map[string]Style{
	"boost::lockfree::spsc_queue":   {rgb(0x9B59B6), square, 0},
	"boost::lockfree::queue":        {rgb(0x76448A), square, 1},
	"pthread_spinlock":              {rgb(0x58D68D), square, 2},
	"moodycamel::ConcurrentQueue":   {rgb(0xBA4A00), square, 3},
	"tbb::spin_mutex":               {rgb(0x5DADE2), square, 4},
	"tbb::speculative_spin_mutex":   {rgb(0x2E86C1), square, 5},
	"tbb::concurrent_bounded_queue": {rgb(0x21618C), square, 6},
	"AtomicQueue":                   {rgb(0xF1C40F), cross, 7},
	"AtomicQueue2":                  {rgb(0xF39C12), cross, 8},
	"OptimistAtomicQueue":           {rgb(0xC0392B), circle, 9},
	"OptimistAtomicQueue2":          {rgb(0xE74C3C), circle, 10},
	"AtomicQueueB":                  {rgb(0xF1C40F), cross, 11},
	"AtomicQueueB2":                 {rgb(0xF39C12), cross, 12},
	"OptimistAtomicQueueB":          {rgb(0xC0392B), circle, 13},
	"OptimistAtomicQueueB2":         {rgb(0xE74C3C), circle, 14},
	"BlockingAtomicQueue":           {rgb(0xC0392B), circle, -1},
	"BlockingAtomicQueue2":          {rgb(0xE74C3C), circle, -1},
}

// StyleOf returns the style of queue, which is the i'th series of a
// chart. Queues missing from Styles get plotutil's i'th color and
// shape.
func StyleOf(queue string, i int) Style {
	if s, ok := Styles[queue]; ok {
		return s
	}
	r, g, b, a := plotutil.Color(i).RGBA()
	return Style{
		Color: color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)},
		Glyph: plotutil.Shape(i),
		Index: -1,
	}
}
