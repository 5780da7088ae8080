// Copyright (c) 2019 Maxim Egorushkin. MIT License. See the full licence in file LICENSE.

package queuestat

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/max0x7ba/atomic-queue/perf/queuefmt"
	"github.com/max0x7ba/atomic-queue/perf/queueunit"
)

// A ScalabilityTable holds the throughput results of a set of queues,
// grouped by queue and thread count.
type ScalabilityTable struct {
	// Queues lists the queue names in the order they were first
	// read.
	Queues []string

	// Cells holds one cell per (queue, threads) pair, ordered by
	// queue as in Queues and then by ascending thread count.
	Cells []*Cell

	// tab has one row per measurement with columns Queue,
	// Threads and Value, in the order of Cells.
	tab *table.Table
}

// A Cell summarizes the throughput of one queue at one thread count.
type Cell struct {
	Queue   string
	Threads int
	Values  []float64
	Summary Summary
}

// scalabilityRow is the row type of ScalabilityTable.tab.
type scalabilityRow struct {
	Queue   string
	Threads int
	Value   float64
}

// Scalability builds the scalability view of the throughput
// measurements in ms. Measurements in other units are ignored. Every
// throughput series name must have the "queue,threads[,topology]"
// shape; the first one that does not stops Scalability with a
// *queuefmt.FormatError.
func Scalability(ms []queuefmt.Measurement) (*ScalabilityTable, error) {
	var rows []scalabilityRow
	for _, m := range ms {
		if m.Unit != queueunit.Throughput {
			continue
		}
		k, err := m.Key()
		if err != nil {
			return nil, err
		}
		rows = append(rows, scalabilityRow{k.Queue, k.Threads, m.Value})
	}

	st := &ScalabilityTable{Queues: []string{}, Cells: []*Cell{}}
	if len(rows) == 0 {
		return st, nil
	}

	// Group by queue in first-seen order, order each queue's rows
	// by thread count, and split again by thread count.
	g := table.SortBy(table.GroupBy(table.TableFromStructs(rows), "Queue"), "Threads")
	st.tab = table.Flatten(g)
	cells := table.GroupBy(st.tab, "Queue", "Threads")
	for _, gid := range cells.Tables() {
		cell := &Cell{
			Queue:   gid.Parent().Label().(string),
			Threads: gid.Label().(int),
			Values:  cells.Table(gid).MustColumn("Value").([]float64),
		}
		cell.Summary = Summarize(cell.Values)
		if len(st.Queues) == 0 || st.Queues[len(st.Queues)-1] != cell.Queue {
			st.Queues = append(st.Queues, cell.Queue)
		}
		st.Cells = append(st.Cells, cell)
	}
	return st, nil
}

// QueueCells returns the cells of queue in ascending thread order.
func (st *ScalabilityTable) QueueCells(queue string) []*Cell {
	var out []*Cell
	for _, c := range st.Cells {
		if c.Queue == queue {
			out = append(out, c)
		}
	}
	return out
}

// A BestTable is the best-of-N pivot of a ScalabilityTable: the
// highest throughput of each queue at each thread count.
type BestTable struct {
	// Queues lists the queues (the pivot columns) in the order
	// they were first read.
	Queues []string

	// Threads lists every thread count (the pivot rows) in
	// ascending order.
	Threads []int

	cells map[bestKey]float64
}

type bestKey struct {
	queue   string
	threads int
}

// A Point is one value of a queue's best-of-N series.
type Point struct {
	Threads int
	Value   float64
}

// Best reduces each cell of st to its maximum throughput. Repeated
// runs are treated as best-of-N rather than averaged.
func (st *ScalabilityTable) Best() *BestTable {
	bt := &BestTable{Queues: []string{}, Threads: []int{}, cells: make(map[bestKey]float64)}
	if st.tab == nil {
		return bt
	}

	agg := table.Flatten(ggstat.Agg("Queue", "Threads")(ggstat.AggMax("Value")).F(st.tab))
	queues := agg.MustColumn("Queue").([]string)
	threads := agg.MustColumn("Threads").([]int)
	values := agg.MustColumn("max Value").([]float64)
	for i := range values {
		bt.add(queues[i], threads[i], values[i])
	}
	return bt
}

func (bt *BestTable) add(queue string, threads int, v float64) {
	if len(bt.Queues) == 0 || bt.Queues[len(bt.Queues)-1] != queue {
		bt.Queues = append(bt.Queues, queue)
	}
	// Insert threads into the sorted row list.
	i := 0
	for i < len(bt.Threads) && bt.Threads[i] < threads {
		i++
	}
	if i == len(bt.Threads) || bt.Threads[i] != threads {
		bt.Threads = append(bt.Threads, 0)
		copy(bt.Threads[i+1:], bt.Threads[i:])
		bt.Threads[i] = threads
	}
	bt.cells[bestKey{queue, threads}] = v
}

// Get returns the best throughput of queue at threads. ok is false if
// queue was not measured at threads.
func (bt *BestTable) Get(queue string, threads int) (v float64, ok bool) {
	v, ok = bt.cells[bestKey{queue, threads}]
	return
}

// Series returns the measured points of queue in ascending thread
// order.
func (bt *BestTable) Series(queue string) []Point {
	var out []Point
	for _, threads := range bt.Threads {
		if v, ok := bt.Get(queue, threads); ok {
			out = append(out, Point{threads, v})
		}
	}
	return out
}
