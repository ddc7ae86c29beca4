// simulate.go - draw and tally dispatcher output
//
// (c) 2024 Sudhi Herle <sw-at-herle.net>
//
// Copyright 2024- Sudhi Herle <sw-at-herle-dot-net>
// License: BSD-2-Clause
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package simulate draws from a dispatcher and records how often
// each task came up.
package simulate

import (
	"fmt"

	metrics "github.com/rcrowley/go-metrics"
)

// Drawer is anything that hands out task names.
type Drawer interface {
	Next() (string, error)
}

// Tally is the outcome of a simulation run.
type Tally struct {
	// Names in the order they were first drawn.
	Names []string
	Total int64

	reg metrics.Registry
}

// Run draws n tasks from d and counts each in reg under "task.<name>";
// the total is kept under "draws". A nil reg gets a private registry.
func Run(d Drawer, n int, reg metrics.Registry) (*Tally, error) {
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	draws := metrics.GetOrRegisterCounter("draws", reg)
	t := &Tally{reg: reg}
	for i := 0; i < n; i++ {
		name, err := d.Next()
		if err != nil {
			return nil, fmt.Errorf("simulate: draw %d: %w", i, err)
		}

		key := "task." + name
		if reg.Get(key) == nil {
			t.Names = append(t.Names, name)
		}
		metrics.GetOrRegisterCounter(key, reg).Inc(1)
		draws.Inc(1)
	}

	t.Total = draws.Count()
	return t, nil
}

// Count returns the number of times name was drawn.
func (t *Tally) Count(name string) int64 {
	c, ok := t.reg.Get("task." + name).(metrics.Counter)
	if !ok {
		return 0
	}
	return c.Count()
}

// Share returns the fraction of draws that went to name.
func (t *Tally) Share(name string) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Count(name)) / float64(t.Total)
}

// Check verifies that a run spanning whole cycles of length cycle
// drew every task exactly counts[name] times per cycle.
func (t *Tally) Check(counts map[string]int, cycle int) error {
	if cycle <= 0 || t.Total%int64(cycle) != 0 {
		return fmt.Errorf("simulate: %d draws is not a whole number of %d-cycles", t.Total, cycle)
	}

	k := t.Total / int64(cycle)
	for name, c := range counts {
		want := k * int64(c)
		if got := t.Count(name); got != want {
			return fmt.Errorf("simulate: task %q: want %d draws, got %d", name, want, got)
		}
	}
	return nil
}
