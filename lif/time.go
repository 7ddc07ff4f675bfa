// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

// lif.Time contains the timing state and parameter information for running
// a model at a fixed integration time step.
type Time struct {
	Time       float32 `desc:"accumulated amount of time the simulation has been running, in simulation-time (not real world time), in msec"`
	Cycle      int     `desc:"cycle counter: number of update iterations on the current run, since the last Reset"`
	CycleTot   int     `desc:"total cycle count -- increments continuously from whenever it was last reset"`
	TimePerCyc float32 `def:"0.1" desc:"amount of simulated time to increment per cycle, in msec"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerCyc = 0.1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	tm.CycleTot = 0
	if tm.TimePerCyc == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level.  Time is recomputed from the
// total cycle count instead of accumulated, so that float32 roundoff does
// not drift over runs of many thousands of cycles.
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.CycleTot++
	tm.Time = float32(float64(tm.CycleTot) * float64(tm.TimePerCyc))
}
