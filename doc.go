// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package phaselock is the overall repository for a simulation of oscillatory
phase locking in leaky integrate-and-fire neurons, implemented in the Go
language (golang), reproducing the dynamics described in Brette (2004).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* lif: the leaky integrate-and-fire neuron model, with the shared
sinusoidal oscillation, drive assignment across the population, and the
per-cycle update equations.

* examples/phaselock: compiles into the runnable simulation, with a GUI
showing the spike phase vs. drive plot, a per-cycle population plot, and a
spike raster, plus a command-line mode that saves logs to files.
*/
package phaselock
