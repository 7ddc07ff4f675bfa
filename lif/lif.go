// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif implements a basic leaky integrate-and-fire neuron driven by a
constant per-unit input current plus a global sinusoidal oscillation, for
reproducing the classic spike phase-locking result (Brette, 2004).

The membrane potential Vm integrates net current with time constant Tau:

	dVm/dt = (Drive - Vm + Amp*sin(2*pi*t/Period)) / Tau

advanced by explicit Euler integration at a fixed time step (msec), spiking
when Vm crosses the Thr threshold and resetting to Vr on the same step.
There is no refractory period and no interaction between units: each unit is
an independent one-dimensional simulation, distinguished only by its Drive.
*/
package lif

import (
	"github.com/chewxy/math32"
	"github.com/emer/emergent/erand"
	"github.com/goki/ki/kit"
)

// OscParams are parameters for the global sinusoidal component of the
// input current, which is shared across all units and is the reference
// signal for spike phases.
type OscParams struct {
	Amp      float32 `def:"2" desc:"amplitude of the sinusoidal input current"`
	Period   float32 `def:"100" min:"1" desc:"period of the sinusoid, in msec -- spike phases are computed relative to this"`
	RadPerMs float32 `view:"-" json:"-" xml:"-" desc:"rate = 2 * pi / Period -- angular frequency in radians per msec"`
}

func (os *OscParams) Update() {
	os.RadPerMs = 2 * math32.Pi / os.Period
}

func (os *OscParams) Defaults() {
	os.Amp = 2
	os.Period = 100
	os.Update()
}

// Value returns the oscillatory current at time t (msec).
func (os *OscParams) Value(t float32) float32 {
	return os.Amp * math32.Sin(os.RadPerMs*t)
}

// Phase returns the phase of time t (msec) relative to the oscillation
// period, in the half-open range [0, 1).
func (os *OscParams) Phase(t float32) float32 {
	return math32.Mod(t, os.Period) / os.Period
}

// InitParams are initial condition parameters, applied in InitActs.
type InitParams struct {
	Vm float32 `def:"0" desc:"initial membrane potential value for all units"`
}

func (ip *InitParams) Update() {
}

func (ip *InitParams) Defaults() {
	ip.Vm = 0
}

//////////////////////////////////////////////////////////////////////////////////////
//  Noise

// NoiseType are different types / locations of random noise for the membrane update
type NoiseType int

//go:generate stringer -type=NoiseType

var KiT_NoiseType = kit.Enums.AddEnum(NoiseTypeN, kit.NotBitFlag, nil)

func (ev NoiseType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NoiseType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The membrane noise types
const (
	// NoNoise means no noise added -- the default, keeping runs deterministic
	NoNoise NoiseType = iota

	// VmNoise means noise is added to the membrane potential after integration,
	// prior to the threshold test -- jitters spike timing
	VmNoise

	NoiseTypeN
)

// NoiseParams contains parameters for optional membrane potential noise.
// Off by default: the reference result is fully deterministic.
type NoiseParams struct {
	erand.RndParams
	Type NoiseType `desc:"where to add random noise -- NoNoise keeps the model deterministic"`
}

func (an *NoiseParams) Update() {
}

func (an *NoiseParams) Defaults() {
	an.Type = NoNoise
	an.Dist = erand.Gaussian
	an.Mean = 0
	an.Var = 0.01
}

//////////////////////////////////////////////////////////////////////////////////////
//  Params

// Params are the all of the LIF dynamics parameters: membrane time constant,
// threshold / reset values, oscillatory input, initial conditions, and
// optional noise.  The per-unit constant Drive lives on the Neuron because
// it differs across units.
type Params struct {
	Tau   float32     `def:"100" min:"1" desc:"membrane potential time constant in msec -- divides the net current in the update equation"`
	Thr   float32     `def:"1" desc:"spike threshold -- a spike is recorded whenever the integrated potential reaches this value"`
	Vr    float32     `def:"0" desc:"reset potential -- membrane potential is set to this value on the same step as a spike"`
	Osc   OscParams   `view:"inline" desc:"sinusoidal component of the input current, shared across units"`
	Init  InitParams  `view:"inline" desc:"initial condition parameters"`
	Noise NoiseParams `view:"inline" desc:"optional membrane potential noise -- off by default"`
	Dt    float32     `view:"-" json:"-" xml:"-" desc:"rate = 1 / Tau"`
}

func (pr *Params) Update() {
	pr.Dt = 1 / pr.Tau
	pr.Osc.Update()
	pr.Init.Update()
	pr.Noise.Update()
}

func (pr *Params) Defaults() {
	pr.Tau = 100
	pr.Thr = 1
	pr.Vr = 0
	pr.Osc.Defaults()
	pr.Init.Defaults()
	pr.Noise.Defaults()
	pr.Update()
}

// InitActs initializes neuron state to the configured initial conditions.
func (pr *Params) InitActs(nrn *Neuron) {
	nrn.Vm = pr.Init.Vm
	nrn.Inet = 0
	nrn.Spike = 0
	nrn.Noise = 0
}

// InetFmVm computes the net current (which is dVm/dt here) from the current
// membrane potential, the unit's constant drive, and the time t (msec):
// (Drive - Vm + Osc.Value(t)) / Tau.
func (pr *Params) InetFmVm(vm, drive, t float32) float32 {
	return (drive - vm + pr.Osc.Value(t)) * pr.Dt
}

// VmFmInet advances the membrane potential one Euler step of size dt (msec)
// along the Inet current stored on the neuron, adding noise if enabled.
func (pr *Params) VmFmInet(nrn *Neuron, dt float32) {
	nwVm := nrn.Vm + dt*nrn.Inet
	if pr.Noise.Type == VmNoise {
		nrn.Noise = float32(pr.Noise.Gen(-1))
		nwVm += nrn.Noise
	}
	nrn.Vm = nwVm
}

// SpikeFmVm computes the spike indicator from the post-integration membrane
// potential, resetting Vm to Vr on the same step when the unit spikes.
// Spike is always exactly 0 or 1.
func (pr *Params) SpikeFmVm(nrn *Neuron) {
	if nrn.Vm >= pr.Thr {
		nrn.Spike = 1
		nrn.Vm = pr.Vr
	} else {
		nrn.Spike = 0
	}
}

// CycleNeuron does one full update cycle on the neuron at time t from the
// Time state: net current, Euler integration, spike / reset.
func (pr *Params) CycleNeuron(nrn *Neuron, ct *Time) {
	nrn.Inet = pr.InetFmVm(nrn.Vm, nrn.Drive, ct.Time)
	pr.VmFmInet(nrn, ct.TimePerCyc)
	pr.SpikeFmVm(nrn)
}
