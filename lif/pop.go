// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// DriveParams specifies the constant input current per unit: the Range is
// spread linearly across the population, so each unit gets a different
// fixed drive and the population sweeps the parameter.
type DriveParams struct {
	Range minmax.F32 `desc:"range of per-unit constant input currents, assigned by linear interpolation across units"`
}

func (dp *DriveParams) Update() {
}

func (dp *DriveParams) Defaults() {
	dp.Range.Set(2, 4)
}

// Value returns the drive for unit i of n total units: Range.Min for the
// first unit through exactly Range.Max for the last.  n == 1 returns
// Range.Min.
func (dp *DriveParams) Value(i, n int) float32 {
	if n <= 1 {
		return dp.Range.Min
	}
	return dp.Range.Min + dp.Range.Range()*(float32(i)/float32(n-1))
}

// lif.Pop is a population of independent LIF units sharing the same dynamics
// parameters, each with its own constant drive current.  It is pure state +
// parameters: stepping is driven externally via Cycle.
type Pop struct {
	Nm      string      `desc:"name of the population"`
	Params  Params      `view:"add-fields" desc:"LIF dynamics parameters, shared across all units"`
	Drive   DriveParams `view:"inline" desc:"per-unit constant drive assignment"`
	Neurons []Neuron    `view:"-" desc:"slice of neuron state variables, one per unit"`
}

func (pp *Pop) Defaults() {
	pp.Params.Defaults()
	pp.Drive.Defaults()
}

// Build allocates the neurons and assigns each unit's constant drive from
// the DriveParams range.  Drives are not touched again after this.
func (pp *Pop) Build(n int) {
	if n < 0 {
		n = 0
	}
	pp.Neurons = make([]Neuron, n)
	for i := range pp.Neurons {
		pp.Neurons[i].Drive = pp.Drive.Value(i, n)
	}
}

// Init updates derived parameters and initializes all neuron state to the
// configured initial conditions, preserving the built drives.
func (pp *Pop) Init() {
	pp.Params.Update()
	for i := range pp.Neurons {
		pp.Params.InitActs(&pp.Neurons[i])
	}
}

// Cycle advances all units one time step: net current, Euler integration of
// Vm, spike threshold / reset.  Units are fully independent so this is a
// plain sequential loop.
func (pp *Pop) Cycle(ct *Time) {
	for i := range pp.Neurons {
		pp.Params.CycleNeuron(&pp.Neurons[i], ct)
	}
}

// NSpikes returns the number of units that spiked on the current cycle.
func (pp *Pop) NSpikes() int {
	ns := 0
	for i := range pp.Neurons {
		if pp.Neurons[i].Spike > 0 {
			ns++
		}
	}
	return ns
}

// VmAvg returns the average membrane potential across the population.
func (pp *Pop) VmAvg() float32 {
	n := len(pp.Neurons)
	if n == 0 {
		return 0
	}
	sum := float32(0)
	for i := range pp.Neurons {
		sum += pp.Neurons[i].Vm
	}
	return sum / float32(n)
}

// UnitVarNames returns a list of variable names available on the units
func (pp *Pop) UnitVarNames() []string {
	return NeuronVars
}

// UnitVals fills in values of given variable name on each unit into given
// float32 slice (which is resized as needed).  Unknown variable name
// returns error and fills with NaN.
func (pp *Pop) UnitVals(vals *[]float32, varNm string) error {
	nn := len(pp.Neurons)
	if *vals == nil || cap(*vals) < nn {
		*vals = make([]float32, nn)
	} else if len(*vals) < nn {
		*vals = (*vals)[0:nn]
	}
	vidx, err := NeuronVarIdxByName(varNm)
	if err != nil {
		nan := math32.NaN()
		for i := range pp.Neurons {
			(*vals)[i] = nan
		}
		return err
	}
	for i := range pp.Neurons {
		(*vals)[i] = pp.Neurons[i].VarByIndex(vidx)
	}
	return nil
}

// UnitValsTensor fills in values of given variable name on each unit into
// given tensor, which is shaped to the population size.
func (pp *Pop) UnitValsTensor(tsr etensor.Tensor, varNm string) error {
	if tsr == nil {
		err := fmt.Errorf("lif.UnitValsTensor: Tensor is nil")
		return err
	}
	vidx, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return err
	}
	nn := len(pp.Neurons)
	tsr.SetShape([]int{nn}, nil, []string{"Nrn"})
	for i := range pp.Neurons {
		tsr.SetFloat1D(i, float64(pp.Neurons[i].VarByIndex(vidx)))
	}
	return nil
}

// UnitVal1D returns value of given variable index on given unit, using
// 1-dimensional index, returning NaN on invalid index.
func (pp *Pop) UnitVal1D(varIdx int, idx int) float32 {
	if idx < 0 || idx >= len(pp.Neurons) {
		return math32.NaN()
	}
	if varIdx < 0 || varIdx >= len(NeuronVars) {
		return math32.NaN()
	}
	return pp.Neurons[idx].VarByIndex(varIdx)
}

// SizeReport returns a string reporting the size of the population state
// in memory.
func (pp *Pop) SizeReport() string {
	nn := len(pp.Neurons)
	nmem := nn * int(unsafe.Sizeof(Neuron{}))
	return fmt.Sprintf("%v:\t Neurons: %d\t NeurMem: %v", pp.Nm, nn, (datasize.ByteSize)(nmem).HumanReadable())
}
