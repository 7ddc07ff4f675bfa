// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
)

// lif.Neuron holds all of the neuron (unit) level variables.
// All variables must be float32, in contiguous order, so they are
// accessible generically via VarByIndex using the NeuronVars list.
type Neuron struct {
	Vm    float32 `desc:"membrane potential -- integrates Inet current over time, resets to Vr on spiking"`
	Inet  float32 `desc:"net current, which is dVm/dt: (Drive - Vm + osc) / Tau"`
	Spike float32 `desc:"whether the unit spiked on the current cycle (0 or 1)"`
	Noise float32 `desc:"noise value added to Vm on this cycle, if noise is enabled"`
	Drive float32 `desc:"constant input current for this unit -- set once from DriveParams when the population is built, never changed during a run"`
}

var NeuronVars = []string{"Vm", "Inet", "Spike", "Noise", "Drive"}

var NeuronVarsMap map[string]int

var NeuronVarProps = map[string]string{
	"Vm":    `min:"0" max:"1"`,
	"Inet":  `auto-scale:"+"`,
	"Spike": `min:"0" max:"1"`,
	"Noise": `auto-scale:"+"`,
	"Drive": `auto-scale:"+"`,
}

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the Neuron, or error
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	fv := (*float32)(unsafe.Pointer(uintptr(unsafe.Pointer(nrn)) + uintptr(4*idx)))
	return *fv
}

// VarByName returns variable by name, or error if name not found
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return math32.NaN(), err
	}
	return nrn.VarByIndex(i), nil
}
