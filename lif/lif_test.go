// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func CmprFloats(got, trg []float32, msg string, t *testing.T) {
	for i := range got {
		dif := math32.Abs(got[i] - trg[i])
		if dif > difTol { // allow for small numerical diffs
			t.Errorf("%v err: got: %v, trg: %v, dif: %v\n", msg, got[i], trg[i], dif)
		}
	}
}

func TestParamsUpdate(t *testing.T) {
	pr := Params{}
	pr.Defaults()

	difdt := math32.Abs(pr.Dt - 0.00999999978)
	if difdt > difTol {
		t.Errorf("Dt err: dt: %v, cor dt: %v, dif: %v\n", pr.Dt, 0.00999999978, difdt)
	}
	difrad := math32.Abs(pr.Osc.RadPerMs - 0.0628318563)
	if difrad > difTol {
		t.Errorf("RadPerMs err: rad: %v, cor rad: %v, dif: %v\n", pr.Osc.RadPerMs, 0.0628318563, difrad)
	}

	pr.Tau = 50
	pr.Osc.Period = 50
	pr.Update()
	difdt = math32.Abs(pr.Dt - 0.02)
	if difdt > difTol {
		t.Errorf("Dt err after Update: dt: %v, cor dt: %v, dif: %v\n", pr.Dt, 0.02, difdt)
	}
	difrad = math32.Abs(pr.Osc.RadPerMs - 2*0.0628318563)
	if difrad > difTol {
		t.Errorf("RadPerMs err after Update: rad: %v, cor rad: %v, dif: %v\n", pr.Osc.RadPerMs, 2*0.0628318563, difrad)
	}
}

func TestOscValue(t *testing.T) {
	tstt := []float32{0, 12.5, 25, 50, 75, 100}
	cory := []float32{0, 1.41421354, 2, -1.74845553e-07, -2, 3.49691106e-07}

	os := OscParams{}
	os.Defaults()

	ny := make([]float32, len(tstt))
	for i := range tstt {
		ny[i] = os.Value(tstt[i])
	}
	CmprFloats(ny, cory, "osc value", t)
}

func TestPhase(t *testing.T) {
	tstt := []float32{0, 25, 50, 99.95, 100, 250, 4999.9}
	corp := []float32{0, 0.25, 0.5, 0.999499977, 0, 0.5, 0.998999}

	os := OscParams{}
	os.Defaults()

	php := make([]float32, len(tstt))
	for i := range tstt {
		php[i] = os.Phase(tstt[i])
	}
	CmprFloats(php, corp, "phase", t)

	// phase must always be in [0, 1) across arbitrary times
	for tm := float32(0); tm < 5000; tm += 0.37 {
		ph := os.Phase(tm)
		if ph < 0 || ph >= 1 {
			t.Errorf("Phase range err: t: %v, ph: %v not in [0, 1)\n", tm, ph)
		}
	}
}

func TestInetFmVm(t *testing.T) {
	tstt := []float32{0, 25, 50, 75}
	cor0 := []float32{0.0299999993, 0.049999997, 0.0299999975, 0.00999999978}
	cor5 := []float32{0.0249999985, 0.0449999981, 0.0249999966, 0.00499999989}

	pr := Params{}
	pr.Defaults()

	in0 := make([]float32, len(tstt))
	in5 := make([]float32, len(tstt))
	for i := range tstt {
		in0[i] = pr.InetFmVm(0, 3, tstt[i])
		in5[i] = pr.InetFmVm(0.5, 3, tstt[i])
	}
	CmprFloats(in0, cor0, "inet vm=0 drive=3", t)
	CmprFloats(in5, cor5, "inet vm=0.5 drive=3", t)
}

func TestVmUpdt(t *testing.T) {
	corvm := []float32{0.00300000003, 0.0060095666, 0.009028689, 0.0120573575, 0.0150955608, 0.0181432869, 0.0212005246, 0.02426726}
	corinet := []float32{0.0299999993, 0.0300956629, 0.0301912259, 0.0302866809, 0.0303820297, 0.0304772612, 0.0305723716, 0.0306673571}

	pr := Params{}
	pr.Defaults()

	nrn := &Neuron{}
	pr.InitActs(nrn)
	nrn.Drive = 3

	tm := NewTime()

	vm := make([]float32, len(corvm))
	inet := make([]float32, len(corinet))
	for i := range corvm {
		pr.CycleNeuron(nrn, tm)
		tm.CycleInc()
		vm[i] = nrn.Vm
		inet[i] = nrn.Inet
	}
	CmprFloats(vm, corvm, "vm", t)
	CmprFloats(inet, corinet, "inet", t)
	// fmt.Printf("vm vals: %v\n", vm)
	// fmt.Printf("inet vals: %v\n", inet)
}

func TestSpikeFmVm(t *testing.T) {
	pr := Params{}
	pr.Defaults()

	nrn := &Neuron{}
	pr.InitActs(nrn)

	nrn.Vm = 0.99999
	pr.SpikeFmVm(nrn)
	if nrn.Spike != 0 {
		t.Errorf("Spike err: vm below threshold should not spike: vm: %v, spike: %v\n", nrn.Vm, nrn.Spike)
	}

	nrn.Vm = 1.0 // exactly at threshold spikes
	pr.SpikeFmVm(nrn)
	if nrn.Spike != 1 {
		t.Errorf("Spike err: vm at threshold should spike: spike: %v\n", nrn.Spike)
	}
	if nrn.Vm != pr.Vr {
		t.Errorf("Reset err: vm should be exactly Vr after spike: vm: %v, Vr: %v\n", nrn.Vm, pr.Vr)
	}

	nrn.Vm = 1.5
	pr.SpikeFmVm(nrn)
	if nrn.Spike != 1 || nrn.Vm != pr.Vr {
		t.Errorf("Spike err: vm above threshold: spike: %v, vm: %v\n", nrn.Spike, nrn.Vm)
	}

	pr.SpikeFmVm(nrn) // now at Vr, should not spike again
	if nrn.Spike != 0 {
		t.Errorf("Spike err: vm at Vr should not spike: spike: %v\n", nrn.Spike)
	}
}

func TestTime(t *testing.T) {
	tm := NewTime()
	if tm.TimePerCyc != 0.1 {
		t.Errorf("TimePerCyc default err: %v\n", tm.TimePerCyc)
	}
	for cyc := 0; cyc < 1000; cyc++ {
		tm.CycleInc()
	}
	if tm.Cycle != 1000 || tm.CycleTot != 1000 {
		t.Errorf("Cycle count err: cycle: %v, cycletot: %v\n", tm.Cycle, tm.CycleTot)
	}
	dif := math32.Abs(tm.Time - 100)
	if dif > 1.0e-3 {
		t.Errorf("Time err after 1000 cycles: time: %v, cor: %v, dif: %v\n", tm.Time, 100.0, dif)
	}
	tm.Reset()
	if tm.Time != 0 || tm.Cycle != 0 || tm.CycleTot != 0 {
		t.Errorf("Reset err: time: %v, cycle: %v, cycletot: %v\n", tm.Time, tm.Cycle, tm.CycleTot)
	}
	if tm.TimePerCyc != 0.1 {
		t.Errorf("Reset should preserve TimePerCyc: %v\n", tm.TimePerCyc)
	}
}
