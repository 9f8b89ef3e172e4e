// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"testing"

	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/emer/hopfield/pats"
	"github.com/pkg/errors"
)

func TestHebbianSingle(t *testing.T) {
	nt := NewNetwork("Hop", 4)
	p := []float32{1, -1, 1, -1}
	if err := nt.Train([][]float32{p}, Hebbian, 0, nil); err != nil {
		t.Fatal(err)
	}
	cor := make([][]float32, 4)
	for i := range cor {
		cor[i] = make([]float32, 4)
		for j := range cor[i] {
			if i != j {
				cor[i][j] = p[i] * p[j]
			}
		}
	}
	checkWts(t, nt, cor)
	checkSymmetric(t, nt)
}

func TestHebbianBatch(t *testing.T) {
	nt := NewNetwork("Hop", 4)
	p1 := []float32{1, -1, 1, -1}
	p2 := []float32{1, 1, -1, -1}
	if err := nt.Train([][]float32{p1, p2}, Hebbian, 0, nil); err != nil {
		t.Fatal(err)
	}
	cor := make([][]float32, 4)
	for i := range cor {
		cor[i] = make([]float32, 4)
		for j := range cor[i] {
			if i != j {
				cor[i][j] = (p1[i]*p1[j] + p2[i]*p2[j]) / 2
			}
		}
	}
	checkWts(t, nt, cor)
	checkSymmetric(t, nt)

	// order of patterns does not matter
	nt2 := NewNetwork("Hop2", 4)
	if err := nt2.Train([][]float32{p2, p1}, Hebbian, 0, nil); err != nil {
		t.Fatal(err)
	}
	checkWts(t, nt2, cor)
}

func TestHebbianRandomSymmetric(t *testing.T) {
	rnd := erand.NewSysRand(3)
	for _, np := range []int{1, 2, 5, 9} {
		nt := NewNetwork("Hop", 20)
		if err := nt.Train(pats.RandomSet(np, 20, rnd), Hebbian, 0, nil); err != nil {
			t.Fatal(err)
		}
		checkSymmetric(t, nt)
	}
}

func TestHebbianAccumulates(t *testing.T) {
	nt := NewNetwork("Hop", 4)
	p := []float32{1, -1, 1, -1}
	q := []float32{1, 1, -1, -1}
	r := []float32{-1, 1, 1, 1}
	if err := nt.Train([][]float32{p}, Hebbian, 0, nil); err != nil {
		t.Fatal(err)
	}
	if err := nt.Train([][]float32{q, r}, Hebbian, 0, nil); err != nil {
		t.Fatal(err)
	}
	// second call adds onto the first call's normalized weights
	cor := make([][]float32, 4)
	for i := range cor {
		cor[i] = make([]float32, 4)
		for j := range cor[i] {
			if i != j {
				cor[i][j] = (p[i]*p[j] + q[i]*q[j] + r[i]*r[j]) / 2
			}
		}
	}
	checkWts(t, nt, cor)
	checkSymmetric(t, nt)

	nt.Reset()
	if err := nt.Train([][]float32{q, r}, Hebbian, 0, nil); err != nil {
		t.Fatal(err)
	}
	for i := range cor {
		for j := range cor[i] {
			if i != j {
				cor[i][j] = (q[i]*q[j] + r[i]*r[j]) / 2
			}
		}
	}
	checkWts(t, nt, cor)
}

func TestTrainObserver(t *testing.T) {
	nt := NewNetwork("Hop", 3)
	p1 := []float32{1, -1, 1}
	p2 := []float32{-1, -1, 1}
	var idxs []int
	var prevs []*etensor.Float32
	obs := ObserverFuncs{Train: func(prev *etensor.Float32, pat int) {
		idxs = append(idxs, pat)
		prevs = append(prevs, prev)
		// the current weights already include this pattern
		if nt.Wt(0, 0) != float32(pat) {
			t.Errorf("weights during step %v: diag %v\n", pat, nt.Wt(0, 0))
		}
		for i := range prev.Values {
			prev.Values[i] = 99
		}
	}}
	if err := nt.Train([][]float32{p1, p2}, Hebbian, 0, obs); err != nil {
		t.Fatal(err)
	}
	if len(idxs) != 2 || idxs[0] != 1 || idxs[1] != 2 {
		t.Fatalf("train step indexes: %v\n", idxs)
	}
	if prevs[0] == prevs[1] {
		t.Errorf("each step should get its own snapshot\n")
	}
	checkSymmetric(t, nt)
	checkWts(t, nt, [][]float32{{0, 0, 0}, {0, 0, -1}, {0, -1, 0}})

	// snapshots as they were before observer overwrote them
	nt.Reset()
	var first []float32
	obs2 := ObserverFuncs{Train: func(prev *etensor.Float32, pat int) {
		if pat == 2 {
			first = append([]float32{}, prev.Values...)
		}
	}}
	if err := nt.Train([][]float32{p1, p2}, Hebbian, 0, obs2); err != nil {
		t.Fatal(err)
	}
	// before pattern 2: unnormalized p1 outer product, diagonal not yet zeroed
	cor := []float32{1, -1, 1, -1, 1, -1, 1, -1, 1}
	for i := range cor {
		if first[i] != cor[i] {
			t.Errorf("prev snapshot err: idx: %v, wt: %v, cor: %v\n", i, first[i], cor[i])
		}
	}
}

func TestTrainNoObserverAllocs(t *testing.T) {
	nt := NewNetwork("Hop", 16)
	ps := orthoPats()
	quiet := testing.AllocsPerRun(10, func() {
		nt.Train(ps, Hebbian, 0, nil)
	})
	obs := ObserverFuncs{Train: func(prev *etensor.Float32, pat int) {
		if prev == nil {
			t.Errorf("observer got nil snapshot at pattern %v\n", pat)
		}
	}}
	observed := testing.AllocsPerRun(10, func() {
		nt.Train(ps, Hebbian, 0, obs)
	})
	// one weight snapshot per pattern only when observed
	if quiet+float64(len(ps)) > observed {
		t.Errorf("allocs without observer: %v, with observer: %v\n", quiet, observed)
	}

	nt.Reset()
	if err := nt.Train(ps, Hebbian, 0, NoObserver{}); err != nil {
		t.Fatal(err)
	}
	q := NewNetwork("Hop", 16)
	if err := q.Train(ps, Hebbian, 0, obs); err != nil {
		t.Fatal(err)
	}
	for i, w := range nt.Wts.Values {
		if w != q.Wts.Values[i] {
			t.Errorf("weights differ with observer: idx: %v, %v != %v\n", i, w, q.Wts.Values[i])
		}
	}
}

func TestTrainErrors(t *testing.T) {
	nt := NewNetwork("Hop", 4)
	p := []float32{1, -1, 1, -1}
	if err := nt.Train([][]float32{p}, Hebbian, 0, nil); err != nil {
		t.Fatal(err)
	}
	before := nt.Weights()

	same := func(tag string) {
		for i, wt := range nt.Weights().Values {
			if wt != before.Values[i] {
				t.Errorf("%s: weights changed at %v: %v != %v\n", tag, i, wt, before.Values[i])
				return
			}
		}
	}

	called := false
	obs := ObserverFuncs{Train: func(prev *etensor.Float32, pat int) { called = true }}

	tests := []struct {
		tag string
		err error
		run func() error
	}{
		{"bogus name", ErrInvalidTrainingMethod, func() error {
			return nt.TrainNamed([][]float32{p}, "bogus", 0, obs)
		}},
		{"out of range method", ErrInvalidTrainingMethod, func() error {
			return nt.Train([][]float32{p}, TrainMethodsN, 0, obs)
		}},
		{"negative method", ErrInvalidTrainingMethod, func() error {
			return nt.Train([][]float32{p}, TrainMethods(-1), 0, obs)
		}},
		{"storkey", ErrUnimplemented, func() error {
			return nt.Train([][]float32{p}, Storkey, 0, obs)
		}},
		{"storkey name", ErrUnimplemented, func() error {
			return nt.TrainNamed([][]float32{p}, "storkey", 0, obs)
		}},
		{"empty batch", ErrEmptyPatternBatch, func() error {
			return nt.Train(nil, Hebbian, 0, obs)
		}},
		{"short pattern", ErrPatternShape, func() error {
			return nt.Train([][]float32{p, {1, -1}}, Hebbian, 0, obs)
		}},
		{"not bipolar", ErrNotBipolar, func() error {
			return nt.Train([][]float32{p, {1, 0, 1, -1}}, Hebbian, 0, obs)
		}},
	}
	for _, tt := range tests {
		err := tt.run()
		if errors.Cause(err) != tt.err {
			t.Errorf("%s: err: %v, expected cause: %v\n", tt.tag, err, tt.err)
		}
		same(tt.tag)
	}
	if called {
		t.Errorf("observer called by a failed Train\n")
	}
}

func TestTrainNamed(t *testing.T) {
	nt := NewNetwork("Hop", 4)
	p := []float32{1, -1, 1, -1}
	for _, nm := range []string{"hebbian", "Hebbian", "HEBBIAN"} {
		nt.Reset()
		if err := nt.TrainNamed([][]float32{p}, nm, 0, nil); err != nil {
			t.Errorf("TrainNamed %q: %v\n", nm, err)
		}
		if nt.Wt(0, 1) != -1 {
			t.Errorf("TrainNamed %q: wt: %v\n", nm, nt.Wt(0, 1))
		}
	}
	if _, err := ParseTrainMethod("TrainMethodsN"); errors.Cause(err) != ErrInvalidTrainingMethod {
		t.Errorf("TrainMethodsN should not parse: %v\n", err)
	}
	if Storkey.String() != "Storkey" || TrainMethods(7).String() != "TrainMethods(7)" {
		t.Errorf("String: %v, %v\n", Storkey, TrainMethods(7))
	}
	var m TrainMethods
	if err := m.FromString("Storkey"); err != nil || m != Storkey {
		t.Errorf("FromString: %v, %v\n", m, err)
	}
}
