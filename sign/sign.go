// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sign provides the threshold sign activation function used by binary
(bipolar) Hopfield neurons.

The network output nonlinearity is two-valued: any net input below the
threshold produces -1, and everything else, including a net input exactly at
threshold, produces +1.  This tie-break toward +1 is part of the recall
dynamics and is relied upon by stored attractors whose net input happens to
land on threshold.

A three-valued variant (TrainAct) maps the tie to 0 and is only used for
displaying the sign of weights, where a zero weight should remain visibly
distinct from an excitatory or inhibitory one.
*/
package sign

// Params are the sign activation function parameters.
type Params struct {
	Thr float32 `def:"0" desc:"threshold value on net input: values below Thr produce -1, values at or above Thr produce +1"`
}

func (sp *Params) Defaults() {
	sp.Thr = 0
}

func (sp *Params) Update() {
}

// Act computes the two-valued sign activation of net input value:
// -1 if value < Thr, else +1.
func (sp *Params) Act(value float32) float32 {
	if value < sp.Thr {
		return -1
	}
	return 1
}

// TrainAct computes the three-valued display activation:
// 0 at threshold, -1 below, +1 above.
func (sp *Params) TrainAct(value float32) float32 {
	switch {
	case value == sp.Thr:
		return 0
	case value < sp.Thr:
		return -1
	}
	return 1
}

// ActVec applies Act in place to all values in vals
func (sp *Params) ActVec(vals []float32) {
	for i, v := range vals {
		vals[i] = sp.Act(v)
	}
}

// TrainActVec applies TrainAct in place to all values in vals
func (sp *Params) TrainActVec(vals []float32) {
	for i, v := range vals {
		vals[i] = sp.TrainAct(v)
	}
}
