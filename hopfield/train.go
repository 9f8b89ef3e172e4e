// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"github.com/emer/etable/etensor"
	"github.com/pkg/errors"
)

// Train learns the given batch of bipolar patterns using the given method,
// calling obs (which may be nil) after each pattern.
// thr is the activation threshold the patterns are intended for: the Hebbian
// rule does not depend on it.
// Unknown methods return ErrInvalidTrainingMethod, and any error leaves the
// weights exactly as they were.
func (nt *Network) Train(ps [][]float32, method TrainMethods, thr float32, obs Observer) error {
	obs = observerOrNone(obs)
	switch method {
	case Hebbian:
		return nt.TrainHebbian(ps, obs)
	case Storkey:
		return nt.TrainStorkey(ps, thr, obs)
	default:
		return errors.Wrapf(ErrInvalidTrainingMethod, "network %s: %v", nt.Nm, method)
	}
}

// TrainNamed is Train with the method given by name (case-insensitive),
// for methods coming from configuration.
func (nt *Network) TrainNamed(ps [][]float32, method string, thr float32, obs Observer) error {
	m, err := ParseTrainMethod(method)
	if err != nil {
		return errors.Wrapf(err, "network %s", nt.Nm)
	}
	return nt.Train(ps, m, thr, obs)
}

// TrainHebbian adds the outer product p * p^T of each pattern p to the
// weights, in order, calling obs with a copy of the weights from before each
// pattern.  Then the diagonal is zeroed and all weights are divided by the
// number of patterns.
// Weights accumulate on top of any previous training: call Reset first to
// learn only the given batch.
func (nt *Network) TrainHebbian(ps [][]float32, obs Observer) error {
	if err := nt.checkPatterns(ps); err != nil {
		return errors.Wrap(err, "hebbian")
	}
	obs = observerOrNone(obs)
	_, quiet := obs.(NoObserver)
	n := nt.NNeurons
	wts := nt.Wts.Values
	for pi, p := range ps {
		var prev *etensor.Float32
		if !quiet {
			prev = nt.Weights()
		}
		for i, pv := range p {
			row := wts[i*n : (i+1)*n]
			for j, qv := range p {
				row[j] += pv * qv
			}
		}
		obs.TrainStep(prev, pi+1)
	}
	for i := 0; i < n; i++ {
		wts[i*n+i] = 0
	}
	np := float32(len(ps))
	for i := range wts {
		wts[i] /= np
	}
	return nil
}

// TrainStorkey is reserved for the Storkey learning rule.  It always returns
// ErrUnimplemented and does not change the weights.
func (nt *Network) TrainStorkey(ps [][]float32, thr float32, obs Observer) error {
	return errors.Wrapf(ErrUnimplemented, "network %s: %v learning", nt.Nm, Storkey)
}
