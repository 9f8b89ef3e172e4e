// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "github.com/emer/etable/etensor"

// Observer is called synchronously at each step of training and recall.
// All arguments are snapshots owned by the observer: changing them has no
// effect on the network.  Observers may read Network.Weights and call
// Network.Energy, but must not call Train, Recall or Reset.
type Observer interface {
	// TrainStep is called after pattern number pat (1-based) has been added
	// to the weights, with prev the weights as they were before that pattern.
	// prev is nil when the observer is NoObserver, which skips the copy.
	TrainStep(prev *etensor.Float32, pat int)

	// RecallStep is called with the batch of states at the given step,
	// starting at step 0 for the initial batch.
	RecallStep(states [][]float32, step int)
}

// NoObserver is an Observer that does nothing
type NoObserver struct{}

func (no NoObserver) TrainStep(prev *etensor.Float32, pat int) {}
func (no NoObserver) RecallStep(states [][]float32, step int)  {}

// ObserverFuncs adapts a pair of functions to the Observer interface.
// Either function may be nil.
type ObserverFuncs struct {
	Train  func(prev *etensor.Float32, pat int)
	Recall func(states [][]float32, step int)
}

func (of ObserverFuncs) TrainStep(prev *etensor.Float32, pat int) {
	if of.Train != nil {
		of.Train(prev, pat)
	}
}

func (of ObserverFuncs) RecallStep(states [][]float32, step int) {
	if of.Recall != nil {
		of.Recall(states, step)
	}
}

// observerOrNone returns obs, or NoObserver if obs is nil
func observerOrNone(obs Observer) Observer {
	if obs == nil {
		return NoObserver{}
	}
	return obs
}
