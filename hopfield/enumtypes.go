// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"strings"

	"github.com/goki/ki/kit"
	"github.com/pkg/errors"
)

// TrainMethods are the learning rules that Train can apply
type TrainMethods int32

//go:generate stringer -type=TrainMethods

var KiT_TrainMethods = kit.Enums.AddEnum(TrainMethodsN, kit.NotBitFlag, nil)

func (ev TrainMethods) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *TrainMethods) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Hebbian sums the outer products of the patterns, zeroes the diagonal
	// and normalizes by the number of patterns.
	Hebbian TrainMethods = iota

	// Storkey is reserved for the Storkey incremental rule, which is not implemented.
	Storkey

	TrainMethodsN
)

// ParseTrainMethod returns the TrainMethods value whose name matches s,
// ignoring case, so both "Hebbian" and "hebbian" are accepted.
func ParseTrainMethod(s string) (TrainMethods, error) {
	for m := Hebbian; m < TrainMethodsN; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return TrainMethodsN, errors.Wrapf(ErrInvalidTrainingMethod, "%q", s)
}

// RecallModes are the neuron update disciplines that Recall can use
type RecallModes int32

//go:generate stringer -type=RecallModes

var KiT_RecallModes = kit.Enums.AddEnum(RecallModesN, kit.NotBitFlag, nil)

func (ev RecallModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *RecallModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Synchronous updates all neurons at once from the previous state
	Synchronous RecallModes = iota

	// Asynchronous updates one randomly chosen neuron per step
	Asynchronous

	RecallModesN
)

// ParseRecallMode returns the RecallModes value whose name matches s, ignoring case.
func ParseRecallMode(s string) (RecallModes, error) {
	for m := Synchronous; m < RecallModesN; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return RecallModesN, errors.Wrapf(ErrInvalidRecallMode, "%q", s)
}
