// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/emer/hopfield/pats"
	"github.com/emer/hopfield/sign"
	"github.com/goki/ki/kit"
	"github.com/pkg/errors"
)

// hopfield.Network is a binary Hopfield network of NNeurons bipolar neurons
// with a symmetric, zero-diagonal weight matrix.
type Network struct {
	Nm       string           `desc:"overall name of network"`
	NNeurons int              `inactive:"+" desc:"number of neurons -- fixed at construction"`
	Act      sign.Params      `view:"inline" desc:"activation function parameters used in recall"`
	Conv     ConvParams       `view:"inline" desc:"convergence limits for recall without a fixed number of steps"`
	RndSeed  int64            `inactive:"+" desc:"seed for the network's own random source -- use SetRndSeed to change"`
	Rnd      *erand.SysRand   `view:"-" json:"-" desc:"network's own random source, used by asynchronous recall when none is given"`
	Wts      *etensor.Float32 `view:"-" desc:"[NNeurons][NNeurons] weight matrix -- only modified by Train and Reset"`
}

var KiT_Network = kit.Types.AddType(&Network{}, nil)

// NewNetwork returns a new Network with given name and number of neurons,
// with default parameters and all-zero weights.
func NewNetwork(name string, nNeurons int) *Network {
	nt := &Network{}
	nt.Init(name, nNeurons)
	return nt
}

// Init configures the network with given name and number of neurons,
// applies Defaults and allocates all-zero weights.
func (nt *Network) Init(name string, nNeurons int) {
	if nNeurons < 0 {
		nNeurons = 0
	}
	nt.Nm = name
	nt.NNeurons = nNeurons
	nt.Defaults()
	nt.Wts = etensor.NewFloat32([]int{nNeurons, nNeurons}, nil, []string{"Recv", "Send"})
}

// Defaults sets default parameter values
func (nt *Network) Defaults() {
	nt.Act.Defaults()
	nt.Conv.Defaults()
	nt.SetRndSeed(1)
}

// UpdateParams updates all the derived parameters if any have changed
func (nt *Network) UpdateParams() {
	nt.Act.Update()
	nt.Conv.Update()
}

// Name returns the network name
func (nt *Network) Name() string {
	return nt.Nm
}

// SetRndSeed resets the network's own random source to given seed
func (nt *Network) SetRndSeed(seed int64) {
	nt.RndSeed = seed
	nt.Rnd = erand.NewSysRand(seed)
}

///////////////////////////////////////////////////////////////////////
//  Weights

// Reset sets all weights to zero, for retraining from scratch
func (nt *Network) Reset() {
	for i := range nt.Wts.Values {
		nt.Wts.Values[i] = 0
	}
}

// Weights returns a copy of the current weight matrix, reflecting the most
// recently completed training call.  Changing it does not affect the network.
func (nt *Network) Weights() *etensor.Float32 {
	cp := etensor.NewFloat32([]int{nt.NNeurons, nt.NNeurons}, nil, []string{"Recv", "Send"})
	copy(cp.Values, nt.Wts.Values)
	return cp
}

// Wt returns the weight between neurons i and j
func (nt *Network) Wt(i, j int) float32 {
	return nt.Wts.Values[i*nt.NNeurons+j]
}

// WtSigns returns a copy of the weights passed through the three-valued
// sign.TrainAct function: -1 inhibitory, 0 none, +1 excitatory.
// This is intended for displaying connections.
func (nt *Network) WtSigns() *etensor.Float32 {
	cp := nt.Weights()
	nt.Act.TrainActVec(cp.Values)
	return cp
}

// WtRange returns the min / max range of all off-diagonal weights.
// Returns the zero range for networks with fewer than 2 neurons.
func (nt *Network) WtRange() minmax.F32 {
	mm := minmax.F32{}
	if nt.NNeurons < 2 {
		return mm
	}
	mm.SetInfinity()
	n := nt.NNeurons
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			mm.FitValInRange(nt.Wts.Values[i*n+j])
		}
	}
	return mm
}

// SizeReport returns a string reporting the size of the network:
// number of neurons, synapses and the memory used by the weights.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	nsyn := nt.NNeurons * nt.NNeurons
	synMem := nsyn * int(unsafe.Sizeof(float32(0)))
	fmt.Fprintf(&b, "%14s:\t Neurons: %d\t Syns: %d\t SynMem: %v\n", nt.Nm, nt.NNeurons, nsyn, (datasize.ByteSize)(synMem).HumanReadable())
	return b.String()
}

///////////////////////////////////////////////////////////////////////
//  Energy

// Energy returns the Lyapunov energy -1/2 * state^T * W * state of given
// state under the current weights.  state must have NNeurons values:
// otherwise the mismatch is logged and NaN returned.
func (nt *Network) Energy(state []float32) float32 {
	n := nt.NNeurons
	if len(state) != n {
		log.Printf("hopfield.Network %s Energy: state has %d values, network has %d neurons\n", nt.Nm, len(state), n)
		return math32.NaN()
	}
	e := float32(0)
	for i, si := range state {
		if si == 0 {
			continue
		}
		row := nt.Wts.Values[i*n : (i+1)*n]
		net := float32(0)
		for j, wt := range row {
			net += wt * state[j]
		}
		e += si * net
	}
	return -0.5 * e
}

// Energies returns the Energy of each state in states
func (nt *Network) Energies(states [][]float32) []float32 {
	es := make([]float32, len(states))
	for i, st := range states {
		es[i] = nt.Energy(st)
	}
	return es
}

///////////////////////////////////////////////////////////////////////
//  Validation

// checkShape returns ErrPatternShape if any state does not have NNeurons values
func (nt *Network) checkShape(states [][]float32) error {
	for i, st := range states {
		if len(st) != nt.NNeurons {
			return errors.Wrapf(ErrPatternShape, "pattern %d has %d values, network %s has %d neurons", i, len(st), nt.Nm, nt.NNeurons)
		}
	}
	return nil
}

// checkPatterns validates a training batch: non-empty, right shape, bipolar
func (nt *Network) checkPatterns(ps [][]float32) error {
	if len(ps) == 0 {
		return errors.Wrapf(ErrEmptyPatternBatch, "network %s", nt.Nm)
	}
	if err := nt.checkShape(ps); err != nil {
		return err
	}
	for i, p := range ps {
		if !pats.IsBipolar(p) {
			return errors.Wrapf(ErrNotBipolar, "pattern %d", i)
		}
	}
	return nil
}
