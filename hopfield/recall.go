// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"github.com/emer/emergent/erand"
	"github.com/emer/hopfield/pats"
	"github.com/pkg/errors"
)

// ConvParams are limits on recall run until convergence (steps = 0)
type ConvParams struct {
	MaxIters int `def:"0" min:"0" desc:"maximum number of update steps when recalling until convergence -- 0 = no limit, matching the classic algorithm, in which synchronous recall can cycle forever.  Exceeding the limit returns ErrDidNotConverge"`
}

func (cp *ConvParams) Defaults() {
	cp.MaxIters = 0
}

func (cp *ConvParams) Update() {
	if cp.MaxIters < 0 {
		cp.MaxIters = 0
	}
}

// Exceeded returns true if step is beyond MaxIters, when set
func (cp *ConvParams) Exceeded(step int) bool {
	return cp.MaxIters > 0 && step > cp.MaxIters
}

// Recall evolves a batch of states under the network dynamics and returns the
// resulting bipolar states; the input states are not modified.
// If steps > 0, exactly that many update steps are run; otherwise recall runs
// until the states stop changing (see RecallSync and RecallAsync for details).
// rnd is the random source for Asynchronous mode: if nil, the network's own
// Rnd is used.  obs (may be nil) is called with the batch at every step.
// Unknown modes return ErrInvalidRecallMode.
func (nt *Network) Recall(states [][]float32, steps int, mode RecallModes, rnd erand.Rand, obs Observer) ([][]float32, error) {
	switch mode {
	case Synchronous:
		return nt.RecallSync(states, steps, obs)
	case Asynchronous:
		return nt.RecallAsync(states, steps, rnd, obs)
	default:
		return nil, errors.Wrapf(ErrInvalidRecallMode, "network %s: %v", nt.Nm, mode)
	}
}

// RecallNamed is Recall with the mode given by name (case-insensitive),
// for modes coming from configuration.
func (nt *Network) RecallNamed(states [][]float32, steps int, mode string, rnd erand.Rand, obs Observer) ([][]float32, error) {
	m, err := ParseRecallMode(mode)
	if err != nil {
		return nil, errors.Wrapf(err, "network %s", nt.Nm)
	}
	return nt.Recall(states, steps, m, rnd, obs)
}

// RecallSync runs synchronous recall: at each step all neurons of each state
// are updated at once, as Act(state * W), from the state of the previous step.
// If steps > 0 that many steps are run.  Otherwise steps are run until the
// batch is identical to that of the previous step.  Synchronous dynamics can
// end up in a 2-cycle, in which case this never returns unless Conv.MaxIters
// is set, and then the last batch is returned with ErrDidNotConverge.
func (nt *Network) RecallSync(states [][]float32, steps int, obs Observer) ([][]float32, error) {
	if err := nt.checkShape(states); err != nil {
		return nil, errors.Wrap(err, "synchronous recall")
	}
	obs = observerOrNone(obs)
	cur := pats.CloneSet(states)
	obs.RecallStep(pats.CloneSet(cur), 0)
	if steps > 0 {
		for s := 1; s <= steps; s++ {
			cur = nt.SyncStep(cur)
			obs.RecallStep(pats.CloneSet(cur), s)
		}
		return cur, nil
	}
	for s := 1; ; s++ {
		if nt.Conv.Exceeded(s) {
			return cur, errors.Wrapf(ErrDidNotConverge, "network %s: synchronous recall after %d steps", nt.Nm, nt.Conv.MaxIters)
		}
		nxt := nt.SyncStep(cur)
		obs.RecallStep(pats.CloneSet(nxt), s)
		if pats.EqualSet(cur, nxt) {
			return nxt, nil
		}
		cur = nxt
	}
}

// SyncStep returns new states computed as Act(state * W) for each state,
// with all neurons updated from the given states.
func (nt *Network) SyncStep(states [][]float32) [][]float32 {
	n := nt.NNeurons
	wts := nt.Wts.Values
	nxt := make([][]float32, len(states))
	for si, st := range states {
		ns := make([]float32, n)
		for i, sv := range st {
			if sv == 0 {
				continue
			}
			row := wts[i*n : (i+1)*n]
			for j, wt := range row {
				ns[j] += sv * wt
			}
		}
		nt.Act.ActVec(ns)
		nxt[si] = ns
	}
	return nxt
}

// RecallAsync runs asynchronous recall: at each step one neuron index is
// drawn uniformly at random from rnd (the network's own Rnd if nil), and that
// neuron is set to Act(W[idx] * state) in every state of the batch.
// If steps > 0 exactly that many updates are run.  Otherwise updates continue
// until a step leaves the batch unchanged and every neuron has been drawn at
// least once since the start of the call, or until Conv.MaxIters is exceeded,
// which returns the current batch with ErrDidNotConverge.
// Input values that are not -1 or +1 are passed through Act once, before the
// first update.
func (nt *Network) RecallAsync(states [][]float32, steps int, rnd erand.Rand, obs Observer) ([][]float32, error) {
	if err := nt.checkShape(states); err != nil {
		return nil, errors.Wrap(err, "asynchronous recall")
	}
	if rnd == nil {
		rnd = nt.Rnd
	}
	obs = observerOrNone(obs)
	n := nt.NNeurons
	cur := pats.CloneSet(states)
	obs.RecallStep(pats.CloneSet(cur), 0)
	if n == 0 {
		return cur, nil
	}
	nt.bipolarSet(cur)
	if steps > 0 {
		for s := 1; s <= steps; s++ {
			nt.AsyncStep(cur, rnd.Intn(n, -1))
			obs.RecallStep(pats.CloneSet(cur), s)
		}
		return cur, nil
	}
	visited := make([]bool, n)
	nvis := 0
	for s := 1; ; s++ {
		if nt.Conv.Exceeded(s) {
			return cur, errors.Wrapf(ErrDidNotConverge, "network %s: asynchronous recall after %d steps, %d of %d neurons visited", nt.Nm, nt.Conv.MaxIters, nvis, n)
		}
		idx := rnd.Intn(n, -1)
		if !visited[idx] {
			visited[idx] = true
			nvis++
		}
		prv := pats.CloneSet(cur)
		nt.AsyncStep(cur, idx)
		obs.RecallStep(pats.CloneSet(cur), s)
		if nvis == n && pats.EqualSet(prv, cur) {
			return cur, nil
		}
	}
}

// AsyncStep updates neuron idx of each state in place to Act(W[idx] * state).
// All other neurons keep their values.
func (nt *Network) AsyncStep(states [][]float32, idx int) {
	n := nt.NNeurons
	row := nt.Wts.Values[idx*n : (idx+1)*n]
	for _, st := range states {
		net := float32(0)
		for j, wt := range row {
			net += wt * st[j]
		}
		st[idx] = nt.Act.Act(net)
	}
}

// bipolarSet passes every state value that is not already -1 or +1 through
// Act, in place.  Bipolar values are kept whatever the threshold.
func (nt *Network) bipolarSet(states [][]float32) {
	for _, st := range states {
		for i, v := range st {
			if v != 1 && v != -1 {
				st[i] = nt.Act.Act(v)
			}
		}
	}
}
