// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hopfield implements a binary Hopfield network: a fixed number of
bipolar (-1 / +1) neurons fully connected by a symmetric weight matrix with
zero self-connections, which stores patterns as attractors of its recall
dynamics.

Training

Train folds a batch of bipolar patterns into the weights with the Hebbian
outer-product rule: each pattern p adds p * p^T, the diagonal is zeroed and the
sum is divided by the number of patterns.  Training accumulates on top of the
existing weights, so call Reset first to start from scratch.  The Storkey rule
is reserved and reports ErrUnimplemented.

Recall

Recall relaxes a batch of states toward the nearest attractor, in one of two
modes:

* Synchronous: every neuron is updated at once from the previous state.  Fast,
but a symmetric network can fall into a 2-cycle, in which case recall without a
step count never terminates unless Conv.MaxIters is set.

* Asynchronous: one neuron, drawn at random from an explicit erand.Rand source,
is updated per step.  Without a step count, recall stops only once a step leaves
the batch unchanged AND every neuron has been drawn at least once.

Energy returns the Lyapunov energy -1/2 s^T W s of a state, which is
non-increasing under asynchronous updates.

Observation

Train and Recall call an Observer at every step with snapshots of the weights
or states, so that external code (plots, logs) can follow the dynamics without
being able to alter them.  A nil Observer is a no-op.

The network is not safe for concurrent use: all calls on a given Network must
come from one goroutine at a time.
*/
package hopfield
