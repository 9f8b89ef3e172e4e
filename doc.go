// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hopfield is the overall repository for the Hopfield network
associative memory implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* hopfield: the network itself: a symmetric, zero-diagonal weight matrix
trained with the Hebbian outer-product rule, synchronous and asynchronous
recall toward stored attractors, the Lyapunov energy function, and the
Observer hook that reports every training and recall step.

* sign: the threshold sign activation function of the binary neurons.

* pats: bipolar pattern generation, corruption and comparison helpers.

* examples: these actually compile into runnable programs.  examples/recall
trains a network on random patterns, tests recall of noisy probes and saves
per-step energy logs as tab-separated files.
*/
package hopfield
