// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pats provides helpers for bipolar (-1 / +1) patterns: random
generation, noise corruption and comparison metrics.

All random functions take an explicit erand.Rand source so that pattern sets
are reproducible from a seed.
*/
package pats

import (
	"github.com/emer/emergent/erand"
	"github.com/goki/ki/ints"
	"github.com/goki/mat32"
)

// Random returns a new bipolar pattern of n values, each -1 or +1 with equal probability
func Random(n int, rnd erand.Rand) []float32 {
	pat := make([]float32, n)
	for i := range pat {
		if rnd.Intn(2, -1) == 0 {
			pat[i] = -1
		} else {
			pat[i] = 1
		}
	}
	return pat
}

// RandomSet returns np independent Random patterns of n values each
func RandomSet(np, n int, rnd erand.Rand) [][]float32 {
	ps := make([][]float32, np)
	for i := range ps {
		ps[i] = Random(n, rnd)
	}
	return ps
}

// Permuted returns a new bipolar pattern of n values with exactly nOn +1 values
// at randomly permuted positions, and -1 elsewhere.
// nOn is clipped to [0, n].
func Permuted(n, nOn int, rnd erand.Rand) []float32 {
	nOn = ints.MaxInt(ints.MinInt(nOn, n), 0)
	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}
	erand.PermuteInts(ord, rnd)
	pat := make([]float32, n)
	for i, oi := range ord {
		if i < nOn {
			pat[oi] = 1
		} else {
			pat[oi] = -1
		}
	}
	return pat
}

// Flip returns a copy of pat with nFlip distinct randomly chosen values
// sign-flipped, so the result is at Hamming distance nFlip from pat.
// nFlip is clipped to [0, len(pat)].
func Flip(pat []float32, nFlip int, rnd erand.Rand) []float32 {
	cp := Clone(pat)
	nFlip = ints.MaxInt(ints.MinInt(nFlip, len(pat)), 0)
	ord := rnd.Perm(len(pat), -1)
	for _, i := range ord[:nFlip] {
		cp[i] = -cp[i]
	}
	return cp
}

// FlipSet applies Flip to each pattern in ps
func FlipSet(ps [][]float32, nFlip int, rnd erand.Rand) [][]float32 {
	fs := make([][]float32, len(ps))
	for i, p := range ps {
		fs[i] = Flip(p, nFlip, rnd)
	}
	return fs
}

// Neg returns the sign-inverted copy of pat (its anti-pattern),
// which is also an attractor of any Hebbian network storing pat.
func Neg(pat []float32) []float32 {
	cp := make([]float32, len(pat))
	for i, v := range pat {
		cp[i] = -v
	}
	return cp
}

// Clone returns a copy of pat
func Clone(pat []float32) []float32 {
	cp := make([]float32, len(pat))
	copy(cp, pat)
	return cp
}

// CloneSet returns a deep copy of ps
func CloneSet(ps [][]float32) [][]float32 {
	cs := make([][]float32, len(ps))
	for i, p := range ps {
		cs[i] = Clone(p)
	}
	return cs
}

// IsBipolar returns true if every value in pat is exactly -1 or +1
func IsBipolar(pat []float32) bool {
	for _, v := range pat {
		if v != 1 && v != -1 {
			return false
		}
	}
	return true
}

// Equal returns true if a and b have the same length and identical values
func Equal(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualSet returns true if every pattern in a is Equal to the
// corresponding one in b
func EqualSet(a, b [][]float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Hamming returns the number of positions at which a and b differ
// in sign.  Only the first min(len(a), len(b)) values are compared.
func Hamming(a, b []float32) int {
	n := ints.MinInt(len(a), len(b))
	d := 0
	for i := 0; i < n; i++ {
		if (a[i] < 0) != (b[i] < 0) {
			d++
		}
	}
	return d
}

// Overlap returns the normalized overlap (cosine) between a and b,
// which is 1 for identical bipolar patterns, -1 for anti-patterns
// and near 0 for unrelated random patterns.  Returns 0 if either is all zero.
func Overlap(a, b []float32) float32 {
	n := ints.MinInt(len(a), len(b))
	var ab, aa, bb float32
	for i := 0; i < n; i++ {
		ab += a[i] * b[i]
		aa += a[i] * a[i]
		bb += b[i] * b[i]
	}
	if aa == 0 || bb == 0 {
		return 0
	}
	return ab / mat32.Sqrt(aa*bb)
}

// Closest returns the index of the pattern in ps with the greatest Overlap
// with pat, and that overlap.  Returns -1 if ps is empty.
func Closest(pat []float32, ps [][]float32) (int, float32) {
	bi := -1
	bo := float32(-2)
	for i, p := range ps {
		o := Overlap(pat, p)
		if o > bo {
			bi, bo = i, o
		}
	}
	if bi < 0 {
		return -1, 0
	}
	return bi, bo
}
