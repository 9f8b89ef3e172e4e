// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import "github.com/pkg/errors"

// These are the errors returned by Network methods, always wrapped with
// context about the call.  Test for them with errors.Cause(err) == ErrX.
var (
	ErrInvalidTrainingMethod = errors.New("invalid training method")
	ErrInvalidRecallMode     = errors.New("invalid recall mode")
	ErrEmptyPatternBatch     = errors.New("empty pattern batch")
	ErrUnimplemented         = errors.New("not implemented")
	ErrDidNotConverge        = errors.New("recall did not converge")
	ErrPatternShape          = errors.New("pattern length does not match number of neurons")
	ErrNotBipolar            = errors.New("pattern values must be -1 or +1")
)
