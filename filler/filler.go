// Copyright 2025 Forge ML Runtime. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package filler provides the public API for tensor initialization specs.
//
// A Spec binds a tensor name to a fill strategy (zeros, constant, uniform,
// normal). Specs are registered on a workspace during graph construction
// (workspace.CreateFiller) and applied when the tensor is first
// materialized by a graph run.
package filler

import (
	"github.com/born-ml/forge/internal/filler"
	"github.com/born-ml/forge/internal/tensor"
)

// Spec describes how to initialize one tensor.
type Spec = filler.Spec

// Kind selects the fill strategy.
type Kind = filler.Kind

// Supported fill strategies.
const (
	Zeros    Kind = filler.Zeros
	Constant Kind = filler.Constant
	Uniform  Kind = filler.Uniform
	Normal   Kind = filler.Normal
)

// Apply fills t according to the spec, allocating it from the spec's shape
// if needed.
func Apply(s Spec, t *tensor.Tensor) error {
	return filler.Apply(s, t)
}
