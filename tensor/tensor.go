// Copyright 2025 Forge ML Runtime. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the named tensor resources
// managed by Forge workspaces.
//
// A tensor is a named, resettable unit of storage. It starts unallocated,
// gains backing storage on Resize, and can be Reset back to the unallocated
// state without losing its identity. Workspaces own tensors; see the
// workspace package.
//
// Example:
//
//	t := tensor.New("weights")
//	if err := t.Resize(tensor.Shape{2, 3}, tensor.Float32); err != nil {
//	    ...
//	}
//	data := t.Float32s()
package tensor

import (
	"github.com/born-ml/forge/internal/tensor"
)

// Tensor is a named, resettable data resource.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// New creates an empty tensor with the given name.
// No storage is allocated until Resize is called.
func New(name string) *Tensor {
	return tensor.New(name)
}
