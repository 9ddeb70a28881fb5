// Package filler defines initialization specifications for workspace tensors.
//
// A Spec binds a tensor name to a fill strategy. Specs are registered on a
// workspace during graph construction and applied later, when the tensor is
// first materialized by the graph executor.
package filler

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/forge/internal/tensor"
)

// Kind selects the fill strategy.
type Kind int

// Supported fill strategies.
const (
	Zeros Kind = iota
	Constant
	Uniform
	Normal
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Zeros:
		return "zeros"
	case Constant:
		return "constant"
	case Uniform:
		return "uniform"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// Spec describes how to initialize one tensor.
//
// Tensor is the name of the tensor to fill and must be non-empty. Shape is
// used to allocate the tensor when it has no backing storage yet; a spec
// without a shape can only be applied to an already-allocated tensor.
type Spec struct {
	Tensor string
	Kind   Kind
	Shape  tensor.Shape

	// Value is the fill value for Constant.
	Value float32
	// Low and High bound the Uniform distribution.
	Low, High float32
	// Mean and Std parameterize the Normal distribution.
	Mean, Std float32
}

// Apply fills t according to the spec. If t has no backing storage, it is
// resized to the spec's shape first (float32 only). Tensors of other data
// types must be allocated by the caller before applying.
func Apply(s Spec, t *tensor.Tensor) error {
	if !t.HasData() {
		if s.Shape == nil {
			return fmt.Errorf("filler for %q: tensor is unallocated and spec has no shape", s.Tensor)
		}
		if err := t.Resize(s.Shape, tensor.Float32); err != nil {
			return fmt.Errorf("filler for %q: %w", s.Tensor, err)
		}
	}
	if t.DType() != tensor.Float32 {
		return fmt.Errorf("filler for %q: unsupported dtype %s", s.Tensor, t.DType())
	}

	data := t.Float32s()
	switch s.Kind {
	case Zeros:
		for i := range data {
			data[i] = 0
		}
	case Constant:
		for i := range data {
			data[i] = s.Value
		}
	case Uniform:
		for i := range data {
			data[i] = s.Low + rand.Float32()*(s.High-s.Low)
		}
	case Normal:
		for i := range data {
			data[i] = s.Mean + float32(rand.NormFloat64())*s.Std
		}
	default:
		return fmt.Errorf("filler for %q: unknown kind %d", s.Tensor, s.Kind)
	}
	return nil
}
