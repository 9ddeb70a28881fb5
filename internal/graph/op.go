package graph

import (
	"fmt"

	"github.com/born-ml/forge/internal/tensor"
)

// Op is a single executable operator.
type Op interface {
	// Run computes outputs from inputs. Inputs are resolved and filled by
	// the executor before the call; outputs are created but may be
	// unallocated, so operators resize them as needed.
	Run(inputs, outputs []*tensor.Tensor) error
}

// Factory builds an operator from its definition.
type Factory func(def OpDef) (Op, error)

var opRegistry = map[string]Factory{}

// Register adds an operator factory under the given type name.
// Later registrations for the same type replace earlier ones.
func Register(opType string, f Factory) {
	opRegistry[opType] = f
}

func newOp(def OpDef) (Op, error) {
	f, ok := opRegistry[def.Type]
	if !ok {
		return nil, fmt.Errorf("unknown operator type %q (op %q)", def.Type, def.Name)
	}
	return f(def)
}

func init() {
	Register("Copy", func(def OpDef) (Op, error) {
		if len(def.Inputs) != 1 || len(def.Outputs) != 1 {
			return nil, fmt.Errorf("Copy op %q: want 1 input and 1 output", def.Name)
		}
		return opFunc(func(in, out []*tensor.Tensor) error {
			if err := out[0].Resize(in[0].Shape(), in[0].DType()); err != nil {
				return err
			}
			copy(out[0].Data(), in[0].Data())
			return nil
		}), nil
	})

	Register("Add", func(def OpDef) (Op, error) {
		if len(def.Inputs) != 2 || len(def.Outputs) != 1 {
			return nil, fmt.Errorf("Add op %q: want 2 inputs and 1 output", def.Name)
		}
		return opFunc(func(in, out []*tensor.Tensor) error {
			a, b := in[0], in[1]
			if !a.Shape().Equal(b.Shape()) {
				return fmt.Errorf("Add: shape mismatch %s vs %s", a.Shape(), b.Shape())
			}
			if err := out[0].Resize(a.Shape(), tensor.Float32); err != nil {
				return err
			}
			av, bv, ov := a.Float32s(), b.Float32s(), out[0].Float32s()
			for i := range ov {
				ov[i] = av[i] + bv[i]
			}
			return nil
		}), nil
	})

	Register("Scale", func(def OpDef) (Op, error) {
		if len(def.Inputs) != 1 || len(def.Outputs) != 1 {
			return nil, fmt.Errorf("Scale op %q: want 1 input and 1 output", def.Name)
		}
		scale, ok := def.Args["scale"]
		if !ok {
			scale = 1
		}
		return opFunc(func(in, out []*tensor.Tensor) error {
			if err := out[0].Resize(in[0].Shape(), tensor.Float32); err != nil {
				return err
			}
			iv, ov := in[0].Float32s(), out[0].Float32s()
			for i := range ov {
				ov[i] = scale * iv[i]
			}
			return nil
		}), nil
	})
}

// opFunc adapts a function to the Op interface.
type opFunc func(inputs, outputs []*tensor.Tensor) error

func (f opFunc) Run(inputs, outputs []*tensor.Tensor) error {
	return f(inputs, outputs)
}
