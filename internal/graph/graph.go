package graph

import (
	"fmt"

	"github.com/born-ml/forge/internal/filler"
	"github.com/born-ml/forge/internal/tensor"
)

// Store is the slice of a workspace the executor needs: tensor resolution
// (hierarchical for inputs, local creation for outputs) and filler lookup.
type Store interface {
	CreateTensor(name string) *tensor.Tensor
	GetTensor(name string, remote bool) (*tensor.Tensor, error)
	GetFiller(name string) (filler.Spec, bool)
}

// Graph is an executable computation plan.
type Graph interface {
	// Name returns the name declared by the graph's definition.
	Name() string

	// Run executes the graph's operators in definition order.
	// include and exclude filter operators by their phase tag: a non-empty
	// include runs only operators whose phase is empty or equal to it, and
	// a non-empty exclude skips operators whose phase equals it.
	Run(include, exclude string) error
}

// New compiles a definition into an executable graph bound to the store.
// All operator types are resolved eagerly, so an unknown type fails at
// build time rather than on the first run.
func New(def *Definition, store Store) (Graph, error) {
	if def == nil || def.Name == "" {
		return nil, fmt.Errorf("graph definition must declare a name")
	}
	g := &sequential{name: def.Name, store: store}
	for _, opDef := range def.Ops {
		op, err := newOp(opDef)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", def.Name, err)
		}
		g.ops = append(g.ops, compiledOp{def: opDef, op: op})
	}
	return g, nil
}

type compiledOp struct {
	def OpDef
	op  Op
}

// sequential runs operators one after another on the caller's goroutine.
type sequential struct {
	name  string
	store Store
	ops   []compiledOp
}

func (g *sequential) Name() string {
	return g.name
}

func (g *sequential) Run(include, exclude string) error {
	for _, c := range g.ops {
		if !selected(c.def.Phase, include, exclude) {
			continue
		}
		inputs, err := g.resolveInputs(c.def)
		if err != nil {
			return fmt.Errorf("graph %q, op %q: %w", g.name, c.def.Name, err)
		}
		outputs := make([]*tensor.Tensor, len(c.def.Outputs))
		for i, name := range c.def.Outputs {
			outputs[i] = g.store.CreateTensor(name)
		}
		if err := c.op.Run(inputs, outputs); err != nil {
			return fmt.Errorf("graph %q, op %q: %w", g.name, c.def.Name, err)
		}
	}
	return nil
}

// resolveInputs fetches each input tensor, searching composed workspaces,
// and applies a registered filler to inputs that have no storage yet.
func (g *sequential) resolveInputs(def OpDef) ([]*tensor.Tensor, error) {
	inputs := make([]*tensor.Tensor, len(def.Inputs))
	for i, name := range def.Inputs {
		t, err := g.store.GetTensor(name, true)
		if err != nil {
			return nil, err
		}
		if !t.HasData() {
			if spec, ok := g.store.GetFiller(name); ok {
				if err := filler.Apply(spec, t); err != nil {
					return nil, err
				}
			}
		}
		inputs[i] = t
	}
	return inputs, nil
}

func selected(phase, include, exclude string) bool {
	if include != "" && phase != "" && phase != include {
		return false
	}
	if exclude != "" && phase != "" && phase == exclude {
		return false
	}
	return true
}
