// Package graph provides executable computation graphs built from immutable
// definitions. A graph resolves its operand tensors through a workspace-like
// store, applies registered fillers to uninitialized inputs, and runs its
// operators in definition order with include/exclude phase filtering.
package graph

// OpDef describes one operator in a graph definition.
//
// Phase tags the operator for include/exclude filtering at run time
// (for example "train" or "eval"). An empty phase means the operator runs
// under any include filter.
type OpDef struct {
	Type    string
	Name    string
	Inputs  []string
	Outputs []string
	Phase   string
	Args    map[string]float32
}

// Definition is an immutable description of a computation graph.
// Graphs are built from a definition once and keyed by its Name.
type Definition struct {
	Name string
	Ops  []OpDef
}
