// Copyright 2025 Forge ML Runtime. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for executable computation graphs.
//
// A Definition is an immutable description of a graph: a name and an
// ordered operator list. Workspaces compile definitions into executable
// graphs (workspace.CreateGraph) and run them by name with include/exclude
// phase filters (workspace.RunGraph).
//
// Custom operators register a Factory under a type name:
//
//	graph.Register("Relu", func(def graph.OpDef) (graph.Op, error) {
//	    ...
//	})
package graph

import (
	"github.com/born-ml/forge/internal/graph"
)

// OpDef describes one operator in a graph definition.
type OpDef = graph.OpDef

// Definition is an immutable description of a computation graph.
type Definition = graph.Definition

// Graph is an executable computation plan.
type Graph = graph.Graph

// Op is a single executable operator.
type Op = graph.Op

// Factory builds an operator from its definition.
type Factory = graph.Factory

// Store is the workspace surface a graph resolves its tensors through.
type Store = graph.Store

// Register adds an operator factory under the given type name.
// Later registrations for the same type replace earlier ones.
func Register(opType string, f Factory) {
	graph.Register(opType, f)
}

// New compiles a definition into an executable graph bound to the store.
// Most callers go through workspace.CreateGraph instead.
func New(def *Definition, store Store) (Graph, error) {
	return graph.New(def, store)
}
