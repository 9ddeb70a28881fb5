// Copyright 2025 Forge ML Runtime. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package workspace provides the public API for the Forge resource
// workspace: a runtime container that owns named tensors, recycles
// temporary buffers across graph executions, resolves names across
// composed workspaces, and indexes executable graphs.
//
// Example:
//
//	ws := workspace.New("train")
//	x := ws.CreateTensor("x")
//	buf, err := ws.GetBuffer(workspace.CommonBufferCategory)
//	...
//	ws.ReleaseBuffer(buf, workspace.CommonBufferCategory, false)
//
// Index-mutating operations assume a single logical owner goroutine; the
// per-tensor advisory lock (LockTensor, WithTensorLock) is the only
// primitive offered for cross-goroutine coordination.
package workspace

import (
	"github.com/born-ml/forge/internal/workspace"
)

// Workspace owns named tensors, buffer pools, graphs, fillers, and aliases.
type Workspace = workspace.Workspace

// Config carries construction parameters for a workspace.
type Config = workspace.Config

// Error is a structured workspace error carrying its kind.
type Error = workspace.Error

// Kind classifies workspace errors; fatal kinds mark programmer errors,
// recoverable kinds expected runtime misses.
type Kind = workspace.Kind

// Workspace error kinds.
const (
	KindNotFound          Kind = workspace.KindNotFound
	KindExhausted         Kind = workspace.KindExhausted
	KindInvalidOwnership  Kind = workspace.KindInvalidOwnership
	KindDuplicateCategory Kind = workspace.KindDuplicateCategory
	KindInvalidFiller     Kind = workspace.KindInvalidFiller
	KindInvalidWorkspace  Kind = workspace.KindInvalidWorkspace
	KindUnknownGraph      Kind = workspace.KindUnknownGraph
)

// Buffer categories seeded into every workspace, and the sentinel tensor.
const (
	CommonBufferCategory = workspace.CommonBufferCategory
	GradBufferCategory   = workspace.GradBufferCategory
	SentinelTensor       = workspace.SentinelTensor
)

// New constructs a workspace with the default buffer categories.
func New(name string) *Workspace {
	return workspace.New(name)
}

// NewWithConfig constructs a workspace seeded per cfg.
func NewWithConfig(name string, cfg Config) *Workspace {
	return workspace.NewWithConfig(name, cfg)
}

// DefaultConfig returns the standard seeded buffer categories.
func DefaultConfig() Config {
	return workspace.DefaultConfig()
}

// LoadConfig reads a workspace configuration from a TOML file.
func LoadConfig(path string) (Config, error) {
	return workspace.LoadConfig(path)
}

// KindOf returns the kind of err, or 0 if err is not a workspace error.
func KindOf(err error) Kind {
	return workspace.KindOf(err)
}
