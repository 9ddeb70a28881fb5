// Package workspace implements the Forge runtime resource workspace: a
// container that owns named tensors, recycles temporary buffers across
// graph executions, resolves names across composed workspaces, and indexes
// executable graphs.
//
// Index-mutating operations (tensor creation, alias definition, buffer
// push/pop, graph registration) assume a single logical owner and are not
// internally synchronized. The per-name tensor lock (LockTensor) is the one
// primitive offered for cross-thread coordination; it serializes access to
// a tensor's contents, not to the workspace's indexes.
package workspace

import (
	"sort"

	"k8s.io/klog/v2"

	"github.com/born-ml/forge/internal/filler"
	"github.com/born-ml/forge/internal/graph"
	"github.com/born-ml/forge/internal/tensor"
)

// SentinelTensor is the always-present tensor every workspace seeds.
// Operators use it as a sink for outputs they are told to discard.
const SentinelTensor = "ignore"

// Workspace owns named tensors, buffer pools, graphs, fillers, and aliases.
//
// A workspace may compose other workspaces ("remotes"): lookups that miss
// locally fan out through the composition in attach order. Composition is
// non-owning, so the same remote may be referenced from many parents; only
// read operations (existence, fetch) are defined against remotes, mutation
// is always local.
type Workspace struct {
	name string
	cfg  Config

	renames    map[string]string
	tensors    map[string]*tensor.Tensor
	localOrder []string

	remotes      []*Workspace
	remoteByName map[string]*Workspace

	pools   map[string]*bufferPool
	locks   lockTable
	graphs  map[string]graph.Graph
	fillers map[string]filler.Spec
}

// New constructs a workspace with the default buffer categories.
func New(name string) *Workspace {
	return NewWithConfig(name, DefaultConfig())
}

// NewWithConfig constructs a workspace seeded with the sentinel tensor and
// one buffer category per entry in cfg.Buffers.
func NewWithConfig(name string, cfg Config) *Workspace {
	w := &Workspace{
		name:         name,
		cfg:          cfg,
		renames:      make(map[string]string),
		tensors:      make(map[string]*tensor.Tensor),
		remoteByName: make(map[string]*Workspace),
		pools:        make(map[string]*bufferPool),
		graphs:       make(map[string]graph.Graph),
		fillers:      make(map[string]filler.Spec),
	}
	w.CreateTensor(SentinelTensor)

	categories := make([]string, 0, len(cfg.Buffers))
	for c := range cfg.Buffers {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		// Cannot collide on a fresh workspace.
		_ = w.CreateBuffers(c, cfg.Buffers[c])
	}
	klog.V(2).Infof("workspace %q created with buffer categories %v", name, categories)
	return w
}

// Name returns the workspace's name.
func (w *Workspace) Name() string {
	return w.name
}

// Attach composes ws into this workspace for remote lookups. Attachment is
// idempotent by name: if a workspace with the same name is already
// composed, the incumbent is returned and ws is ignored. The composition
// does not own ws.
func (w *Workspace) Attach(ws *Workspace) (*Workspace, error) {
	if ws == nil {
		return nil, errorf(KindInvalidWorkspace, "cannot attach a nil workspace to %q", w.name)
	}
	if existing, ok := w.remoteByName[ws.Name()]; ok {
		return existing, nil
	}
	w.remoteByName[ws.Name()] = ws
	w.remotes = append(w.remotes, ws)
	return ws, nil
}

// CreateAlias makes future lookups of from redirect to to, overwriting any
// prior mapping for from. Resolution is a single hop and never chains:
// every public operation resolves exactly once before touching a registry.
func (w *Workspace) CreateAlias(from, to string) {
	w.renames[from] = to
}

// ResolveName applies the alias table to name. If no alias is defined the
// name is returned unchanged.
func (w *Workspace) ResolveName(name string) string {
	if target, ok := w.renames[name]; ok {
		return target
	}
	return name
}

// HasTensor reports whether the resolved name exists locally, or, when
// remote is true, anywhere in the composed hierarchy.
func (w *Workspace) HasTensor(name string, remote bool) bool {
	return w.hasTensor(w.ResolveName(name), remote, make(map[*Workspace]bool))
}

func (w *Workspace) hasTensor(query string, remote bool, seen map[*Workspace]bool) bool {
	if seen[w] {
		return false
	}
	seen[w] = true
	if _, ok := w.tensors[query]; ok {
		return true
	}
	if !remote {
		return false
	}
	for _, r := range w.remotes {
		if r.hasTensor(query, true, seen) {
			return true
		}
	}
	return false
}

// CreateTensor returns the local tensor for the resolved name, creating an
// empty one if absent. Creation never consults remotes: a name that only
// exists remotely is still created locally, shadowing the remote entry.
func (w *Workspace) CreateTensor(name string) *tensor.Tensor {
	query := w.ResolveName(name)
	t, ok := w.tensors[query]
	if !ok {
		t = tensor.New(query)
		w.tensors[query] = t
		w.localOrder = append(w.localOrder, query)
	}
	return t
}

// GetTensor fetches the tensor for the resolved name, local-first. When
// remote is true a local miss fans out through the composition in attach
// order, recursing into each remote's own search; the first match wins.
// A miss everywhere is a fatal KindNotFound error: the tensor must exist
// before it can be fetched.
func (w *Workspace) GetTensor(name string, remote bool) (*tensor.Tensor, error) {
	query := w.ResolveName(name)
	if t := w.getTensor(query, remote, make(map[*Workspace]bool)); t != nil {
		return t, nil
	}
	return nil, errorf(KindNotFound,
		"tensor %q does not exist in workspace %q or its composed workspaces", name, w.name)
}

func (w *Workspace) getTensor(query string, remote bool, seen map[*Workspace]bool) *tensor.Tensor {
	if seen[w] {
		return nil
	}
	seen[w] = true
	if t, ok := w.tensors[query]; ok {
		return t
	}
	if remote {
		for _, r := range w.remotes {
			if t := r.getTensor(query, true, seen); t != nil {
				return t
			}
		}
	}
	return nil
}

// ReleaseTensor resets the backing storage of a locally owned tensor. The
// registry entry and name binding stay alive; outstanding handles observe
// the reset rather than becoming dangling. Releasing a tensor this
// workspace does not own locally is a fatal KindInvalidOwnership error,
// remote release is disallowed.
func (w *Workspace) ReleaseTensor(name string) error {
	query := w.ResolveName(name)
	t, ok := w.tensors[query]
	if !ok {
		return errorf(KindInvalidOwnership,
			"tensor %q does not belong to workspace %q, cannot release it", name, w.name)
	}
	t.Reset()
	return nil
}

// TensorNames returns local tensor names in creation order followed by the
// names of every composed workspace, depth-first. Names are not
// deduplicated across workspaces; each workspace is visited at most once
// per call.
func (w *Workspace) TensorNames() []string {
	return w.tensorNames(make(map[*Workspace]bool))
}

func (w *Workspace) tensorNames(seen map[*Workspace]bool) []string {
	if seen[w] {
		return nil
	}
	seen[w] = true
	names := make([]string, 0, len(w.localOrder))
	names = append(names, w.localOrder...)
	for _, r := range w.remotes {
		names = append(names, r.tensorNames(seen)...)
	}
	return names
}

// CreateFiller registers an initialization spec for a tensor name. The
// first spec for a name wins; later definitions for the same name are
// silently dropped so repeated graph-construction passes stay idempotent.
// A spec without a tensor name is a fatal KindInvalidFiller error.
func (w *Workspace) CreateFiller(spec filler.Spec) error {
	if spec.Tensor == "" {
		return errorf(KindInvalidFiller, "filler spec has no tensor name")
	}
	if _, ok := w.fillers[spec.Tensor]; ok {
		return nil
	}
	w.fillers[spec.Tensor] = spec
	return nil
}

// GetFiller returns the filler spec registered for name, if any.
func (w *Workspace) GetFiller(name string) (filler.Spec, bool) {
	spec, ok := w.fillers[name]
	return spec, ok
}
