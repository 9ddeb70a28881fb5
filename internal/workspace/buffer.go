package workspace

import (
	"fmt"

	"github.com/born-ml/forge/internal/tensor"
)

// A bufferPool is a bounded LIFO stack of reusable tensor names. Every name
// on the stack corresponds to a tensor the owning workspace's registry
// already holds; acquiring pops a name, releasing either pushes it back or,
// at capacity, resets the tensor through the registry.
type bufferPool struct {
	capacity int
	names    []string
}

func bufferTensorName(category string, i int) string {
	return fmt.Sprintf("_t_%s_buffer_%d", category, i)
}

// CreateBuffers creates the buffer category with n pre-created, pooled
// tensors. The tensors are named deterministically from the category and a
// 1-based index. Creating a category that already exists is a fatal
// KindDuplicateCategory error; note that Common and Grad exist on every
// workspace from construction.
//
// The pool's capacity is n, unless the workspace config lists the category
// with an explicit capacity.
func (w *Workspace) CreateBuffers(category string, n int) error {
	if _, ok := w.pools[category]; ok {
		return errorf(KindDuplicateCategory,
			"buffer category %q already exists in workspace %q", category, w.name)
	}
	capacity := n
	if c, ok := w.cfg.Buffers[category]; ok {
		capacity = c
	}
	p := &bufferPool{capacity: capacity, names: make([]string, 0, n)}
	for i := 1; i <= n; i++ {
		name := bufferTensorName(category, i)
		w.CreateTensor(name)
		p.names = append(p.names, name)
	}
	w.pools[category] = p
	return nil
}

// GetBuffer pops a pooled tensor from the category's stack. An empty (or
// unknown) category is a fatal KindExhausted error: pools have a fixed
// size and never grow on demand, so exhaustion means the caller acquired
// more scratch space than the category was provisioned for.
func (w *Workspace) GetBuffer(category string) (*tensor.Tensor, error) {
	p, ok := w.pools[category]
	if !ok || len(p.names) == 0 {
		return nil, errorf(KindExhausted,
			"buffers of category %q are exhausted in workspace %q", category, w.name)
	}
	name := p.names[len(p.names)-1]
	p.names = p.names[:len(p.names)-1]
	return w.tensors[name], nil
}

// ReleaseBuffer returns t to the category's pool. If the stack already
// holds capacity names, or force is set, the tensor is instead fully reset
// through ReleaseTensor: once the steady-state quota is pooled, extra
// returns release their storage rather than grow the pool without bound.
// An unknown category always takes the release path.
func (w *Workspace) ReleaseBuffer(t *tensor.Tensor, category string, force bool) error {
	p, ok := w.pools[category]
	if !ok || len(p.names) >= p.capacity || force {
		return w.ReleaseTensor(t.Name())
	}
	p.names = append(p.names, t.Name())
	return nil
}

// PooledBuffers returns how many tensors are currently pooled for the
// category.
func (w *Workspace) PooledBuffers(category string) int {
	p, ok := w.pools[category]
	if !ok {
		return 0
	}
	return len(p.names)
}
