package workspace

import "sync"

// lockTable lazily creates one mutex per resolved tensor name. Get-or-create
// is atomic, so two goroutines asking for the same name always share a
// mutex. Entries are never removed; the table is bounded by the number of
// distinct tensor names seen over the workspace's lifetime.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (lt *lockTable) get(name string) *sync.Mutex {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	if lt.locks == nil {
		lt.locks = make(map[string]*sync.Mutex)
	}
	m, ok := lt.locks[name]
	if !ok {
		m = &sync.Mutex{}
		lt.locks[name] = m
	}
	return m
}

// LockTensor acquires the advisory lock for the resolved name, creating it
// on first use. The lock serializes access to the tensor's contents between
// a producer and its consumers; it does not protect the workspace indexes.
// Acquisition blocks without timeout.
func (w *Workspace) LockTensor(name string) {
	w.locks.get(w.ResolveName(name)).Lock()
}

// UnlockTensor releases the advisory lock for the resolved name.
func (w *Workspace) UnlockTensor(name string) {
	w.locks.get(w.ResolveName(name)).Unlock()
}

// WithTensorLock runs fn while holding the advisory lock for the resolved
// name. The lock is released on every exit path, including a panic in fn.
func (w *Workspace) WithTensorLock(name string, fn func() error) error {
	m := w.locks.get(w.ResolveName(name))
	m.Lock()
	defer m.Unlock()
	return fn()
}
