package workspace

import (
	"sort"

	"k8s.io/klog/v2"

	"github.com/born-ml/forge/internal/graph"
)

// CreateGraph builds an executable graph from def, bound to this workspace
// for tensor and filler resolution, and registers it under the definition's
// name. Registering a name twice replaces the earlier graph: last write
// wins.
func (w *Workspace) CreateGraph(def *graph.Definition) (graph.Graph, error) {
	g, err := graph.New(def, w)
	if err != nil {
		return nil, err
	}
	w.graphs[def.Name] = g
	return g, nil
}

// RunGraph executes the named graph with the given include/exclude phase
// filters and reports success. An unknown name is a recoverable condition:
// it is logged and RunGraph returns false rather than failing fatally, the
// caller decides what to do.
func (w *Workspace) RunGraph(name, include, exclude string) bool {
	if err := w.runGraph(name, include, exclude); err != nil {
		klog.Errorf("workspace %q: %v", w.name, err)
		return false
	}
	return true
}

func (w *Workspace) runGraph(name, include, exclude string) error {
	g, ok := w.graphs[name]
	if !ok {
		return errorf(KindUnknownGraph, "graph %q does not exist", name)
	}
	return g.Run(include, exclude)
}

// GraphNames returns the names of all registered graphs, sorted.
func (w *Workspace) GraphNames() []string {
	names := make([]string, 0, len(w.graphs))
	for name := range w.graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
