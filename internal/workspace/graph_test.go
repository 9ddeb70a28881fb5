package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/forge/internal/filler"
	"github.com/born-ml/forge/internal/graph"
	"github.com/born-ml/forge/internal/tensor"
)

func addGraphDef(name string) *graph.Definition {
	return &graph.Definition{
		Name: name,
		Ops: []graph.OpDef{
			{Type: "Add", Name: "add", Inputs: []string{"a", "b"}, Outputs: []string{"sum"}},
		},
	}
}

func TestRunGraphUnknownNameReturnsFalse(t *testing.T) {
	w := New("W")
	assert.False(t, w.RunGraph("missing", "", ""))
}

func TestCreateAndRunGraph(t *testing.T) {
	w := New("W")

	a := w.CreateTensor("a")
	require.NoError(t, a.Resize(tensor.Shape{3}, tensor.Float32))
	copy(a.Float32s(), []float32{1, 2, 3})
	b := w.CreateTensor("b")
	require.NoError(t, b.Resize(tensor.Shape{3}, tensor.Float32))
	copy(b.Float32s(), []float32{10, 20, 30})

	_, err := w.CreateGraph(addGraphDef("sum"))
	require.NoError(t, err)
	require.True(t, w.RunGraph("sum", "", ""))

	out, err := w.GetTensor("sum", false)
	require.NoError(t, err)
	assert.Equal(t, []float32{11, 22, 33}, out.Float32s())
}

func TestRunGraphFillsUninitializedInputs(t *testing.T) {
	w := New("W")

	require.NoError(t, w.CreateFiller(filler.Spec{
		Tensor: "a", Kind: filler.Constant, Shape: tensor.Shape{2}, Value: 2,
	}))
	require.NoError(t, w.CreateFiller(filler.Spec{
		Tensor: "b", Kind: filler.Constant, Shape: tensor.Shape{2}, Value: 5,
	}))
	w.CreateTensor("a")
	w.CreateTensor("b")

	_, err := w.CreateGraph(addGraphDef("sum"))
	require.NoError(t, err)
	require.True(t, w.RunGraph("sum", "", ""))

	out, err := w.GetTensor("sum", false)
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 7}, out.Float32s())
}

func TestRunGraphResolvesRemoteInputs(t *testing.T) {
	a := New("A")
	b := New("B")
	x := b.CreateTensor("a")
	require.NoError(t, x.Resize(tensor.Shape{2}, tensor.Float32))
	copy(x.Float32s(), []float32{1, 1})
	y := b.CreateTensor("b")
	require.NoError(t, y.Resize(tensor.Shape{2}, tensor.Float32))
	copy(y.Float32s(), []float32{2, 2})

	_, err := a.Attach(b)
	require.NoError(t, err)

	_, err = a.CreateGraph(addGraphDef("sum"))
	require.NoError(t, err)
	require.True(t, a.RunGraph("sum", "", ""))

	// The output is created locally even though the inputs are remote.
	out, err := a.GetTensor("sum", false)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 3}, out.Float32s())
}

func TestRunGraphMissingInputFails(t *testing.T) {
	w := New("W")
	_, err := w.CreateGraph(addGraphDef("sum"))
	require.NoError(t, err)

	// Inputs were never created anywhere; the run reports failure rather
	// than inventing tensors.
	assert.False(t, w.RunGraph("sum", "", ""))
}

func TestCreateGraphLastWriteWins(t *testing.T) {
	w := New("W")

	a := w.CreateTensor("a")
	require.NoError(t, a.Resize(tensor.Shape{1}, tensor.Float32))
	a.Float32s()[0] = 3

	_, err := w.CreateGraph(addGraphDef("g"))
	require.NoError(t, err)

	// Re-register the same name with a different body.
	_, err = w.CreateGraph(&graph.Definition{
		Name: "g",
		Ops: []graph.OpDef{
			{Type: "Scale", Name: "scale", Inputs: []string{"a"}, Outputs: []string{"out"},
				Args: map[string]float32{"scale": 10}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"g"}, w.GraphNames())

	require.True(t, w.RunGraph("g", "", ""))
	out, err := w.GetTensor("out", false)
	require.NoError(t, err)
	assert.Equal(t, []float32{30}, out.Float32s())
}

func TestRunGraphPhaseFilters(t *testing.T) {
	w := New("W")
	a := w.CreateTensor("a")
	require.NoError(t, a.Resize(tensor.Shape{1}, tensor.Float32))
	a.Float32s()[0] = 1

	def := &graph.Definition{
		Name: "g",
		Ops: []graph.OpDef{
			{Type: "Scale", Name: "train-scale", Inputs: []string{"a"}, Outputs: []string{"t"},
				Phase: "train", Args: map[string]float32{"scale": 2}},
			{Type: "Scale", Name: "eval-scale", Inputs: []string{"a"}, Outputs: []string{"e"},
				Phase: "eval", Args: map[string]float32{"scale": 3}},
		},
	}
	_, err := w.CreateGraph(def)
	require.NoError(t, err)

	require.True(t, w.RunGraph("g", "train", ""))
	trained, err := w.GetTensor("t", false)
	require.NoError(t, err)
	assert.Equal(t, []float32{2}, trained.Float32s())

	_, err = w.GetTensor("e", false)
	assert.Equal(t, KindNotFound, KindOf(err), "excluded op must not run")

	require.True(t, w.RunGraph("g", "", "train"))
	evalOut, err := w.GetTensor("e", false)
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, evalOut.Float32s())
}

func TestCreateGraphUnknownOpType(t *testing.T) {
	w := New("W")
	_, err := w.CreateGraph(&graph.Definition{
		Name: "bad",
		Ops:  []graph.OpDef{{Type: "NoSuchOp", Name: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator type")
}
