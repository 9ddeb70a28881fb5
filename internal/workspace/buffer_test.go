package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/forge/internal/tensor"
)

func TestCreateBuffersDuplicateCategory(t *testing.T) {
	w := New("W")

	// Grad exists on every workspace from construction.
	err := w.CreateBuffers(GradBufferCategory, 1)
	require.Error(t, err)
	assert.Equal(t, KindDuplicateCategory, KindOf(err))

	require.NoError(t, w.CreateBuffers("Scratch", 3))
	assert.Equal(t, 3, w.PooledBuffers("Scratch"))
}

func TestBufferNamesAreRegisteredTensors(t *testing.T) {
	w := New("W")
	require.NoError(t, w.CreateBuffers("Scratch", 2))

	assert.True(t, w.HasTensor("_t_Scratch_buffer_1", false))
	assert.True(t, w.HasTensor("_t_Scratch_buffer_2", false))
}

func TestBufferAcquireReleaseCycle(t *testing.T) {
	w := New("W")

	b1, err := w.GetBuffer(CommonBufferCategory)
	require.NoError(t, err)
	b2, err := w.GetBuffer(CommonBufferCategory)
	require.NoError(t, err)
	assert.NotSame(t, b1, b2)
	assert.Equal(t, 0, w.PooledBuffers(CommonBufferCategory))

	require.NoError(t, w.ReleaseBuffer(b1, CommonBufferCategory, false))
	require.NoError(t, w.ReleaseBuffer(b2, CommonBufferCategory, false))
	assert.Equal(t, 2, w.PooledBuffers(CommonBufferCategory))
}

func TestBufferReleaseAtCapacityResets(t *testing.T) {
	w := New("W")

	b1, err := w.GetBuffer(CommonBufferCategory)
	require.NoError(t, err)
	require.NoError(t, b1.Resize(tensor.Shape{8}, tensor.Float32))
	b2, err := w.GetBuffer(CommonBufferCategory)
	require.NoError(t, err)

	require.NoError(t, w.ReleaseBuffer(b1, CommonBufferCategory, false))
	require.NoError(t, w.ReleaseBuffer(b2, CommonBufferCategory, false))
	require.Equal(t, 2, w.PooledBuffers(CommonBufferCategory))

	// The pool is at capacity: a third return takes the destructive path.
	extra := w.CreateTensor("extra")
	require.NoError(t, extra.Resize(tensor.Shape{4}, tensor.Float32))
	require.NoError(t, w.ReleaseBuffer(extra, CommonBufferCategory, false))
	assert.Equal(t, 2, w.PooledBuffers(CommonBufferCategory))
	assert.Equal(t, 1, extra.ResetCount(), "over-capacity return resets the tensor")
	assert.False(t, extra.HasData())
}

func TestBufferReleaseForce(t *testing.T) {
	w := New("W")

	b, err := w.GetBuffer(GradBufferCategory)
	require.NoError(t, err)
	require.NoError(t, b.Resize(tensor.Shape{2}, tensor.Float32))

	require.NoError(t, w.ReleaseBuffer(b, GradBufferCategory, true))
	assert.Equal(t, 0, w.PooledBuffers(GradBufferCategory), "forced release never pools")
	assert.Equal(t, 1, b.ResetCount())
}

func TestBufferExhaustionIsFatal(t *testing.T) {
	w := New("W")

	b, err := w.GetBuffer(GradBufferCategory)
	require.NoError(t, err)
	require.NotNil(t, b)

	got, err := w.GetBuffer(GradBufferCategory)
	assert.Nil(t, got, "exhaustion never yields a zero handle")
	require.Error(t, err)
	assert.Equal(t, KindExhausted, KindOf(err))
	assert.True(t, KindOf(err).Fatal())
}

func TestBufferUnknownCategory(t *testing.T) {
	w := New("W")

	_, err := w.GetBuffer("NoSuch")
	assert.Equal(t, KindExhausted, KindOf(err))

	// Releasing into an unknown category falls back to a full release,
	// which requires local ownership.
	x := w.CreateTensor("x")
	require.NoError(t, x.Resize(tensor.Shape{2}, tensor.Float32))
	require.NoError(t, w.ReleaseBuffer(x, "NoSuch", false))
	assert.Equal(t, 1, x.ResetCount())
}

func TestConfiguredCapacities(t *testing.T) {
	cfg := Config{Buffers: map[string]int{"Common": 4, "Grad": 2}}
	w := NewWithConfig("W", cfg)

	assert.Equal(t, 4, w.PooledBuffers("Common"))
	assert.Equal(t, 2, w.PooledBuffers("Grad"))
}
