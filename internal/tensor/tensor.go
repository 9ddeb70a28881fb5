package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor is a named, resettable data resource.
//
// A tensor is created empty (no backing storage) and allocates storage on
// the first Resize. Reset drops the backing storage but keeps the tensor's
// identity, so registry entries and outstanding names stay valid across
// release/reuse cycles. The workspace that created a tensor owns it; handles
// returned by a workspace are borrowed references whose lifetime is bounded
// by the workspace's lifetime.
type Tensor struct {
	name   string
	shape  Shape
	dtype  DataType
	data   []byte
	resets int
}

// New creates an empty tensor with the given name.
// No storage is allocated until Resize is called.
func New(name string) *Tensor {
	return &Tensor{name: name, dtype: Float32}
}

// Name returns the tensor's stable name.
func (t *Tensor) Name() string {
	return t.name
}

// Shape returns the tensor's current shape.
// An unallocated tensor has a nil shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// NumElements returns the total number of elements, or 0 if unallocated.
func (t *Tensor) NumElements() int {
	if t.data == nil {
		return 0
	}
	return t.shape.NumElements()
}

// ByteSize returns the size of the backing storage in bytes.
func (t *Tensor) ByteSize() int {
	return len(t.data)
}

// HasData reports whether the tensor has allocated backing storage.
func (t *Tensor) HasData() bool {
	return t.data != nil
}

// Resize allocates (or reallocates) backing storage for the given shape and
// data type. Existing contents are discarded when the byte size changes.
func (t *Tensor) Resize(shape Shape, dtype DataType) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("tensor %q: invalid shape: %w", t.name, err)
	}
	byteSize := shape.NumElements() * dtype.Size()
	if len(t.data) != byteSize {
		t.data = make([]byte, byteSize)
	}
	t.shape = shape.Clone()
	t.dtype = dtype
	return nil
}

// Reset releases the backing storage but keeps the tensor's name and
// identity. Typed views obtained before Reset must not be used afterwards.
func (t *Tensor) Reset() {
	t.data = nil
	t.shape = nil
	t.resets++
}

// ResetCount returns how many times the tensor has been reset.
// Useful for observing the destructive path of buffer recycling.
func (t *Tensor) ResetCount() int {
	return t.resets
}

// Data returns the raw byte slice backing the tensor, or nil if unallocated.
func (t *Tensor) Data() []byte {
	return t.data
}

// Float32s interprets the data as []float32.
// Panics if the tensor is unallocated or its dtype is not Float32.
func (t *Tensor) Float32s() []float32 {
	t.checkView(Float32)
	return unsafe.Slice((*float32)(unsafe.Pointer(&t.data[0])), t.shape.NumElements())
}

// Float64s interprets the data as []float64.
// Panics if the tensor is unallocated or its dtype is not Float64.
func (t *Tensor) Float64s() []float64 {
	t.checkView(Float64)
	return unsafe.Slice((*float64)(unsafe.Pointer(&t.data[0])), t.shape.NumElements())
}

// Int32s interprets the data as []int32.
// Panics if the tensor is unallocated or its dtype is not Int32.
func (t *Tensor) Int32s() []int32 {
	t.checkView(Int32)
	return unsafe.Slice((*int32)(unsafe.Pointer(&t.data[0])), t.shape.NumElements())
}

// Int64s interprets the data as []int64.
// Panics if the tensor is unallocated or its dtype is not Int64.
func (t *Tensor) Int64s() []int64 {
	t.checkView(Int64)
	return unsafe.Slice((*int64)(unsafe.Pointer(&t.data[0])), t.shape.NumElements())
}

// Uint8s interprets the data as []uint8.
// Panics if the tensor is unallocated or its dtype is not Uint8.
func (t *Tensor) Uint8s() []uint8 {
	t.checkView(Uint8)
	return t.data
}

func (t *Tensor) checkView(want DataType) {
	if t.data == nil {
		panic(fmt.Sprintf("tensor %q has no backing storage", t.name))
	}
	if t.dtype != want {
		panic(fmt.Sprintf("tensor %q dtype is %s, not %s", t.name, t.dtype, want))
	}
}

// String returns a compact description like tensor("x", float32, [2 3]).
func (t *Tensor) String() string {
	if t.data == nil {
		return fmt.Sprintf("tensor(%q, unallocated)", t.name)
	}
	return fmt.Sprintf("tensor(%q, %s, %s)", t.name, t.dtype, t.shape)
}
