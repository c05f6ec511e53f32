package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Device represents the compute device holding a buffer.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted buffer. When the last reference is
// dropped the bytes go back through onRelease (if set) to their allocator.
type tensorBuffer struct {
	data      []byte
	refCount  atomic.Int32
	mu        sync.Mutex // For safe deallocation
	onRelease func([]byte)
}

// newTensorBuffer wraps data in a buffer with refCount = 1.
func newTensorBuffer(data []byte, onRelease func([]byte)) *tensorBuffer {
	buf := &tensorBuffer{
		data:      data,
		onRelease: onRelease,
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone operations).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) != 0 {
		return
	}
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if tb.onRelease != nil && tb.data != nil {
		tb.onRelease(tb.data)
	}
	tb.data = nil
}

// RawTensor is a type-erased flat row-major buffer with shape metadata.
// Kernels dispatch on DType() and reinterpret Data() through the As* accessors.
type RawTensor struct {
	buffer  *tensorBuffer
	shape   Shape
	offsets []int
	dtype   DataType
	device  Device
}

// NewRaw creates a new zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	data := make([]byte, shape.NumElements()*dtype.Size())
	return newRaw(data, shape, dtype, device, nil), nil
}

// NewRawFromBuffer wraps an externally allocated buffer. onRelease, if not
// nil, receives the bytes once the last reference is released.
func NewRawFromBuffer(data []byte, shape Shape, dtype DataType, device Device, onRelease func([]byte)) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if need := shape.NumElements() * dtype.Size(); len(data) < need {
		return nil, fmt.Errorf("buffer too small: %d bytes, shape %v of %s needs %d", len(data), shape, dtype, need)
	}
	return newRaw(data, shape, dtype, device, onRelease), nil
}

func newRaw(data []byte, shape Shape, dtype DataType, device Device, onRelease func([]byte)) *RawTensor {
	return &RawTensor{
		buffer:  newTensorBuffer(data, onRelease),
		shape:   shape.Clone(),
		offsets: shape.ComputeOffsets(),
		dtype:   dtype,
		device:  device,
	}
}

// FromSlice copies values into a new CPU RawTensor of the given shape.
func FromSlice[T DType](values []T, shape Shape) (*RawTensor, error) {
	raw, err := NewRaw(shape, TypeOf[T](), CPU)
	if err != nil {
		return nil, err
	}
	if len(values) != raw.NumElements() {
		return nil, fmt.Errorf("got %d values for shape %v (%d elements)", len(values), shape, raw.NumElements())
	}
	copy(As[T](raw), values)
	return raw, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Offsets returns the tensor's row-major offsets.
func (r *RawTensor) Offsets() []int {
	return r.offsets
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[:r.ByteSize()]
}

// As reinterprets the tensor's bytes as []T without copying.
// Panics if T does not match the tensor's dtype.
func As[T DType](r *RawTensor) []T {
	if want := TypeOf[T](); r.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.buffer.data[0])), n)
}

// AsInt32 interprets the data as []int32.
func (r *RawTensor) AsInt32() []int32 {
	return As[int32](r)
}

// AsInt64 interprets the data as []int64.
func (r *RawTensor) AsInt64() []int64 {
	return As[int64](r)
}

// AsFloat32 interprets the data as []float32.
func (r *RawTensor) AsFloat32() []float32 {
	return As[float32](r)
}

// AsFloat64 interprets the data as []float64.
func (r *RawTensor) AsFloat64() []float64 {
	return As[float64](r)
}

// AsComplex128 interprets the data as []complex128: interleaved
// (real, imaginary) float64 pairs.
func (r *RawTensor) AsComplex128() []complex128 {
	return As[complex128](r)
}

// Clone creates a shallow copy of the RawTensor sharing the same buffer.
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer:  r.buffer,
		shape:   r.shape.Clone(),
		offsets: append([]int(nil), r.offsets...),
		dtype:   r.dtype,
		device:  r.device,
	}
}

// Release decrements the reference count. The last release hands the buffer
// back to its allocator.
func (r *RawTensor) Release() {
	r.buffer.release()
}
