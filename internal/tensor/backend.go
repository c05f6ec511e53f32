package tensor

// Backend defines the interface that compute backends implement.
//
// Implementations:
//   - CPU: pure Go, data-parallel over goroutines
//   - WebGPU: WGSL compute shaders (float32)
type Backend interface {
	// SumAxis sums along axis (negative counts from the end).
	// keepDim keeps the reduced dimension with size 1.
	SumAxis(x *RawTensor, axis int, keepDim bool) *RawTensor

	// FFT computes the discrete Fourier transform along axis with n samples
	// (n <= 0 means the input extent). The result is Complex128.
	FFT(x *RawTensor, n, axis int, inverse bool) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
