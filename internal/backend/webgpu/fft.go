//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/born-ml/ndaxis/internal/tensor"
)

// FFT computes the naive discrete Fourier transform of x along axis with n
// samples (n <= 0 uses the input extent). The shader accumulates in float32;
// the result is widened to Complex128 so it matches the CPU backend's dtype.
func (b *Backend) FFT(x *tensor.RawTensor, n, axis int, inverse bool) *tensor.RawTensor {
	shape := x.Shape()
	rank := len(shape)
	dim, ok := tensor.NormalizeAxis(axis, rank)
	if !ok {
		panic(fmt.Sprintf("webgpu: fft: axis %d out of range for %dD tensor", axis, rank))
	}
	if n <= 0 {
		n = shape[dim]
	}

	outShape := shape.WithDim(dim, n)
	size := outShape.NumElements()
	if size == 0 {
		return mustRaw(make([]byte, 0), outShape, tensor.Complex128)
	}

	input, err := complexPairs(x)
	if err != nil {
		panic(fmt.Sprintf("webgpu: fft: %v", err))
	}

	inv := 0
	if inverse {
		inv = 1
	}

	out, err := b.run(launch{
		name:     "dft",
		code:     dftShader,
		input:    input,
		geometry: append(toU32(outShape.ComputeOffsets()...), toU32(x.Offsets()...)...),
		params:   toU32(size, rank, dim, n, shape[dim], inv),
		outBytes: uint64(size) * 8,
		threads:  size,
	})
	if err != nil {
		panic(fmt.Sprintf("webgpu: fft: %v", err))
	}

	result := mustRaw(make([]byte, size*tensor.Complex128.Size()), outShape, tensor.Complex128)
	dst := result.AsComplex128()
	for i := range dst {
		re := math.Float32frombits(binary.LittleEndian.Uint32(out[8*i:]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(out[8*i+4:]))
		dst[i] = complex(float64(re), float64(im))
	}
	return result
}

// complexPairs packs x as interleaved float32 (re, im) pairs.
func complexPairs(x *tensor.RawTensor) ([]byte, error) {
	n := x.NumElements()
	out := make([]byte, 8*n)
	put := func(i int, re, im float64) {
		binary.LittleEndian.PutUint32(out[8*i:], math.Float32bits(float32(re)))
		binary.LittleEndian.PutUint32(out[8*i+4:], math.Float32bits(float32(im)))
	}

	switch x.DType() {
	case tensor.Int32:
		for i, v := range x.AsInt32() {
			put(i, float64(v), 0)
		}
	case tensor.Int64:
		for i, v := range x.AsInt64() {
			put(i, float64(v), 0)
		}
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			put(i, float64(v), 0)
		}
	case tensor.Float64:
		for i, v := range x.AsFloat64() {
			put(i, v, 0)
		}
	case tensor.Complex128:
		for i, v := range x.AsComplex128() {
			put(i, real(v), imag(v))
		}
	default:
		return nil, fmt.Errorf("unsupported dtype %s", x.DType())
	}
	return out, nil
}
