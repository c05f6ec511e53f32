// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fft computes discrete Fourier transforms along one axis of an
// N-dimensional tensor.
//
// The transform is the direct O(n²) sum, so any length and any axis work.
// The number of samples n taken along the axis may differ from the input
// extent: shorter truncates, longer zero-pads. Results are always Complex128.
//
// Sign convention (numpy.fft): the forward transform is
//
//	X[k] = Σ x[t]·exp(-2πi·t·k/n)
//
// and the inverse uses exp(+2πi·t·k/n) scaled by 1/n.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4})
//	spectrum, err := fft.FFT(x, 0, -1) // [10, -2+2i, -2, -2-2i]
//	back, err := fft.IFFT(spectrum, 0, -1)
package fft

import (
	"sync"

	"github.com/born-ml/ndaxis/internal/backend/cpu"
	"github.com/born-ml/ndaxis/tensor"
	"github.com/pkg/errors"
)

var defaultBackend = sync.OnceValue(func() *cpu.CPUBackend {
	return cpu.New()
})

// FFT computes the forward transform of x along axis with n samples.
// n <= 0 uses the input extent; a negative axis counts from the end.
func FFT(x *tensor.RawTensor, n, axis int) (*tensor.RawTensor, error) {
	return transform(x, n, axis, false)
}

// IFFT computes the inverse transform of x along axis with n samples,
// scaled by 1/n.
func IFFT(x *tensor.RawTensor, n, axis int) (*tensor.RawTensor, error) {
	return transform(x, n, axis, true)
}

func transform(x *tensor.RawTensor, n, axis int, inverse bool) (*tensor.RawTensor, error) {
	if x == nil {
		return nil, ErrNilBuffer
	}
	shape := x.Shape()
	dim, ok := tensor.NormalizeAxis(axis, len(shape))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAxis, "axis %d for %dD tensor", axis, len(shape))
	}
	if n <= 0 {
		n = shape[dim]
	}

	outShape := shape.WithDim(dim, n)
	if err := Validate(x, outShape, dim, n); err != nil {
		return nil, err
	}

	return defaultBackend().FFT(x, n, dim, inverse), nil
}

// Transform writes the transform of x along axis into dst, laid out
// row-major with outShape. boundary is the number of samples taken along
// the axis.
//
// A zero-size outShape or rank 0 is a no-op: dst is left untouched and the
// error is nil.
func Transform(dst []complex128, x *tensor.RawTensor, outShape tensor.Shape, axis, boundary int, inverse bool) error {
	if err := Validate(x, outShape, axis, boundary); err != nil {
		return err
	}
	size := outShape.NumElements()
	if size == 0 || len(outShape) == 0 {
		return nil
	}
	if dst == nil {
		return ErrNilBuffer
	}
	if len(dst) < size {
		return errors.Wrapf(ErrInvalidLength, "destination holds %d values, output %v needs %d", len(dst), outShape, size)
	}

	defaultBackend().DFT(dst, x, outShape, axis, boundary, inverse)
	return nil
}

// Validate checks the preconditions of a transform of x into outShape along
// axis with boundary samples. Degenerate outputs always validate.
func Validate(x *tensor.RawTensor, outShape tensor.Shape, axis, boundary int) error {
	if x == nil {
		return ErrNilBuffer
	}
	if !cpu.SupportsDFT(x.DType()) {
		return errors.Wrapf(ErrUnsupportedType, "dtype %s", x.DType())
	}
	if err := outShape.Validate(); err != nil {
		return errors.Wrap(ErrShapeMismatch, err.Error())
	}
	if outShape.NumElements() == 0 || len(outShape) == 0 {
		return nil
	}

	inShape := x.Shape()
	if len(inShape) != len(outShape) {
		return errors.Wrapf(ErrShapeMismatch, "input %v, output %v", inShape, outShape)
	}
	if axis < 0 || axis >= len(outShape) {
		return errors.Wrapf(ErrInvalidAxis, "axis %d for %dD tensor", axis, len(outShape))
	}
	for d := range outShape {
		if d != axis && outShape[d] != inShape[d] {
			return errors.Wrapf(ErrShapeMismatch, "output %v differs from input %v outside axis %d", outShape, inShape, axis)
		}
	}
	if boundary < 1 {
		return errors.Wrapf(ErrInvalidLength, "boundary %d", boundary)
	}
	return nil
}
