//go:build windows

package webgpu

import (
	"fmt"

	"github.com/born-ml/ndaxis/internal/tensor"
)

// SumAxis sums x along axis on the GPU. Only float32 is supported.
// keepDim keeps the reduced dimension with size 1.
func (b *Backend) SumAxis(x *tensor.RawTensor, axis int, keepDim bool) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("webgpu: sum: only float32 supported, got %s", x.DType()))
	}

	shape := x.Shape()
	rank := len(shape)
	dim, ok := tensor.NormalizeAxis(axis, rank)
	if !ok {
		panic(fmt.Sprintf("webgpu: sum: axis %d out of range for %dD tensor", axis, rank))
	}

	reduced := shape.Without(dim)
	outShape := reduced
	if keepDim {
		outShape = shape.WithDim(dim, 1)
	}

	outputSize := reduced.NumElements()
	if outputSize == 0 {
		return mustRaw(make([]byte, 0), outShape, tensor.Float32)
	}

	offsets := x.Offsets()
	geometry := append(toU32(offsets...), toU32(reduced.ComputeOffsets()...)...)

	out, err := b.run(launch{
		name:     "sumAxis",
		code:     sumAxisShader,
		input:    x.Data(),
		geometry: geometry,
		params:   toU32(outputSize, rank, dim, shape[dim], max(offsets[dim], 1)),
		outBytes: uint64(outputSize) * 4,
		threads:  outputSize,
	})
	if err != nil {
		panic(fmt.Sprintf("webgpu: sum: %v", err))
	}

	return mustRaw(out, outShape, tensor.Float32)
}

func mustRaw(data []byte, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRawFromBuffer(data, shape, dtype, tensor.WebGPU, nil)
	if err != nil {
		panic(fmt.Sprintf("webgpu: failed to create result tensor: %v", err))
	}
	return result
}
