package cpu

import (
	"fmt"

	"github.com/born-ml/ndaxis/internal/parallel"
	"github.com/born-ml/ndaxis/internal/tensor"
)

// ReduceAxis folds every fiber of v with op, starting each fiber from init,
// and writes one value per output index into dst.
//
// One work item owns one output index, so op sees no shared accumulator.
// Without an active axis the whole buffer is folded into dst[0].
func ReduceAxis[T any](q *parallel.Queue, v *tensor.View[T], init T, op func(acc, x T) T, dst []T) {
	reduceFibers(q, v, dst, func(it, end tensor.Iterator[T]) T {
		acc := init
		for ; !it.Equal(end); it.Next() {
			acc = op(acc, it.Value())
		}
		return acc
	})
}

// reduceFibers runs fold over [Begin(o), End(o)) for each output index o.
func reduceFibers[T any](q *parallel.Queue, v *tensor.View[T], dst []T, fold func(it, end tensor.Iterator[T]) T) {
	n := v.OutputSize()
	if _, ok := v.Axis(); !ok {
		n = 1
	}
	if len(dst) < n {
		panic(fmt.Sprintf("reduce: destination holds %d values, need %d", len(dst), n))
	}

	q.Submit(n, func(o int) {
		dst[o] = fold(v.Begin(o), v.End(o))
	}).Wait()
}

func sumFibers[T tensor.DType](q *parallel.Queue, v *tensor.View[T], dst []T) {
	ReduceAxis(q, v, T(0), func(acc, x T) T { return acc + x }, dst)
}

func prodFibers[T tensor.DType](q *parallel.Queue, v *tensor.View[T], dst []T) {
	ReduceAxis(q, v, T(1), func(acc, x T) T { return acc * x }, dst)
}

func minFibers[T tensor.Real](q *parallel.Queue, v *tensor.View[T], dst []T) {
	reduceFibers(q, v, dst, func(it, end tensor.Iterator[T]) T {
		acc := it.Value()
		for it.Next(); !it.Equal(end); it.Next() {
			acc = min(acc, it.Value())
		}
		return acc
	})
}

func maxFibers[T tensor.Real](q *parallel.Queue, v *tensor.View[T], dst []T) {
	reduceFibers(q, v, dst, func(it, end tensor.Iterator[T]) T {
		acc := it.Value()
		for it.Next(); !it.Equal(end); it.Next() {
			acc = max(acc, it.Value())
		}
		return acc
	})
}

type reduceOp int

const (
	reduceSum reduceOp = iota
	reduceProd
	reduceMin
	reduceMax
)

func (op reduceOp) String() string {
	switch op {
	case reduceSum:
		return "sum"
	case reduceProd:
		return "prod"
	case reduceMin:
		return "min"
	default:
		return "max"
	}
}

// SumAxis sums tensor elements along the specified axis.
//
// Parameters:
//   - axis: axis to reduce (supports negative indexing: -1 = last axis)
//   - keepDim: if true, keep the reduced axis with size 1; if false, remove it
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := backend.SumAxis(x, 0, false)  // [5 7 9], shape: [3]
//	z := backend.SumAxis(x, -1, true)  // [6 15], shape: [2, 1]
func (cpu *CPUBackend) SumAxis(x *tensor.RawTensor, axis int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceAxis(x, axis, keepDim, reduceSum)
}

// ProdAxis multiplies tensor elements along the specified axis.
func (cpu *CPUBackend) ProdAxis(x *tensor.RawTensor, axis int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceAxis(x, axis, keepDim, reduceProd)
}

// MinAxis returns the minimum along the specified axis.
// Panics on a zero-length axis: the reduction has no identity.
func (cpu *CPUBackend) MinAxis(x *tensor.RawTensor, axis int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceAxis(x, axis, keepDim, reduceMin)
}

// MaxAxis returns the maximum along the specified axis.
// Panics on a zero-length axis: the reduction has no identity.
func (cpu *CPUBackend) MaxAxis(x *tensor.RawTensor, axis int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceAxis(x, axis, keepDim, reduceMax)
}

// MeanAxis computes the mean along the specified axis (float32/float64 only).
func (cpu *CPUBackend) MeanAxis(x *tensor.RawTensor, axis int, keepDim bool) *tensor.RawTensor {
	sumResult := cpu.SumAxis(x, axis, keepDim)

	// Normalize negative axis for division
	axis, _ = tensor.NormalizeAxis(axis, len(x.Shape()))
	divisor := float64(x.Shape()[axis])

	switch sumResult.DType() {
	case tensor.Float32:
		data := sumResult.AsFloat32()
		divisorF32 := float32(divisor)
		for i := range data {
			data[i] /= divisorF32
		}
	case tensor.Float64:
		data := sumResult.AsFloat64()
		for i := range data {
			data[i] /= divisor
		}
	default:
		panic(fmt.Sprintf("mean: unsupported dtype %s (only float32/float64 supported)", sumResult.DType()))
	}

	return sumResult
}

// Sum computes the total sum of all elements (scalar result) by walking the
// flattened buffer without an axis.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sum", tensor.Shape{}, x.DType())
	shape := x.Shape()

	switch x.DType() {
	case tensor.Int32:
		sumFibers(cpu.queue, tensor.NewView(x.AsInt32(), shape), result.AsInt32())
	case tensor.Int64:
		sumFibers(cpu.queue, tensor.NewView(x.AsInt64(), shape), result.AsInt64())
	case tensor.Float32:
		sumFibers(cpu.queue, tensor.NewView(x.AsFloat32(), shape), result.AsFloat32())
	case tensor.Float64:
		sumFibers(cpu.queue, tensor.NewView(x.AsFloat64(), shape), result.AsFloat64())
	case tensor.Complex128:
		sumFibers(cpu.queue, tensor.NewView(x.AsComplex128(), shape), result.AsComplex128())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

func (cpu *CPUBackend) reduceAxis(x *tensor.RawTensor, axis int, keepDim bool, op reduceOp) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	dim, ok := tensor.NormalizeAxis(axis, ndim)
	if !ok {
		panic(fmt.Sprintf("%s: axis %d out of range for %dD tensor", op, axis, ndim))
	}
	if (op == reduceMin || op == reduceMax) && shape[dim] == 0 {
		panic(fmt.Sprintf("%s: zero-size axis %d has no identity", op, dim))
	}

	// Calculate output shape
	var outShape tensor.Shape
	if keepDim {
		outShape = shape.WithDim(dim, 1)
	} else {
		outShape = shape.Without(dim)
	}

	result := cpu.newResult(op.String(), outShape, x.DType())

	switch x.DType() {
	case tensor.Int32:
		reduceReal(cpu.queue, tensor.NewAxisView(x.AsInt32(), shape, dim), result.AsInt32(), op)
	case tensor.Int64:
		reduceReal(cpu.queue, tensor.NewAxisView(x.AsInt64(), shape, dim), result.AsInt64(), op)
	case tensor.Float32:
		reduceReal(cpu.queue, tensor.NewAxisView(x.AsFloat32(), shape, dim), result.AsFloat32(), op)
	case tensor.Float64:
		reduceReal(cpu.queue, tensor.NewAxisView(x.AsFloat64(), shape, dim), result.AsFloat64(), op)
	case tensor.Complex128:
		v := tensor.NewAxisView(x.AsComplex128(), shape, dim)
		switch op {
		case reduceSum:
			sumFibers(cpu.queue, v, result.AsComplex128())
		case reduceProd:
			prodFibers(cpu.queue, v, result.AsComplex128())
		default:
			panic(fmt.Sprintf("%s: unsupported dtype %s (complex values are unordered)", op, x.DType()))
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

func reduceReal[T tensor.Real](q *parallel.Queue, v *tensor.View[T], dst []T, op reduceOp) {
	switch op {
	case reduceSum:
		sumFibers(q, v, dst)
	case reduceProd:
		prodFibers(q, v, dst)
	case reduceMin:
		minFibers(q, v, dst)
	case reduceMax:
		maxFibers(q, v, dst)
	}
}
