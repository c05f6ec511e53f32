package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/ndaxis/internal/parallel"
	"github.com/born-ml/ndaxis/internal/tensor"
)

// sampler loads element i of a source buffer as a (real, imaginary) pair.
type sampler func(i int) (re, im float64)

func realSampler[T tensor.Real](src []T) sampler {
	return func(i int) (float64, float64) {
		return float64(src[i]), 0
	}
}

func complexSampler(src []complex128) sampler {
	return func(i int) (float64, float64) {
		c := src[i]
		return real(c), imag(c)
	}
}

// kernelKey selects a DFT kernel by (input, output) element type.
type kernelKey struct {
	in, out tensor.DataType
}

// dftKernels maps every supported dtype pair to its sampler constructor.
// The output is always Complex128.
var dftKernels map[kernelKey]func(x *tensor.RawTensor) sampler

func init() {
	dftKernels = map[kernelKey]func(x *tensor.RawTensor) sampler{
		{tensor.Int32, tensor.Complex128}: func(x *tensor.RawTensor) sampler {
			return realSampler(x.AsInt32())
		},
		{tensor.Int64, tensor.Complex128}: func(x *tensor.RawTensor) sampler {
			return realSampler(x.AsInt64())
		},
		{tensor.Float32, tensor.Complex128}: func(x *tensor.RawTensor) sampler {
			return realSampler(x.AsFloat32())
		},
		{tensor.Float64, tensor.Complex128}: func(x *tensor.RawTensor) sampler {
			return realSampler(x.AsFloat64())
		},
		{tensor.Complex128, tensor.Complex128}: func(x *tensor.RawTensor) sampler {
			return complexSampler(x.AsComplex128())
		},
	}
}

// SupportsDFT reports whether a DFT kernel is registered for input dtype.
func SupportsDFT(dtype tensor.DataType) bool {
	_, ok := dftKernels[kernelKey{dtype, tensor.Complex128}]
	return ok
}

// dftParams is the geometry of one transform.
type dftParams struct {
	inShape    tensor.Shape
	inOffsets  []int
	outOffsets []int
	axis       int
	boundary   int
	inverse    bool
}

// DFT computes the naive O(n²) discrete Fourier transform of x along axis and
// stores it in dst, laid out row-major with outShape.
//
// boundary is the number of samples taken along the axis: samples past the
// input extent read as zero, a boundary shorter than the extent truncates.
// The inverse transform is scaled by 1/boundary.
//
// A zero-size outShape or rank 0 is a no-op; dst is left untouched.
// Shape mismatches, a bad axis or an unsupported dtype panic before any work
// is dispatched.
func (cpu *CPUBackend) DFT(dst []complex128, x *tensor.RawTensor, outShape tensor.Shape, axis, boundary int, inverse bool) {
	size := outShape.NumElements()
	if size == 0 || len(outShape) == 0 {
		return
	}

	inShape := x.Shape()
	if len(inShape) != len(outShape) {
		panic(fmt.Sprintf("dft: rank mismatch: input %v, output %v", inShape, outShape))
	}
	if axis < 0 || axis >= len(outShape) {
		panic(fmt.Sprintf("dft: axis %d out of range for %dD tensor", axis, len(outShape)))
	}
	for d := range outShape {
		if d != axis && outShape[d] != inShape[d] {
			panic(fmt.Sprintf("dft: output %v differs from input %v outside axis %d", outShape, inShape, axis))
		}
	}
	if len(dst) < size {
		panic(fmt.Sprintf("dft: destination holds %d values, output %v needs %d", len(dst), outShape, size))
	}

	newSampler, ok := dftKernels[kernelKey{x.DType(), tensor.Complex128}]
	if !ok {
		panic(fmt.Sprintf("dft: unsupported dtype %s", x.DType()))
	}

	dft(cpu.queue, newSampler(x), dst[:size], dftParams{
		inShape:    inShape,
		inOffsets:  x.Offsets(),
		outOffsets: outShape.ComputeOffsets(),
		axis:       axis,
		boundary:   boundary,
		inverse:    inverse,
	})
}

// FFT transforms x along axis with n samples and returns a new Complex128
// tensor whose axis extent is n. n <= 0 uses the input extent; axis may be
// negative.
func (cpu *CPUBackend) FFT(x *tensor.RawTensor, n, axis int, inverse bool) *tensor.RawTensor {
	shape := x.Shape()
	dim, ok := tensor.NormalizeAxis(axis, len(shape))
	if !ok {
		panic(fmt.Sprintf("fft: axis %d out of range for %dD tensor", axis, len(shape)))
	}
	if n <= 0 {
		n = shape[dim]
	}

	outShape := shape.WithDim(dim, n)
	result := cpu.newResult("fft", outShape, tensor.Complex128)
	cpu.DFT(result.AsComplex128(), x, outShape, dim, n, inverse)
	return result
}

// dft runs one work item per output element. Every chunk owns its coordinate
// scratch, so no two work items share mutable state.
func dft(q *parallel.Queue, at sampler, dst []complex128, p dftParams) {
	rank := len(p.outOffsets)
	inExtent := p.inShape[p.axis]
	boundary := float64(p.boundary)

	kernelPi := math.Pi
	if p.inverse {
		kernelPi = -math.Pi
	}

	q.SubmitChunked(len(dst), func(start, end int) {
		xyz := make([]int, rank)
		axisIt := make([]int, rank)

		for k := start; k < end; k++ {
			tensor.ToMultiIndex(k, p.outOffsets, xyz)
			copy(axisIt, xyz)
			outputLocal := float64(xyz[p.axis])

			var sumRe, sumIm float64
			for t := 0; t < p.boundary; t++ {
				var inRe, inIm float64

				axisIt[p.axis] = t
				if t < inExtent {
					inRe, inIm = at(tensor.ToLinearIndex(axisIt, p.inOffsets))
				}

				angle := 2.0 * kernelPi * float64(t) * outputLocal / boundary
				cos, sin := math.Cos(angle), math.Sin(angle)

				sumRe += inRe*cos + inIm*sin
				sumIm += -inRe*sin + inIm*cos
			}

			if p.inverse {
				sumRe /= boundary
				sumIm /= boundary
			}

			dst[k] = complex(sumRe, sumIm)
		}
	}).Wait()
}
