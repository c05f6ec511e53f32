//go:build windows

package webgpu

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/born-ml/ndaxis/internal/backend/cpu"
	"github.com/born-ml/ndaxis/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	t.Cleanup(backend.Release)
	return backend
}

func TestIsAvailable(t *testing.T) {
	t.Logf("WebGPU available: %v", IsAvailable())
}

func TestNew(t *testing.T) {
	backend := newTestBackend(t)

	assert.NotEmpty(t, backend.Name())
	assert.Equal(t, tensor.WebGPU, backend.Device())

	var info *wgpu.AdapterInfoGo = backend.AdapterInfo()
	if info != nil {
		t.Logf("Using GPU: %s (%s)", info.Device, info.Vendor)
	}
	t.Logf("Backend name: %s", backend.Name())
}

func TestBackendInterface(t *testing.T) {
	backend := newTestBackend(t)
	var _ tensor.Backend = backend
}

func TestSumAxis_MatchesCPU(t *testing.T) {
	backend := newTestBackend(t)
	host := cpu.New()

	for _, shape := range []tensor.Shape{{2, 3, 4}, {3, 4}, {5}, {1, 1, 1}, {2, 3, 4, 2}} {
		values := make([]float32, shape.NumElements())
		for i := range values {
			values[i] = float32(i + 1)
		}
		x, err := tensor.FromSlice(values, shape)
		require.NoError(t, err)

		for axis := range shape {
			want := host.SumAxis(x, axis, false)
			got := backend.SumAxis(x, axis, false)

			require.True(t, want.Shape().Equal(got.Shape()), "shape %v axis %d", shape, axis)
			assert.InDeltaSlice(t, toFloat64(want.AsFloat32()), toFloat64(got.AsFloat32()), 1e-3, "shape %v axis %d", shape, axis)
		}
	}
}

func TestSumAxis_KeepDim(t *testing.T) {
	backend := newTestBackend(t)
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	result := backend.SumAxis(x, -1, true)
	assert.True(t, result.Shape().Equal(tensor.Shape{2, 1}))
	assert.Equal(t, []float32{6, 15}, result.AsFloat32())
}

func TestSumAxis_RejectsFloat64(t *testing.T) {
	backend := newTestBackend(t)
	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	assert.Panics(t, func() { backend.SumAxis(x, 0, false) })
}

func TestFFT_MatchesCPU(t *testing.T) {
	backend := newTestBackend(t)
	host := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, tensor.Shape{3, 4})
	require.NoError(t, err)

	for _, tc := range []struct {
		n, axis int
		inverse bool
	}{
		{0, 0, false},
		{0, 1, false},
		{6, 1, false},
		{2, 0, false},
		{0, 1, true},
	} {
		want := host.FFT(x, tc.n, tc.axis, tc.inverse).AsComplex128()
		got := backend.FFT(x, tc.n, tc.axis, tc.inverse).AsComplex128()

		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, real(want[i]), real(got[i]), 1e-3, "%+v re[%d]", tc, i)
			assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-3, "%+v im[%d]", tc, i)
		}
	}
}

func TestFFT_LongAxisPhase(t *testing.T) {
	if testing.Short() {
		t.Skip("long transform")
	}
	backend := newTestBackend(t)

	// An impulse at t0 transforms to exp(-2πi·t0·k/n). With n > 65536,
	// t0·k exceeds the u32 range for the last bins.
	const n = 70000
	const t0 = n - 1
	values := make([]float32, n)
	values[t0] = 1
	x, err := tensor.FromSlice(values, tensor.Shape{n})
	require.NoError(t, err)

	got := backend.FFT(x, 0, 0, false).AsComplex128()
	require.Len(t, got, n)

	for _, k := range []int{1, 2, n / 2, n - 2, n - 1} {
		want := cmplx.Exp(complex(0, -2*math.Pi*float64((t0*k)%n)/n))
		assert.InDelta(t, real(want), real(got[k]), 1e-3, "re[%d]", k)
		assert.InDelta(t, imag(want), imag(got[k]), 1e-3, "im[%d]", k)
	}
}

func toFloat64(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
