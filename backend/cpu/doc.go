// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for axis reductions and the
// axis-wise discrete Fourier transform.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Reductions along any axis (sum, prod, min, max, mean)
//   - Naive O(n²) DFT along any axis with zero-padding and truncation
//   - Data-parallel dispatch, one work item per output element
//
// # Basic Usage
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	cols := backend.SumAxis(x, 0, false) // [5, 7, 9]
//	spectrum := backend.FFT(x, 4, -1, false)
//
// # Configuration
//
// Dispatch is configured with WithConfig:
//
//	backend := cpu.New(cpu.WithConfig(cpu.Config{Enabled: false}))
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation allocates its
// own result and per-chunk scratch.
package cpu
