// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndaxis/internal/tensor"

// Backend defines the interface that compute backends implement.
//
// Implementations:
//   - backend/cpu: Pure Go, data-parallel over goroutines
//   - backend/webgpu: WGSL compute shaders via WebGPU (float32, Windows)
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndaxis/backend/cpu"
//	    "github.com/born-ml/ndaxis/tensor"
//	)
//
//	var backend tensor.Backend = cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	rows := backend.SumAxis(x, 1, false) // [3, 7]
type Backend = tensor.Backend
