//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend: float32 axis sums and the
// axis-wise DFT as WGSL compute shaders.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndaxis/backend/cpu"
//	    "github.com/born-ml/ndaxis/backend/webgpu"
//	    "github.com/born-ml/ndaxis/tensor"
//	)
//
//	func main() {
//	    var backend tensor.Backend = cpu.New()
//	    if webgpu.IsAvailable() {
//	        gpu, err := webgpu.New()
//	        if err == nil {
//	            defer gpu.Release()
//	            backend = gpu
//	        }
//	    }
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/ndaxis/internal/backend/webgpu"
	"github.com/born-ml/ndaxis/tensor"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// Call Release() when done to free GPU resources.
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
