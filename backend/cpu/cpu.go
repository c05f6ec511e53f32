// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndaxis/internal/backend/cpu"
	"github.com/born-ml/ndaxis/internal/parallel"
	"github.com/born-ml/ndaxis/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// Config controls data-parallel dispatch.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// DefaultConfig returns the dispatch configuration derived from the host CPU.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// WithConfig overrides the dispatch configuration.
func WithConfig(cfg Config) Option {
	return internalcpu.WithConfig(cfg)
}

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndaxis/backend/cpu"
//	    "github.com/born-ml/ndaxis/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4})
//	    spectrum := backend.FFT(x, 0, 0, false)
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}
