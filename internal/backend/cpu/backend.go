// Package cpu implements the CPU backend: axis reductions and the axis-wise
// discrete Fourier transform, dispatched data-parallel over goroutines.
package cpu

import (
	"fmt"

	"github.com/born-ml/ndaxis/internal/cpuinfo"
	"github.com/born-ml/ndaxis/internal/parallel"
	"github.com/born-ml/ndaxis/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device   tensor.Device
	queue    *parallel.Queue
	features cpuinfo.Features
}

// Option configures a CPUBackend.
type Option func(*backendOptions)

type backendOptions struct {
	cfg parallel.Config
}

// WithConfig overrides the parallel dispatch configuration.
func WithConfig(cfg parallel.Config) Option {
	return func(o *backendOptions) {
		o.cfg = cfg
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	o := backendOptions{cfg: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	return &CPUBackend{
		device:   tensor.CPU,
		queue:    parallel.NewQueue(o.cfg),
		features: cpuinfo.Detect(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return fmt.Sprintf("CPU [%s]", cpu.features)
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Queue returns the queue kernels are dispatched on.
func (cpu *CPUBackend) Queue() *parallel.Queue {
	return cpu.queue
}

// Features returns the detected host CPU features.
func (cpu *CPUBackend) Features() cpuinfo.Features {
	return cpu.features
}

// newResult allocates a zeroed result tensor from the queue's pool.
// Releasing the tensor returns the bytes to the pool.
func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	buf := cpu.queue.Alloc(shape.NumElements() * dtype.Size())
	result, err := tensor.NewRawFromBuffer(buf, shape, dtype, cpu.device, cpu.queue.Free)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
