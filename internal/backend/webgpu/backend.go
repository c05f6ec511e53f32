//go:build windows

// Package webgpu implements the WebGPU backend: float32 axis sums and the
// axis-wise DFT as WGSL compute shaders, one invocation per output element.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/born-ml/ndaxis/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
	"k8s.io/klog/v2"
)

// Backend runs tensor kernels on a WebGPU device.
// Every operation blocks until its result has been read back to host memory.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	info     *wgpu.AdapterInfoGo

	mu      sync.RWMutex
	kernels map[string]kernel
}

// New opens the default high-performance adapter.
// Returns an error if WebGPU is not available or initialization fails.
func New() (backend *Backend, err error) {
	// wgpu panics when the native library cannot be loaded.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	b := &Backend{kernels: make(map[string]kernel)}
	if openErr := b.open(); openErr != nil {
		b.Release()
		return nil, openErr
	}
	return b, nil
}

func (b *Backend) open() error {
	var err error
	if b.instance, err = wgpu.CreateInstance(nil); err != nil {
		return fmt.Errorf("webgpu: create instance: %w", err)
	}
	b.adapter, err = b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("webgpu: request adapter: %w", err)
	}

	if info, infoErr := b.adapter.GetInfo(); infoErr != nil {
		klog.Warningf("webgpu: adapter info unavailable: %v", infoErr)
	} else {
		b.info = info
	}

	if b.device, err = b.adapter.RequestDevice(nil); err != nil {
		return fmt.Errorf("webgpu: request device: %w", err)
	}
	if b.queue = b.device.GetQueue(); b.queue == nil {
		return fmt.Errorf("webgpu: device has no queue")
	}
	return nil
}

// Release frees the device and every cached kernel. The backend must not be
// used afterwards.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, k := range b.kernels {
		k.release()
	}
	b.kernels = nil

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// Name returns the backend name with the adapter, when known.
func (b *Backend) Name() string {
	if b.info == nil {
		return "WebGPU"
	}
	return fmt.Sprintf("WebGPU (%s %s)", b.info.Vendor, b.info.Device)
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// AdapterInfo returns information about the GPU adapter, or nil.
func (b *Backend) AdapterInfo() *wgpu.AdapterInfoGo {
	return b.info
}

// IsAvailable reports whether an adapter can be opened on this system.
func IsAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			klog.V(2).Infof("webgpu: native library not available: %v", r)
			available = false
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		klog.V(2).Infof("webgpu: create instance: %v", err)
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		klog.V(2).Infof("webgpu: no adapter: %v", err)
		return false
	}
	adapter.Release()
	return true
}
