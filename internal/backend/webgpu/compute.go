//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// kernel is a compiled shader with its pipeline.
type kernel struct {
	module   *wgpu.ShaderModule
	pipeline *wgpu.ComputePipeline
}

func (k kernel) release() {
	k.pipeline.Release()
	k.module.Release()
}

// kernelFor returns the cached kernel for name, compiling code on first use.
func (b *Backend) kernelFor(name, code string) kernel {
	b.mu.RLock()
	k, ok := b.kernels[name]
	b.mu.RUnlock()
	if ok {
		return k
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if k, ok := b.kernels[name]; ok {
		return k
	}
	module := b.device.CreateShaderModuleWGSL(code)
	k = kernel{
		module:   module,
		pipeline: b.device.CreateComputePipelineSimple(nil, module, "main"),
	}
	b.kernels[name] = k
	return k
}

// upload creates a mapped-at-creation buffer of at least size bytes holding data.
func (b *Backend) upload(data []byte, usage wgpu.BufferUsage, size uint64) *wgpu.Buffer {
	buf := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	//nolint:gosec // mapped range is size bytes long
	copy(unsafe.Slice((*byte)(buf.GetMappedRange(0, size)), size), data)
	buf.Unmap()
	return buf
}

// download copies size bytes of src back to host memory through a staging buffer.
func (b *Backend) download(src *wgpu.Buffer, size uint64) ([]byte, error) {
	staging := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}
	defer staging.Unmap()

	out := make([]byte, size)
	//nolint:gosec // mapped range is size bytes long
	copy(out, unsafe.Slice((*byte)(staging.GetMappedRange(0, size)), size))
	return out, nil
}

// launch describes one dispatch with one invocation per output element.
// Bindings: 0 input, 1 output, 2 geometry (u32 storage), 3 params (uniform).
type launch struct {
	name     string
	code     string
	input    []byte
	geometry []uint32
	params   []uint32
	outBytes uint64
	threads  int
}

// storageSize pads n to a legal storage binding size.
func storageSize(n int) uint64 {
	return uint64(max(n, 16))
}

// uniformSize rounds n up to the 16-byte uniform alignment.
func uniformSize(n int) uint64 {
	return (uint64(n) + 15) &^ 15
}

// run executes l and returns the output bytes.
func (b *Backend) run(l launch) ([]byte, error) {
	k := b.kernelFor(l.name, l.code)

	geometry := u32Bytes(l.geometry)
	params := u32Bytes(l.params)
	storage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc

	input := b.upload(l.input, storage, storageSize(len(l.input)))
	defer input.Release()
	geom := b.upload(geometry, storage, storageSize(len(geometry)))
	defer geom.Release()
	uniform := b.upload(params, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst, uniformSize(len(params)))
	defer uniform.Release()

	output := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: storage | wgpu.BufferUsageCopyDst,
		Size:  l.outBytes,
	})
	defer output.Release()

	group := b.device.CreateBindGroupSimple(k.pipeline.GetBindGroupLayout(0), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, input, 0, storageSize(len(l.input))),
		wgpu.BufferBindingEntry(1, output, 0, l.outBytes),
		wgpu.BufferBindingEntry(2, geom, 0, storageSize(len(geometry))),
		wgpu.BufferBindingEntry(3, uniform, 0, uniformSize(len(params))),
	})
	defer group.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(k.pipeline)
	pass.SetBindGroup(0, group, nil)
	//nolint:gosec // G115: thread count is a positive element count
	pass.DispatchWorkgroups(uint32((l.threads+workgroupSize-1)/workgroupSize), 1, 1)
	pass.End()
	b.queue.Submit(encoder.Finish(nil))

	return b.download(output, l.outBytes)
}

func u32Bytes(values []uint32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}

// toU32 converts non-negative geometry values for upload.
func toU32(values ...int) []uint32 {
	out := make([]uint32, len(values))
	for i, v := range values {
		//nolint:gosec // G115: shapes and offsets are validated non-negative
		out[i] = uint32(v)
	}
	return out
}
