package parallel

import "sync"

// BufferSize is the size class a host buffer is pooled under.
type BufferSize int

const (
	// SmallBuffer for buffers < 4KB.
	SmallBuffer BufferSize = iota
	// MediumBuffer for buffers 4KB-1MB.
	MediumBuffer
	// LargeBuffer for buffers >= 1MB.
	LargeBuffer

	numBufferSizes
)

const (
	smallThreshold  = 4 * 1024
	mediumThreshold = 1024 * 1024
	maxPoolSize     = 32 // per size class
)

// BufferPool recycles host byte buffers by size class. Kernel results are
// allocated here and come back through RawTensor.Release.
type BufferPool struct {
	mu    sync.Mutex
	free  [numBufferSizes][][]byte
	stats poolStats
}

type poolStats struct {
	allocated, released, hits, misses uint64
}

// NewBufferPool creates an empty buffer pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

// Acquire returns a zeroed buffer of exactly size bytes. A pooled buffer of
// the same class is reused when its capacity suffices.
func (p *BufferPool) Acquire(size int) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	class := categorize(size)
	for i, buf := range p.free[class] {
		if cap(buf) < size {
			continue
		}
		p.free[class] = append(p.free[class][:i], p.free[class][i+1:]...)
		p.stats.hits++
		buf = buf[:size]
		clear(buf)
		return buf
	}

	p.stats.misses++
	p.stats.allocated++
	return make([]byte, size)
}

// Release hands buf back for reuse. Buffers beyond a full class and
// zero-capacity buffers are dropped.
func (p *BufferPool) Release(buf []byte) {
	if buf == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.released++
	if cap(buf) == 0 {
		return
	}
	class := categorize(cap(buf))
	if len(p.free[class]) < maxPoolSize {
		p.free[class] = append(p.free[class], buf[:0])
	}
}

// Clear drops all pooled buffers.
func (p *BufferPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for class := range p.free {
		p.free[class] = nil
	}
}

// Stats returns allocation counters and the number of pooled buffers.
func (p *BufferPool) Stats() (allocated, released, hits, misses uint64, pooledCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, bufs := range p.free {
		pooledCount += len(bufs)
	}
	return p.stats.allocated, p.stats.released, p.stats.hits, p.stats.misses, pooledCount
}

func categorize(size int) BufferSize {
	switch {
	case size < smallThreshold:
		return SmallBuffer
	case size < mediumThreshold:
		return MediumBuffer
	default:
		return LargeBuffer
	}
}
