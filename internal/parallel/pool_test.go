package parallel

import (
	"testing"
)

func TestBufferPoolCategories(t *testing.T) {
	tests := []struct {
		size int
		want BufferSize
	}{
		{0, SmallBuffer},
		{1024, SmallBuffer},
		{4 * 1024, MediumBuffer},
		{512 * 1024, MediumBuffer},
		{1024 * 1024, LargeBuffer},
	}

	for _, tt := range tests {
		if got := categorize(tt.size); got != tt.want {
			t.Errorf("categorize(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestBufferPoolMissOnSmallerBuffer(t *testing.T) {
	pool := NewBufferPool()

	pool.Release(make([]byte, 64))
	buf := pool.Acquire(128)
	if len(buf) != 128 {
		t.Fatalf("Acquire(128) returned %d bytes", len(buf))
	}

	_, _, hits, misses, pooled := pool.Stats()
	if hits != 0 || misses != 1 {
		t.Errorf("Expected 0 hits / 1 miss, got %d / %d", hits, misses)
	}
	if pooled != 1 {
		t.Errorf("Expected the small buffer to stay pooled, got %d", pooled)
	}
}

func TestBufferPoolLimit(t *testing.T) {
	pool := NewBufferPool()

	for i := 0; i < maxPoolSize+10; i++ {
		pool.Release(make([]byte, 16))
	}

	_, released, _, _, pooled := pool.Stats()
	if released != maxPoolSize+10 {
		t.Errorf("Expected %d releases, got %d", maxPoolSize+10, released)
	}
	if pooled != maxPoolSize {
		t.Errorf("Expected pool capped at %d, got %d", maxPoolSize, pooled)
	}

	pool.Clear()
	if _, _, _, _, pooled = pool.Stats(); pooled != 0 {
		t.Errorf("Expected empty pool after Clear, got %d", pooled)
	}
}

func TestBufferPoolDropsZeroCapacity(t *testing.T) {
	pool := NewBufferPool()

	for i := 0; i < maxPoolSize+1; i++ {
		pool.Release(make([]byte, 0))
	}

	_, released, _, _, pooled := pool.Stats()
	if released != maxPoolSize+1 {
		t.Errorf("Expected %d releases, got %d", maxPoolSize+1, released)
	}
	if pooled != 0 {
		t.Errorf("Expected zero-capacity buffers to be dropped, got %d pooled", pooled)
	}

	// The small class stays usable for real buffers.
	pool.Release(make([]byte, 64))
	if buf := pool.Acquire(64); len(buf) != 64 {
		t.Fatalf("Acquire(64) returned %d bytes", len(buf))
	}
	if _, _, hits, _, _ := pool.Stats(); hits != 1 {
		t.Errorf("Expected 1 hit, got %d", hits)
	}
}
