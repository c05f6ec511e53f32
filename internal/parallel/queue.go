package parallel

// Queue is the host device: it allocates buffers and runs batches of work
// items asynchronously. Each batch has one join point, Event.Wait.
//
// A Queue is safe for concurrent use.
type Queue struct {
	cfg  Config
	pool *BufferPool
}

// NewQueue creates a queue that dispatches with cfg.
func NewQueue(cfg Config) *Queue {
	return &Queue{
		cfg:  cfg,
		pool: NewBufferPool(),
	}
}

// Config returns the dispatch configuration.
func (q *Queue) Config() Config {
	return q.cfg
}

// Pool returns the queue's buffer pool.
func (q *Queue) Pool() *BufferPool {
	return q.pool
}

// Alloc returns a zeroed buffer of n bytes.
func (q *Queue) Alloc(n int) []byte {
	return q.pool.Acquire(n)
}

// Free hands a buffer obtained from Alloc back to the queue.
func (q *Queue) Free(buf []byte) {
	q.pool.Release(buf)
}

// Submit schedules f(i) for every i in [0, n) and returns immediately.
// Work items must not write shared state other than their own output slot.
func (q *Queue) Submit(n int, f func(i int)) *Event {
	return q.SubmitChunked(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	})
}

// SubmitChunked schedules f over contiguous chunks of [0, n), see ForChunk.
func (q *Queue) SubmitChunked(n int, f func(start, end int)) *Event {
	ev := &Event{done: make(chan struct{})}
	if n <= 0 {
		close(ev.done)
		return ev
	}

	go func() {
		defer close(ev.done)
		ForChunk(n, f, q.cfg)
	}()
	return ev
}

// Event tracks a submitted batch.
type Event struct {
	done chan struct{}
}

// Wait blocks until every work item of the batch has completed.
func (e *Event) Wait() {
	<-e.done
}

// Done returns a channel closed when the batch completes.
func (e *Event) Done() <-chan struct{} {
	return e.done
}
