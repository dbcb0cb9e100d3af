package pool

import "sync"

// SegmentPool manages reusable read buffers of a fixed capacity, one per
// in-flight computation. Reuse keeps peak memory at a single segment
// regardless of how many chunks a computation reads.
type SegmentPool struct {
	size int       // Capacity of each segment buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new pool whose buffers hold up to size bytes each.
func NewSegmentPool(size int) *SegmentPool {
	return &SegmentPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a segment buffer from the pool.
func (sp *SegmentPool) Get() []byte {
	return *(sp.pool.Get().(*[]byte))
}

// Returns a segment buffer to the pool.
func (sp *SegmentPool) Put(buf []byte) {
	// Don't pool buffers from a differently sized configuration.
	if cap(buf) != sp.size {
		return
	}

	buf = buf[:cap(buf)]
	sp.pool.Put(&buf)
}
