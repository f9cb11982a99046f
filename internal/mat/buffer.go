package mat

import (
	"sync"
	"sync/atomic"
)

// sharedBuffer is the reference-counted byte storage behind one or more Mat
// headers. Whole-array headers and region views may reference the same buffer
// concurrently; a mutation through one alias is visible through all others.
type sharedBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // for safe deallocation
}

// newSharedBuffer allocates a zeroed buffer with refCount = 1.
func newSharedBuffer(size int) *sharedBuffer {
	buf := &sharedBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (view/header construction).
func (sb *sharedBuffer) addRef() {
	if sb == nil {
		return
	}
	sb.refCount.Add(1)
}

// release decrements the reference count and drops the storage when it
// reaches zero. Safe to call on a nil buffer and idempotent once dropped.
func (sb *sharedBuffer) release() {
	if sb == nil {
		return
	}
	if sb.refCount.Add(-1) == 0 {
		sb.mu.Lock()
		defer sb.mu.Unlock()
		sb.data = nil
	}
}

// isUnique reports whether only one header references this buffer.
func (sb *sharedBuffer) isUnique() bool {
	return sb != nil && sb.refCount.Load() == 1
}
