package tensor

import (
	"sync"
	"sync/atomic"
)

// Storage is a reference-counted byte buffer shared by every view of a tensor.
// Views created by Permute retain the same Storage; no bytes are copied.
type Storage struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newStorage creates a new buffer of size bytes with refCount = 1.
func newStorage(size int) *Storage {
	s := &Storage{
		data: make([]byte, size),
	}
	s.refCount.Store(1)
	return s
}

// Retain increments the reference count.
func (s *Storage) Retain() {
	s.refCount.Add(1)
}

// Release decrements the reference count and drops the buffer when it reaches 0.
func (s *Storage) Release() {
	if s.refCount.Add(-1) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.data = nil
	}
}

// Bytes returns the underlying buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (s *Storage) Bytes() []byte {
	return s.data
}

// Len returns the buffer size in bytes.
func (s *Storage) Len() int {
	return len(s.data)
}
