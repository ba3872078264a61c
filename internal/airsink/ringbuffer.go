package airsink

import (
	"errors"
	"sync"
)

// ErrBufferClosed is returned after Close.
var ErrBufferClosed = errors.New("ring buffer is closed")

// TsRingBuffer is the bounded fan-out buffer between the sink's MPEG-TS
// output and downstream consumers. Single producer, single consumer. When
// full, the oldest chunks are dropped and the dropped-byte counter advances;
// the producer never blocks.
//
// Chunk payloads are opaque byte slices. The buffer never inspects TS
// packets.
type TsRingBuffer struct {
	mu       sync.Mutex
	notEmpty *sync.Cond

	chunks   [][]byte
	sizeB    int64
	maxB     int64
	droppedB int64
	closed   bool
}

// NewTsRingBuffer creates a buffer bounded to maxBytes.
func NewTsRingBuffer(maxBytes int64) *TsRingBuffer {
	rb := &TsRingBuffer{maxB: maxBytes}
	rb.notEmpty = sync.NewCond(&rb.mu)
	return rb
}

// Write appends one chunk, evicting the oldest chunks as needed to stay
// within the byte bound. A chunk larger than the whole buffer replaces its
// entire contents. Write never blocks.
func (rb *TsRingBuffer) Write(chunk []byte) error {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if rb.closed {
		return ErrBufferClosed
	}

	owned := make([]byte, len(chunk))
	copy(owned, chunk)

	for len(rb.chunks) > 0 && rb.sizeB+int64(len(owned)) > rb.maxB {
		oldest := rb.chunks[0]
		rb.chunks = rb.chunks[1:]
		rb.sizeB -= int64(len(oldest))
		rb.droppedB += int64(len(oldest))
	}
	rb.chunks = append(rb.chunks, owned)
	rb.sizeB += int64(len(owned))
	rb.notEmpty.Signal()
	return nil
}

// Read removes and returns the oldest chunk, blocking until one is available
// or the buffer is closed. A closed buffer drains remaining chunks before
// returning ErrBufferClosed.
func (rb *TsRingBuffer) Read() ([]byte, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for len(rb.chunks) == 0 {
		if rb.closed {
			return nil, ErrBufferClosed
		}
		rb.notEmpty.Wait()
	}
	chunk := rb.chunks[0]
	rb.chunks = rb.chunks[1:]
	rb.sizeB -= int64(len(chunk))
	return chunk, nil
}

// TryRead is the non-blocking form of Read.
func (rb *TsRingBuffer) TryRead() ([]byte, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if len(rb.chunks) == 0 {
		return nil, false
	}
	chunk := rb.chunks[0]
	rb.chunks = rb.chunks[1:]
	rb.sizeB -= int64(len(chunk))
	return chunk, true
}

// Reset discards all buffered chunks without closing the buffer. The
// dropped-byte counter is cumulative and survives a reset.
func (rb *TsRingBuffer) Reset() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.chunks = nil
	rb.sizeB = 0
}

// Capacity returns the byte bound the buffer was created with.
func (rb *TsRingBuffer) Capacity() int64 {
	return rb.maxB
}

// DroppedBytes returns the cumulative bytes evicted under pressure.
func (rb *TsRingBuffer) DroppedBytes() int64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.droppedB
}

// Size returns the bytes currently buffered.
func (rb *TsRingBuffer) Size() int64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.sizeB
}

// Close wakes any blocked reader. Buffered chunks remain readable.
func (rb *TsRingBuffer) Close() error {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.closed = true
	rb.notEmpty.Broadcast()
	return nil
}
