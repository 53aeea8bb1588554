// Package mockstream provides reader and writer streams to mock real byte
// streams in tests.
//
// A test pushes bytes for the component under test to read, lets it run
// against the generic Stream contract and afterwards pops the bytes the
// component wrote for assertions. No real I/O happens anywhere.
package mockstream

import (
	"io"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("mockstream")

// MockStream is a Stream that serves the bytes pushed into its read side and
// accumulates the bytes written into it. It owns its buffers exclusively:
// Clone gives an independent copy, not an alias. For aliasing handles see
// SharedMockStream and SyncMockStream.
type MockStream struct {
	r   []byte // bytes to be served by Read
	off int    // read position within r, 0 <= off <= len(r)
	w   []byte // bytes accumulated by Write
}

// NewMockStream creates new empty stream.
func NewMockStream() *MockStream {
	return &MockStream{}
}

// Read copies pending bytes into p and advances the read position.
// It returns io.EOF once everything pushed so far is consumed; pushing more
// bytes makes the stream readable again, like a refilled bytes.Buffer.
func (s *MockStream) Read(p []byte) (int, error) {
	if s.off == len(s.r) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(p, s.r[s.off:])
	s.off += n
	return n, nil
}

// Write appends p to the write buffer. It never fails and never writes
// partially.
func (s *MockStream) Write(p []byte) (int, error) {
	s.w = append(s.w, p...)
	return len(p), nil
}

// Flush implements Stream. Nothing is buffered beyond the in-memory buffers,
// so it always succeeds.
func (s *MockStream) Flush() error {
	return nil
}

// PushBytesToRead provides bytes to be served by following Reads.
// A fully consumed read buffer is dropped first, so repeatedly pushing and
// draining does not grow the stream unboundedly.
func (s *MockStream) PushBytesToRead(b []byte) {
	if s.off == len(s.r) {
		s.r, s.off = nil, 0
	}

	s.r = append(s.r, b...)
}

// PeekBytesWritten returns all bytes written so far without draining them.
// The slice aliases the write buffer and is valid until the next Write.
func (s *MockStream) PeekBytesWritten() []byte {
	return s.w
}

// PopBytesWritten drains and returns all bytes written so far. A following
// pop sees only bytes written after this call.
func (s *MockStream) PopBytesWritten() []byte {
	w := s.w
	s.w = nil
	return w
}

// Clone returns an independent stream with the same pending and written bytes.
func (s *MockStream) Clone() *MockStream {
	return &MockStream{
		r:   append([]byte(nil), s.r...),
		off: s.off,
		w:   append([]byte(nil), s.w...),
	}
}
