package mockstream

// SharedMockStream is a handle to a shared MockStream. Clones alias one
// underlying stream, so bytes pushed or written through any handle are
// observed through every other. Typical use is a test holding one handle
// while the object under test holds another.
//
// Handles do no locking and are meant for a single goroutine; for concurrent
// access from independent goroutines use SyncMockStream.
type SharedMockStream struct {
	core *MockStream
}

// NewSharedMockStream creates new empty stream.
func NewSharedMockStream() *SharedMockStream {
	return &SharedMockStream{core: NewMockStream()}
}

// Clone returns a new handle to the same underlying stream.
func (s *SharedMockStream) Clone() *SharedMockStream {
	return &SharedMockStream{core: s.core}
}

// PushBytesToRead provides bytes to be served by Reads through any handle.
func (s *SharedMockStream) PushBytesToRead(b []byte) {
	s.core.PushBytesToRead(b)
}

// PeekBytesWritten returns bytes written through any handle without draining
// them.
func (s *SharedMockStream) PeekBytesWritten() []byte {
	return s.core.PeekBytesWritten()
}

// PopBytesWritten drains and returns bytes written through any handle.
func (s *SharedMockStream) PopBytesWritten() []byte {
	return s.core.PopBytesWritten()
}

func (s *SharedMockStream) Read(p []byte) (int, error) {
	return s.core.Read(p)
}

func (s *SharedMockStream) Write(p []byte) (int, error) {
	return s.core.Write(p)
}

func (s *SharedMockStream) Flush() error {
	return s.core.Flush()
}
