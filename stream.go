package mockstream

import "io"

// Stream is the bidirectional byte stream contract shared by every mock in
// this package and by real network backends. Code under test should depend on
// it, or on the io interfaces it is built from, so that tests can hand it a
// mock and production can hand it a live connection (see NetStream).
type Stream interface {
	io.Reader
	io.Writer

	// Flush forces down bytes the backend may have buffered.
	// Mocks here buffer nothing, so for them it always succeeds.
	Flush() error
}

var (
	_ Stream = (*MockStream)(nil)
	_ Stream = (*SharedMockStream)(nil)
	_ Stream = (*SyncMockStream)(nil)
	_ Stream = (*FailingMockStream)(nil)
)
