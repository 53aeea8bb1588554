package mockstream

import (
	"bytes"
	"sync"
	"sync/atomic"
	"time"
)

// waitWarnAfter is the number of poll rounds a parked reader spins through
// before warning that no writer produced the expected bytes yet.
const waitWarnAfter = 500

// SyncMockStream is a handle to a mutex-guarded MockStream safe for
// concurrent use from independent goroutines. Clones alias one underlying
// stream together with the waiting flag and the expected pattern, so the
// protocol below spans all handles.
//
// WaitFor parks readers until a writer produces an expected byte subsequence,
// which is the one cross-goroutine ordering signal this stream provides.
type SyncMockStream struct {
	state *syncState
}

// syncState is the state shared by every handle of one SyncMockStream.
type syncState struct {
	waiting uint32 // atomic flag parking readers, toggled outside the lock

	mu       sync.Mutex
	stream   MockStream // guarded by mu
	expected []byte     // guarded by mu, armed by WaitFor

	poll time.Duration
}

func (st *syncState) isWaiting() bool {
	return atomic.LoadUint32(&st.waiting) == 1
}

func (st *syncState) park() {
	atomic.StoreUint32(&st.waiting, 1)
}

func (st *syncState) release() {
	atomic.StoreUint32(&st.waiting, 0)
}

// NewSyncMockStream creates new empty stream.
func NewSyncMockStream(opts ...Option) *SyncMockStream {
	st := &syncState{poll: defaultPollInterval}
	for _, opt := range opts {
		opt(st)
	}

	return &SyncMockStream{state: st}
}

// Clone returns a new handle to the same underlying stream, flag and pattern.
func (s *SyncMockStream) Clone() *SyncMockStream {
	return &SyncMockStream{state: s.state}
}

// WaitFor parks Reads on every handle until the expected bytes show up in the
// accumulated written output as a contiguous subsequence. The flag is
// one-shot: the first matching Write releases the readers and the stream
// stays released until WaitFor arms it again. An empty pattern is matched by
// the very next Write.
//
// There is no timeout nor cancellation: if no writer ever produces the
// pattern, parked readers spin forever.
func (s *SyncMockStream) WaitFor(expected []byte) {
	st := s.state
	st.mu.Lock()
	st.expected = append([]byte(nil), expected...)
	st.mu.Unlock()

	st.park()
	log.Debugf("Parked Reads until %d expected bytes are written.", len(expected))
}

// Read blocks while the stream is parked by WaitFor, polling the flag without
// the lock so that writers stay free to release it, and only then reads from
// the shared stream.
func (s *SyncMockStream) Read(p []byte) (int, error) {
	st := s.state
	for spins := 1; st.isWaiting(); spins++ {
		if spins == waitWarnAfter {
			log.Warnf("Read parked for %s: no Write matched the expected bytes yet.", time.Duration(spins)*st.poll)
		}

		time.Sleep(st.poll)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.stream.Read(p)
}

// Write appends p to the shared write buffer. While the stream is parked the
// whole accumulated written output is scanned for the expected subsequence,
// and a match releases parked readers.
func (s *SyncMockStream) Write(p []byte) (int, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	n, err := st.stream.Write(p)
	if err == nil && st.isWaiting() && bytes.Contains(st.stream.PeekBytesWritten(), st.expected) {
		st.release()
		log.Debug("Expected bytes written, parked Reads released.")
	}

	return n, err
}

func (s *SyncMockStream) Flush() error {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.stream.Flush()
}

// PushBytesToRead provides bytes to be served by Reads on any handle.
func (s *SyncMockStream) PushBytesToRead(b []byte) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	st.stream.PushBytesToRead(b)
}

// PeekBytesWritten returns a copy of the bytes written through any handle.
// Unlike MockStream it cannot hand out a view of the live buffer, as another
// goroutine may append to it concurrently.
func (s *SyncMockStream) PeekBytesWritten() []byte {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]byte(nil), st.stream.PeekBytesWritten()...)
}

// PopBytesWritten drains and returns everything written through any handle.
func (s *SyncMockStream) PopBytesWritten() []byte {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.stream.PopBytesWritten()
}
