package mockstream

// StreamPair creates two streams cross-wired in memory: bytes written to
// either one are served by Reads on the other. Both ends are safe for
// concurrent use, so each side may live on its own goroutine like the two
// ends of a real connection.
func StreamPair() (Stream, Stream) {
	ab, ba := NewSyncMockStream(), NewSyncMockStream()
	return &pairStream{in: ba, out: ab}, &pairStream{in: ab, out: ba}
}

type pairStream struct {
	in, out *SyncMockStream
}

func (s *pairStream) Read(p []byte) (int, error) {
	return s.in.Read(p)
}

func (s *pairStream) Write(p []byte) (int, error) {
	s.out.PushBytesToRead(p)
	return len(p), nil
}

func (s *pairStream) Flush() error {
	return s.out.Flush()
}
