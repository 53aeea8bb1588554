package mockstream

import (
	"errors"
	"net"
	"sync/atomic"
	"time"
)

var errConnClosed = errors.New("mockstream: connection closed")

// Addr is the address every mocked connection reports on both ends.
type Addr struct{}

func (Addr) Network() string { return "mock" }

func (Addr) String() string { return "mock" }

// Conn adapts a Stream into a net.Conn for code under test that demands the
// full connection surface. Deadlines are accepted and ignored, as the mocked
// streams never block on IO.
type Conn struct {
	closed uint32

	stream Stream
}

var _ net.Conn = (*Conn)(nil)

// NewConn creates a connection served by the given stream.
func NewConn(s Stream) *Conn {
	return &Conn{stream: s}
}

func (c *Conn) isClosed() bool {
	return atomic.LoadUint32(&c.closed) == 1
}

func (c *Conn) Read(p []byte) (int, error) {
	if c.isClosed() {
		return 0, errConnClosed
	}

	return c.stream.Read(p)
}

func (c *Conn) Write(p []byte) (int, error) {
	if c.isClosed() {
		return 0, errConnClosed
	}

	return c.stream.Write(p)
}

// Close flushes the underlying stream and fails all further operations.
func (c *Conn) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		return errConnClosed
	}

	return c.stream.Flush()
}

func (c *Conn) LocalAddr() net.Addr { return Addr{} }

func (c *Conn) RemoteAddr() net.Addr { return Addr{} }

func (c *Conn) SetDeadline(time.Time) error { return nil }

func (c *Conn) SetReadDeadline(time.Time) error { return nil }

func (c *Conn) SetWriteDeadline(time.Time) error { return nil }

// NetStream adapts a net.Conn into a Stream, so tests can swap a real
// connection in where a mocked stream is expected.
func NetStream(c net.Conn) Stream {
	return &netStream{c}
}

type netStream struct {
	net.Conn
}

func (s *netStream) Flush() error { return nil }
