package mockstream

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn(t *testing.T) {
	s := NewSharedMockStream()
	conn := NewConn(s)

	assert.Equal(t, "mock", conn.LocalAddr().Network())
	assert.Equal(t, "mock", conn.RemoteAddr().String())

	// Deadlines are accepted and ignored as mocked streams never block.
	require.Nil(t, conn.SetDeadline(time.Now()))
	require.Nil(t, conn.SetReadDeadline(time.Time{}))
	require.Nil(t, conn.SetWriteDeadline(time.Now().Add(time.Second)))

	s.PushBytesToRead([]byte{1, 2})
	assertRead(t, conn, []byte{1, 2})

	_, err := conn.Write([]byte{3})
	require.Nil(t, err, err)
	assert.Equal(t, []byte{3}, s.PopBytesWritten())
}

func TestConnClosed(t *testing.T) {
	conn := NewConn(NewMockStream())
	require.Nil(t, conn.Close())

	_, err := conn.Read(make([]byte, 1))
	assert.Equal(t, errConnClosed, err)

	_, err = conn.Write([]byte{1})
	assert.Equal(t, errConnClosed, err)

	assert.Equal(t, errConnClosed, conn.Close())
}

func TestNetStream(t *testing.T) {
	left, right := net.Pipe()
	s := NetStream(right)

	// The peer echoes one message back.
	done := make(chan error, 1)
	go func() {
		b := make([]byte, 3)
		if _, err := io.ReadFull(left, b); err != nil {
			done <- err
			return
		}

		_, err := left.Write(b)
		done <- err
	}()

	_, err := s.Write([]byte{1, 2, 3})
	require.Nil(t, err, err)
	require.Nil(t, s.Flush())

	b := make([]byte, 3)
	_, err = io.ReadFull(s, b)
	require.Nil(t, err, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	require.Nil(t, <-done)

	require.Nil(t, left.Close())
	require.Nil(t, right.Close())
}
