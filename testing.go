package mockstream

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randBytes(t *testing.T, rand io.Reader, size int) []byte {
	b := make([]byte, size)
	_, err := io.ReadFull(rand, b)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func assertRead(t *testing.T, r io.Reader, expected []byte) {
	b := make([]byte, len(expected))
	n, err := r.Read(b)
	assert.Nil(t, err, err)
	assert.Equal(t, len(expected), n)
	assert.Equal(t, expected, b[:n])
}

func assertEOF(t *testing.T, r io.Reader) {
	n, err := r.Read(make([]byte, 8))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}
