package mockstream

import (
	"fmt"
	"io"
)

// FailingMockStream is a stream that fails a configured number of operations.
// Chain it between healthy streams with io.MultiReader to exercise the
// error-recovery paths of the code under test.
type FailingMockStream struct {
	kind   error
	msg    string
	repeat int
}

// Error is the failure injected by a FailingMockStream.
type Error struct {
	Kind error // category of the failure, matched with errors.Is
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("mockstream: %s: %s", e.Msg, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewFailingMockStream creates a stream failing both Reads and Writes with the
// given error category and message. A negative repeat fails forever, a
// positive one fails that many operations, and an exhausted or zero budget
// reports end-of-data with io.EOF.
func NewFailingMockStream(kind error, msg string, repeat int) *FailingMockStream {
	return &FailingMockStream{kind: kind, msg: msg, repeat: repeat}
}

func (s *FailingMockStream) fail() (int, error) {
	if s.repeat == 0 {
		return 0, io.EOF
	}
	if s.repeat > 0 {
		s.repeat--
	}

	return 0, &Error{Kind: s.kind, Msg: s.msg}
}

func (s *FailingMockStream) Read(p []byte) (int, error) {
	return s.fail()
}

func (s *FailingMockStream) Write(p []byte) (int, error) {
	return s.fail()
}

func (s *FailingMockStream) Flush() error {
	return nil
}

// Clone returns an independent stream with its own copy of the remaining
// failure budget.
func (s *FailingMockStream) Clone() *FailingMockStream {
	c := *s
	return &c
}
