package mockstream

import (
	"os"
	"testing"

	"github.com/AlexanderYastrebov/noleak"
)

func TestMain(m *testing.M) {
	// Reads parked by WaitFor run on their own goroutines in the tests
	// here, so make sure none of them outlives its test.
	os.Exit(noleak.CheckMain(m))
}
