package mockstream

import (
	"time"
)

const defaultPollInterval = 10 * time.Millisecond

// PollInterval sets how often parked Reads of a SyncMockStream recheck the
// waiting flag. Defaults to 10ms.
func PollInterval(d time.Duration) Option {
	return func(st *syncState) {
		st.poll = d
	}
}

type Option func(*syncState)
