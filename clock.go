package linden

import "time"

// Clock supplies monotonic timestamps for click debouncing. The only
// requirement is that successive calls never go backward; the epoch is
// arbitrary.
type Clock interface {
	Now() time.Duration
}

// systemClock measures monotonic time since process start via the runtime's
// monotonic clock reading embedded in time.Time.
type systemClock struct {
	start time.Time
}

func newSystemClock() systemClock {
	return systemClock{start: time.Now()}
}

func (c systemClock) Now() time.Duration {
	return time.Since(c.start)
}
