package obj

import "time"

// Clock supplies wall-clock time to an Agent.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
