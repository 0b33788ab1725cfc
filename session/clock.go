package session

import "time"

// Clock abstracts wall time and sleeping so the session loop can run
// against a fake clock in tests
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real monotonic clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
