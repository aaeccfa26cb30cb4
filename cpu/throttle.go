package cpu

import (
	"time"
)

// Clock is a source of wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// PeriodOf returns the JUMPDT period for a frequency, in whole milliseconds.
func PeriodOf(hz uint) time.Duration {
	if hz == 0 {
		return 0
	}
	return time.Duration(1000/hz) * time.Millisecond
}

// Throttle gates JUMPDT: the branch is taken until Period has elapsed since
// the last reset, then falls through once and restarts the period.
type Throttle struct {
	Period time.Duration
	Clock  Clock // If nil, SystemClock is used.

	last time.Time
}

func (th *Throttle) now() time.Time {
	if th.Clock == nil {
		return time.Now()
	}
	return th.Clock.Now()
}

// Reset restarts the period from now.
func (th *Throttle) Reset() {
	th.last = th.now()
}

// Jump reports whether the JUMPDT branch is taken.
func (th *Throttle) Jump() bool {
	now := th.now()
	if now.Sub(th.last) < th.Period {
		return true
	}

	th.last = now
	return false
}
