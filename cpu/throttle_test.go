package cpu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func (fc *fakeClock) Now() time.Time {
	return fc.now
}

func (fc *fakeClock) Advance(d time.Duration) {
	fc.now = fc.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestPeriodOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(100*time.Millisecond, PeriodOf(10))
	assert.Equal(1000*time.Millisecond, PeriodOf(1))
	assert.Equal(333*time.Millisecond, PeriodOf(3))
	assert.Equal(16*time.Millisecond, PeriodOf(60))
	assert.Equal(time.Duration(0), PeriodOf(2000))
	assert.Equal(time.Duration(0), PeriodOf(0))
}

func TestThrottle_Jump(t *testing.T) {
	assert := assert.New(t)

	clock := newFakeClock()
	th := &Throttle{Period: 100 * time.Millisecond, Clock: clock}
	th.Reset()

	clock.Advance(10 * time.Millisecond)
	assert.True(th.Jump())

	clock.Advance(50 * time.Millisecond)
	assert.True(th.Jump())

	// Period elapsed: fall through and restart.
	clock.Advance(40 * time.Millisecond)
	assert.False(th.Jump())

	clock.Advance(99 * time.Millisecond)
	assert.True(th.Jump())

	clock.Advance(250 * time.Millisecond)
	assert.False(th.Jump())
	assert.True(th.Jump())
}

func TestThrottle_ZeroPeriod(t *testing.T) {
	assert := assert.New(t)

	th := &Throttle{Clock: newFakeClock()}
	th.Reset()

	assert.False(th.Jump())
	assert.False(th.Jump())
}

func TestThrottle_SystemClock(t *testing.T) {
	assert := assert.New(t)

	th := &Throttle{Period: time.Hour}
	th.Reset()
	assert.True(th.Jump())

	th = &Throttle{Period: time.Nanosecond, Clock: SystemClock{}}
	th.Reset()
	time.Sleep(time.Millisecond)
	assert.False(th.Jump())
}
