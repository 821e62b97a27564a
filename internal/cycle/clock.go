package cycle

import "time"

// Clock supplies the reference time for cycle computations. Services take a
// Clock instead of calling time.Now so that tests can pin the date.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock Clock used outside of tests.
var SystemClock Clock = systemClock{}

// FixedClock always returns the wrapped time.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }
