package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local time. All streak and heatmap math operates on
// calendar dates in the user's timezone, so the zone must not be discarded.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
