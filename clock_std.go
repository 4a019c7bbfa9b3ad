//go:build !steadylog_nostd && !tinygo

package steadylog

// standardEnvironment reports whether a real-time clock is available by
// default. Build with -tags steadylog_nostd to turn it off.
const standardEnvironment = true

// DefaultClock returns the clock used when the caller does not pick one:
// a MonotonicClock starting now.
func DefaultClock() Clock {
	return NewMonotonicClock()
}
