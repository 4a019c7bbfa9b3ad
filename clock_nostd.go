//go:build steadylog_nostd || tinygo

package steadylog

const standardEnvironment = false

// DefaultClock returns NullClock on targets without a standard environment.
func DefaultClock() Clock {
	return NullClock{}
}
