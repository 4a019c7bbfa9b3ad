package steadylog

import "time"

// Clock supplies the timestamp attached to each record. Now must return
// immediately and must not fail; it is the only call a logger makes before
// handing the record to its sink.
type Clock interface {
	Now() Timestamp
}

// Duplicator is implemented by clocks and sinks that can hand out an
// independent copy of themselves for use on another goroutine.
type Duplicator[T any] interface {
	Duplicate() T
}

// NullClock is the clock for targets without a time source. Every record it
// stamps has no timestamp segment.
type NullClock struct{}

func (NullClock) Now() Timestamp { return Timestamp{} }

func (c NullClock) Duplicate() NullClock { return c }

// MonotonicClock stamps records with the time elapsed since the clock was
// created. The zero value always reports zero elapsed time; use
// NewMonotonicClock.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a clock whose origin is now.
func NewMonotonicClock() MonotonicClock {
	return MonotonicClock{origin: time.Now()}
}

func (c MonotonicClock) Now() Timestamp {
	if c.origin.IsZero() {
		return Elapsed(0)
	}
	return Elapsed(time.Since(c.origin))
}

// Duplicate returns a copy measuring from the same origin.
func (c MonotonicClock) Duplicate() MonotonicClock { return c }

// Origin returns the instant elapsed time is measured from.
func (c MonotonicClock) Origin() time.Time { return c.origin }
