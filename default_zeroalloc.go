//go:build steadylog_zeroalloc

package steadylog

import "os"

const ZeroAllocTrack = true

// NewDefault returns the logger used when the caller supplies none: the
// default clock and a console sink on stderr, on the zero-allocation track.
func NewDefault() Emitter {
	return NewCompact(DefaultClock(), NewConsoleSink(os.Stderr))
}
