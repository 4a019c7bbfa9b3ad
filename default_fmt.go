//go:build !steadylog_zeroalloc

package steadylog

import "os"

// ZeroAllocTrack reports whether this build defaults to the zero-allocation
// track. Build with -tags steadylog_zeroalloc to switch.
const ZeroAllocTrack = false

// NewDefault returns the logger used when the caller supplies none: the
// default clock and a console sink on stderr, on the allocating track.
func NewDefault() Emitter {
	return New(DefaultClock(), NewConsoleSink(os.Stderr))
}
