package steadylog

import (
	"regexp"
	"sync"
)

type capturedLine struct {
	text     string
	severity Severity
}

// captureSink records every rendered line on the allocating track.
type captureSink struct {
	mu    *sync.Mutex
	lines *[]capturedLine
}

func newCaptureSink() captureSink {
	return captureSink{mu: new(sync.Mutex), lines: new([]capturedLine)}
}

func (s captureSink) WriteData(args Arguments, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.lines = append(*s.lines, capturedLine{text: args.String(), severity: severity})
}

func (s captureSink) WriteRecord(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.lines = append(*s.lines, capturedLine{text: rec.String(), severity: rec.Severity})
}

// Duplicate returns a sink with its own line store.
func (s captureSink) Duplicate() captureSink {
	return newCaptureSink()
}

func (s captureSink) snapshot() []capturedLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]capturedLine, len(*s.lines))
	copy(out, *s.lines)
	return out
}

func (s captureSink) texts() []string {
	lines := s.snapshot()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

// fixedClock always returns the same timestamp.
type fixedClock struct {
	ts Timestamp
}

func (c fixedClock) Now() Timestamp        { return c.ts }
func (c fixedClock) Duplicate() fixedClock { return c }

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}
