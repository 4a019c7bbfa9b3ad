//go:build !steadylog_nocolor

package steadylog

import "pkt.systems/steadylog/ansi"

// colorOutput reports whether this build carries the colour table. Build
// with -tags steadylog_nocolor to strip it.
const colorOutput = true

// Color returns the ANSI escape sequence of the active palette for s.
func (s Severity) Color() string {
	p := ansi.Snapshot()
	switch s {
	case Ok:
		return p.Ok
	case Info:
		return p.Info
	case Warn:
		return p.Warn
	default:
		return p.Error
	}
}

func newColorTable(palette *ansi.Palette) *colorTable {
	current := ansi.Snapshot()
	if palette == nil {
		palette = &current
	}
	return &colorTable{
		sev: [4]string{
			Ok:    pick(palette.Ok, current.Ok),
			Info:  pick(palette.Info, current.Info),
			Warn:  pick(palette.Warn, current.Warn),
			Error: pick(palette.Error, current.Error),
		},
		ts:    palette.Timestamp,
		reset: ansi.Reset,
	}
}

func pick(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
