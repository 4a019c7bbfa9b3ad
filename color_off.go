//go:build steadylog_nocolor

package steadylog

import "pkt.systems/steadylog/ansi"

const colorOutput = false

// Color always returns "" in builds without the colour table.
func (s Severity) Color() string { return "" }

func newColorTable(*ansi.Palette) *colorTable { return nil }
