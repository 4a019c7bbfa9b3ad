package steadylog

import "pkt.systems/steadylog/ansi"

type colorMode uint8

const (
	colorAuto colorMode = iota
	colorForced
	colorDisabled
)

type options struct {
	color   colorMode
	palette *ansi.Palette
}

// Option configures a logger at construction time.
type Option func(*options)

// WithColor forces ANSI colours on or off. Without it colours are used when
// the sink reports an interactive terminal. Builds tagged steadylog_nocolor
// never emit colours.
func WithColor(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.color = colorForced
		} else {
			o.color = colorDisabled
		}
	}
}

// WithPalette selects the colours used by this logger. A nil palette uses
// the package palette of the ansi package at construction time.
func WithPalette(palette *ansi.Palette) Option {
	return func(o *options) {
		o.palette = palette
	}
}

func resolveOptions(sink any, opts []Option) (*colorTable, bool) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !colorOutput {
		return nil, false
	}
	enabled := false
	switch o.color {
	case colorForced:
		enabled = true
	case colorAuto:
		if t, ok := sink.(terminalReporter); ok {
			enabled = t.Terminal()
		}
	}
	if !enabled {
		return nil, false
	}
	return newColorTable(o.palette), true
}
