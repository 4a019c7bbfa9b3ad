// Package ansi provides the ANSI escape sequences and palette helpers used by
// steadylog's colored renderers. The exported strings can be overridden or
// swapped via SetPalette so callers can change the severity colors without
// touching steadylog internals.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences.
const (
	Reset       = "\x1b[0m"
	Bold        = "\x1b[1m"
	Faint       = "\x1b[90m"
	Red         = "\x1b[31m"
	Green       = "\x1b[32m"
	Yellow      = "\x1b[33m"
	Blue        = "\x1b[34m"
	Cyan        = "\x1b[36m"
	LightRed    = "\x1b[91m"
	LightGreen  = "\x1b[92m"
	LightYellow = "\x1b[93m"
	LightBlue   = "\x1b[94m"
	BoldRed     = "\x1b[1;31m"
	BoldGreen   = "\x1b[1;32m"
	BoldYellow  = "\x1b[1;33m"
	BoldBlue    = "\x1b[1;34m"
)

// Semantic aliases describing how steadylog uses the colours. Renderers
// snapshot them at construction time.
var (
	Ok        = LightGreen
	Info      = LightBlue
	Warn      = LightYellow
	Error     = LightRed
	Timestamp = ""
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette, see the Palette* variables for
// examples. Empty fields keep the current value.
type Palette struct {
	Ok        string
	Info      string
	Warn      string
	Error     string
	Timestamp string
}

// SetPalette sets the package-level ANSI color variables exposed by this
// package. Loggers can also select a palette explicitly with
// steadylog.WithPalette.
//
//	ansi.SetPalette(ansi.PaletteBold)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	current := snapshotLocked()
	Ok = f(palette.Ok, current.Ok)
	Info = f(palette.Info, current.Info)
	Warn = f(palette.Warn, current.Warn)
	Error = f(palette.Error, current.Error)
	Timestamp = f(palette.Timestamp, current.Timestamp)
}

// Snapshot returns the current ANSI palette values.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteClassic)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		Ok:        Ok,
		Info:      Info,
		Warn:      Warn,
		Error:     Error,
		Timestamp: Timestamp,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
