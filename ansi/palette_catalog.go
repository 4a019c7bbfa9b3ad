package ansi

import (
	"sort"
	"strings"
)

// Built-in palettes.
var (
	// PaletteDefault uses the light 16-colour variants.
	PaletteDefault = Palette{
		Ok:    LightGreen,
		Info:  LightBlue,
		Warn:  LightYellow,
		Error: LightRed,
	}
	// PaletteClassic uses the plain 8-colour set for terminals without the
	// bright range.
	PaletteClassic = Palette{
		Ok:    Green,
		Info:  Blue,
		Warn:  Yellow,
		Error: Red,
	}
	PaletteBold = Palette{
		Ok:        BoldGreen,
		Info:      BoldBlue,
		Warn:      BoldYellow,
		Error:     BoldRed,
		Timestamp: Faint,
	}
	PaletteDim = Palette{
		Ok:        Green,
		Info:      Cyan,
		Warn:      Yellow,
		Error:     LightRed,
		Timestamp: Faint,
	}
	// PaletteMono keeps the escape structure but only uses bold for errors.
	PaletteMono = Palette{
		Ok:    Reset,
		Info:  Reset,
		Warn:  Bold,
		Error: Bold,
	}
)

var namedPalettes = map[string]*Palette{
	"default": &PaletteDefault,
	"classic": &PaletteClassic,
	"bold":    &PaletteBold,
	"dim":     &PaletteDim,
	"mono":    &PaletteMono,
}

var paletteAliases = map[string]string{
	"light":      "default",
	"8-color":    "classic",
	"8color":     "classic",
	"monochrome": "mono",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support a few aliases. Unknown names
// resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette
	}
	return &PaletteDefault
}

// PaletteNames returns canonical built-in palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
