package steadylog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/steadylog/ansi"
)

// EnvOption customizes FromEnv behavior.
type EnvOption func(*envConfig)

// EnvSettings are the values FromEnv resolves before building a logger. They
// can be seeded with WithEnvSettings; environment variables override them.
type EnvSettings struct {
	// Clock is "none", "monotonic" (default) or "wall".
	Clock string
	// TimeFormat is the wall clock layout.
	TimeFormat string
	// UTC renders wall time in UTC.
	UTC bool
	// NoColor disables ANSI colours.
	NoColor bool
	// ForceColor enables ANSI colours even when the output is not a terminal.
	ForceColor bool
	// Palette names an ansi palette.
	Palette string
	// Output is stdout, stderr, default, a file path, or
	// stdout+/stderr+/default+<path> to tee.
	Output string
}

type envConfig struct {
	prefix   string
	settings EnvSettings
	writer   io.Writer
}

// WithEnvPrefix overrides the environment variable prefix (STEADYLOG_).
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvSettings seeds FromEnv with explicit settings.
func WithEnvSettings(settings EnvSettings) EnvOption {
	return func(cfg *envConfig) {
		cfg.settings = settings
	}
}

// WithEnvWriter sets the default output writer (os.Stdout otherwise).
func WithEnvWriter(w io.Writer) EnvOption {
	return func(cfg *envConfig) {
		cfg.writer = w
	}
}

// FromEnv builds an allocating-track logger from environment variables.
// Recognised variables are {prefix}CLOCK, TIME_FORMAT, UTC, NO_COLOR,
// FORCE_COLOR, PALETTE and OUTPUT. FromEnv never fails: an OUTPUT that
// cannot be opened falls back to the default writer and is reported as one
// Warn record on it.
//
// With CLOCK=wall the clock runs a background formatter; stop it when the
// logger is retired:
//
//	if wall, ok := logger.Clock().(*steadylog.WallClock); ok {
//		wall.Close()
//	}
//	_ = logger.Sink().Close()
func FromEnv(opts ...EnvOption) *Logger[Clock, *WriterSink] {
	cfg := envConfig{prefix: "STEADYLOG_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	settings := ResolveEnv(cfg.prefix, cfg.settings)
	logger, err := Build(settings, cfg.writer)
	if err != nil {
		logger.Logf(Warn, "logger output %q unusable: %v", strings.TrimSpace(settings.Output), err)
	}
	return logger
}

// ResolveEnv overlays the environment variables under prefix on base.
func ResolveEnv(prefix string, base EnvSettings) EnvSettings {
	resolved := base
	if value, ok := lookupEnv(prefix, "CLOCK"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.Clock = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "TIME_FORMAT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.TimeFormat = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "UTC"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.UTC = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		resolved.Palette = strings.TrimSpace(value)
	}
	if value, ok := lookupEnv(prefix, "OUTPUT"); ok {
		resolved.Output = value
	}
	return resolved
}

// Build turns settings into a logger writing to base unless Output says
// otherwise. The returned logger is always usable; a non-nil error means
// Output could not be honoured and base is used instead.
func Build(settings EnvSettings, base io.Writer) (*Logger[Clock, *WriterSink], error) {
	if base == nil {
		base = os.Stdout
	}
	writer, err := writerFromOutput(settings.Output, base)
	if err != nil {
		writer = base
	}
	var sink *WriterSink
	if f, ok := writer.(*os.File); ok {
		sink = NewConsoleSink(f)
	} else {
		sink = NewWriterSink(writer)
	}
	var opts []Option
	switch {
	case settings.NoColor:
		opts = append(opts, WithColor(false))
	case settings.ForceColor:
		opts = append(opts, WithColor(true))
	}
	if settings.Palette != "" {
		opts = append(opts, WithPalette(ansi.PaletteByName(settings.Palette)))
	}
	return New(ClockByName(settings.Clock, settings.TimeFormat, settings.UTC), sink, opts...), err
}

// ClockByName returns the clock named by name: "none"/"null"/"off" for
// NullClock, "wall" for a WallClock, anything else for DefaultClock.
func ClockByName(name, layout string, utc bool) Clock {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "null", "off":
		return NullClock{}
	case "wall":
		return NewWallClock(layout, utc)
	case "monotonic", "elapsed":
		return NewMonotonicClock()
	default:
		return DefaultClock()
	}
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func writerFromOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "default":
		return base, nil
	}
	for _, tee := range []struct {
		prefix string
		writer io.Writer
	}{
		{"stdout+", os.Stdout},
		{"stderr+", os.Stderr},
		{"default+", base},
	} {
		if !strings.HasPrefix(lowered, tee.prefix) {
			continue
		}
		path := strings.TrimSpace(trimmed[len(tee.prefix):])
		if path == "" {
			return tee.writer, nil
		}
		file, err := openOutputFile(path)
		if err != nil {
			return base, err
		}
		return newOwnedOutput(newTeeWriter(tee.writer, file), file), nil
	}
	file, err := openOutputFile(trimmed)
	if err != nil {
		return base, err
	}
	return newOwnedOutput(file, file), nil
}

func openOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", path, err)
	}
	return file, nil
}
