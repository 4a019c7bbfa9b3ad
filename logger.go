package steadylog

// Emitter is the part of a logger the never-fail wrappers and the panic hook
// need. Every logger in this package implements it.
type Emitter interface {
	Log(severity Severity, message string)
}

// core holds what both tracks share: the clock and the rendering style.
type core[C Clock] struct {
	clock    C
	hasClock bool
	colors   *colorTable
}

func newCore[C Clock](clock C, colors *colorTable) core[C] {
	return core[C]{clock: clock, hasClock: any(clock) != nil, colors: colors}
}

func (c *core[C]) now() Timestamp {
	if !c.hasClock {
		return Timestamp{}
	}
	return c.clock.Now()
}

// Logger is the logger of the allocating track. It renders each record as
// fmt Arguments and hands them to a Sink. A nil *Logger discards everything.
type Logger[C Clock, S Sink] struct {
	core[C]
	sink    S
	hasSink bool

	prefix [4]string
	open   [4]string
	reset  string
	tsOpen string
}

// New returns a logger stamping records with clock and delivering them to
// sink. Options are resolved once here, never per call.
func New[C Clock, S Sink](clock C, sink S, opts ...Option) *Logger[C, S] {
	colors, _ := resolveOptions(any(sink), opts)
	l := &Logger[C, S]{
		core:    newCore(clock, colors),
		sink:    sink,
		hasSink: any(sink) != nil,
	}
	for i := range l.prefix {
		l.prefix[i] = severityLabels[i]
	}
	if colors != nil {
		for i := range l.prefix {
			l.prefix[i] = colors.sev[i] + severityLabels[i] + colors.reset
			l.open[i] = colors.sev[i]
		}
		l.reset = colors.reset
		if colors.ts != "" {
			l.tsOpen = colors.ts
		}
	}
	return l
}

// recordFormat lays out label, timestamp segment, message: the same bytes
// Record.AppendTo produces.
const recordFormat = "%s%v %s%v%s\n"

// Log emits message at severity.
func (l *Logger[C, S]) Log(severity Severity, message string) {
	if l == nil || !l.hasSink {
		return
	}
	l.emit(severity, message)
}

// Logf emits a message rendered from format and args at severity.
func (l *Logger[C, S]) Logf(severity Severity, format string, args ...any) {
	if l == nil || !l.hasSink {
		return
	}
	l.emit(severity, NewArguments(format, args...))
}

func (l *Logger[C, S]) emit(severity Severity, message any) {
	severity = severity.normalize()
	idx := int(severity)
	ts := l.now()
	st := stamp{ts: ts}
	if l.tsOpen != "" {
		st.open, st.reset = l.tsOpen, l.reset
	}
	l.sink.WriteData(NewArguments(recordFormat, l.prefix[idx], st, l.open[idx], message, l.reset), severity)
}

// LogOk emits message at Ok.
func (l *Logger[C, S]) LogOk(message string) { l.Log(Ok, message) }

// LogInfo emits message at Info.
func (l *Logger[C, S]) LogInfo(message string) { l.Log(Info, message) }

// LogWarn emits message at Warn.
func (l *Logger[C, S]) LogWarn(message string) { l.Log(Warn, message) }

// LogErr emits message at Error.
func (l *Logger[C, S]) LogErr(message string) { l.Log(Error, message) }

// Clock returns the logger's clock.
func (l *Logger[C, S]) Clock() C {
	var zero C
	if l == nil {
		return zero
	}
	return l.clock
}

// Sink returns the logger's sink.
func (l *Logger[C, S]) Sink() S {
	var zero S
	if l == nil {
		return zero
	}
	return l.sink
}

// Colored reports whether records carry ANSI colours.
func (l *Logger[C, S]) Colored() bool {
	return l != nil && l.colors != nil
}

func (l *Logger[C, S]) isNil() bool {
	return l == nil || !l.hasSink
}
