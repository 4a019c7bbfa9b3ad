package steadylog

// Compact is the logger of the zero-allocation track. Each call builds a
// Record on the stack and passes it by value to a RecordSink; with a
// non-allocating clock and sink no heap allocation happens anywhere on the
// path. A nil *Compact discards everything.
type Compact[C Clock, S RecordSink] struct {
	core[C]
	sink    S
	hasSink bool
}

// NewCompact returns a zero-allocation logger stamping records with clock
// and delivering them to sink.
func NewCompact[C Clock, S RecordSink](clock C, sink S, opts ...Option) *Compact[C, S] {
	colors, _ := resolveOptions(any(sink), opts)
	return &Compact[C, S]{
		core:    newCore(clock, colors),
		sink:    sink,
		hasSink: any(sink) != nil,
	}
}

// Log emits message at severity. The message is not copied.
func (l *Compact[C, S]) Log(severity Severity, message string) {
	if l == nil || !l.hasSink {
		return
	}
	l.sink.WriteRecord(Record{
		Severity:  severity.normalize(),
		Timestamp: l.now(),
		Message:   message,
		colors:    l.colors,
	})
}

func (l *Compact[C, S]) LogOk(message string)   { l.Log(Ok, message) }
func (l *Compact[C, S]) LogInfo(message string) { l.Log(Info, message) }
func (l *Compact[C, S]) LogWarn(message string) { l.Log(Warn, message) }
func (l *Compact[C, S]) LogErr(message string)  { l.Log(Error, message) }

// Clock returns the logger's clock.
func (l *Compact[C, S]) Clock() C {
	var zero C
	if l == nil {
		return zero
	}
	return l.clock
}

// Sink returns the logger's sink.
func (l *Compact[C, S]) Sink() S {
	var zero S
	if l == nil {
		return zero
	}
	return l.sink
}

// Colored reports whether records carry ANSI colours.
func (l *Compact[C, S]) Colored() bool {
	return l != nil && l.colors != nil
}

func (l *Compact[C, S]) isNil() bool {
	return l == nil || !l.hasSink
}
