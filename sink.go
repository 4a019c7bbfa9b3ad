package steadylog

// Sink consumes records on the allocating track. The logger has already
// laid the record out as Arguments; rendering them may allocate.
//
// WriteData has no error result. A sink that cannot deliver must drop the
// record or retry internally; it must not panic.
type Sink interface {
	WriteData(args Arguments, severity Severity)
}

// RecordSink consumes records on the zero-allocation track. rec renders
// itself with Record.AppendTo into a buffer the sink owns.
//
// The same delivery rules as for Sink apply.
type RecordSink interface {
	WriteRecord(rec Record)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(args Arguments, severity Severity)

func (f SinkFunc) WriteData(args Arguments, severity Severity) {
	if f != nil {
		f(args, severity)
	}
}

// RecordSinkFunc adapts a function to RecordSink.
type RecordSinkFunc func(rec Record)

func (f RecordSinkFunc) WriteRecord(rec Record) {
	if f != nil {
		f(rec)
	}
}

// NopSink discards everything on both tracks.
type NopSink struct{}

func (NopSink) WriteData(Arguments, Severity) {}
func (NopSink) WriteRecord(Record)            {}
func (s NopSink) Duplicate() NopSink          { return s }

// terminalReporter is implemented by sinks that know whether their medium
// is an interactive terminal.
type terminalReporter interface {
	Terminal() bool
}
