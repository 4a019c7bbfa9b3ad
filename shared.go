package steadylog

// DuplicableClock is a Clock that can hand out independent copies.
type DuplicableClock[C any] interface {
	Clock
	Duplicator[C]
}

// DuplicableSink is a Sink that can hand out independent copies.
type DuplicableSink[S any] interface {
	Sink
	Duplicator[S]
}

// DuplicableRecordSink is a RecordSink that can hand out independent copies.
type DuplicableRecordSink[S any] interface {
	RecordSink
	Duplicator[S]
}

// Shared is a Logger that can be cloned for use on other goroutines. Each
// clone owns a duplicate of the clock and of the sink, so clones never
// synchronise with each other; if the sinks end up on one medium, the sink
// implementation is responsible for interleaving safely.
type Shared[C DuplicableClock[C], S DuplicableSink[S]] struct {
	*Logger[C, S]
}

// NewShared returns a clonable logger on the allocating track.
func NewShared[C DuplicableClock[C], S DuplicableSink[S]](clock C, sink S, opts ...Option) Shared[C, S] {
	return Shared[C, S]{Logger: New(clock, sink, opts...)}
}

// Clone returns an independent logger with duplicated clock and sink. The
// rendering style is immutable and reused.
func (s Shared[C, S]) Clone() Shared[C, S] {
	if s.Logger == nil {
		return s
	}
	clone := *s.Logger
	if clone.hasClock {
		clone.clock = s.clock.Duplicate()
	}
	if clone.hasSink {
		clone.sink = s.sink.Duplicate()
	}
	return Shared[C, S]{Logger: &clone}
}

// SharedCompact is the clonable logger of the zero-allocation track.
type SharedCompact[C DuplicableClock[C], S DuplicableRecordSink[S]] struct {
	*Compact[C, S]
}

// NewSharedCompact returns a clonable zero-allocation logger.
func NewSharedCompact[C DuplicableClock[C], S DuplicableRecordSink[S]](clock C, sink S, opts ...Option) SharedCompact[C, S] {
	return SharedCompact[C, S]{Compact: NewCompact(clock, sink, opts...)}
}

// Clone returns an independent logger with duplicated clock and sink.
func (s SharedCompact[C, S]) Clone() SharedCompact[C, S] {
	if s.Compact == nil {
		return s
	}
	clone := *s.Compact
	if clone.hasClock {
		clone.clock = s.clock.Duplicate()
	}
	if clone.hasSink {
		clone.sink = s.sink.Duplicate()
	}
	return SharedCompact[C, S]{Compact: &clone}
}
