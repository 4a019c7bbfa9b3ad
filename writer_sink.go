package steadylog

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
)

// WriterSink delivers records to an io.Writer. It serves both tracks: it is
// a Sink and a RecordSink. Each record reaches the writer in a single Write
// call, serialised by a lock shared with every duplicate of the sink. Write
// errors never leave the sink; they are counted and can be read with Stats.
type WriterSink struct {
	out      *ObservedWriter
	mu       *sync.Mutex
	terminal bool
}

// NewWriterSink returns a sink writing to w. A nil w discards output.
func NewWriterSink(w io.Writer) *WriterSink {
	return newWriterSink(w, isTerminal(w), nil)
}

// NewObservedWriterSink is NewWriterSink with a callback invoked for every
// failed or short write.
func NewObservedWriterSink(w io.Writer, onFailure func(WriteFailure)) *WriterSink {
	return newWriterSink(w, isTerminal(w), onFailure)
}

// NewConsoleSink returns a sink writing to a console file such as
// os.Stderr. On Windows the file is wrapped so ANSI sequences are translated
// for consoles that lack native support.
func NewConsoleSink(f *os.File) *WriterSink {
	if f == nil {
		return newWriterSink(nil, false, nil)
	}
	return newWriterSink(colorable.NewColorable(f), isTerminal(f), nil)
}

func newWriterSink(w io.Writer, terminal bool, onFailure func(WriteFailure)) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	return &WriterSink{
		out:      NewObservedWriter(w, onFailure),
		mu:       new(sync.Mutex),
		terminal: terminal,
	}
}

// WriteData renders args and writes them out. It implements Sink.
func (s *WriterSink) WriteData(args Arguments, _ Severity) {
	if s == nil {
		return
	}
	lw := acquireLineWriter()
	lw.appendArguments(args)
	s.commit(lw)
}

// WriteRecord renders rec and writes it out. It implements RecordSink and
// does not allocate in steady state.
func (s *WriterSink) WriteRecord(rec Record) {
	if s == nil {
		return
	}
	lw := acquireLineWriter()
	lw.appendRecord(rec)
	s.commit(lw)
}

func (s *WriterSink) commit(lw *lineWriter) {
	s.mu.Lock()
	_, _ = lw.flush(s.out)
	s.mu.Unlock()
	releaseLineWriter(lw)
}

// Duplicate returns a sink for another goroutine. The copy writes to the
// same medium under the same lock and shares nothing else.
func (s *WriterSink) Duplicate() *WriterSink {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// Terminal reports whether the destination is an interactive terminal.
func (s *WriterSink) Terminal() bool {
	return s != nil && s.terminal
}

// Stats returns write counters for the medium, shared by all duplicates.
func (s *WriterSink) Stats() WriterStats {
	if s == nil {
		return WriterStats{}
	}
	return s.out.Stats()
}

// Close releases outputs the library opened itself (see FromEnv). Writers
// supplied by the caller, os.Stdout and os.Stderr are never closed.
func (s *WriterSink) Close() error {
	if s == nil {
		return nil
	}
	return s.out.Close()
}
