package steadylog

import (
	"io"
	"sync/atomic"
)

// WriteFailure describes one failed write observed by ObservedWriter.
type WriteFailure struct {
	Err       error
	Written   int
	Attempted int
}

// WriterStats captures aggregated counters for an ObservedWriter.
type WriterStats struct {
	Writes      uint64
	Failures    uint64
	ShortWrites uint64
}

// ObservedWriter wraps an io.Writer and records write failures so lost
// records can be observed even though sinks never report errors to the
// logger.
type ObservedWriter struct {
	dst        io.Writer
	onFailure  func(WriteFailure)
	writes     atomic.Uint64
	failures   atomic.Uint64
	shortWrite atomic.Uint64
}

// NewObservedWriter wraps dst with failure observation hooks. onFailure may
// be nil.
func NewObservedWriter(dst io.Writer, onFailure func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{
		dst:       dst,
		onFailure: onFailure,
	}
}

func (w *ObservedWriter) Write(p []byte) (int, error) {
	if w == nil || w.dst == nil {
		return len(p), nil
	}

	w.writes.Add(1)
	n, err := w.dst.Write(p)
	if n != len(p) {
		w.shortWrite.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}

	if err != nil {
		w.failures.Add(1)
		if w.onFailure != nil {
			w.onFailure(WriteFailure{
				Err:       err,
				Written:   n,
				Attempted: len(p),
			})
		}
	}

	return n, err
}

// Stats returns cumulative counters.
func (w *ObservedWriter) Stats() WriterStats {
	if w == nil {
		return WriterStats{}
	}
	return WriterStats{
		Writes:      w.writes.Load(),
		Failures:    w.failures.Load(),
		ShortWrites: w.shortWrite.Load(),
	}
}

// Close delegates close semantics to the wrapped destination.
func (w *ObservedWriter) Close() error {
	if w == nil {
		return nil
	}
	return closeOutput(w.dst)
}
