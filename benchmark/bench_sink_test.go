package benchmark_test

import (
	"sync"
	"testing"

	"pkt.systems/steadylog"
)

// lockedDiscard drops everything while serialising access like a real
// medium would.
type lockedDiscard struct {
	mu  sync.Mutex
	sum int64
}

func (l *lockedDiscard) Write(p []byte) (int, error) {
	l.mu.Lock()
	l.sum += int64(len(p))
	l.mu.Unlock()
	return len(p), nil
}

func (l *lockedDiscard) Sync() error {
	return nil
}

func newBenchmarkSink() *lockedDiscard {
	return &lockedDiscard{}
}

func (l *lockedDiscard) bytesWritten() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sum
}

func reportBytesPerOp(b *testing.B, sink *lockedDiscard) {
	total := sink.bytesWritten()
	if b.N > 0 {
		b.ReportMetric(float64(total)/float64(b.N), "bytes/op")
	} else {
		b.ReportMetric(0, "bytes/op")
	}
}

type benchEntry struct {
	severity steadylog.Severity
	message  string
}

// benchEntries is a firmware-style workload: short status lines, mostly
// informational, with the occasional warning and error.
var benchEntries = []benchEntry{
	{steadylog.Ok, "self test passed"},
	{steadylog.Info, "sampling every 250ms"},
	{steadylog.Info, "radio link up on channel 76"},
	{steadylog.Info, "flushed 512 bytes to flash"},
	{steadylog.Warn, "battery at 15%"},
	{steadylog.Info, "gps fix acquired with 7 satellites"},
	{steadylog.Error, "sensor 3 not responding"},
	{steadylog.Ok, "calibration stored"},
}
