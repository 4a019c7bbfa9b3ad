// Package steadylog is a small logging core that never brings the calling
// program down. It stamps short messages with a severity and a timestamp,
// renders them with a severity colour and hands the bytes to a sink the
// caller supplies. The same code runs on a hosted OS and, built with TinyGo,
// on microcontrollers.
//
// # Design overview
//
//   - Two capabilities: a Clock (Now, never blocks) and a sink. Loggers are
//     generic over both, so the concrete types are known at compile time.
//   - Two tracks: Logger renders through fmt into Arguments for a Sink and may
//     allocate; Compact passes a Record by value to a RecordSink and renders
//     with Record.AppendTo without touching the heap.
//   - Construction-time setup: colour and palette are resolved once in New or
//     NewCompact. Build tags strip features entirely: steadylog_nocolor drops
//     the colour table, steadylog_nostd drops the default real-time clock and
//     steadylog_zeroalloc makes NewDefault use the zero-allocation track.
//   - Sinks swallow delivery failures. No logging call returns an error or
//     panics because a medium is unavailable.
//
// # Output
//
// Each record is one line:
//
//	[colour]O&:[reset]1.204ms: [colour]ready[reset]
//
// Without colours the escapes disappear; with NullClock the timestamp
// segment disappears:
//
//	O&: ready
//
// # Usage
//
//	logger := steadylog.New(steadylog.NewMonotonicClock(), steadylog.NewConsoleSink(os.Stdout))
//	logger.LogOk("ready")
//
//	data, logger := steadylog.TryGet(logger, steadylog.ResultOf(os.ReadFile(path)),
//		func(l *steadylog.Logger[steadylog.MonotonicClock, *steadylog.WriterSink]) ([]byte, *steadylog.Logger[steadylog.MonotonicClock, *steadylog.WriterSink]) {
//			l.LogWarn("using built-in defaults")
//			return defaults, l
//		})
//
// Faults are captured per goroutine once a hook is installed:
//
//	func main() {
//		_ = steadylog.InstallDefault()
//		defer steadylog.Guard()
//		...
//	}
//
// Use Shared or SharedCompact to hand independent copies of one logger to
// several goroutines.
package steadylog
