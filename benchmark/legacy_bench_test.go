package benchmark_test

import (
	"flag"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/cihub/seelog"
	onelog "github.com/francoispqt/onelog"
	"github.com/golang/glog"

	"pkt.systems/steadylog"
)

var glogSetup sync.Once

// Older loggers with global state or their own receivers; they join the
// native comparison through BenchmarkNativeLoggers.
func legacyLoggers() []nativeLogger {
	return []nativeLogger{
		{
			name: "onelog/json",
			run: func(b *testing.B, sink *lockedDiscard) {
				logger := onelog.New(sink, onelog.ALL)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					entry := benchEntries[i%len(benchEntries)]
					switch entry.severity {
					case steadylog.Warn:
						logger.Warn(entry.message)
					case steadylog.Error:
						logger.Error(entry.message)
					default:
						logger.Info(entry.message)
					}
				}
			},
		},
		{
			name: "seelog/custom",
			run: func(b *testing.B, sink *lockedDiscard) {
				logger := newSeelogLogger(b, sink)
				defer logger.Flush()
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					entry := benchEntries[i%len(benchEntries)]
					switch entry.severity {
					case steadylog.Warn:
						_ = logger.Warn(entry.message)
					case steadylog.Error:
						_ = logger.Error(entry.message)
					default:
						logger.Info(entry.message)
					}
				}
			},
		},
		{
			name: "glog/text",
			run: func(b *testing.B, sink *lockedDiscard) {
				glogSetup.Do(func() {
					_ = flag.Set("logtostderr", "true")
					_ = flag.Set("alsologtostderr", "false")
					_ = flag.Set("log_dir", "")
				})
				withRedirectedStderr(b, sink, func() {
					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						entry := benchEntries[i%len(benchEntries)]
						switch entry.severity {
						case steadylog.Warn:
							glog.Warning(entry.message)
						case steadylog.Error:
							glog.Error(entry.message)
						default:
							glog.Info(entry.message)
						}
					}
					glog.Flush()
				})
			},
		},
	}
}

type discardReceiver struct {
	sink *lockedDiscard
}

func (r *discardReceiver) ReceiveMessage(message string, _ seelog.LogLevel, _ seelog.LogContextInterface) error {
	if message == "" {
		return nil
	}
	if _, err := r.sink.Write([]byte(message)); err != nil {
		return err
	}
	_, err := r.sink.Write([]byte{'\n'})
	return err
}

func (r *discardReceiver) AfterParse(seelog.CustomReceiverInitArgs) error { return nil }
func (r *discardReceiver) Flush()                                         {}
func (r *discardReceiver) Close() error                                   { return nil }

func newSeelogLogger(b *testing.B, sink *lockedDiscard) seelog.LoggerInterface {
	logger, err := seelog.LoggerFromCustomReceiver(&discardReceiver{sink: sink})
	if err != nil {
		b.Fatalf("seelog custom receiver: %v", err)
	}
	return logger
}

func withRedirectedStderr(b *testing.B, sink *lockedDiscard, fn func()) {
	r, w, err := os.Pipe()
	if err != nil {
		b.Fatalf("stderr redirection failed: %v", err)
	}
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(sink, r)
		close(done)
	}()
	orig := os.Stderr
	os.Stderr = w
	defer func() {
		_ = w.Close()
		<-done
		_ = r.Close()
		os.Stderr = orig
	}()
	fn()
}
