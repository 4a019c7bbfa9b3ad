package steadylog

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var messageSeeds = []string{
	"hello",
	"",
	"100% %s %d %v",
	"line\nfeed\tand\\slash",
	"emoji 😃 snowman ☃",
	"\x1b[31malready coloured\x1b[0m",
	string([]byte{0xff, 0xfe, 0x00}),
}

func FuzzTracksAgree(f *testing.F) {
	for i, msg := range messageSeeds {
		f.Add(msg, uint8(i%4), int64(i)*int64(time.Second))
	}
	f.Fuzz(func(t *testing.T, msg string, sev uint8, elapsed int64) {
		clock := fixedClock{ts: Elapsed(time.Duration(elapsed))}
		var fmtBuf, recBuf bytes.Buffer
		New(clock, NewWriterSink(&fmtBuf), WithColor(true)).Log(Severity(sev), msg)
		NewCompact(clock, NewWriterSink(&recBuf), WithColor(true)).Log(Severity(sev), msg)
		if fmtBuf.String() != recBuf.String() {
			t.Fatalf("tracks differ for %q: %q vs %q", msg, fmtBuf.String(), recBuf.String())
		}
		plain := NewRecord(Severity(sev), clock.ts, msg).String()
		if stripANSI(recBuf.String()) != plain && !strings.Contains(msg, "\x1b[") {
			t.Fatalf("stripped output %q != plain %q", stripANSI(recBuf.String()), plain)
		}
		if !strings.HasSuffix(plain, msg+"\n") {
			t.Fatalf("message altered: %q", plain)
		}
	})
}

func FuzzCompactDuration(f *testing.F) {
	for _, d := range []int64{0, 1, 999, 1_000, 999_999, 1_000_000, 59_999_999_999, 3_599_000_000_000, 86_399_000_000_000, 90_000_000_000_000, -5} {
		f.Add(d)
	}
	f.Fuzz(func(t *testing.T, d int64) {
		out := Elapsed(time.Duration(d)).String()
		if out == "" {
			t.Fatalf("empty rendering for %d", d)
		}
		if len(out) > 16 {
			t.Fatalf("rendering %q for %d exceeds the record size estimate", out, d)
		}
	})
}
