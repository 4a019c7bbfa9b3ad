package steadylog

import (
	"io"
	"sync"
)

const (
	lineWriterDefaultCap = 256
	lineWriterMaxCap     = 64 << 10
)

// lineWriter is a pooled buffer holding exactly one rendered record.
type lineWriter struct {
	buf []byte
}

var lineWriterPool = sync.Pool{
	New: func() any {
		return &lineWriter{buf: make([]byte, 0, lineWriterDefaultCap)}
	},
}

func acquireLineWriter() *lineWriter {
	lw := lineWriterPool.Get().(*lineWriter)
	lw.buf = lw.buf[:0]
	return lw
}

func releaseLineWriter(lw *lineWriter) {
	if cap(lw.buf) > lineWriterMaxCap {
		lw.buf = make([]byte, 0, lineWriterDefaultCap)
	} else {
		lw.buf = lw.buf[:0]
	}
	lineWriterPool.Put(lw)
}

func (lw *lineWriter) reserve(n int) {
	if n <= 0 {
		return
	}
	need := len(lw.buf) + n
	if need <= cap(lw.buf) {
		return
	}
	newCap := max(cap(lw.buf)*2+n, need)
	if newCap > lineWriterMaxCap {
		newCap = need
	}
	newBuf := make([]byte, len(lw.buf), newCap)
	copy(newBuf, lw.buf)
	lw.buf = newBuf
}

func (lw *lineWriter) appendRecord(rec Record) {
	lw.reserve(rec.Size())
	lw.buf = rec.AppendTo(lw.buf)
}

func (lw *lineWriter) appendArguments(args Arguments) {
	lw.buf = args.AppendTo(lw.buf)
}

// flush hands the buffer to dst in a single Write and reports the outcome.
func (lw *lineWriter) flush(dst io.Writer) (int, error) {
	if len(lw.buf) == 0 || dst == nil {
		lw.buf = lw.buf[:0]
		return 0, nil
	}
	n, err := dst.Write(lw.buf)
	lw.buf = lw.buf[:0]
	return n, err
}
