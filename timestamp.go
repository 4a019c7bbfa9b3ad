package steadylog

import (
	"strconv"
	"time"
)

type timestampKind uint8

const (
	timestampNone timestampKind = iota
	timestampElapsed
	timestampText
)

// Timestamp is the opaque value a Clock hands to the logger. The zero value
// is the absent timestamp and renders to nothing.
type Timestamp struct {
	text    string
	elapsed time.Duration
	kind    timestampKind
}

// Elapsed returns a timestamp carrying a duration since some origin.
// Negative durations are clamped to zero.
func Elapsed(d time.Duration) Timestamp {
	if d < 0 {
		d = 0
	}
	return Timestamp{elapsed: d, kind: timestampElapsed}
}

// Text returns a timestamp that renders as s verbatim. An empty s yields the
// absent timestamp.
func Text(s string) Timestamp {
	if s == "" {
		return Timestamp{}
	}
	return Timestamp{text: s, kind: timestampText}
}

// IsZero reports whether t is the absent timestamp.
func (t Timestamp) IsZero() bool {
	return t.kind == timestampNone
}

// Duration returns the elapsed duration when t was produced by Elapsed.
func (t Timestamp) Duration() (time.Duration, bool) {
	return t.elapsed, t.kind == timestampElapsed
}

// AppendTo appends the textual form of t to dst. It never fails and does not
// allocate when dst has room.
func (t Timestamp) AppendTo(dst []byte) []byte {
	switch t.kind {
	case timestampElapsed:
		return appendCompactDuration(dst, t.elapsed)
	case timestampText:
		return append(dst, t.text...)
	default:
		return dst
	}
}

func (t Timestamp) String() string {
	if t.kind == timestampText {
		return t.text
	}
	var buf [32]byte
	return string(t.AppendTo(buf[:0]))
}

// appendCompactDuration renders d in the short bucketed form used on
// constrained targets: 950ns, 12µs, 340ms, 2.005s, 3:07min, 4:05:06, 2d, 2d3h.
func appendCompactDuration(dst []byte, d time.Duration) []byte {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Microsecond:
		dst = strconv.AppendInt(dst, int64(d), 10)
		return append(dst, "ns"...)
	case d < time.Millisecond:
		dst = strconv.AppendInt(dst, int64(d/time.Microsecond), 10)
		return append(dst, "µs"...)
	case d < time.Second:
		dst = strconv.AppendInt(dst, int64(d/time.Millisecond), 10)
		return append(dst, "ms"...)
	}
	secs := int64(d / time.Second)
	switch {
	case secs < 60:
		millis := int64(d/time.Millisecond) % 1000
		dst = strconv.AppendInt(dst, secs, 10)
		dst = append(dst, '.')
		dst = appendPadded(dst, millis, 3)
		return append(dst, 's')
	case secs < 3600:
		dst = strconv.AppendInt(dst, secs/60, 10)
		dst = append(dst, ':')
		dst = appendPadded(dst, secs%60, 2)
		return append(dst, "min"...)
	case secs < 86400:
		dst = strconv.AppendInt(dst, secs/3600, 10)
		dst = append(dst, ':')
		dst = appendPadded(dst, (secs%3600)/60, 2)
		dst = append(dst, ':')
		return appendPadded(dst, secs%60, 2)
	}
	dst = strconv.AppendInt(dst, secs/86400, 10)
	dst = append(dst, 'd')
	if hours := (secs % 86400) / 3600; hours > 0 {
		dst = strconv.AppendInt(dst, hours, 10)
		dst = append(dst, 'h')
	}
	return dst
}

func appendPadded(dst []byte, v int64, width int) []byte {
	var digits [20]byte
	n := 0
	for v > 0 || n == 0 {
		digits[len(digits)-1-n] = byte('0' + v%10)
		v /= 10
		n++
	}
	for ; n < width; n++ {
		digits[len(digits)-1-n] = '0'
	}
	return append(dst, digits[len(digits)-n:]...)
}
