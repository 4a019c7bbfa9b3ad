package steadylog

import (
	"fmt"
	"io"
)

// Arguments is a format string and its operands, rendered lazily through
// fmt. It is what sinks on the allocating track receive: the logger has laid
// out the whole record, the sink decides when and where to render it.
type Arguments struct {
	format string
	args   []any
}

// NewArguments bundles format and args without rendering them.
func NewArguments(format string, args ...any) Arguments {
	return Arguments{format: format, args: args}
}

// FormatString returns the format string.
func (a Arguments) FormatString() string { return a.format }

// Operands returns the operands. The slice must not be modified.
func (a Arguments) Operands() []any { return a.args }

func (a Arguments) String() string {
	return fmt.Sprintf(a.format, a.args...)
}

// AppendTo renders a onto dst.
func (a Arguments) AppendTo(dst []byte) []byte {
	return fmt.Appendf(dst, a.format, a.args...)
}

// WriteTo renders a directly onto w.
func (a Arguments) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, a.format, a.args...)
	return int64(n), err
}

// Format lets Arguments nest inside another format string.
func (a Arguments) Format(f fmt.State, _ rune) {
	_, _ = fmt.Fprintf(f, a.format, a.args...)
}

// stamp renders the optional timestamp segment of a record.
type stamp struct {
	ts    Timestamp
	open  string
	reset string
}

func (s stamp) Format(f fmt.State, _ rune) {
	if s.ts.IsZero() {
		return
	}
	var buf [64]byte
	b := append(buf[:0], s.open...)
	b = s.ts.AppendTo(b)
	b = append(b, ':')
	b = append(b, s.reset...)
	_, _ = f.Write(b)
}
