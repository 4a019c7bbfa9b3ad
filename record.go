package steadylog

// colorTable holds the escape sequences a coloured renderer uses. It is
// built once per logger and only read afterwards.
type colorTable struct {
	sev   [4]string
	ts    string
	reset string
}

// Record is one log event on its way to a sink: severity, timestamp and the
// caller's message, plus the rendering style chosen when the logger was
// built. It is passed by value and never retained by the logger.
type Record struct {
	Severity  Severity
	Timestamp Timestamp
	Message   string

	colors *colorTable
}

// NewRecord returns an uncoloured record.
func NewRecord(severity Severity, ts Timestamp, message string) Record {
	return Record{Severity: severity, Timestamp: ts, Message: message}
}

// Colored reports whether the record renders with ANSI escapes.
func (r Record) Colored() bool {
	return r.colors != nil
}

// Plain returns a copy of r that renders without escape sequences.
func (r Record) Plain() Record {
	r.colors = nil
	return r
}

// Size returns the number of bytes AppendTo will add for elapsed or absent
// timestamps, and a close estimate otherwise.
func (r Record) Size() int {
	n := len(severityLabels[r.Severity.index()]) + 1 + len(r.Message) + 1
	if !r.Timestamp.IsZero() {
		n += len(r.Timestamp.text) + 16
	}
	if c := r.colors; c != nil {
		n += 2*len(c.sev[r.Severity.index()]) + 2*len(c.reset)
		if c.ts != "" {
			n += len(c.ts) + len(c.reset)
		}
	}
	return n
}

// AppendTo renders r onto dst as
//
//	[colour]label[reset][timestamp:] [colour]message[reset]\n
//
// and returns the extended buffer. Nothing is allocated when dst has room.
func (r Record) AppendTo(dst []byte) []byte {
	c := r.colors
	idx := r.Severity.index()
	if c != nil {
		dst = append(dst, c.sev[idx]...)
	}
	dst = append(dst, severityLabels[idx]...)
	if c != nil {
		dst = append(dst, c.reset...)
	}
	if !r.Timestamp.IsZero() {
		tsColored := c != nil && c.ts != ""
		if tsColored {
			dst = append(dst, c.ts...)
		}
		dst = r.Timestamp.AppendTo(dst)
		dst = append(dst, ':')
		if tsColored {
			dst = append(dst, c.reset...)
		}
	}
	dst = append(dst, ' ')
	if c != nil {
		dst = append(dst, c.sev[idx]...)
	}
	dst = append(dst, r.Message...)
	if c != nil {
		dst = append(dst, c.reset...)
	}
	return append(dst, '\n')
}

func (r Record) String() string {
	return string(r.AppendTo(make([]byte, 0, r.Size())))
}
