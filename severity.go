package steadylog

import "strings"

// Severity classifies a log event. The set is closed: Ok, Info, Warn and
// Error are the only values a record can carry.
type Severity uint8

const (
	// Ok marks a step that completed as intended.
	Ok Severity = iota
	// Info marks a normal operational message.
	Info
	// Warn marks a degraded but tolerated condition.
	Warn
	// Error marks a failure.
	Error
)

var severityLabels = [...]string{
	Ok:    "O&:",
	Info:  "I&:",
	Warn:  "W&:",
	Error: "E&:",
}

var severityNames = [...]string{
	Ok:    "ok",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
}

// index maps out-of-range values onto Error so every lookup table stays total.
func (s Severity) index() int {
	if s > Error {
		return int(Error)
	}
	return int(s)
}

// normalize folds out-of-range values onto Error so sinks only ever see one
// of the four severities.
func (s Severity) normalize() Severity {
	return Severity(s.index())
}

// Label returns the short marker printed in front of every record.
func (s Severity) Label() string {
	return severityLabels[s.index()]
}

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	return severityNames[s.index()]
}

// ParseSeverity converts a textual severity into a Severity value. It accepts
// "ok", "info", "warn", "warning", "error" and "err" (case insensitive).
func ParseSeverity(value string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ok":
		return Ok, true
	case "info":
		return Info, true
	case "warn", "warning":
		return Warn, true
	case "error", "err":
		return Error, true
	default:
		return Info, false
	}
}
