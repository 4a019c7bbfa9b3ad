package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/steadylog"
)

type pipeOptions struct {
	fallback string
	summary  bool
	failOn   string
}

// pipeCounts tallies records per severity.
type pipeCounts [4]int

func (c pipeCounts) total() int {
	return c[steadylog.Ok] + c[steadylog.Info] + c[steadylog.Warn] + c[steadylog.Error]
}

func newPipeCmd(opts *globalOptions) *cobra.Command {
	po := &pipeOptions{}
	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Re-render lines from stdin as records",
		Long: `Reads stdin line by line and writes every non-empty line as one record.
The severity comes from a leading level token (INFO, warn:, [ERROR], ERR,
O&: and so on) which is removed from the message; lines without one use
--default.

Examples:
  go test ./... 2>&1 | steadylog pipe --summary
  tail -f app.log | steadylog pipe --fail-on error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fallback, ok := steadylog.ParseSeverity(po.fallback)
			if !ok {
				return fmt.Errorf("unknown default severity %q", po.fallback)
			}
			threshold, failEnabled := steadylog.Severity(0), po.failOn != ""
			if failEnabled {
				if threshold, ok = steadylog.ParseSeverity(po.failOn); !ok {
					return fmt.Errorf("unknown --fail-on severity %q", po.failOn)
				}
			}
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			counts, err := pipeRecords(cmd.InOrStdin(), sess, fallback)
			if err != nil {
				return err
			}
			if po.summary {
				diag := steadylog.New(steadylog.NullClock{}, steadylog.NewWriterSink(cmd.ErrOrStderr()))
				diag.Logf(steadylog.Ok, "%d records: ok=%d info=%d warn=%d error=%d",
					counts.total(), counts[steadylog.Ok], counts[steadylog.Info], counts[steadylog.Warn], counts[steadylog.Error])
			}
			if failEnabled {
				hits := 0
				for sev := threshold; sev <= steadylog.Error; sev++ {
					hits += counts[sev]
				}
				if hits > 0 {
					return fmt.Errorf("%d records at %s or above", hits, threshold)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&po.fallback, "default", "info", "severity for lines without a level token")
	cmd.Flags().BoolVar(&po.summary, "summary", false, "write per-severity counts to stderr when done")
	cmd.Flags().StringVar(&po.failOn, "fail-on", "", "exit non-zero if any record reaches this severity")
	return cmd
}

func pipeRecords(r io.Reader, logger steadylog.Emitter, fallback steadylog.Severity) (pipeCounts, error) {
	var counts pipeCounts
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(stripANSI(scanner.Text()), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		sev, msg := classifyLine(line, fallback)
		logger.Log(sev, msg)
		counts[sev]++
	}
	if err := scanner.Err(); err != nil {
		return counts, fmt.Errorf("stdin: read: %w", err)
	}
	return counts, nil
}

// classifyLine finds the severity of line and returns the message without
// its level token.
func classifyLine(line string, fallback steadylog.Severity) (steadylog.Severity, string) {
	trimmed := strings.TrimLeft(line, " \t")
	if sev, rest, ok := parseRecordLabel(trimmed); ok {
		return sev, rest
	}
	token, rest := splitToken(trimmed)
	token = strings.TrimSuffix(token, ":")
	if len(token) > 2 && token[0] == '[' && token[len(token)-1] == ']' {
		token = token[1 : len(token)-1]
	}
	if sev, ok := normalizeLevel(token); ok {
		return sev, strings.TrimLeft(rest, " ")
	}
	return fallback, line
}

// parseRecordLabel recognises lines already in steadylog format, with or
// without a timestamp segment.
func parseRecordLabel(line string) (steadylog.Severity, string, bool) {
	if len(line) < 3 || line[1] != '&' || line[2] != ':' {
		return 0, "", false
	}
	var sev steadylog.Severity
	switch line[0] {
	case 'O':
		sev = steadylog.Ok
	case 'I':
		sev = steadylog.Info
	case 'W':
		sev = steadylog.Warn
	case 'E':
		sev = steadylog.Error
	default:
		return 0, "", false
	}
	rest := line[3:]
	if strings.HasPrefix(rest, " ") {
		return sev, rest[1:], true
	}
	if idx := strings.Index(rest, ": "); idx >= 0 {
		return sev, rest[idx+2:], true
	}
	return sev, strings.TrimSuffix(rest, ":"), true
}

func normalizeLevel(token string) (steadylog.Severity, bool) {
	switch strings.ToUpper(token) {
	case "OK", "PASS", "DONE", "SUCCESS":
		return steadylog.Ok, true
	case "TRC", "TRACE", "DBG", "DEBUG", "INF", "INFO", "NOTICE":
		return steadylog.Info, true
	case "WRN", "WARN", "WARNING":
		return steadylog.Warn, true
	case "ERR", "ERROR", "FAIL", "FTL", "FATAL", "PNC", "PANIC":
		return steadylog.Error, true
	default:
		return 0, false
	}
}

func splitToken(line string) (string, string) {
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i], line[i+1:]
	}
	return line, ""
}

func stripANSI(s string) string {
	if strings.IndexByte(s, '\x1b') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\x1b' || i+1 >= len(s) || s[i+1] != '[' {
			b.WriteByte(s[i])
			continue
		}
		j := i + 2
		for j < len(s) && s[j] != 'm' {
			j++
		}
		if j >= len(s) {
			break
		}
		i = j
	}
	return b.String()
}
