package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/steadylog"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEmitWritesOneRecord(t *testing.T) {
	for _, track := range []string{"--compact=false", "--compact=true"} {
		out, _, err := runCLI(t, "", "emit", track, "--clock", "none", "--no-color", "--severity", "warn", "battery", "low")
		if err != nil {
			t.Fatalf("%s: emit: %v", track, err)
		}
		if out != "W&: battery low\n" {
			t.Fatalf("%s: unexpected output %q", track, out)
		}
	}
}

func TestEmitRejectsUnknownSeverity(t *testing.T) {
	_, _, err := runCLI(t, "", "emit", "--severity", "fatal", "x")
	if err == nil || !strings.Contains(err.Error(), "unknown severity") {
		t.Fatalf("expected unknown severity error, got %v", err)
	}
}

func TestEmitRequiresMessage(t *testing.T) {
	if _, _, err := runCLI(t, "", "emit"); err == nil {
		t.Fatalf("expected error without message")
	}
}

func TestPipeClassifiesLines(t *testing.T) {
	input := strings.Join([]string{
		"INFO starting",
		"warn: disk at 91%",
		"[ERROR] upload failed",
		"\x1b[91mE&:\x1b[0m1.204s: \x1b[91mrecorded earlier\x1b[0m",
		"plain line",
		"",
		"   ",
		"ok all green",
	}, "\n")
	out, errOut, err := runCLI(t, input, "pipe", "--clock", "none", "--no-color", "--summary")
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	want := "I&: starting\n" +
		"W&: disk at 91%\n" +
		"E&: upload failed\n" +
		"E&: recorded earlier\n" +
		"I&: plain line\n" +
		"O&: all green\n"
	if out != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out, want)
	}
	if errOut != "O&: 6 records: ok=1 info=2 warn=1 error=2\n" {
		t.Fatalf("unexpected summary %q", errOut)
	}
}

func TestPipeFailOn(t *testing.T) {
	_, _, err := runCLI(t, "INFO fine\nWARN hmm\n", "pipe", "--clock", "none", "--no-color", "--fail-on", "warn")
	if err == nil || !strings.Contains(err.Error(), "1 records at warn or above") {
		t.Fatalf("expected fail-on error, got %v", err)
	}
	if _, _, err := runCLI(t, "INFO fine\n", "pipe", "--clock", "none", "--fail-on", "error"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPipeDefaultSeverity(t *testing.T) {
	out, _, err := runCLI(t, "no token here\n", "pipe", "--clock", "none", "--no-color", "--default", "warn")
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if out != "W&: no token here\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		sev  steadylog.Severity
		msg  string
	}{
		{"DBG cache warm", steadylog.Info, "cache warm"},
		{"Warning: low", steadylog.Warn, "low"},
		{"[fatal] gone", steadylog.Error, "gone"},
		{"PASS", steadylog.Ok, ""},
		{"W&: already formatted", steadylog.Warn, "already formatted"},
		{"O&:3:07min: long run", steadylog.Ok, "long run"},
		{"X&: not a label", steadylog.Info, "X&: not a label"},
		{"information only", steadylog.Info, "information only"},
	}
	for _, tc := range cases {
		sev, msg := classifyLine(tc.line, steadylog.Info)
		if sev != tc.sev || msg != tc.msg {
			t.Fatalf("classifyLine(%q) = %v %q, want %v %q", tc.line, sev, msg, tc.sev, tc.msg)
		}
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")
	cfgPath := filepath.Join(dir, "steadylog.yaml")
	cfg := "clock: none\noutput: " + logPath + "\ncolor:\n  disable: true\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCLI(t, "", "emit", "--config", cfgPath, "--severity", "ok", "from", "config")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should be unused, got %q", out)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "O&: from config\n" {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "steadylog.yaml")
	if err := os.WriteFile(cfgPath, []byte("clock: wall\ncolor:\n  disable: true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("STEADYLOG_CLOCK", "none")

	out, _, err := runCLI(t, "", "emit", "--config", cfgPath, "layered")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if out != "I&: layered\n" {
		t.Fatalf("environment should override the file, got %q", out)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := map[string]string{
		"bad_clock":  "clock: sundial\n",
		"both_color": "color:\n  disable: true\n  force: true\n",
		"bad_yaml":   "clock: [\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), name+".yaml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := loadConfig(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDemo(t *testing.T) {
	out, _, err := runCLI(t, "", "demo", "--clock", "none", "--no-color", "--workers", "4")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	for _, want := range []string{
		"O&: self test passed\n",
		"E&: strconv.Atoi: parsing \"80a\": invalid syntax\n",
		"W&: falling back to port 8080\n",
		"O&: listening on port 8080\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("demo output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "reporting\n"); n != 4 {
		t.Fatalf("expected 4 worker records, got %d:\n%s", n, out)
	}
}

const cliChildEnv = "STEADYLOG_CLI_CHILD"

func TestDemoCrashLogsFaultAndExits(t *testing.T) {
	if os.Getenv(cliChildEnv) == "1" {
		os.Args = []string{"steadylog", "demo", "--crash", "--clock", "none", "--no-color", "--workers", "0"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestDemoCrashLogsFaultAndExits$")
	cmd.Env = append(os.Environ(), cliChildEnv+"=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected the demo to crash, got %v\nstdout:\n%s", err, stdout.String())
	}
	want := "E&: panic: runtime error: index out of range [1] with length 0\n"
	if n := strings.Count(stdout.String(), want); n != 1 {
		t.Fatalf("expected exactly one fault record, got %d\nstdout:\n%s\nstderr:\n%s", n, stdout.String(), stderr.String())
	}
}
