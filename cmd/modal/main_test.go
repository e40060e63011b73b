package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "modal version dev") {
		t.Errorf("unexpected version output: %q", stdout.String())
	}
}

func TestRejectsArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"file.txt"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") && !strings.Contains(stderr.String(), "accepts 0 arg") {
		t.Errorf("unexpected error output: %q", stderr.String())
	}
}

func TestInvalidLogLevelFailsBeforeTerminal(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--log-level", "loud"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "log.level") {
		t.Errorf("expected validation message, got %q", stderr.String())
	}
}

func TestPollIntervalOutOfRange(t *testing.T) {
	for _, arg := range []string{"0s", "-5ms", "1m"} {
		t.Run(arg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			if code := run([]string{"--poll-interval=" + arg}, &stdout, &stderr); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), "editor.poll_interval") {
				t.Errorf("expected validation message, got %q", stderr.String())
			}
		})
	}
}

func TestMissingConfigFailsBeforeTerminal(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", t.TempDir() + "/missing.toml"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "config file not found") {
		t.Errorf("unexpected error output: %q", stderr.String())
	}
}

func TestHelpMentionsModes(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"Navigation", "Insertion", "--log-file", "--config"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}
