package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) (string, bool) { return "", false }

func ignoreCaseEnv(key string) (string, bool) {
	if key == "IGNORE_CASE" {
		return "", true
	}
	return "", false
}

func TestRunPrintsMatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte("Rust:\r\nsafe, fast, productive.\r\nPick three.\r\nTrust me"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		query  string
		lookup func(string) (string, bool)
		want   string
	}{
		{name: "case sensitive", query: "duct", lookup: noEnv, want: "safe, fast, productive.\n"},
		{name: "ignore case", query: "RuSt", lookup: ignoreCaseEnv, want: "Rust:\nTrust me\n"},
		{name: "no matches", query: "nothing", lookup: noEnv, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{"minigrep", tt.query, path}, tt.lookup, &stdout, &stderr)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr: %q", code, stderr.String())
			}
			if stdout.String() != tt.want {
				t.Fatalf("Expected: %q, got: %q", tt.want, stdout.String())
			}
			if stderr.Len() != 0 {
				t.Fatalf("unexpected stderr: %q", stderr.String())
			}
		})
	}
}

func TestRunNotEnoughArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"minigrep", "query"}, noEnv, &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if stderr.String() != "Problem parsing arguments: Not enough arguments.\n" {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "absent.txt")
	code := run([]string{"minigrep", "x", path}, noEnv, &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if !strings.HasPrefix(stderr.String(), "Application error: failed to read file") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
	if strings.Count(stderr.String(), "\n") != 1 {
		t.Fatalf("expected a single error line, got %q", stderr.String())
	}
}
