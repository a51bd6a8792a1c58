package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckAcceptsGeneratedBundle(t *testing.T) {
	out := filepath.Join(t.TempDir(), "run_tests.sh")
	if _, err := runCommand(t, "--out", out, "--test", "./unit_test", "--test", "./integration_test"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	output, err := runCommand(t, "check", out)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(output, "ok") {
		t.Fatalf("expected ok report, got %q", output)
	}
}

func TestCheckRejectsInvalidScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n\nif true; then\n"), 0o644); err != nil {
		t.Fatalf("write broken script: %v", err)
	}

	if _, err := runCommand(t, "check", path); err == nil {
		t.Fatal("expected a syntax error for an unterminated if")
	}
}

func TestCheckMissingFile(t *testing.T) {
	if _, err := runCommand(t, "check", filepath.Join(t.TempDir(), "absent.sh")); err == nil {
		t.Fatal("expected an error for a missing script")
	}
}
