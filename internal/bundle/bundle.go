package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultShell = "/bin/sh"

var (
	// ErrMissingOutput indicates no destination path was supplied.
	ErrMissingOutput = errors.New("an output path is required")
	// ErrNoTargets indicates the request named no test executables.
	ErrNoTargets = errors.New("at least one test target is required")
	// ErrEmptyTarget indicates a target string was blank.
	ErrEmptyTarget = errors.New("test targets must be non-empty")
)

// Request describes one invocation script to generate: the destination path
// and the test executables it should run, in order.
type Request struct {
	OutputPath string
	Targets    []string

	// Shell names the interpreter for the shebang line. Empty means /bin/sh.
	Shell string
	// Strict emits `set -e` so the bundle stops at the first failing test.
	Strict bool
	// Xtrace emits `set -x` so the bundle echoes each test before running it.
	Xtrace bool
}

func (r Request) shell() string {
	if r.Shell == "" {
		return defaultShell
	}
	return r.Shell
}

// Validate reports usage errors before any filesystem mutation happens.
func (r Request) Validate() error {
	if r.OutputPath == "" {
		return ErrMissingOutput
	}
	if len(r.Targets) == 0 {
		return ErrNoTargets
	}
	for _, target := range r.Targets {
		if target == "" {
			return ErrEmptyTarget
		}
	}
	return nil
}

// Render returns the full script text: a shebang line, a blank line, the
// optional set lines, then one target per line in request order. Targets are
// emitted verbatim, without quoting.
func (r Request) Render() string {
	var b strings.Builder
	b.WriteString("#!")
	b.WriteString(r.shell())
	b.WriteString("\n\n")
	if r.Strict {
		b.WriteString("set -e\n")
	}
	if r.Xtrace {
		b.WriteString("set -x\n")
	}
	for _, target := range r.Targets {
		b.WriteString(target)
		b.WriteByte('\n')
	}
	return b.String()
}

// Write validates the request, creates any missing ancestors of the output
// path, writes the script (overwriting an existing file), and marks it
// executable for owner and group with read access for others.
//
// The chmod runs as a separate step after the write. If it fails, the written
// but non-executable file is left on disk for inspection; there is no
// rollback.
func (r Request) Write() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.OutputPath), 0o755); err != nil {
		return fmt.Errorf("create bundle directory: %w", err)
	}
	if err := os.WriteFile(r.OutputPath, []byte(r.Render()), 0o644); err != nil {
		return fmt.Errorf("write bundle script: %w", err)
	}
	if err := os.Chmod(r.OutputPath, 0o774); err != nil {
		return fmt.Errorf("mark bundle script executable: %w", err)
	}
	return nil
}
