package manifest

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/danholt/bundlegen/internal/bundle"
)

// Manifest is a checked-in TOML description of one bundle script, used by
// build rules that prefer a file over a long --test flag list.
type Manifest struct {
	Out    string      `toml:"out"`
	Tests  []string    `toml:"tests"`
	Script ScriptBlock `toml:"script"`
}

// ScriptBlock tunes the prologue of the generated script.
type ScriptBlock struct {
	Shell  string `toml:"shell"`
	Strict bool   `toml:"strict"`
	Xtrace bool   `toml:"xtrace"`
}

var (
	// ErrMissingOut indicates the manifest omitted the output path.
	ErrMissingOut = errors.New("manifest out must be set")
	// ErrNoTests indicates the manifest listed no test executables.
	ErrNoTests = errors.New("manifest tests must name at least one executable")
	// ErrEmptyTest indicates a tests entry was blank.
	ErrEmptyTest = errors.New("manifest tests entries must be non-empty")
)

func (m *Manifest) applyDefaults() {
	if m.Script.Shell == "" {
		m.Script.Shell = "/bin/sh"
	}
}

// Validate ensures the manifest can drive a generation run.
func (m Manifest) Validate() error {
	if m.Out == "" {
		return ErrMissingOut
	}
	if len(m.Tests) == 0 {
		return ErrNoTests
	}
	for _, test := range m.Tests {
		if test == "" {
			return ErrEmptyTest
		}
	}
	return nil
}

// Load reads and validates a manifest from disk.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", path, err)
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}

	return m, nil
}

// Request converts the manifest into a generation request. Test order in the
// manifest defines execution order in the script.
func (m Manifest) Request() bundle.Request {
	return bundle.Request{
		OutputPath: m.Out,
		Targets:    m.Tests,
		Shell:      m.Script.Shell,
		Strict:     m.Script.Strict,
		Xtrace:     m.Script.Xtrace,
	}
}
