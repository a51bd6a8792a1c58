package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danholt/bundlegen/internal/bundle"
	"github.com/danholt/bundlegen/internal/manifest"
)

func addGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("out", "", "path of the invocation script to generate")
	flags.StringArray("test", nil, "adds a target to the list of test executables (repeatable, order preserved)")
	flags.String("manifest", "", "read the output path and test targets from a TOML manifest instead of flags")
	flags.String("shell", "", "interpreter for the shebang line (default /bin/sh)")
	flags.Bool("strict", false, "emit `set -e` so the bundle stops at the first failing test")
	flags.BoolP("xtrace", "x", false, "emit `set -x` so the bundle prints each test before running it")
	flags.BoolP("verbose", "v", false, "print a summary of the generated bundle")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	manifestPath, err := flags.GetString("manifest")
	if err != nil {
		return err
	}

	var req bundle.Request
	if manifestPath != "" {
		if flags.Changed("out") || flags.Changed("test") {
			return errors.New("cannot combine --manifest with --out or --test")
		}
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}
		req = m.Request()
	} else {
		req.OutputPath, err = flags.GetString("out")
		if err != nil {
			return err
		}
		req.Targets, err = flags.GetStringArray("test")
		if err != nil {
			return err
		}
	}

	// Flags layer on top of manifest settings.
	if flags.Changed("shell") {
		if req.Shell, err = flags.GetString("shell"); err != nil {
			return err
		}
	}
	if flags.Changed("strict") {
		if req.Strict, err = flags.GetBool("strict"); err != nil {
			return err
		}
	}
	if flags.Changed("xtrace") {
		if req.Xtrace, err = flags.GetBool("xtrace"); err != nil {
			return err
		}
	}

	if err := req.Write(); err != nil {
		return err
	}

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}
	if verbose {
		printBundleSummary(cmd, req)
	}
	return nil
}

var (
	colorBundlePath   = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorBundleTarget = color.New(color.FgHiBlue).SprintFunc()
)

func printBundleSummary(cmd *cobra.Command, req bundle.Request) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote %s (%d tests)\n", colorBundlePath(req.OutputPath), len(req.Targets))
	for _, target := range req.Targets {
		fmt.Fprintf(out, "  %s\n", colorBundleTarget(target))
	}
}
