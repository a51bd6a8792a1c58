package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>...",
		Short: "Parse bundle scripts and report shell syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := syntax.NewParser()
			for _, path := range args {
				if err := checkScript(parser, path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			return nil
		},
	}
}

func checkScript(parser *syntax.Parser, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(bytes.NewReader(content), filepath.Base(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
