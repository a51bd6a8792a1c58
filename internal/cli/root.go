package cli

import (
	"github.com/spf13/cobra"

	"github.com/danholt/bundlegen/internal/version"
)

func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bundlegen",
		Short:         "Generate a shell script that runs a list of test executables in sequence",
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}
	addGenerateFlags(cmd)

	cmd.AddCommand(
		newCheckCommand(),
		newVersionCommand(),
	)

	return cmd
}
