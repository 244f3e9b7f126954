package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the operator command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "landingctl",
		Short: "Operator tasks for the landing service",
		Long: `Operator tasks for the landing service.

Settings are read from the same environment (and optional .env file) as the
API server.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newHashPasswordCommand(),
		newSyncAssetsCommand(),
		newSeedPlansCommand(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
