package cli

import (
	"github.com/spf13/cobra"

	"github.com/scuttlehq/scuttle/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "scuttle",
	Short: "Tear down a deletion-protected pipeline environment",
	Long: `Scuttle imperatively tears down one retired pipeline environment.

The provisioning stack shields its resources from the declarative destroy
path with deletion-protection flags; scuttle is the break-glass route
around them:

  • Discovers which of the project's resources still exist
  • Shows the full manifest and asks for confirmation
  • Deletes in an order that satisfies the provider's preconditions
  • Safe to re-run after an interruption`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logLevel)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(destroyCmd)
	rootCmd.AddCommand(versionCmd)
}
