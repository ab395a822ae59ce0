package cli

import "github.com/spf13/cobra"

// NewRootCmd assembles the command tree.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "drukwater-admin",
		Short:         "Admin client for the Druk water utility registry",
		Long:          "drukwater-admin manages dzongkhags, gewogs, consumers and user accounts of the regional water utility through its REST backend.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newLoginCmd(app))
	rootCmd.AddCommand(newLogoutCmd(app))
	rootCmd.AddCommand(newMeCmd(app))
	rootCmd.AddCommand(newDzongkhagCmd(app))
	rootCmd.AddCommand(newGewogCmd(app))
	rootCmd.AddCommand(newUserCmd(app))
	rootCmd.AddCommand(newConsumerCmd(app))
	rootCmd.AddCommand(newDashboardCmd(app))

	return rootCmd
}
