package cli

import (
	"github.com/parvenuprompting/github-shiftshift-beta/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger carries diagnostics only; user-facing output goes to cmd.OutOrStdout().
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "shiftshift",
	Short:         "Track work shifts, shift notes and your wage profile",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "write diagnostic logs to stderr")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(communityCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
