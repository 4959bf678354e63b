package cli

import (
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/settings"
	"github.com/spf13/cobra"
)

var profileCmd = GroupCommand{
	Use:   "profile",
	Short: "Show or change your name, employer, wage and community setting",
	Subcommands: []*cobra.Command{
		profileShowCmd,
		profileSetCmd,
	},
}.Build()

// loadProfileForm opens the settings and user stores under homeDir.
func loadProfileForm(homeDir string) (*settings.Form, error) {
	return settings.LoadForm(
		settings.NewFileStore(homeDir, logger),
		session.NewFileStore(homeDir, logger),
	)
}
