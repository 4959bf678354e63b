package cli

import (
	"fmt"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/config"
	"github.com/spf13/cobra"
)

var profileShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the stored profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}
		return runProfileShow(cmd, homeDir)
	},
}.Build()

func runProfileShow(cmd *cobra.Command, homeDir string) error {
	form, err := loadProfileForm(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Naam:", valueOrDash(form.Name))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Werkgever:", valueOrDash(form.Employer))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Bruto Uurloon (€):", valueOrDash(form.Wage.Committed))

	community := Error("uit")
	if form.CommunityEnabled {
		community = Success("aan")
	}
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Community:", community)
	return nil
}

func valueOrDash(s string) string {
	if s == "" {
		return Silent("-")
	}
	return Primary(s)
}
