package cli

import (
	"errors"
	"fmt"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/config"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/settings"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/wage"
	"github.com/spf13/cobra"
)

var profileSetCmd = LeafCommand{
	Use:   "set",
	Short: "Change profile settings",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "name", Usage: "your name"},
		{Name: "employer", Usage: "your employer"},
		{Name: "wage", Usage: "gross hourly wage, comma as decimal separator (e.g. 12,50)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "community", Usage: "enable community features (--community=false to disable)"},
		{Name: "yes", Shorthand: "y", Usage: "save without asking for confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}

		var in profileInput
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			in.Name = &v
		}
		if cmd.Flags().Changed("employer") {
			v, _ := cmd.Flags().GetString("employer")
			in.Employer = &v
		}
		if cmd.Flags().Changed("wage") {
			v, _ := cmd.Flags().GetString("wage")
			in.Wage = &v
		}
		if cmd.Flags().Changed("community") {
			v, _ := cmd.Flags().GetBool("community")
			in.Community = &v
		}

		pk := NewPromptKit()
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			pk.Confirm = AlwaysYes()
		}
		return runProfileSet(cmd, homeDir, in, pk)
	},
}.Build()

// profileInput holds the fields given on the command line; nil means unchanged.
type profileInput struct {
	Name      *string
	Employer  *string
	Wage      *string
	Community *bool
}

func (in profileInput) empty() bool {
	return in.Name == nil && in.Employer == nil && in.Wage == nil && in.Community == nil
}

func runProfileSet(cmd *cobra.Command, homeDir string, in profileInput, pk PromptKit) error {
	w := cmd.OutOrStdout()

	form, err := loadProfileForm(homeDir)
	if err != nil {
		return err
	}

	if in.empty() {
		if pk.PromptWithDefault == nil {
			return fmt.Errorf("interactive mode not available")
		}
		if err := promptProfile(cmd, form, pk); err != nil {
			return err
		}
	} else {
		if in.Name != nil {
			form.Name = *in.Name
		}
		if in.Employer != nil {
			form.Employer = *in.Employer
		}
		if in.Wage != nil {
			if err := form.SetWage(*in.Wage); err != nil {
				_, _ = fmt.Fprintln(w, Warning(err.Error()))
			}
		}
		if in.Community != nil {
			form.CommunityEnabled = *in.Community
		}
	}

	saved, err := form.Save(settings.ConfirmFunc(pk.Confirm))
	if err != nil {
		return err
	}
	if !saved {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	_, _ = fmt.Fprintln(w, Success(messages.ProfileSaved))
	if in.Community != nil {
		if form.CommunityEnabled {
			_, _ = fmt.Fprintln(w, messages.CommunityOn)
		} else {
			_, _ = fmt.Fprintln(w, messages.CommunityOff)
		}
	}
	return nil
}

// promptProfile asks for each field in turn. The wage is asked again until
// it parses, so the form never reaches Save with a pending wage error.
func promptProfile(cmd *cobra.Command, form *settings.Form, pk PromptKit) error {
	var err error
	if form.Name, err = pk.PromptWithDefault("Naam", form.Name); err != nil {
		return err
	}
	if form.Employer, err = pk.PromptWithDefault("Werkgever", form.Employer); err != nil {
		return err
	}

	raw := form.Wage.Committed
	for {
		raw, err = pk.PromptWithDefault("Bruto Uurloon (€)", raw)
		if err != nil {
			return err
		}
		err = form.SetWage(raw)
		var formatErr *wage.InvalidFormatError
		if errors.As(err, &formatErr) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Warning(formatErr.Error()))
			continue
		}
		if err != nil {
			return err
		}
		break
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent(messages.WageHint))
	return nil
}
