package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/spf13/cobra"
)

var noteAddCmd = LeafCommand{
	Use:      "add [text]",
	Short:    "Add a note to today's session or the first session of a day",
	Args:     cobra.MaximumNArgs(1),
	StrFlags: dateFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")

		var text string
		if len(args) > 0 {
			text = args[0]
		}
		return runNoteAdd(cmd, homeDir, loc, dateFlag, text, NewPromptKit(), clockwork.NewRealClock())
	},
}.Build()

func runNoteAdd(
	cmd *cobra.Command,
	homeDir string,
	loc *time.Location,
	dateFlag, text string,
	pk PromptKit,
	clock clockwork.Clock,
) error {
	nc, err := loadNoteContext(homeDir, loc, dateFlag, clock)
	if err != nil {
		return err
	}

	if text == "" && pk.Text != nil {
		text, err = pk.Text(messages.NewNotePrompt, "")
		if err != nil {
			return err
		}
	}

	updated, err := nc.reconciler.AddNote(nc.sessions, nc.date, nc.current, text)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Success(messages.NoteAdded), Silent("("+updated.ID+")"))
	return nil
}
