package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/spf13/cobra"
)

var noteEditCmd = LeafCommand{
	Use:   "edit <session>",
	Short: "Replace the notes of a session",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "message", Shorthand: "m", Usage: "new notes (empty string deletes them)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		messageFlag, _ := cmd.Flags().GetString("message")
		return runNoteEdit(cmd, homeDir, loc, args[0], messageFlag, cmd.Flags().Changed("message"), NewPromptKit(), clockwork.NewRealClock())
	},
}.Build()

func runNoteEdit(
	cmd *cobra.Command,
	homeDir string,
	loc *time.Location,
	id, messageFlag string,
	messageChanged bool,
	pk PromptKit,
	clock clockwork.Clock,
) error {
	nc, err := loadNoteContext(homeDir, loc, "", clock)
	if err != nil {
		return err
	}

	s, err := nc.store.Get(id)
	if err != nil {
		return err
	}

	text := messageFlag
	if !messageChanged {
		if pk.Text == nil {
			return fmt.Errorf("interactive mode not available")
		}
		text, err = pk.Text("Notities", s.Notes)
		if err != nil {
			return err
		}
	}

	if text == s.Notes {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no changes")
		return nil
	}

	if err := nc.reconciler.EditNote(s.ID, text); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Success(messages.NotesSaved), Silent("("+s.ID+")"))
	return nil
}
