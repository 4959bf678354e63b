package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/spf13/cobra"
)

var noteClearCmd = LeafCommand{
	Use:   "clear <session>",
	Short: "Delete the notes of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		return runNoteClear(cmd, homeDir, loc, args[0], clockwork.NewRealClock())
	},
}.Build()

func runNoteClear(cmd *cobra.Command, homeDir string, loc *time.Location, id string, clock clockwork.Clock) error {
	nc, err := loadNoteContext(homeDir, loc, "", clock)
	if err != nil {
		return err
	}

	if err := nc.reconciler.ClearNote(id); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Success(messages.NotesSaved), Silent("("+id+")"))
	return nil
}
