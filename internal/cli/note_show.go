package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/calendar"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/spf13/cobra"
)

var noteShowCmd = LeafCommand{
	Use:       "show",
	Short:     "Print the notes of a day",
	Args:      cobra.NoArgs,
	BoolFlags: []BoolFlag{allFlag},
	StrFlags:  dateFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		viewAll, _ := cmd.Flags().GetBool("all")
		return runNoteShow(cmd, homeDir, loc, dateFlag, viewAll, clockwork.NewRealClock())
	},
}.Build()

func runNoteShow(cmd *cobra.Command, homeDir string, loc *time.Location, dateFlag string, viewAll bool, clock clockwork.Clock) error {
	nc, err := loadNoteContext(homeDir, loc, dateFlag, clock)
	if err != nil {
		return err
	}
	return printNotes(cmd.OutOrStdout(), nc.title(viewAll), nc.visible(viewAll), loc)
}

// printNotes writes a plain listing of sessions and their notes.
func printNotes(w io.Writer, title string, sessions []session.Session, loc *time.Location) error {
	var b strings.Builder
	b.WriteString(Bold(title))
	b.WriteString("\n\n")

	if len(sessions) == 0 {
		b.WriteString(Silent(messages.NoSessionsForDate))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, s := range sessions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			Primary(calendar.FormatDateNL(s.Start.In(loc))),
			formatSpan(s, loc),
			Silent(s.ID),
		)
		if s.Notes == "" {
			b.WriteString("  " + Silent(messages.NoNotes) + "\n")
			continue
		}
		for _, line := range strings.Split(s.Notes, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
