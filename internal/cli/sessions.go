package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/calendar"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/notes"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/spf13/cobra"
)

var sessionsCmd = LeafCommand{
	Use:   "sessions",
	Short: "List work sessions for a day",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "all", Shorthand: "a", Usage: "list every session"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "day to list (e.g. vandaag, gisteren, 2025-06-16; default: today)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		allFlag, _ := cmd.Flags().GetBool("all")
		return runSessions(cmd, homeDir, loc, dateFlag, allFlag, clockwork.NewRealClock())
	},
}.Build()

func runSessions(cmd *cobra.Command, homeDir string, loc *time.Location, dateFlag string, viewAll bool, clock clockwork.Clock) error {
	store := session.NewFileStore(homeDir, logger)

	date, err := calendar.ParseDate(dateFlag, clock.Now().In(loc))
	if err != nil {
		return err
	}

	all, err := store.List()
	if err != nil {
		return err
	}
	current, err := store.Current()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	filtered := notes.Filter(all, date, viewAll, loc)
	if len(filtered) == 0 {
		_, _ = fmt.Fprintln(w, Silent(messages.NoSessionsForDate))
		return nil
	}

	now := clock.Now()
	for _, s := range filtered {
		marker := "  "
		if current != nil && current.ID == s.ID {
			marker = Primary("* ")
		}
		noteInfo := ""
		if s.Notes != "" {
			n := strings.Count(s.Notes, "\n") + 1
			noteInfo = Silent(fmt.Sprintf("  [%d notitie(s)]", n))
		}
		_, _ = fmt.Fprintf(w, "%s%s  %s  %s  %s%s\n",
			marker,
			Silent(s.ID),
			calendar.FormatDateNL(s.Start.In(loc)),
			formatSpan(s, loc),
			Primary(session.FormatMinutes(s.Minutes(now))),
			noteInfo,
		)
	}
	return nil
}
