package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/spf13/cobra"
)

var startCmd = LeafCommand{
	Use:   "start",
	Short: "Start a new work session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		return runStart(cmd, homeDir, loc, clockwork.NewRealClock())
	},
}.Build()

var stopCmd = LeafCommand{
	Use:   "stop",
	Short: "Stop the running work session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		return runStop(cmd, homeDir, loc, clockwork.NewRealClock())
	},
}.Build()

func runStart(cmd *cobra.Command, homeDir string, loc *time.Location, clock clockwork.Clock) error {
	store := session.NewFileStore(homeDir, logger)

	s, err := store.StartSession(clock.Now())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started session %s at %s\n",
		Primary(s.ID),
		Primary(s.Start.In(loc).Format("15:04")),
	)
	return nil
}

func runStop(cmd *cobra.Command, homeDir string, loc *time.Location, clock clockwork.Clock) error {
	store := session.NewFileStore(homeDir, logger)

	now := clock.Now()
	s, err := store.StopSession(now)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stopped session %s at %s (%s)\n",
		Primary(s.ID),
		Primary(s.End.In(loc).Format("15:04")),
		Primary(session.FormatMinutes(s.Minutes(now))),
	)
	return nil
}

// formatSpan renders a session's time range in loc, e.g. "09:00–17:30".
func formatSpan(s session.Session, loc *time.Location) string {
	start := s.Start.In(loc).Format("15:04")
	if s.End == nil {
		return start + "–…"
	}
	return start + "–" + s.End.In(loc).Format("15:04")
}
