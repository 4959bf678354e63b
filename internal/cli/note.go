package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/calendar"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/notes"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/spf13/cobra"
)

var noteCmd = GroupCommand{
	Use:   "note",
	Short: "Add, edit and view session notes",
	Subcommands: []*cobra.Command{
		noteAddCmd,
		noteEditCmd,
		noteClearCmd,
		noteShowCmd,
		noteBrowseCmd,
		noteExportCmd,
	},
}.Build()

// noteContext is the state every note command loads before acting.
type noteContext struct {
	store      *session.FileStore
	reconciler *notes.Reconciler
	loc        *time.Location
	date       time.Time
	sessions   []session.Session
	current    *session.Session
}

func loadNoteContext(homeDir string, loc *time.Location, dateFlag string, clock clockwork.Clock) (*noteContext, error) {
	store := session.NewFileStore(homeDir, logger)

	date, err := calendar.ParseDate(dateFlag, clock.Now().In(loc))
	if err != nil {
		return nil, err
	}
	sessions, err := store.List()
	if err != nil {
		return nil, err
	}
	current, err := store.Current()
	if err != nil {
		return nil, err
	}

	return &noteContext{
		store:      store,
		reconciler: notes.NewReconciler(store, clock, loc),
		loc:        loc,
		date:       date,
		sessions:   sessions,
		current:    current,
	}, nil
}

// visible returns the sessions shown for the context's date.
func (nc *noteContext) visible(viewAll bool) []session.Session {
	return nc.reconciler.Filter(nc.sessions, nc.date, viewAll)
}

// title returns the heading of a notes listing.
func (nc *noteContext) title(viewAll bool) string {
	if viewAll {
		return messages.AllNotesTitle
	}
	return notesTitle(nc.date)
}

func notesTitle(date time.Time) string {
	return fmt.Sprintf(messages.NotesForTitle, calendar.FormatDayNL(date))
}

func dateFlags() []StringFlag {
	return []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "day of the notes (e.g. vandaag, gisteren, 2025-06-16; default: today)"},
	}
}

var allFlag = BoolFlag{Name: "all", Shorthand: "a", Usage: "include every session instead of one day"}
