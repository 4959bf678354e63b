// Package notes reconciles free-text notes with date-keyed work sessions.
package notes

import (
	"errors"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/calendar"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
)

var (
	// ErrEmptyInput is returned when a note contains no visible text.
	ErrEmptyInput = errors.New(messages.EnterNote)
	// ErrNoTargetSession is returned when no session resolves for the date.
	ErrNoTargetSession = errors.New(messages.NoActiveSession)
)

// Updater persists the notes of a single session.
type Updater interface {
	UpdateSessionNotes(id, notes string) error
}

// Reconciler decides which session a note belongs to and writes it through
// the session store. It holds no state of its own.
type Reconciler struct {
	store    Updater
	clock    clockwork.Clock
	location *time.Location
}

// NewReconciler returns a reconciler that decides "today" with clock and
// compares calendar days in loc. A nil loc means time.Local.
func NewReconciler(store Updater, clock clockwork.Clock, loc *time.Location) *Reconciler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Reconciler{store: store, clock: clock, location: loc}
}

// Location returns the timezone calendar days are evaluated in.
func (r *Reconciler) Location() *time.Location {
	return r.location
}

// Filter returns the sessions that started on date's calendar day in loc,
// keeping input order. With viewAll every session is returned.
func Filter(sessions []session.Session, date time.Time, viewAll bool, loc *time.Location) []session.Session {
	out := make([]session.Session, 0, len(sessions))
	if viewAll {
		return append(out, sessions...)
	}

	key := calendar.DayKeyOf(date, loc)
	for _, s := range sessions {
		if s.Day(loc) == key {
			out = append(out, s)
		}
	}
	return out
}

// Filter applies Filter in the reconciler's location.
func (r *Reconciler) Filter(sessions []session.Session, date time.Time, viewAll bool) []session.Session {
	return Filter(sessions, date, viewAll, r.location)
}

// IsToday reports whether date falls on the current calendar day.
func (r *Reconciler) IsToday(date time.Time) bool {
	return calendar.SameDay(date, r.clock.Now(), r.location)
}

// Target resolves the session a new note for date should be appended to.
// On today's date the current session wins; otherwise the first session of
// that day is used.
func (r *Reconciler) Target(sessions []session.Session, date time.Time, current *session.Session) (session.Session, error) {
	if current != nil && r.IsToday(date) {
		return *current, nil
	}

	day := r.Filter(sessions, date, false)
	if len(day) == 0 {
		return session.Session{}, ErrNoTargetSession
	}
	return day[0], nil
}

// AddNote appends text to the target session's notes and persists the result.
// Calling it twice with the same text appends twice.
func (r *Reconciler) AddNote(sessions []session.Session, date time.Time, current *session.Session, text string) (session.Session, error) {
	if strings.TrimSpace(text) == "" {
		return session.Session{}, ErrEmptyInput
	}

	target, err := r.Target(sessions, date, current)
	if err != nil {
		return session.Session{}, err
	}

	target.Notes = Append(target.Notes, text)
	if err := r.store.UpdateSessionNotes(target.ID, target.Notes); err != nil {
		return session.Session{}, err
	}
	return target, nil
}

// EditNote overwrites the notes of a session. An empty text deletes them.
func (r *Reconciler) EditNote(id, text string) error {
	return r.store.UpdateSessionNotes(id, text)
}

// ClearNote deletes the notes of a session.
func (r *Reconciler) ClearNote(id string) error {
	return r.EditNote(id, "")
}

// Append joins a new note to existing notes with a newline.
func Append(existing, text string) string {
	if existing == "" {
		return text
	}
	return existing + "\n" + text
}
