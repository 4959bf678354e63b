package session

import (
	"time"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/calendar"
)

// Session is a recorded work interval (a shift) with optional free-text notes.
type Session struct {
	ID        string     `json:"id"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Running reports whether the session has not been stopped yet.
func (s Session) Running() bool {
	return s.End == nil
}

// Minutes returns the session length in whole minutes. Running sessions are
// measured up to now.
func (s Session) Minutes(now time.Time) int {
	end := now
	if s.End != nil {
		end = *s.End
	}
	if end.Before(s.Start) {
		return 0
	}
	return int(end.Sub(s.Start).Minutes())
}

// Day returns the calendar day the session started on in loc.
func (s Session) Day(loc *time.Location) calendar.DayKey {
	return calendar.DayKeyOf(s.Start, loc)
}

// User is the locally known account holder.
type User struct {
	Username string `json:"username"`
}
