package cli

import (
	"time"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/config"
)

// getContext resolves the state home directory and the calendar-day timezone.
func getContext() (string, *time.Location, error) {
	homeDir, err := config.HomeDir()
	if err != nil {
		return "", nil, err
	}
	loc, err := config.Location()
	if err != nil {
		return "", nil, err
	}
	return homeDir, loc, nil
}
