// Package config resolves where shiftshift keeps its state and which
// timezone defines a calendar day.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// HomeEnv overrides the directory that holds .shiftshift.
	HomeEnv = "SHIFTSHIFT_HOME"
	// TimezoneEnv selects the IANA timezone used to decide calendar days.
	TimezoneEnv = "SHIFTSHIFT_TZ"
)

// StateDir returns the directory holding all shiftshift data.
func StateDir(homeDir string) string {
	return filepath.Join(homeDir, ".shiftshift")
}

// HomeDir returns $SHIFTSHIFT_HOME when set, the user's home directory otherwise.
func HomeDir() (string, error) {
	if h := os.Getenv(HomeEnv); h != "" {
		return h, nil
	}
	return os.UserHomeDir()
}

// Location returns the timezone named by $SHIFTSHIFT_TZ, or time.Local.
func Location() (*time.Location, error) {
	name := os.Getenv(TimezoneEnv)
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", TimezoneEnv, name, err)
	}
	return loc, nil
}
