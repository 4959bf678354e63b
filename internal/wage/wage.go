// Package wage validates hourly wage input written with a comma as decimal
// separator and converts it to and from its stored period-decimal form.
package wage

import (
	"errors"
	"regexp"
	"strings"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
)

var displayRe = regexp.MustCompile(`^\d*,?\d{0,2}$`)

// ErrSaveBlocked is returned by the save gate while a format error is pending.
var ErrSaveBlocked = errors.New(messages.FixWageFirst)

// InvalidFormatError reports wage input that does not match the comma-decimal format.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return messages.WageFormat
}

// Normalize coerces the first period to a comma and validates the result.
// An empty result is valid and means the wage is unset.
func Normalize(raw string) (string, error) {
	value := strings.Replace(raw, ".", ",", 1)
	if value == "" {
		return "", nil
	}
	if !displayRe.MatchString(value) {
		return "", &InvalidFormatError{Input: raw}
	}
	return value, nil
}

// ToStorage converts a comma-decimal display value to its period-decimal
// stored form.
func ToStorage(display string) string {
	return strings.Replace(display, ",", ".", 1)
}

// ToDisplay converts a stored period-decimal value to its comma-decimal form.
func ToDisplay(stored string) string {
	return strings.Replace(stored, ".", ",", 1)
}

// Field is the state of a wage input that is validated on every edit. Raw is
// what the user typed; Committed only ever holds a valid display value.
type Field struct {
	Raw       string
	Committed string
	Err       error
}

// NewField returns a field initialised from a stored wage.
func NewField(stored string) Field {
	display := ToDisplay(stored)
	f := Field{Raw: display}
	if v, err := Normalize(display); err == nil {
		f.Committed = v
	} else {
		f.Err = err
	}
	return f
}

// Input applies an edit. Invalid input sets Err and leaves Committed as it was.
func (f *Field) Input(raw string) error {
	f.Raw = raw
	v, err := Normalize(raw)
	if err != nil {
		f.Err = err
		return err
	}
	f.Raw = v
	f.Committed = v
	f.Err = nil
	return nil
}

// Pending reports whether a format error blocks saving.
func (f Field) Pending() bool {
	return f.Err != nil
}

// Gate returns ErrSaveBlocked while a format error is pending.
func (f Field) Gate() error {
	if f.Pending() {
		return ErrSaveBlocked
	}
	return nil
}

// StorageValue returns the committed value in stored form.
func (f Field) StorageValue() string {
	return ToStorage(f.Committed)
}
