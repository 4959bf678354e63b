package settings

import (
	"strconv"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/wage"
)

// UserStore reads and updates the account holder's name.
type UserStore interface {
	ReadUser() (session.User, error)
	UpdateUser(name string) error
}

// ConfirmFunc asks the user to confirm and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// Profile is the flat settings record shown to the user. Wage is in stored
// (period-decimal) form.
type Profile struct {
	Username         string
	Employer         string
	Wage             string
	CommunityEnabled bool
}

// Form holds an editable copy of the profile. Nothing is written until Save
// is confirmed.
type Form struct {
	Name             string
	Employer         string
	Wage             wage.Field
	CommunityEnabled bool

	settings Store
	users    UserStore
}

// LoadForm reads the current profile into a form.
func LoadForm(s Store, users UserStore) (*Form, error) {
	u, err := users.ReadUser()
	if err != nil {
		return nil, err
	}
	storedWage, err := GetString(s, KeyHourlyWage, "")
	if err != nil {
		return nil, err
	}
	employer, err := GetString(s, KeyEmployer, "")
	if err != nil {
		return nil, err
	}
	community, err := CommunityEnabled(s)
	if err != nil {
		return nil, err
	}

	return &Form{
		Name:             u.Username,
		Employer:         employer,
		Wage:             wage.NewField(storedWage),
		CommunityEnabled: community,
		settings:         s,
		users:            users,
	}, nil
}

// SetWage applies wage input as typed. An invalid value is reported and
// keeps the previously accepted wage.
func (f *Form) SetWage(raw string) error {
	return f.Wage.Input(raw)
}

// Profile returns the values Save would commit.
func (f *Form) Profile() Profile {
	return Profile{
		Username:         f.Name,
		Employer:         f.Employer,
		Wage:             f.Wage.StorageValue(),
		CommunityEnabled: f.CommunityEnabled,
	}
}

// Save commits the form after confirmation. A pending wage error blocks the
// save before the confirmation is asked. It returns false when the user
// declined, in which case nothing is written.
func (f *Form) Save(confirm ConfirmFunc) (bool, error) {
	if err := f.Wage.Gate(); err != nil {
		return false, err
	}

	ok, err := confirm(messages.ConfirmChanges)
	if err != nil || !ok {
		return false, err
	}

	p := f.Profile()
	if err := f.users.UpdateUser(p.Username); err != nil {
		return false, err
	}
	if err := f.settings.Set(KeyHourlyWage, p.Wage); err != nil {
		return false, err
	}
	if err := f.settings.Set(KeyEmployer, p.Employer); err != nil {
		return false, err
	}
	if err := f.settings.Set(KeyCommunityEnabled, strconv.FormatBool(p.CommunityEnabled)); err != nil {
		return false, err
	}
	return true, nil
}
