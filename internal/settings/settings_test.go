package settings

import (
	"errors"
	"os"
	"testing"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/wage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers struct {
	name    string
	updates int
}

func (m *memUsers) ReadUser() (session.User, error) {
	return session.User{Username: m.name}, nil
}

func (m *memUsers) UpdateUser(name string) error {
	m.name = name
	m.updates++
	return nil
}

func yes(string) (bool, error) { return true, nil }
func no(string) (bool, error)  { return false, nil }

func TestFileStoreGetSet(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)

	_, ok, err := s.Get(KeyEmployer)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyEmployer, "Bakkerij de Vries"))
	require.NoError(t, s.Set(KeyHourlyWage, "12.50"))

	v, ok, err := s.Get(KeyEmployer)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bakkerij de Vries", v)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyEmployer, KeyHourlyWage}, keys)
}

func TestFileStoreCorruptFile(t *testing.T) {
	home := t.TempDir()
	s := NewFileStore(home, nil)
	require.NoError(t, s.Set(KeyEmployer, "x"))
	require.NoError(t, os.WriteFile(Path(home), []byte("[]"), 0644))

	_, _, err := s.Get(KeyEmployer)
	assert.Error(t, err)
}

func TestCommunityDefaultsToEnabled(t *testing.T) {
	s := NewMemoryStore(nil)
	on, err := CommunityEnabled(s)
	require.NoError(t, err)
	assert.True(t, on)

	for value, want := range map[string]bool{"false": false, "true": true, "": true, "no": true} {
		require.NoError(t, s.Set(KeyCommunityEnabled, value))
		got, err := CommunityEnabled(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "stored %q", value)
	}
}

func TestGetBoolDefaultFalse(t *testing.T) {
	s := NewMemoryStore(map[string]string{"a": "true", "b": "yes"})

	a, _ := GetBool(s, "a", false)
	b, _ := GetBool(s, "b", false)
	c, _ := GetBool(s, "c", false)
	assert.True(t, a)
	assert.False(t, b)
	assert.False(t, c)
}

func TestLoadForm(t *testing.T) {
	s := NewMemoryStore(map[string]string{
		KeyHourlyWage:       "12.50",
		KeyEmployer:         "Albert Heijn",
		KeyCommunityEnabled: "false",
	})
	users := &memUsers{name: "Sanne"}

	f, err := LoadForm(s, users)
	require.NoError(t, err)
	assert.Equal(t, "Sanne", f.Name)
	assert.Equal(t, "Albert Heijn", f.Employer)
	assert.Equal(t, "12,50", f.Wage.Committed)
	assert.False(t, f.CommunityEnabled)
}

func TestSaveCommitsAfterConfirm(t *testing.T) {
	s := NewMemoryStore(nil)
	users := &memUsers{}
	f, err := LoadForm(s, users)
	require.NoError(t, err)

	f.Name = "Daan"
	f.Employer = "Jumbo"
	require.NoError(t, f.SetWage("13.75"))
	f.CommunityEnabled = false

	var asked string
	saved, err := f.Save(func(prompt string) (bool, error) {
		asked = prompt
		return true, nil
	})
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, "Weet u zeker dat u deze wijzigingen wilt opslaan?", asked)

	assert.Equal(t, "Daan", users.name)
	v, _, _ := s.Get(KeyHourlyWage)
	assert.Equal(t, "13.75", v)
	v, _, _ = s.Get(KeyEmployer)
	assert.Equal(t, "Jumbo", v)
	v, _, _ = s.Get(KeyCommunityEnabled)
	assert.Equal(t, "false", v)
}

func TestSaveDeclinedWritesNothing(t *testing.T) {
	s := NewMemoryStore(nil)
	users := &memUsers{}
	f, err := LoadForm(s, users)
	require.NoError(t, err)
	f.Name = "Daan"

	saved, err := f.Save(no)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 0, users.updates)
	_, ok, _ := s.Get(KeyEmployer)
	assert.False(t, ok)
}

func TestSaveBlockedByPendingWageError(t *testing.T) {
	s := NewMemoryStore(nil)
	users := &memUsers{}
	f, err := LoadForm(s, users)
	require.NoError(t, err)

	require.NoError(t, f.SetWage("12,50"))
	require.Error(t, f.SetWage("12,555"))

	asked := false
	saved, err := f.Save(func(string) (bool, error) {
		asked = true
		return true, nil
	})
	assert.ErrorIs(t, err, wage.ErrSaveBlocked)
	assert.False(t, saved)
	assert.False(t, asked)
	assert.Equal(t, 0, users.updates)

	// Correcting the wage unblocks the save; the prior valid value was kept meanwhile.
	assert.Equal(t, "12,50", f.Wage.Committed)
	require.NoError(t, f.SetWage("12,55"))
	saved, err = f.Save(yes)
	require.NoError(t, err)
	assert.True(t, saved)
	v, _, _ := s.Get(KeyHourlyWage)
	assert.Equal(t, "12.55", v)
}

func TestSaveEmptyWageStoresEmpty(t *testing.T) {
	s := NewMemoryStore(map[string]string{KeyHourlyWage: "10.00"})
	f, err := LoadForm(s, &memUsers{})
	require.NoError(t, err)

	require.NoError(t, f.SetWage(""))
	_, err = f.Save(yes)
	require.NoError(t, err)

	v, ok, _ := s.Get(KeyHourlyWage)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestSaveConfirmError(t *testing.T) {
	f, err := LoadForm(NewMemoryStore(nil), &memUsers{})
	require.NoError(t, err)

	_, err = f.Save(func(string) (bool, error) { return false, errors.New("interrupted") })
	assert.EqualError(t, err, "interrupted")
}
