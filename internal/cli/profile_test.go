package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/settings"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/wage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPromptWithDefault feeds pre-determined responses in order.
func mockPromptWithDefault(responses ...string) PromptWithDefaultFunc {
	i := 0
	return func(_, _ string) (string, error) {
		if i >= len(responses) {
			return "", fmt.Errorf("no more mock responses")
		}
		resp := responses[i]
		i++
		return resp, nil
	}
}

func mockConfirm(answer bool) ConfirmFunc {
	return func(_ string) (bool, error) {
		return answer, nil
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func execProfileSet(homeDir string, in profileInput, pk PromptKit) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := profileSetCmd
	cmd.SetOut(stdout)
	err := runProfileSet(cmd, homeDir, in, pk)
	return stdout.String(), err
}

func storedSetting(t *testing.T, homeDir, key string) string {
	t.Helper()
	v, _, err := settings.NewFileStore(homeDir, nil).Get(key)
	require.NoError(t, err)
	return v
}

func TestProfileSetWithFlags(t *testing.T) {
	homeDir := t.TempDir()

	out, err := execProfileSet(homeDir, profileInput{
		Name:     strPtr("Sanne"),
		Employer: strPtr("Albert Heijn"),
		Wage:     strPtr("13.40"),
	}, PromptKit{Confirm: mockConfirm(true)})
	require.NoError(t, err)
	assert.Contains(t, out, "Profiel instellingen zijn opgeslagen")
	assert.NotContains(t, out, "Community functies")

	u, err := session.NewFileStore(homeDir, nil).ReadUser()
	require.NoError(t, err)
	assert.Equal(t, "Sanne", u.Username)
	assert.Equal(t, "Albert Heijn", storedSetting(t, homeDir, settings.KeyEmployer))
	assert.Equal(t, "13.40", storedSetting(t, homeDir, settings.KeyHourlyWage))
	assert.Equal(t, "true", storedSetting(t, homeDir, settings.KeyCommunityEnabled))
}

func TestProfileSetInvalidWageBlocksSave(t *testing.T) {
	homeDir := t.TempDir()

	out, err := execProfileSet(homeDir, profileInput{
		Name: strPtr("Sanne"),
		Wage: strPtr("12,505"),
	}, PromptKit{Confirm: mockConfirm(true)})
	assert.ErrorIs(t, err, wage.ErrSaveBlocked)
	assert.Contains(t, out, "Gebruik een komma voor decimalen (bijv. 12,50)")

	u, err := session.NewFileStore(homeDir, nil).ReadUser()
	require.NoError(t, err)
	assert.Equal(t, "", u.Username)
}

func TestProfileSetDeclined(t *testing.T) {
	homeDir := t.TempDir()

	out, err := execProfileSet(homeDir, profileInput{Employer: strPtr("Jumbo")}, PromptKit{Confirm: mockConfirm(false)})
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled")
	assert.Equal(t, "", storedSetting(t, homeDir, settings.KeyEmployer))
}

func TestProfileSetCommunityToggle(t *testing.T) {
	homeDir := t.TempDir()

	out, err := execProfileSet(homeDir, profileInput{Community: boolPtr(false)}, PromptKit{Confirm: mockConfirm(true)})
	require.NoError(t, err)
	assert.Contains(t, out, "Community functies zijn uitgeschakeld")
	assert.Equal(t, "false", storedSetting(t, homeDir, settings.KeyCommunityEnabled))

	out, err = execProfileSet(homeDir, profileInput{Community: boolPtr(true)}, PromptKit{Confirm: mockConfirm(true)})
	require.NoError(t, err)
	assert.Contains(t, out, "Community functies zijn ingeschakeld")
}

func TestProfileSetInteractiveRepromptsWage(t *testing.T) {
	homeDir := t.TempDir()

	pk := PromptKit{
		PromptWithDefault: mockPromptWithDefault("Daan", "Jumbo", "12.345", "12.5"),
		Confirm:           mockConfirm(true),
	}
	out, err := execProfileSet(homeDir, profileInput{}, pk)
	require.NoError(t, err)

	assert.Contains(t, out, "Gebruik een komma voor decimalen")
	assert.Contains(t, out, "Dit is uw bruto uurloon voor salaris berekeningen")
	assert.Equal(t, "12.5", storedSetting(t, homeDir, settings.KeyHourlyWage))
	assert.Equal(t, "Jumbo", storedSetting(t, homeDir, settings.KeyEmployer))
}

func TestProfileSetNonInteractive(t *testing.T) {
	_, err := execProfileSet(t.TempDir(), profileInput{}, PromptKit{Confirm: mockConfirm(true)})
	assert.EqualError(t, err, "interactive mode not available")
}

func TestProfileShow(t *testing.T) {
	homeDir := t.TempDir()
	_, err := execProfileSet(homeDir, profileInput{
		Name:     strPtr("Sanne"),
		Employer: strPtr("HEMA"),
		Wage:     strPtr("14,10"),
	}, PromptKit{Confirm: mockConfirm(true)})
	require.NoError(t, err)

	stdout := new(bytes.Buffer)
	cmd := profileShowCmd
	cmd.SetOut(stdout)
	require.NoError(t, runProfileShow(cmd, homeDir))

	out := stdout.String()
	assert.Contains(t, out, "Sanne")
	assert.Contains(t, out, "HEMA")
	assert.Contains(t, out, "14,10")
	assert.Contains(t, out, "aan")
}

func TestProfileShowEmpty(t *testing.T) {
	stdout := new(bytes.Buffer)
	cmd := profileShowCmd
	cmd.SetOut(stdout)
	require.NoError(t, runProfileShow(cmd, t.TempDir()))

	assert.Contains(t, stdout.String(), "Naam:")
	assert.Contains(t, stdout.String(), "-")
}
