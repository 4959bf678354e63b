package notes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	saved map[string]string
	err   error
}

func (f *fakeWriter) EditNote(id, text string) error {
	if f.err != nil {
		return f.err
	}
	if f.saved == nil {
		f.saved = map[string]string{}
	}
	f.saved[id] = text
	return nil
}

func TestEditorDefaultsToViewing(t *testing.T) {
	e := NewEditor(&fakeWriter{})

	assert.Equal(t, Viewing, e.State("s1").Mode)
	_, ok := e.Active()
	assert.False(t, ok)
}

func TestEditorBeginSetDraftCommit(t *testing.T) {
	w := &fakeWriter{}
	e := NewEditor(w)

	e.Begin("s1", "old notes")
	assert.Equal(t, State{Mode: Editing, Draft: "old notes"}, e.State("s1"))

	require.NoError(t, e.SetDraft("s1", "new notes"))
	saved, err := e.Commit("s1")
	require.NoError(t, err)

	assert.Equal(t, "new notes", saved)
	assert.Equal(t, "new notes", w.saved["s1"])
	assert.Equal(t, Viewing, e.State("s1").Mode)
}

func TestEditorCommitEmptyDraftDeletesNotes(t *testing.T) {
	w := &fakeWriter{}
	e := NewEditor(w)

	e.Begin("s1", "something")
	require.NoError(t, e.SetDraft("s1", ""))
	_, err := e.Commit("s1")
	require.NoError(t, err)

	text, ok := w.saved["s1"]
	assert.True(t, ok)
	assert.Equal(t, "", text)
}

func TestEditorCancelDiscardsDraft(t *testing.T) {
	w := &fakeWriter{}
	e := NewEditor(w)

	e.Begin("s1", "old")
	require.NoError(t, e.SetDraft("s1", "typed"))
	e.Cancel("s1")

	assert.Equal(t, State{}, e.State("s1"))
	assert.Empty(t, w.saved)
}

func TestEditorSingleActiveSession(t *testing.T) {
	e := NewEditor(&fakeWriter{})

	e.Begin("s1", "a")
	e.Begin("s2", "b")

	assert.Equal(t, Viewing, e.State("s1").Mode)
	assert.Equal(t, Editing, e.State("s2").Mode)
	id, ok := e.Active()
	assert.True(t, ok)
	assert.Equal(t, "s2", id)
}

func TestEditorSetDraftRequiresEditing(t *testing.T) {
	e := NewEditor(&fakeWriter{})

	assert.ErrorIs(t, e.SetDraft("s1", "x"), ErrNotEditing)
	_, err := e.Commit("s1")
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestEditorCommitErrorKeepsEditing(t *testing.T) {
	e := NewEditor(&fakeWriter{err: errors.New("boom")})

	e.Begin("s1", "draft")
	_, err := e.Commit("s1")

	assert.EqualError(t, err, "boom")
	assert.Equal(t, Editing, e.State("s1").Mode)
	assert.Equal(t, "draft", e.State("s1").Draft)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "viewing", Viewing.String())
	assert.Equal(t, "editing", Editing.String())
}
