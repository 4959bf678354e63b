package notes

import (
	"errors"
	"fmt"
)

// ErrNotEditing is returned when a draft operation targets a session that is
// not in editing mode.
var ErrNotEditing = errors.New("session is not being edited")

// Mode is the edit state of a single session's notes.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// State is the per-session edit state.
type State struct {
	Mode  Mode
	Draft string
}

// Writer overwrites the notes of a session.
type Writer interface {
	EditNote(id, text string) error
}

// Editor tracks view/edit mode and draft text per session ID. At most one
// session is in editing mode at a time; beginning an edit on another session
// discards the previous draft.
type Editor struct {
	writer Writer
	states map[string]State
	active string
}

// NewEditor returns an editor that saves committed drafts through w.
func NewEditor(w Writer) *Editor {
	return &Editor{writer: w, states: make(map[string]State)}
}

// State returns the state of a session. Unknown sessions are viewing.
func (e *Editor) State(id string) State {
	return e.states[id]
}

// Active returns the session currently being edited.
func (e *Editor) Active() (string, bool) {
	return e.active, e.active != ""
}

// Begin switches a session to editing mode with its current notes as draft.
func (e *Editor) Begin(id, current string) {
	if e.active != "" && e.active != id {
		delete(e.states, e.active)
	}
	e.states[id] = State{Mode: Editing, Draft: current}
	e.active = id
}

// SetDraft replaces the draft of a session being edited.
func (e *Editor) SetDraft(id, text string) error {
	st := e.states[id]
	if st.Mode != Editing {
		return fmt.Errorf("%w: '%s'", ErrNotEditing, id)
	}
	st.Draft = text
	e.states[id] = st
	return nil
}

// Cancel discards the draft and returns the session to viewing mode.
func (e *Editor) Cancel(id string) {
	delete(e.states, id)
	if e.active == id {
		e.active = ""
	}
}

// Commit saves the draft and returns the session to viewing mode. The saved
// text is returned. On a write error the session stays in editing mode.
func (e *Editor) Commit(id string) (string, error) {
	st := e.states[id]
	if st.Mode != Editing {
		return "", fmt.Errorf("%w: '%s'", ErrNotEditing, id)
	}
	if err := e.writer.EditNote(id, st.Draft); err != nil {
		return "", err
	}
	e.Cancel(id)
	return st.Draft, nil
}
