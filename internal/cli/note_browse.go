package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/calendar"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/notes"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/spf13/cobra"
)

var noteBrowseCmd = LeafCommand{
	Use:       "browse",
	Short:     "Browse and edit notes interactively",
	Args:      cobra.NoArgs,
	BoolFlags: []BoolFlag{allFlag},
	StrFlags:  dateFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, loc, err := getContext()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		viewAll, _ := cmd.Flags().GetBool("all")
		return runNoteBrowse(cmd, homeDir, loc, dateFlag, viewAll, clockwork.NewRealClock())
	},
}.Build()

var (
	browseTitleStyle  = lipgloss.NewStyle().Bold(true)
	browseCursorStyle = lipgloss.NewStyle().Reverse(true)
	browseMutedStyle  = lipgloss.NewStyle().Faint(true)
	browseDraftStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1)
)

type notesBrowserModel struct {
	title     string
	sessions  []session.Session
	loc       *time.Location
	cursor    int
	editor    *notes.Editor
	notes     *notes.Reconciler
	footerMsg string
}

func newNotesBrowser(title string, sessions []session.Session, r *notes.Reconciler) notesBrowserModel {
	return notesBrowserModel{
		title:    title,
		sessions: sessions,
		loc:      r.Location(),
		editor:   notes.NewEditor(r),
		notes:    r,
	}
}

func (m notesBrowserModel) Init() tea.Cmd {
	return nil
}

func (m notesBrowserModel) selected() (session.Session, bool) {
	if m.cursor < 0 || m.cursor >= len(m.sessions) {
		return session.Session{}, false
	}
	return m.sessions[m.cursor], true
}

func (m notesBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if _, editing := m.editor.Active(); editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "down", "j":
		if m.cursor < len(m.sessions)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "e", "enter":
		if s, ok := m.selected(); ok {
			m.editor.Begin(s.ID, s.Notes)
			m.footerMsg = ""
		}
	case "x", "delete":
		s, ok := m.selected()
		if !ok {
			break
		}
		if err := m.notes.ClearNote(s.ID); err != nil {
			m.footerMsg = Error(err.Error())
			break
		}
		m.sessions[m.cursor].Notes = ""
		m.footerMsg = messages.NotesSaved
	}
	return m, nil
}

func (m notesBrowserModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, _ := m.editor.Active()
	draft := m.editor.State(id).Draft

	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.editor.Cancel(id)
		return m, nil
	case tea.KeyCtrlS:
		saved, err := m.editor.Commit(id)
		if err != nil {
			m.footerMsg = Error(err.Error())
			return m, nil
		}
		for i := range m.sessions {
			if m.sessions[i].ID == id {
				m.sessions[i].Notes = saved
			}
		}
		m.footerMsg = messages.NotesSaved
		return m, nil
	case tea.KeyEnter:
		draft += "\n"
	case tea.KeyBackspace:
		if r := []rune(draft); len(r) > 0 {
			draft = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		draft += " "
	case tea.KeyRunes:
		draft += string(key.Runes)
	default:
		return m, nil
	}

	_ = m.editor.SetDraft(id, draft)
	return m, nil
}

func (m notesBrowserModel) View() string {
	var b strings.Builder
	b.WriteString(browseTitleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		b.WriteString(browseMutedStyle.Render(messages.NoSessionsForDate))
		b.WriteString("\n\n")
		b.WriteString(browseMutedStyle.Render("q quit"))
		return b.String()
	}

	activeID, editing := m.editor.Active()
	for i, s := range m.sessions {
		header := fmt.Sprintf("%s  %s", calendar.FormatDateNL(s.Start.In(m.loc)), formatSpan(s, m.loc))
		if i == m.cursor {
			b.WriteString(browseCursorStyle.Render("> " + header))
		} else {
			b.WriteString("  " + header)
		}
		b.WriteString("\n")

		switch {
		case editing && s.ID == activeID:
			b.WriteString(browseDraftStyle.Render(m.editor.State(s.ID).Draft + "▏"))
			b.WriteString("\n")
		case s.Notes == "":
			b.WriteString("    " + browseMutedStyle.Render(messages.NoNotes) + "\n")
		default:
			for _, line := range strings.Split(s.Notes, "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}

	b.WriteString("\n")
	if m.footerMsg != "" {
		b.WriteString(m.footerMsg)
		b.WriteString("\n")
	}
	if editing {
		b.WriteString(browseMutedStyle.Render("ctrl+s opslaan  |  esc annuleren"))
	} else {
		b.WriteString(browseMutedStyle.Render("↑/↓ select  |  e edit  |  x clear  |  q quit"))
	}
	return b.String()
}

func runNoteBrowse(cmd *cobra.Command, homeDir string, loc *time.Location, dateFlag string, viewAll bool, clock clockwork.Clock) error {
	nc, err := loadNoteContext(homeDir, loc, dateFlag, clock)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	title := nc.title(viewAll)
	sessions := nc.visible(viewAll)

	// Non-TTY fallback: print the static listing
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printNotes(out, title, sessions, loc)
	}

	m := newNotesBrowser(title, sessions, nc.reconciler)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}
