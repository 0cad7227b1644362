// Package tui is the terminal front end: a text input, an Add/Update button
// and the task rows, rendered with Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/config"
	"todolist/internal/output"
	"todolist/internal/session"
	"todolist/internal/store"
)

const (
	defaultInputWidth = 40
	minInputWidth     = 20
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea model. Tasks and the edit cursor live in the
// session's store; snap is the latest state it published.
type Model struct {
	sess   *session.Session
	snap   store.Snapshot
	ui     config.UISettings
	input  textinput.Model
	help   help.Model
	focus  focus
	cursor int // highlighted row
	status string

	unsubscribe func()
}

// New creates a model over sess with the input focused.
func New(sess *session.Session, ui config.UISettings) *Model {
	ti := textinput.New()
	ti.Placeholder = ui.Placeholder
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = defaultInputWidth
	ti.Focus()

	m := &Model{
		sess:  sess,
		snap:  sess.Snapshot(),
		ui:    ui,
		input: ti,
		help:  help.New(),
		focus: focusInput,
	}
	m.unsubscribe = sess.Subscribe(func(snap store.Snapshot) {
		m.snap = snap
	})
	return m
}

// Close stops following the store.
func (m *Model) Close() {
	m.unsubscribe()
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, sess *session.Session, ui config.UISettings) error {
	m := New(sess, ui)
	defer m.Close()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(minInputWidth, msg.Width-10)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		outcome, err := m.sess.Submit(m.input.Value())
		if errors.Is(err, session.ErrEmptyText) {
			return m, nil
		}
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.input.Reset()
		m.cursor = outcome.Index
		m.status = ""
		return m, nil

	case key.Matches(msg, keys.Cancel):
		m.sess.Cancel()
		m.input.Reset()
		m.status = ""
		return m, nil

	case key.Matches(msg, keys.Focus):
		if m.snap.Len() == 0 {
			return m, nil
		}
		m.focus = focusList
		m.input.Blur()
		m.clamp()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.cursor--
		m.clamp()

	case key.Matches(msg, keys.Down):
		m.cursor++
		m.clamp()

	case key.Matches(msg, keys.Edit):
		text, err := m.sess.ChooseEdit(m.cursor)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.input.SetValue(text)
		m.input.CursorEnd()
		return m, m.focusInput()

	case key.Matches(msg, keys.Delete):
		if err := m.sess.ChooseDelete(m.cursor); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.clamp()
		if m.snap.Len() == 0 {
			return m, m.focusInput()
		}

	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Focus):
		return m, m.focusInput()

	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

// clamp keeps the highlight inside the list.
func (m *Model) clamp() {
	n := m.snap.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder
	snap := m.snap

	if m.ui.Heading != "" {
		b.WriteString(headingStyle.Render(m.ui.Heading) + "\n")
	}
	b.WriteString(titleStyle.Render(m.ui.Title) + "\n")

	if m.focus == focusInput {
		b.WriteString(inputStyle.Render(m.input.View()) + "\n")
	} else {
		b.WriteString(blurredInputStyle.Render(m.input.View()) + "\n")
	}

	label := "Add Task"
	if snap.Editing() {
		label = "Update Task"
	}
	b.WriteString(buttonStyle.Render(label) + "\n")

	editIndex, _ := snap.EditIndex()
	tasks := snap.Tasks()
	if len(tasks) == 0 {
		b.WriteString(emptyStyle.Render("No tasks yet.") + "\n")
	}
	for i, task := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, output.NormalizeTitle(task))
		selected := m.focus == focusList && i == m.cursor
		switch {
		case i == editIndex:
			line = editingTaskStyle.Render(line)
		case selected:
			line = selectedTaskStyle.Render(line)
		default:
			line = taskStyle.Render(line)
		}
		if selected {
			b.WriteString("> " + line + actionStyle.Render("  [e] Edit  [d] Delete") + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render("error: "+m.status) + "\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(focusKeys{keyMap: keys, focus: m.focus})))
	return appStyle.Render(b.String())
}

// IsTTY returns true if v is a terminal.
func IsTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
