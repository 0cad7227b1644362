package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/config"
	"todolist/internal/session"
	"todolist/internal/store"
)

func newModel(t *testing.T, tasks ...string) *Model {
	t.Helper()
	sess := session.New(store.New(), nil)
	for _, task := range tasks {
		if _, err := sess.Submit(task); err != nil {
			t.Fatalf("seed %q: %v", task, err)
		}
	}
	return New(sess, config.DefaultSettings().UI)
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	ctrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_TypeAndSubmitAddsTask(t *testing.T) {
	m := newModel(t)

	send(m, runes("Buy milk"), enter)

	snap := m.sess.Snapshot()
	if got := snap.Tasks(); len(got) != 1 || got[0] != "Buy milk" {
		t.Fatalf("tasks = %q, want [Buy milk]", got)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared after submit, got %q", m.input.Value())
	}
	if !strings.Contains(m.View(), "1. Buy milk") {
		t.Errorf("view missing task row:\n%s", m.View())
	}
}

func TestModel_EmptySubmitIgnored(t *testing.T) {
	m := newModel(t)

	send(m, runes("   "), enter)

	if m.sess.Snapshot().Len() != 0 {
		t.Fatalf("blank submit should not add a task")
	}
	if m.status != "" {
		t.Errorf("blank submit should not set a status, got %q", m.status)
	}
}

func TestModel_EditFromList(t *testing.T) {
	m := newModel(t, "a", "b")

	send(m, tab, down, runes("e"))

	if m.focus != focusInput {
		t.Fatalf("edit should return focus to the input")
	}
	if m.input.Value() != "b" {
		t.Fatalf("input = %q, want %q", m.input.Value(), "b")
	}
	if idx, ok := m.sess.Snapshot().EditIndex(); !ok || idx != 1 {
		t.Fatalf("edit index = %d, %v; want 1, true", idx, ok)
	}
	if !strings.Contains(m.View(), "Update Task") {
		t.Errorf("button should read Update Task while editing:\n%s", m.View())
	}

	send(m, runes("2"), enter)

	snap := m.sess.Snapshot()
	if got := snap.Tasks(); got[0] != "a" || got[1] != "b2" {
		t.Fatalf("tasks = %q, want [a b2]", got)
	}
	if snap.Editing() {
		t.Error("submit should end the edit")
	}
	if !strings.Contains(m.View(), "Add Task") {
		t.Errorf("button should read Add Task when idle:\n%s", m.View())
	}
}

func TestModel_EscCancelsEdit(t *testing.T) {
	m := newModel(t, "a")

	send(m, tab, runes("e"), esc)

	if m.sess.Snapshot().Editing() {
		t.Fatal("esc should cancel the edit")
	}
	if m.input.Value() != "" {
		t.Errorf("esc should clear the input, got %q", m.input.Value())
	}
	if got := m.sess.Snapshot().Tasks(); got[0] != "a" {
		t.Errorf("cancel should not change tasks, got %q", got)
	}
}

func TestModel_DeleteFromList(t *testing.T) {
	m := newModel(t, "a", "b", "c")

	send(m, tab, down, down, runes("d"))

	if got := m.sess.Snapshot().Tasks(); len(got) != 2 || got[1] != "b" {
		t.Fatalf("tasks = %q, want [a b]", got)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want clamped to 1", m.cursor)
	}

	send(m, runes("x"), runes("x"))

	if m.sess.Snapshot().Len() != 0 {
		t.Fatalf("expected empty list")
	}
	if m.focus != focusInput {
		t.Error("emptying the list should return focus to the input")
	}
	if !strings.Contains(m.View(), "No tasks yet.") {
		t.Errorf("view missing empty message:\n%s", m.View())
	}
}

func TestModel_DeleteWhileEditingResetsCursor(t *testing.T) {
	m := newModel(t, "a", "b")

	send(m, tab, runes("e"), tab, down, runes("d"))

	if m.sess.Snapshot().Editing() {
		t.Fatal("deleting should reset the edit cursor")
	}

	send(m, tab, enter)

	if got := m.sess.Snapshot().Tasks(); len(got) != 2 || got[1] != "a" {
		t.Fatalf("submit after delete should add, tasks = %q", got)
	}
}

func TestModel_CursorClamps(t *testing.T) {
	m := newModel(t, "a", "b")

	send(m, tab, up, up)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	send(m, down, down, down, runes("j"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	send(m, runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestModel_TabWithEmptyListStaysOnInput(t *testing.T) {
	m := newModel(t)

	send(m, tab)

	if m.focus != focusInput {
		t.Error("tab with no tasks should keep focus on the input")
	}
}

func TestModel_ListKeysTypeInInput(t *testing.T) {
	m := newModel(t, "a")

	send(m, runes("q"), runes("e"), runes("d"))

	if m.input.Value() != "qed" {
		t.Errorf("input = %q, want %q", m.input.Value(), "qed")
	}
	if m.sess.Snapshot().Len() != 1 {
		t.Error("typing should not touch tasks")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, "a")

	if !isQuit(send(m, ctrlC)) {
		t.Error("ctrl+c should quit from the input")
	}
	if !isQuit(send(m, tab, runes("q"))) {
		t.Error("q should quit from the list")
	}
}

func TestModel_ViewShowsSelectionActions(t *testing.T) {
	m := newModel(t, "a", "b")

	if strings.Contains(m.View(), "[e] Edit") {
		t.Error("actions should be hidden while the input has focus")
	}

	send(m, tab)
	view := m.View()
	if !strings.Contains(view, "[e] Edit") || !strings.Contains(view, "[d] Delete") {
		t.Errorf("view missing row actions:\n%s", view)
	}
	if !strings.Contains(view, config.DefaultTitle) {
		t.Errorf("view missing title:\n%s", view)
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&strings.Reader{}) {
		t.Error("a strings.Reader is not a terminal")
	}
}

func TestModel_FollowsStore(t *testing.T) {
	m := newModel(t)

	if _, err := m.sess.Submit("from elsewhere"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.View(), "1. from elsewhere") {
		t.Errorf("view should follow store changes:\n%s", m.View())
	}

	m.Close()
	if _, err := m.sess.Submit("after close"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(m.View(), "after close") {
		t.Error("a closed model should stop following the store")
	}
}

func TestModel_HelpFollowsFocus(t *testing.T) {
	m := newModel(t, "a")

	view := m.View()
	for _, want := range []string{"enter add/update", "esc cancel", "ctrl+c quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("input help missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "d/x delete") {
		t.Error("list bindings should not show while the input has focus")
	}

	send(m, tab)
	view = m.View()
	for _, want := range []string{"↑/k up", "↓/j down", "e edit", "d/x delete", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("list help missing %q:\n%s", want, view)
		}
	}
}

func TestFocusKeys_EveryBindingHasHelp(t *testing.T) {
	for _, f := range []focus{focusInput, focusList} {
		for _, b := range (focusKeys{keyMap: keys, focus: f}).ShortHelp() {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
}
