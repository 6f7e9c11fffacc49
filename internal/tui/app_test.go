package tui

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/federico-sauter/browse/internal/config"
	"github.com/federico-sauter/browse/internal/model"
)

func testConfig() config.Config {
	return config.Config{Editor: "vi", Separator: ':', TabStop: 4}
}

func newTestApp(t *testing.T, n, width, height int) App {
	t.Helper()
	matches := make([]model.Match, n)
	for i := range matches {
		matches[i] = model.NewMatch(fmt.Sprintf("file%d.c", i), i+1, fmt.Sprintf("match %d", i))
	}
	a := NewApp(testConfig(), matches)
	m, _ := a.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m.(App)
}

func press(t *testing.T, a App, msg tea.KeyMsg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func TestMoveDownClampsAtLastRecord(t *testing.T) {
	a := newTestApp(t, 3, 80, 24)

	down := tea.KeyMsg{Type: tea.KeyDown}
	for i := 0; i < 10; i++ {
		a, _ = press(t, a, down)
	}
	if a.cursor != 2 {
		t.Errorf("cursor = %d, want 2", a.cursor)
	}
}

func TestMoveUpClampsAtZero(t *testing.T) {
	a := newTestApp(t, 3, 80, 24)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	for i := 0; i < 10; i++ {
		a, _ = press(t, a, up)
	}
	if a.cursor != 0 {
		t.Errorf("cursor = %d, want 0", a.cursor)
	}
}

func TestPageNavigation(t *testing.T) {
	// height 11 -> 10 list rows above the footer
	a := newTestApp(t, 50, 80, 11)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyPgDown})
	if a.cursor != 10 {
		t.Errorf("cursor after pgdown = %d, want 10", a.cursor)
	}

	for i := 0; i < 10; i++ {
		a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	if a.cursor != 49 {
		t.Errorf("cursor after repeated pgdown = %d, want 49", a.cursor)
	}

	for i := 0; i < 10; i++ {
		a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyPgUp})
	}
	if a.cursor != 0 {
		t.Errorf("cursor after repeated pgup = %d, want 0", a.cursor)
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	a := newTestApp(t, 50, 80, 11)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for i := 0; i < 15; i++ {
		a, _ = press(t, a, down)
	}
	if a.cursor != 15 {
		t.Fatalf("cursor = %d, want 15", a.cursor)
	}
	if a.cursor < a.offset || a.cursor >= a.offset+a.pageSize() {
		t.Errorf("cursor %d outside window [%d, %d)", a.cursor, a.offset, a.offset+a.pageSize())
	}

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	for i := 0; i < 12; i++ {
		a, _ = press(t, a, up)
	}
	if a.cursor != 3 {
		t.Fatalf("cursor = %d, want 3", a.cursor)
	}
	if a.cursor < a.offset {
		t.Errorf("cursor %d scrolled above offset %d", a.cursor, a.offset)
	}
}

func TestResizeReclampsWindow(t *testing.T) {
	a := newTestApp(t, 50, 80, 25)

	down := tea.KeyMsg{Type: tea.KeyDown}
	for i := 0; i < 30; i++ {
		a, _ = press(t, a, down)
	}

	m, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	a = m.(App)
	if a.cursor < a.offset || a.cursor >= a.offset+a.pageSize() {
		t.Errorf("cursor %d outside window [%d, %d) after resize", a.cursor, a.offset, a.offset+a.pageSize())
	}
}

func TestIgnoredKeysDoNotMoveCursor(t *testing.T) {
	a := newTestApp(t, 5, 80, 24)

	a, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if a.cursor != 0 {
		t.Errorf("cursor = %d, want 0", a.cursor)
	}
	if cmd != nil {
		t.Error("unhandled key should not produce a command")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEscape},
	} {
		a := newTestApp(t, 3, 80, 24)
		_, cmd := press(t, a, k)
		if cmd == nil {
			t.Fatalf("key %v: want quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v: command is not Quit", k)
		}
	}
}

func TestEnterLaunchesEditor(t *testing.T) {
	a := newTestApp(t, 3, 80, 24)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce an exec command")
	}
}

func TestEditorCommandTargetsSelectedRecord(t *testing.T) {
	a := newTestApp(t, 3, 80, 24)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	cmd, err := a.editorCommand()
	if err != nil {
		t.Fatalf("editorCommand: %v", err)
	}
	want := []string{"vi", "+2", "file1.c"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Args = %v, want %v", cmd.Args, want)
	}
}

func TestViewShowsMatchesAndFooter(t *testing.T) {
	a := newTestApp(t, 2, 80, 24)

	view := a.View()
	if !strings.Contains(view, "file0.c [1]") {
		t.Errorf("view is missing the first label:\n%s", view)
	}
	if !strings.Contains(view, "match 1") {
		t.Errorf("view is missing the second description:\n%s", view)
	}
	if !strings.Contains(view, "2 matches") {
		t.Errorf("view is missing the match count:\n%s", view)
	}
	if !strings.Contains(view, "Hit 'q' to exit") {
		t.Errorf("view is missing the exit hint:\n%s", view)
	}
}

func TestFooterOmittedWhenTooNarrow(t *testing.T) {
	if renderFooter(5, 10) != "" {
		t.Error("footer should be omitted when it cannot fit")
	}
	if renderFooter(5, 200) == "" {
		t.Error("footer should be rendered when it fits")
	}
}

func TestViewBeforeFirstResizeIsEmpty(t *testing.T) {
	a := NewApp(testConfig(), []model.Match{model.NewMatch("a.c", 1, "x")})
	if a.View() != "" {
		t.Error("view should be empty until the terminal size is known")
	}
}
