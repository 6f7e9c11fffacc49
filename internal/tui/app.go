package tui

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/federico-sauter/browse/internal/config"
	"github.com/federico-sauter/browse/internal/editor"
	"github.com/federico-sauter/browse/internal/model"
	"github.com/federico-sauter/browse/internal/ui"
)

// editorFinishedMsg arrives when the external editor hands the terminal
// back. The editor's exit status is not inspected.
type editorFinishedMsg struct{}

// App owns the match list, the selection cursor and the viewport. It is
// only ever constructed with a non-empty list; the empty-result case is
// resolved before the interactive phase starts.
type App struct {
	cfg     config.Config
	matches []model.Match
	labelW  int

	cursor int
	offset int
	width  int
	height int

	err error
}

func NewApp(cfg config.Config, matches []model.Match) App {
	labelW := 0
	for i := range matches {
		if w := runewidth.StringWidth(matches[i].Label); w > labelW {
			labelW = w
		}
	}
	return App{cfg: cfg, matches: matches, labelW: labelW}
}

// Err reports the internal failure that ended the session, if any.
func (a App) Err() error { return a.err }

func (a App) Init() tea.Cmd { return nil }

// pageSize is the number of list rows in the viewport; the last terminal
// row is reserved for the footer.
func (a App) pageSize() int {
	if a.height <= 1 {
		return 1
	}
	return a.height - 1
}

// setCursor clamps the cursor to [0, count-1] and scrolls the window the
// minimum amount needed to keep it visible. Navigation never wraps.
func (a *App) setCursor(n int) {
	if n < 0 {
		n = 0
	}
	if last := len(a.matches) - 1; n > last {
		n = last
	}
	a.cursor = n
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+a.pageSize() {
		a.offset = a.cursor - a.pageSize() + 1
	}
}

func (a *App) moveDown() { a.setCursor(a.cursor + 1) }
func (a *App) moveUp()   { a.setCursor(a.cursor - 1) }
func (a *App) pageDown() { a.setCursor(a.cursor + a.pageSize()) }
func (a *App) pageUp()   { a.setCursor(a.cursor - a.pageSize()) }

// current returns the record under the cursor, or nil if the cursor has
// no backing record.
func (a App) current() *model.Match {
	if a.cursor < 0 || a.cursor >= len(a.matches) {
		return nil
	}
	return &a.matches[a.cursor]
}

// editorCommand builds the exec invocation for the record under the
// cursor. A cursor with no backing record is unreachable while the list
// is non-empty and reported as an internal error.
func (a App) editorCommand() (*exec.Cmd, error) {
	m := a.current()
	if m == nil {
		return nil, errors.New("internal error: no entry associated with match")
	}
	return editor.Command(a.cfg.Editor, m.Path, m.Line), nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.setCursor(a.cursor)

	case editorFinishedMsg:
		// Nothing to do: bubbletea has already restored the terminal
		// and will repaint the list.

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.Keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, ui.Keys.Down):
			a.moveDown()
		case key.Matches(msg, ui.Keys.Up):
			a.moveUp()
		case key.Matches(msg, ui.Keys.PageDown):
			a.pageDown()
		case key.Matches(msg, ui.Keys.PageUp):
			a.pageUp()

		case key.Matches(msg, ui.Keys.Open):
			cmd, err := a.editorCommand()
			if err != nil {
				// Bail out instead of launching the editor on a
				// bogus target.
				a.err = err
				return a, tea.Quit
			}
			return a, tea.ExecProcess(cmd, func(error) tea.Msg {
				return editorFinishedMsg{}
			})
		}
	}
	return a, nil
}

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	var b strings.Builder
	for i := a.offset; i < a.offset+a.pageSize(); i++ {
		if i < len(a.matches) {
			b.WriteString(a.renderRow(i))
		}
		b.WriteByte('\n')
	}
	b.WriteString(renderFooter(len(a.matches), a.width))
	return b.String()
}

// renderRow lays out one match as "> label  description", padded so the
// descriptions align, truncated to the viewport width.
func (a App) renderRow(i int) string {
	m := a.matches[i]

	marker := "  "
	if i == a.cursor {
		marker = "> "
	}
	label := runewidth.FillRight(m.Label, a.labelW)

	line := runewidth.Truncate(marker+label+"  "+m.Description, a.width, "")
	if i == a.cursor {
		return ui.StyleSelected.Render(line)
	}
	// Style the label column only after truncation so width math stays
	// on plain text.
	if len(line) >= len(marker)+len(label) {
		return marker + ui.StyleLabel.Render(label) + line[len(marker)+len(label):]
	}
	return line
}
