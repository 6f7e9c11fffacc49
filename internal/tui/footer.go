package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/federico-sauter/browse/internal/ui"
)

const exitHint = "Hit 'q' to exit  "

// renderFooter builds the bottom bar: match count left, exit hint right,
// blanks in between. When both ends cannot fit the width, the footer is
// dropped for the frame rather than truncated.
func renderFooter(count, width int) string {
	left := fmt.Sprintf("%d matches", count)
	gap := width - lipgloss.Width(left) - lipgloss.Width(exitHint)
	if gap < 0 {
		return ""
	}
	return ui.StyleFooter.Render(left + strings.Repeat(" ", gap) + exitHint)
}
