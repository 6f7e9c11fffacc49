package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorSelectedBg = lipgloss.Color("#1E40AF")
	ColorFooterBg   = lipgloss.Color("#047857")
	ColorText       = lipgloss.Color("#F9FAFB")
	ColorMuted      = lipgloss.Color("#6B7280")

	StyleLabel = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorSelectedBg)

	StyleFooter = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorFooterBg)
)
