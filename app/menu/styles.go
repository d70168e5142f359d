package menu

import (
	"github.com/charmbracelet/lipgloss"
)

const bannerWidth = 30

var (
	accentColor      = lipgloss.Color("#8BC34A")
	warningColor     = lipgloss.Color("#FFC107")
	destructiveColor = lipgloss.Color("#e53935")
	mutedColor       = lipgloss.Color("#6b7280")
)

type Styles struct {
	Banner  lipgloss.Style
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

func NewStyles(color bool) Styles {
	s := Styles{
		Banner:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Width(bannerWidth),
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
	if !color {
		return s
	}

	s.Banner = s.Banner.BorderForeground(accentColor)
	s.Title = s.Title.Foreground(accentColor)
	s.Success = s.Success.Foreground(accentColor)
	s.Warning = s.Warning.Foreground(warningColor)
	s.Error = s.Error.Foreground(destructiveColor).Bold(true)
	s.Muted = s.Muted.Foreground(mutedColor)
	return s
}

func (s Styles) banner(title string) string {
	return s.Banner.Align(lipgloss.Center).Render(s.Title.Render(title))
}
