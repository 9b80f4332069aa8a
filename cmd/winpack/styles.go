// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Palette for CLI output. Each color has a light and a dark terminal variant.
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#005A9E", Dark: "#4CC2FF"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#5F6B7A", Dark: "#9AA5B1"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#107C10", Dark: "#6CCB5F"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#C42B1C", Dark: "#FF99A4"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#9D5D00", Dark: "#FCE100"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#8764B8", Dark: "#B4A0FF"}
)

var (
	// TitleStyle renders headings such as "Current Configuration".
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	// SubtitleStyle renders help text and "(using defaults)" annotations.
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	// SuccessStyle renders the ✓ marks and config values.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	// ErrorStyle renders the "Error:" prefix.
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	// CmdStyle renders file paths and config keys.
	CmdStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
)
