// Package ux provides terminal styling for the golessons CLI.
//
// Styling is chrome only: lesson bodies write plain text through their own
// streams, and ux never touches that output. Everything here is a pure
// string-to-string transformation so the CLI tests can exercise it with
// styling forced off.
package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Warm terminal colors, one accent.
var (
	ColorAccent  = lipgloss.Color("#E9A23B") // amber - headers, highlights
	ColorSuccess = lipgloss.Color("#3BC77F") // green - completed lessons
	ColorError   = lipgloss.Color("#E74C3C") // red - failures
	ColorMuted   = lipgloss.Color("#6B7280") // gray - slugs, hints
)

// Styles provides the pre-configured lipgloss styles used by the CLI.
var Styles = struct {
	Title   lipgloss.Style
	Slug    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Slug:    lipgloss.NewStyle().Foreground(ColorMuted),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ColorMuted),
}

// Header renders the banner printed before a lesson runs.
//
// With plain set, it renders undecorated ASCII (used when stdout is not a
// terminal, with --plain, and throughout the tests).
func Header(index int, title string, plain bool) string {
	label := fmt.Sprintf("Lesson %d: %s", index, title)
	if plain {
		return fmt.Sprintf("--- %s ---\n", label)
	}
	return Styles.Header.Render(label) + "\n"
}

// ListRow renders one curriculum row for the list command.
func ListRow(index int, slug, title string, topics []string, plain bool) string {
	if plain {
		row := fmt.Sprintf("%2d. %-10s %s", index, slug, title)
		if len(topics) > 0 {
			row += "  [" + strings.Join(topics, ", ") + "]"
		}
		return row
	}
	row := fmt.Sprintf("%2d. %s %s",
		index,
		Styles.Slug.Render(fmt.Sprintf("%-10s", slug)),
		Styles.Title.Render(title),
	)
	if len(topics) > 0 {
		row += "  " + Styles.Muted.Render("["+strings.Join(topics, ", ")+"]")
	}
	return row
}

// Failure renders a lesson failure line for stderr.
func Failure(err error, plain bool) string {
	if plain {
		return "error: " + err.Error()
	}
	return Styles.Error.Render("error: ") + err.Error()
}
