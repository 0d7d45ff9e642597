package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/winroles/internal/interp"
	"github.com/1broseidon/winroles/internal/platform"
)

var (
	roleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	changedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tentativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
)

// renderInterpretation formats one emitted interpretation as a small
// role table with changed rows highlighted.
func renderInterpretation(e interp.EventInterpretation) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s stable=%v original=%v", e.EventKind, e.WindowsStable, e.OriginalEvent)
	if !e.WindowsStable {
		sb.WriteString(tentativeStyle.Render(header))
	} else {
		sb.WriteString(headerStyle.Render(header))
	}
	sb.WriteString("\n")

	writeRow(&sb, "primary", e.Primary)
	writeRow(&sb, "secondary", e.Secondary)
	writeRow(&sb, "overlay", e.Overlay)
	writeRow(&sb, "pip", e.PictureInPicture)

	if e.Announcement != "" {
		sb.WriteString("  announcement: " + e.Announcement + "\n")
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, role string, w interp.WindowInterpretation) {
	if w.NewID == platform.WindowNone && w.OldID == platform.WindowNone {
		return
	}

	line := fmt.Sprintf("  %-10s %s", roleStyle.Render(role), describeSide(w.NewID, w.NewTitle))
	if w.IDOrTitleChanged() {
		line += changedStyle.Render(fmt.Sprintf("  (was %s)", describeSide(w.OldID, w.OldTitle)))
	} else {
		line += unchangedStyle.Render("  (unchanged)")
	}
	if w.AlertDialog {
		line += changedStyle.Render("  [alert]")
	}
	sb.WriteString(line + "\n")
}

// renderRoles formats a committed role frame for one-shot output.
func renderRoles(roles interp.WindowRoles, splitMode bool) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("window roles") + "\n")

	rows := []struct {
		name string
		rw   interp.RoleWindow
	}{
		{"primary", roles.Primary},
		{"secondary", roles.Secondary},
		{"overlay", roles.Overlay},
		{"pip", roles.PictureInPicture},
	}
	for _, row := range rows {
		if !row.rw.Present() {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-10s %s\n", roleStyle.Render(row.name), describeSide(row.rw.ID, row.rw.Title)))
	}
	if splitMode {
		sb.WriteString(unchangedStyle.Render("  split-screen mode") + "\n")
	}
	return sb.String()
}

func describeSide(id platform.WindowID, title string) string {
	if id == platform.WindowNone {
		return "none"
	}
	if title == "" {
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("#%d %q", id, title)
}
