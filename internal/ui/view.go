package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type uiStyles struct {
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	statusStyle   lipgloss.Style
	cursorStyle   lipgloss.Style
	enabledStyle  lipgloss.Style
	disabledStyle lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		headerStyle:   lipgloss.NewStyle().Bold(true),
		mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		enabledStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		disabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
	}
}

func (model Model) View() string {
	styles := defaultStyles()
	if model.showHelp {
		return renderHelpView(model, styles)
	}

	header := styles.headerStyle.Render("modkeep") + styles.mutedStyle.Render("  "+model.state.ModsPath)
	body := renderList(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{header, body, footer}, "\n")
}

func renderList(model Model, styles uiStyles) string {
	entries := model.state.Entries
	listHeight := model.listHeight()
	if listHeight < 3 {
		listHeight = 3
	}

	if len(entries) == 0 {
		message := "No mods installed - press i to install an archive"
		if model.state.RootMissing {
			message = "Mods folder does not exist yet"
		}
		return padLines(styles.mutedStyle.Render("  "+message), listHeight)
	}

	lines := make([]string, 0, listHeight)
	end := model.viewTop + listHeight
	if end > len(entries) {
		end = len(entries)
	}
	for index := model.viewTop; index < end; index++ {
		entry := entries[index]
		marker := "  "
		if index == model.state.Cursor {
			marker = styles.cursorStyle.Render("> ")
		}
		label := styles.enabledStyle.Render(entry.Label)
		if entry.Disabled {
			label = styles.disabledStyle.Render(entry.Label + " [disabled]")
		}
		lines = append(lines, marker+label)
	}
	return padLines(strings.Join(lines, "\n"), listHeight)
}

func renderFooter(model Model, styles uiStyles) string {
	status := trimStatus(model.status, model.width)
	if model.busy {
		status += styles.mutedStyle.Render("  (working...)")
	}
	hint := styles.mutedStyle.Render(shortHelp(model.keys))
	return styles.statusStyle.Render(status) + "\n" + hint
}

func renderHelpView(model Model, styles uiStyles) string {
	bindings := []key.Binding{
		model.keys.Up, model.keys.Down, model.keys.Toggle, model.keys.Delete,
		model.keys.Install, model.keys.Download, model.keys.Path, model.keys.Open,
		model.keys.Refresh, model.keys.Help, model.keys.Quit,
	}
	lines := []string{styles.headerStyle.Render("modkeep - key bindings"), ""}
	for _, binding := range bindings {
		help := binding.Help()
		lines = append(lines, fmt.Sprintf("  %-12s %s", help.Key, help.Desc))
	}
	lines = append(lines, "", styles.mutedStyle.Render("press ? to return"))
	return strings.Join(lines, "\n")
}

func shortHelp(keys KeyMap) string {
	parts := []string{}
	for _, binding := range []key.Binding{keys.Toggle, keys.Delete, keys.Install, keys.Download, keys.Help} {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(parts, "  ·  ")
}

func trimStatus(status string, width int) string {
	runes := []rune(status)
	if width <= 3 || len(runes) <= width {
		return status
	}
	return string(runes[:width-3]) + "..."
}

func padLines(content string, height int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
