package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Yellow).
				MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	helpCmdStyle = lipgloss.NewStyle().
			Foreground(Magenta)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(White)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(Dim)
)

// HelpContent returns the formatted help overlay content
func HelpContent(width, height int) string {
	var content strings.Builder

	content.WriteString(helpTitleStyle.Render("TOOLBOARD HELP"))
	content.WriteString("\n\n")

	content.WriteString(helpSectionStyle.Render("KEYBINDINGS"))
	content.WriteString("\n\n")

	keybindings := []struct {
		key  string
		desc string
	}{
		{"1-4", "Open a tool from the home screen"},
		{"Enter", "Add ingredient / check text / send message"},
		{"Ctrl+S", "Generate recipe / score essay"},
		{"Ctrl+R", "Discard the current result"},
		{"Ctrl+X", "Clear all ingredients"},
		{"Ctrl+T", "Next essay topic"},
		{"Ctrl+D", "Save essay draft"},
		{"Ctrl+O", "Browse saved drafts"},
		{"Tab", "Switch focus between essay and command line"},
		{"F1", "Toggle this help overlay"},
		{"Esc", "Close overlay / back to home"},
		{"Ctrl+C", "Quit"},
	}

	for _, kb := range keybindings {
		key := helpKeyStyle.Width(10).Render(kb.key)
		content.WriteString("  " + key + "  " + helpDescStyle.Render(kb.desc) + "\n")
	}

	content.WriteString("\n")
	content.WriteString(helpSectionStyle.Render("SLASH COMMANDS"))
	content.WriteString("\n\n")

	cmds := []struct {
		cmd  string
		desc string
	}{
		{"/home", "Back to the tool list"},
		{"/recipe /essay /toxic /chat", "Open a tool"},
		{"/add <ingredient>", "Add an ingredient"},
		{"/remove <ingredient>", "Remove an ingredient"},
		{"/clear", "Clear the current input"},
		{"/reset", "Discard the current result"},
		{"/topic <n>", "Pick essay topic n"},
		{"/save", "Save the essay as a draft"},
		{"/export", "Write the chat transcript to disk"},
		{"/quit", "Exit"},
	}

	for _, c := range cmds {
		cmdStr := helpCmdStyle.Width(28).Render(c.cmd)
		content.WriteString("  " + cmdStr + "  " + helpDescStyle.Render(c.desc) + "\n")
	}

	content.WriteString("\n")
	footer := helpDimStyle.Render("Press F1 or Esc to close this help")
	content.WriteString(lipgloss.PlaceHorizontal(max(width-8, 0), lipgloss.Center, footer))

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 3).
		MaxWidth(width - 10).
		MaxHeight(height - 4)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		overlayStyle.Render(content.String()))
}
