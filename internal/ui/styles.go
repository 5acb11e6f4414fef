package ui

import (
	"github.com/charmbracelet/lipgloss"

	"toolboard/internal/chat"
)

var (
	// Colors
	Cyan     = lipgloss.Color("#00FFFF")
	Green    = lipgloss.Color("#00FF00")
	Yellow   = lipgloss.Color("#FFD700")
	Orange   = lipgloss.Color("#FFA500")
	Red      = lipgloss.Color("#FF6B6B")
	Magenta  = lipgloss.Color("#FF00FF")
	SkyBlue  = lipgloss.Color("#87CEEB")
	Dim      = lipgloss.Color("#555555")
	White    = lipgloss.Color("#FFFFFF")
	DarkGray = lipgloss.Color("#333333")

	UserColor      = SkyBlue
	AssistantColor = Magenta

	// Box styles
	ActiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Cyan)

	InactiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Dim)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)

	UserStyle = lipgloss.NewStyle().
			Foreground(UserColor).
			Bold(true)

	AssistantStyle = lipgloss.NewStyle().
			Foreground(AssistantColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(Dim)

	HintStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	// Verdict styles
	SafeStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	ToxicStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Status indicators
	StatusOK   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	StatusWarn = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	StatusCrit = lipgloss.NewStyle().Foreground(Red).Bold(true)

	// Notifications
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Cyan).
			Padding(0, 1)

	DestructiveToastStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Red).
				Padding(0, 1)

	// Tag styles for ingredient chips
	TagStyle = lipgloss.NewStyle().
			Foreground(DarkGray).
			Background(SkyBlue).
			Padding(0, 1)
)

// SenderStyle returns the header style for a chat participant
func SenderStyle(s chat.Sender) lipgloss.Style {
	switch s {
	case chat.SenderUser:
		return UserStyle
	case chat.SenderAssistant:
		return AssistantStyle
	default:
		return lipgloss.NewStyle().Foreground(White)
	}
}
