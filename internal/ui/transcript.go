package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"toolboard/internal/chat"
)

// RenderTurns renders the conversation with [15:04] headers, wrapping text
// to width.
func RenderTurns(turns []chat.Turn, width int) string {
	var sb strings.Builder

	wrap := width - 2
	if wrap < 10 {
		wrap = 10
	}

	for _, turn := range turns {
		ts := turn.Timestamp.Format("15:04")
		header := SenderStyle(turn.Sender).Render(fmt.Sprintf("[%s] %s:", ts, senderName(turn.Sender)))
		sb.WriteString(header)
		sb.WriteString("\n")

		for _, line := range strings.Split(wordwrap.String(turn.Text, wrap), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func senderName(s chat.Sender) string {
	switch s {
	case chat.SenderUser:
		return "You"
	case chat.SenderAssistant:
		return "SweetBot"
	default:
		return string(s)
	}
}

// TranscriptView wraps a chat log with a viewport for scrolling
type TranscriptView struct {
	Viewport viewport.Model
}

func NewTranscriptView(width, height int) *TranscriptView {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true
	return &TranscriptView{Viewport: vp}
}

// Refresh re-renders the log and scrolls to the newest turn. typing appends
// the assistant's typing indicator.
func (v *TranscriptView) Refresh(log *chat.Log, typing string) {
	content := RenderTurns(log.Turns(), v.Viewport.Width)
	if typing != "" {
		content += AssistantStyle.Render("SweetBot") + " " + DimStyle.Render(typing) + "\n"
	}
	v.Viewport.SetContent(content)
	v.Viewport.GotoBottom()
}

func (v *TranscriptView) SetSize(width, height int) {
	v.Viewport.Width = width
	v.Viewport.Height = height
}
