package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Toast is a transient notification.
type Toast struct {
	ID          int
	Title       string
	Description string
	Destructive bool
}

type toastExpiredMsg struct {
	id int
}

// toasts holds the visible notifications, oldest first.
type toasts struct {
	ttl    time.Duration
	nextID int
	items  []Toast
}

// push shows t and returns the command that expires it after the TTL.
func (ts *toasts) push(t Toast) tea.Cmd {
	ts.nextID++
	t.ID = ts.nextID
	ts.items = append(ts.items, t)
	id := t.ID
	return tea.Tick(ts.ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (ts *toasts) expire(id int) {
	for i, t := range ts.items {
		if t.ID == id {
			ts.items = append(ts.items[:i], ts.items[i+1:]...)
			return
		}
	}
}

func (ts *toasts) render(width int) string {
	if len(ts.items) == 0 {
		return ""
	}
	maxWidth := width / 2
	if maxWidth < 30 {
		maxWidth = 30
	}

	var boxes []string
	for _, t := range ts.items {
		style := ToastStyle
		title := TitleStyle.Render(t.Title)
		if t.Destructive {
			style = DestructiveToastStyle
			title = ErrorStyle.Render(t.Title)
		}
		body := title
		if t.Description != "" {
			body += "\n" + t.Description
		}
		boxes = append(boxes, style.MaxWidth(maxWidth).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}
