package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"toolboard/internal/drafts"
)

// DraftStore is the part of the drafts store the UI needs.
type DraftStore interface {
	Save(body, topic string) (*drafts.Draft, error)
	List() ([]drafts.Draft, error)
}

// DraftBrowser holds the state for the saved-drafts overlay
type DraftBrowser struct {
	drafts    []drafts.Draft
	cursor    int
	scrollTop int
	maxHeight int
}

func NewDraftBrowser() *DraftBrowser {
	return &DraftBrowser{maxHeight: 20}
}

// Up moves the cursor up
func (b *DraftBrowser) Up() {
	if b.cursor > 0 {
		b.cursor--
		if b.cursor < b.scrollTop {
			b.scrollTop = b.cursor
		}
	}
}

// Down moves the cursor down
func (b *DraftBrowser) Down() {
	if b.cursor < len(b.drafts)-1 {
		b.cursor++
		if b.cursor >= b.scrollTop+b.maxHeight {
			b.scrollTop = b.cursor - b.maxHeight + 1
		}
	}
}

// Selected returns the highlighted draft, or nil if there are none
func (b *DraftBrowser) Selected() *drafts.Draft {
	if b.cursor >= 0 && b.cursor < len(b.drafts) {
		return &b.drafts[b.cursor]
	}
	return nil
}

// Load reads the drafts from store
func (b *DraftBrowser) Load(store DraftStore) error {
	if store == nil {
		return fmt.Errorf("drafts store not available")
	}
	list, err := store.List()
	if err != nil {
		return err
	}
	b.drafts = list
	b.cursor = 0
	b.scrollTop = 0
	return nil
}

func (b *DraftBrowser) SetMaxHeight(height int) {
	b.maxHeight = height - 10
	if b.maxHeight < 5 {
		b.maxHeight = 5
	}
}

// Render renders the overlay
func (b *DraftBrowser) Render(width, height int) string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render("SAVED DRAFTS"))
	content.WriteString("\n")
	content.WriteString(DimStyle.Render("Select a draft to load into the editor"))
	content.WriteString("\n\n")

	if len(b.drafts) == 0 {
		content.WriteString(DimStyle.Render("No drafts yet. Press ctrl+d while writing to save one."))
	} else {
		visibleEnd := min(b.scrollTop+b.maxHeight, len(b.drafts))

		header := fmt.Sprintf("  %-16s  %-26s  %6s  %s", "Saved", "Topic", "Words", "Opening")
		content.WriteString(DimStyle.Render(header))
		content.WriteString("\n")
		content.WriteString(DimStyle.Render(strings.Repeat("-", 75)))
		content.WriteString("\n")

		for i := b.scrollTop; i < visibleEnd; i++ {
			d := b.drafts[i]

			timeStr := d.CreatedAt.Local().Format("2006-01-02 15:04")
			if time.Since(d.CreatedAt) < 24*time.Hour {
				timeStr = d.CreatedAt.Local().Format("Today 15:04")
			}

			cursor := "  "
			lineStyle := DimStyle
			if i == b.cursor {
				cursor = "> "
				lineStyle = lipgloss.NewStyle().Foreground(Cyan)
			}

			line := fmt.Sprintf("%-16s  %-26s  %6d  %s",
				timeStr, truncate(orDash(d.Topic), 26), d.Words, truncate(firstLine(d.Body), 20))
			content.WriteString(cursor)
			content.WriteString(lineStyle.Render(line))
			content.WriteString("\n")
		}

		if len(b.drafts) > b.maxHeight {
			content.WriteString("\n")
			content.WriteString(DimStyle.Render(fmt.Sprintf("Showing %d-%d of %d",
				b.scrollTop+1, visibleEnd, len(b.drafts))))
		}
	}

	content.WriteString("\n\n")
	content.WriteString(DimStyle.Render("Up/Down: Navigate | Enter: Load | Esc: Cancel"))

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 2).
		MaxWidth(width - 10).
		MaxHeight(height - 4)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		overlayStyle.Render(content.String()))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-2]) + ".."
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
