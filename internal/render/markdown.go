// Package render turns tool results into markdown for display and export.
package render

import (
	"fmt"
	"strings"

	"toolboard/internal/chat"
	"toolboard/internal/essay"
	"toolboard/internal/recipe"
	"toolboard/internal/toxic"
)

// Recipe formats a generated recipe.
func Recipe(r recipe.Recipe) string {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(orDefault(r.Title, "Untitled recipe"))
	sb.WriteString("\n\n")

	if len(r.Ingredients) > 0 {
		sb.WriteString("## Ingredients\n\n")
		for _, ing := range r.Ingredients {
			sb.WriteString(fmt.Sprintf("- %s\n", ing))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Directions\n\n")
	sb.WriteString(strings.TrimSpace(r.Directions))
	sb.WriteString("\n")

	return sb.String()
}

// Feedback formats essay feedback with its band and sub-scores.
func Feedback(f essay.Feedback) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Score: %d/100 (%s)\n\n", f.Score, f.Label()))
	if f.Overview != "" {
		sb.WriteString(f.Overview)
		sb.WriteString("\n\n")
	}

	sb.WriteString("| Readability | Coherence | Vocabulary | Grammar issues |\n")
	sb.WriteString("|---|---|---|---|\n")
	sb.WriteString(fmt.Sprintf("| %d | %d | %d | %d |\n\n", f.Readability, f.Coherence, f.Vocabulary, f.GrammarIssues))

	writeList(&sb, "Strengths", f.Strengths)
	writeList(&sb, "Areas to improve", f.Improvements)

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// Verdict formats a toxicity verdict with the analyzed message quoted.
func Verdict(v toxic.Verdict) string {
	var sb strings.Builder

	sb.WriteString("## ")
	sb.WriteString(v.Headline())
	sb.WriteString("\n\n")
	for _, line := range strings.Split(strings.TrimSpace(v.Message), "\n") {
		sb.WriteString("> ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Transcript formats a chat log for export.
func Transcript(turns []chat.Turn) string {
	var sb strings.Builder

	sb.WriteString("# SweetBot conversation\n\n")
	for i, turn := range turns {
		ts := turn.Timestamp.Format("15:04:05")
		sb.WriteString(fmt.Sprintf("### [%s] %s\n\n", ts, speaker(turn.Sender)))
		for _, line := range strings.Split(strings.TrimSpace(turn.Text), "\n") {
			sb.WriteString("> ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		if i < len(turns)-1 {
			sb.WriteString("---\n\n")
		}
	}
	return sb.String()
}

func speaker(s chat.Sender) string {
	switch s {
	case chat.SenderUser:
		return "You"
	case chat.SenderAssistant:
		return "SweetBot"
	default:
		return string(s)
	}
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("## ")
	sb.WriteString(heading)
	sb.WriteString("\n\n")
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
