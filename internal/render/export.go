package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"toolboard/internal/chat"
)

// WriteTranscript writes the chat log to dir/transcripts as markdown and
// returns the file path.
func WriteTranscript(turns []chat.Turn, dir string, at time.Time) (string, error) {
	name := "conversation"
	if len(turns) > 0 {
		name = turns[len(turns)-1].Text
	}
	filename := fmt.Sprintf("%s-%s.md", at.Format("2006-01-02-150405"), sanitizeFilename(name))

	outDir := filepath.Join(dir, "transcripts")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create transcripts directory: %w", err)
	}

	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, []byte(Transcript(turns)), 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

// sanitizeFilename keeps lowercase letters, digits, '-' and '_'.
func sanitizeFilename(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")

	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		}
	}

	result := sb.String()
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	result = strings.Trim(result, "-")

	if len(result) > 40 {
		result = strings.TrimRight(result[:40], "-")
	}
	if result == "" {
		result = "conversation"
	}
	return result
}
