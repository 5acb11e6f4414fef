// Package chat implements the companion conversation: an append-only log of
// turns and the session that feeds it.
package chat

import (
	"slices"
	"time"
)

// Sender attributes a turn to a participant.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Turn is one message in the conversation. Turns are never edited once appended.
type Turn struct {
	ID        int
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Log is an append-only conversation ordered by append order, which is also
// ID order.
type Log struct {
	turns []Turn
	now   func() time.Time
}

// NewLog creates an empty log stamped by now.
func NewLog(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Append adds a turn with the next ID: the largest existing ID plus one, or
// 1 when the log is empty.
func (l *Log) Append(sender Sender, text string) Turn {
	id := 1
	if n := len(l.turns); n > 0 {
		id = l.turns[n-1].ID + 1
	}
	turn := Turn{ID: id, Text: text, Sender: sender, Timestamp: l.now()}
	l.turns = append(l.turns, turn)
	return turn
}

// Turns returns a copy of the conversation.
func (l *Log) Turns() []Turn {
	return slices.Clone(l.turns)
}

func (l *Log) Len() int {
	return len(l.turns)
}

// Last returns the most recent turn.
func (l *Log) Last() (Turn, bool) {
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}
