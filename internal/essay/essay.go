// Package essay scores an essay written on one of a fixed set of topics.
package essay

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"toolboard/internal/controller"
)

// MinLength is the minimum trimmed essay length, in characters.
const MinLength = 100

const (
	TooShortMessage = "Please write at least 100 characters for an accurate score."
	NoTopicMessage  = "Please select a topic for your essay."
	FailureMessage  = "Couldn't score the essay. Please try again."
)

// Topics is the fixed list an essay topic is chosen from.
var Topics = []string{
	"Technology and Society",
	"Environmental Challenges",
	"Education Reform",
	"Healthcare Innovation",
	"Cultural Diversity",
	"Economic Inequality",
	"Media Influence",
	"Ethical Leadership",
}

// Submission is one scoring request.
type Submission struct {
	Body  string
	Topic string
}

// Validate requires a trimmed body of at least MinLength characters and a
// topic from Topics.
func Validate(s Submission) error {
	if utf8.RuneCountInString(strings.TrimSpace(s.Body)) < MinLength {
		return controller.Invalid(TooShortMessage)
	}
	if !slices.Contains(Topics, s.Topic) {
		return controller.Invalid(NoTopicMessage)
	}
	return nil
}

// WordCount counts whitespace-separated words.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// Tool owns the essay being edited and its controller.
type Tool struct {
	Body  string
	Topic string
	ctl   *controller.Controller[Submission, Feedback]
}

func New(scorer Scorer, log *zap.Logger) *Tool {
	return &Tool{
		ctl: controller.New(controller.Options[Submission, Feedback]{
			Name:     "essay",
			Validate: Validate,
			Call: func(ctx context.Context, s Submission) (Feedback, error) {
				return scorer.Score(ctx, s.Body, s.Topic)
			},
			FailureMessage: FailureMessage,
			Logger:         log,
		}),
	}
}

func (t *Tool) Controller() *controller.Controller[Submission, Feedback] {
	return t.ctl
}

func (t *Tool) Submission() Submission {
	return Submission{Body: t.Body, Topic: t.Topic}
}

// Score submits the current essay.
func (t *Tool) Score(ctx context.Context) (controller.Task[Feedback], error) {
	return t.ctl.Submit(ctx, t.Submission())
}

func (t *Tool) CanScore() bool {
	return t.ctl.CanSubmit(t.Submission())
}

// CanSaveDraft reports whether "Save Draft" is enabled.
func (t *Tool) CanSaveDraft() bool {
	return strings.TrimSpace(t.Body) != "" && !t.ctl.Busy()
}

// SelectTopic picks Topics[i]; out-of-range indexes are ignored.
func (t *Tool) SelectTopic(i int) bool {
	if i < 0 || i >= len(Topics) {
		return false
	}
	t.Topic = Topics[i]
	return true
}
