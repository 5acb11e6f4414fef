// Package toxic checks a message for toxic content.
package toxic

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"toolboard/internal/client"
	"toolboard/internal/controller"
)

const (
	EmptyMessage   = "Please enter a message to check"
	FailureMessage = "Could not connect to the toxicity detection service."

	ErrorTitle = "Connection Error"
)

// Verdict is a classification result.
type Verdict struct {
	IsToxic bool
	Message string
}

// Headline is the one-line summary shown above the message.
func (v Verdict) Headline() string {
	if v.IsToxic {
		return "Toxic Content Detected"
	}
	return "Safe Content"
}

// Backend is the part of the request client this tool needs.
type Backend interface {
	Toxic(ctx context.Context, text string) (*client.ToxicResponse, error)
}

// Validate requires non-empty text after trimming.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return controller.Invalid(EmptyMessage)
	}
	return nil
}

// Tool owns the text being checked and its controller.
type Tool struct {
	Text string
	ctl  *controller.Controller[string, Verdict]
}

func New(backend Backend, log *zap.Logger) *Tool {
	return &Tool{
		ctl: controller.New(controller.Options[string, Verdict]{
			Name:     "toxic",
			Validate: Validate,
			Call: func(ctx context.Context, text string) (Verdict, error) {
				resp, err := backend.Toxic(ctx, text)
				if err != nil {
					return Verdict{}, err
				}
				return Verdict{IsToxic: *resp.IsToxic, Message: *resp.Message}, nil
			},
			FailureMessage: FailureMessage,
			Logger:         log,
		}),
	}
}

func (t *Tool) Controller() *controller.Controller[string, Verdict] {
	return t.ctl
}

// Check submits the current text. The text is sent as typed; only the
// predicate looks at its trimmed form.
func (t *Tool) Check(ctx context.Context) (controller.Task[Verdict], error) {
	return t.ctl.Submit(ctx, t.Text)
}

func (t *Tool) CanCheck() bool {
	return t.ctl.CanSubmit(t.Text)
}
