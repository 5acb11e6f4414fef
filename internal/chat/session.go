package chat

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"toolboard/internal/controller"
)

const (
	Greeting      = "Hi there! I'm SweetBot, your friendly AI companion. How are you feeling today?"
	FallbackReply = "I'm having trouble understanding right now. Can you try again?"

	ErrorTitle   = "Connection Error"
	ErrorMessage = "Couldn't connect to the AI service. Please try again later."
	EmptyMessage = "Type a message first"
)

// Backend is the part of the request client the session needs.
type Backend interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Validate requires non-empty text after trimming.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return controller.Invalid(EmptyMessage)
	}
	return nil
}

type Option func(*Session)

// WithClock stamps turns with now instead of time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session is the chat tool: the input being typed, the conversation log and
// the controller for the single outstanding send.
type Session struct {
	Input string

	now func() time.Time
	log *Log
	ctl *controller.Controller[string, string]
}

// New starts a session whose log holds the assistant's greeting.
func New(backend Backend, log *zap.Logger, opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.log = NewLog(s.now)
	s.log.Append(SenderAssistant, Greeting)
	s.ctl = controller.New(controller.Options[string, string]{
		Name:           "chat",
		Validate:       Validate,
		Call:           backend.Chat,
		FailureMessage: ErrorMessage,
		Logger:         log,
	})
	return s
}

func (s *Session) Log() *Log {
	return s.log
}

func (s *Session) Controller() *controller.Controller[string, string] {
	return s.ctl
}

// CanSend reports whether the send trigger is enabled.
func (s *Session) CanSend() bool {
	return s.ctl.CanSubmit(s.Input)
}

// Send appends the trimmed input as a user turn, clears the input and
// returns the task for the remote call. The user turn is in the log before
// the call is issued and stays there whatever the call's outcome.
func (s *Session) Send(ctx context.Context) (controller.Task[string], error) {
	if !s.ctl.Active() {
		return nil, controller.ErrDetached
	}
	if s.ctl.Busy() {
		return nil, controller.ErrBusy
	}
	text := strings.TrimSpace(s.Input)
	if err := s.ctl.Check(text); err != nil {
		return nil, err
	}

	s.log.Append(SenderUser, text)
	s.Input = ""

	return s.ctl.Submit(ctx, text)
}

// Apply resolves the outstanding send. A success appends the assistant's
// reply; a failure leaves the log untouched and is reported by Failure.
func (s *Session) Apply(o controller.Outcome[string]) bool {
	if !s.ctl.Apply(o) {
		return false
	}
	if s.ctl.State() == controller.StateSucceeded {
		reply, _ := s.ctl.Result()
		if strings.TrimSpace(reply) == "" {
			reply = FallbackReply
		}
		s.log.Append(SenderAssistant, reply)
	}
	return true
}

// Failure is the notification text for the latest failed send, if any.
func (s *Session) Failure() string {
	return s.ctl.Failure()
}
