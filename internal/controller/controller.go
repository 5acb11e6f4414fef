// Package controller implements the request lifecycle shared by every tool:
// validate, go pending, resolve to succeeded or failed, reset.
//
// A Controller is not safe for concurrent use. All methods belong to the
// event loop; only the Task returned by Submit runs elsewhere, and its
// Outcome must be handed back to Apply on the event loop.
package controller

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"toolboard/internal/client"
)

// DefaultFailureMessage is shown when a tool does not configure its own.
const DefaultFailureMessage = "Couldn't reach the service. Please try again."

// CallFunc performs the work of one submission.
type CallFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Options configures a Controller.
type Options[Req, Res any] struct {
	Name string

	// Validate is the tool's minimum-validity predicate. Nil accepts everything.
	Validate func(Req) error

	Call CallFunc[Req, Res]

	// FailureMessage is the user-facing text stored on failure.
	FailureMessage string

	// KeepResultOnFailure retains the previous result when a later attempt fails.
	KeepResultOnFailure bool

	Logger *zap.Logger
}

// Outcome is the resolution of one Task, addressed to the controller and
// submission that produced it.
type Outcome[Res any] struct {
	Controller uuid.UUID
	Seq        uint64
	Result     Res
	Err        error
}

// Task runs a submitted call to completion. It blocks, so it is run off the
// event loop; it never touches controller state.
type Task[Res any] func() Outcome[Res]

type Controller[Req, Res any] struct {
	id   uuid.UUID
	opts Options[Req, Res]
	log  *zap.Logger

	state      State
	seq        uint64
	result     *Res
	failure    string
	lastErr    error
	validation string
	detached   bool
}

// New creates an idle, active controller.
func New[Req, Res any](opts Options[Req, Res]) *Controller[Req, Res] {
	if opts.FailureMessage == "" {
		opts.FailureMessage = DefaultFailureMessage
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	return &Controller[Req, Res]{
		id:   id,
		opts: opts,
		log:  log.With(zap.String("tool", opts.Name), zap.String("controller", id.String())),
	}
}

func (c *Controller[Req, Res]) ID() uuid.UUID { return c.id }
func (c *Controller[Req, Res]) Name() string  { return c.opts.Name }
func (c *Controller[Req, Res]) State() State  { return c.state }
func (c *Controller[Req, Res]) Busy() bool    { return c.state == StatePending }
func (c *Controller[Req, Res]) Active() bool  { return !c.detached }

// Result returns the current result. While pending it is the previous,
// stale result, if any.
func (c *Controller[Req, Res]) Result() (Res, bool) {
	if c.result == nil {
		var zero Res
		return zero, false
	}
	return *c.result, true
}

// Stale reports whether the visible result predates the pending request.
func (c *Controller[Req, Res]) Stale() bool {
	return c.state == StatePending && c.result != nil
}

// Failure is the user-facing message of the latest failed attempt.
func (c *Controller[Req, Res]) Failure() string { return c.failure }

// Err is the diagnostic error of the latest failed attempt. Not for display.
func (c *Controller[Req, Res]) Err() error { return c.lastErr }

// Validation is the message of the latest rejected submission.
func (c *Controller[Req, Res]) Validation() string { return c.validation }

// Check runs the validity predicate without touching state.
func (c *Controller[Req, Res]) Check(req Req) error {
	if c.opts.Validate == nil {
		return nil
	}
	return c.opts.Validate(req)
}

// CanSubmit reports whether the submit trigger should be enabled for req.
func (c *Controller[Req, Res]) CanSubmit(req Req) bool {
	return !c.detached && c.state != StatePending && c.Check(req) == nil
}

// Submit validates req and, if it holds, moves to pending and returns the
// Task that performs the call. A rejected submission issues no call and
// leaves the state as it was.
func (c *Controller[Req, Res]) Submit(ctx context.Context, req Req) (Task[Res], error) {
	if c.detached {
		return nil, ErrDetached
	}
	if c.state == StatePending {
		c.log.Debug("submission rejected while pending", zap.Uint64("seq", c.seq))
		return nil, ErrBusy
	}
	if err := c.Check(req); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			c.validation = vErr.Message
		} else {
			c.validation = err.Error()
		}
		return nil, err
	}

	c.validation = ""
	c.failure = ""
	c.lastErr = nil
	c.seq++
	c.state = StatePending

	id, seq, call := c.id, c.seq, c.opts.Call
	c.log.Debug("submission started", zap.Uint64("seq", seq))

	return func() Outcome[Res] {
		res, err := call(ctx, req)
		return Outcome[Res]{Controller: id, Seq: seq, Result: res, Err: err}
	}, nil
}

// Apply resolves the pending submission with o. It returns false, changing
// nothing, when o belongs to another controller, to an earlier submission,
// or arrives after Detach.
func (c *Controller[Req, Res]) Apply(o Outcome[Res]) bool {
	if o.Controller != c.id {
		return false
	}
	if c.detached {
		c.log.Debug("dropping outcome for detached controller", zap.Uint64("seq", o.Seq))
		return false
	}
	if c.state != StatePending || o.Seq != c.seq {
		c.log.Debug("dropping stale outcome", zap.Uint64("seq", o.Seq), zap.Uint64("current", c.seq))
		return false
	}

	if o.Err != nil {
		c.state = StateFailed
		c.lastErr = o.Err
		c.failure = c.opts.FailureMessage
		if !c.opts.KeepResultOnFailure {
			c.result = nil
		}
		c.log.Warn("submission failed",
			zap.Uint64("seq", o.Seq),
			zap.String("class", classify(o.Err)),
			zap.Int("status", client.Status(o.Err)),
			zap.Error(o.Err))
		return true
	}

	res := o.Result
	c.result = &res
	c.state = StateSucceeded
	c.log.Debug("submission succeeded", zap.Uint64("seq", o.Seq))
	return true
}

// Reset discards the current result and failure. It does not cancel an
// in-flight request: a pending controller stays pending.
func (c *Controller[Req, Res]) Reset() {
	c.result = nil
	c.failure = ""
	c.lastErr = nil
	c.validation = ""
	if c.state != StatePending {
		c.state = StateIdle
	}
}

// Detach marks the controller as no longer displayed. Later outcomes are
// dropped and further submissions are refused.
func (c *Controller[Req, Res]) Detach() {
	if !c.detached {
		c.detached = true
		c.log.Debug("controller detached", zap.String("state", c.state.String()))
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, client.ErrHTTP):
		return "http"
	case errors.Is(err, client.ErrTransport):
		return "transport"
	default:
		return "local"
	}
}
