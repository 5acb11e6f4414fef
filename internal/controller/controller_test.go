package controller

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolboard/internal/client"
	"toolboard/internal/logger"
)

type echo struct {
	calls atomic.Int32
	err   error
}

func (e *echo) call(_ context.Context, req string) (string, error) {
	e.calls.Add(1)
	if e.err != nil {
		return "", e.err
	}
	return strings.ToUpper(req), nil
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return Invalid("Please enter a message")
	}
	return nil
}

func newEcho(t *testing.T) (*Controller[string, string], *echo) {
	t.Helper()
	e := &echo{}
	c := New(Options[string, string]{
		Name:           "echo",
		Validate:       nonEmpty,
		Call:           e.call,
		FailureMessage: "Connection Error",
	})
	return c, e
}

func submitAndRun(t *testing.T, c *Controller[string, string], req string) Outcome[string] {
	t.Helper()
	task, err := c.Submit(context.Background(), req)
	require.NoError(t, err)
	return task()
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "succeeded", StateSucceeded.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestValidationFailureIssuesNoCall(t *testing.T) {
	c, e := newEcho(t)

	task, err := c.Submit(context.Background(), "   ")

	assert.Nil(t, task)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, "Please enter a message", c.Validation())
	assert.Zero(t, e.calls.Load())
	assert.False(t, c.CanSubmit(""))
}

func TestValidationFailureKeepsPriorResult(t *testing.T) {
	c, _ := newEcho(t)
	require.True(t, c.Apply(submitAndRun(t, c, "first")))

	_, err := c.Submit(context.Background(), "")
	require.Error(t, err)

	assert.Equal(t, StateSucceeded, c.State())
	res, ok := c.Result()
	assert.True(t, ok)
	assert.Equal(t, "FIRST", res)
}

func TestSuccessfulSubmission(t *testing.T) {
	c, e := newEcho(t)

	task, err := c.Submit(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, StatePending, c.State())
	assert.True(t, c.Busy())
	assert.Zero(t, e.calls.Load(), "the call only runs when the task runs")

	out := task()
	assert.Equal(t, c.ID(), out.Controller)
	require.True(t, c.Apply(out))

	assert.Equal(t, StateSucceeded, c.State())
	res, ok := c.Result()
	assert.True(t, ok)
	assert.Equal(t, "HELLO", res)
	assert.Empty(t, c.Failure())
	assert.NoError(t, c.Err())
}

func TestSecondSubmissionWhilePendingIsRejected(t *testing.T) {
	c, e := newEcho(t)

	task, err := c.Submit(context.Background(), "one")
	require.NoError(t, err)
	assert.False(t, c.CanSubmit("two"))

	second, err := c.Submit(context.Background(), "two")
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrBusy)

	require.True(t, c.Apply(task()))
	assert.Equal(t, int32(1), e.calls.Load())

	res, _ := c.Result()
	assert.Equal(t, "ONE", res)
	assert.True(t, c.CanSubmit("two"))
}

func TestFailureClearsResult(t *testing.T) {
	c, e := newEcho(t)
	require.True(t, c.Apply(submitAndRun(t, c, "first")))

	e.err = &client.HTTPError{Method: "POST", Path: "/x", Status: 502}
	task, err := c.Submit(context.Background(), "second")
	require.NoError(t, err)
	assert.True(t, c.Stale(), "previous result stays visible while pending")

	require.True(t, c.Apply(task()))

	assert.Equal(t, StateFailed, c.State())
	_, ok := c.Result()
	assert.False(t, ok)
	assert.Equal(t, "Connection Error", c.Failure())
	assert.ErrorIs(t, c.Err(), client.ErrHTTP)
}

func TestFailureKeepsResultWhenConfigured(t *testing.T) {
	e := &echo{}
	c := New(Options[string, string]{Name: "keep", Call: e.call, KeepResultOnFailure: true})
	require.True(t, c.Apply(submitAndRun(t, c, "first")))

	e.err = errors.New("boom")
	require.True(t, c.Apply(submitAndRun(t, c, "second")))

	assert.Equal(t, StateFailed, c.State())
	assert.Equal(t, DefaultFailureMessage, c.Failure())
	res, ok := c.Result()
	assert.True(t, ok)
	assert.Equal(t, "FIRST", res)
}

func TestFailureIsLoggedWithClass(t *testing.T) {
	log, logs := logger.TestLogger()
	c := New(Options[string, string]{
		Name: "logged",
		Call: func(context.Context, string) (string, error) {
			return "", &client.TransportError{Method: "POST", Path: "/chat", Err: errors.New("connection refused")}
		},
		Logger: log,
	})

	require.True(t, c.Apply(submitAndRun(t, c, "x")))

	entries := logs.FilterMessage("submission failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "transport", fields["class"])
	assert.Equal(t, "logged", fields["tool"])
	assert.NotContains(t, c.Failure(), "connection refused", "raw cause never reaches the user")
}

func TestResetIsIdempotent(t *testing.T) {
	c, e := newEcho(t)
	require.True(t, c.Apply(submitAndRun(t, c, "x")))

	c.Reset()
	assert.Equal(t, StateIdle, c.State())
	_, ok := c.Result()
	assert.False(t, ok)

	c.Reset()
	assert.Equal(t, StateIdle, c.State())
	_, ok = c.Result()
	assert.False(t, ok)

	e.err = errors.New("down")
	require.True(t, c.Apply(submitAndRun(t, c, "y")))
	require.Equal(t, StateFailed, c.State())

	c.Reset()
	c.Reset()
	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, c.Failure())
	assert.NoError(t, c.Err())
}

func TestResetWhilePendingKeepsRequestInFlight(t *testing.T) {
	c, _ := newEcho(t)
	require.True(t, c.Apply(submitAndRun(t, c, "first")))

	task, err := c.Submit(context.Background(), "second")
	require.NoError(t, err)

	c.Reset()
	assert.Equal(t, StatePending, c.State())
	_, ok := c.Result()
	assert.False(t, ok)

	require.True(t, c.Apply(task()))
	res, _ := c.Result()
	assert.Equal(t, "SECOND", res)
}

func TestDetachDropsLateOutcome(t *testing.T) {
	c, _ := newEcho(t)

	task, err := c.Submit(context.Background(), "late")
	require.NoError(t, err)

	c.Detach()
	assert.False(t, c.Active())

	assert.False(t, c.Apply(task()))
	assert.Equal(t, StatePending, c.State(), "a detached controller is never mutated")

	_, err = c.Submit(context.Background(), "again")
	assert.ErrorIs(t, err, ErrDetached)
	assert.False(t, c.CanSubmit("again"))
}

func TestApplyIgnoresForeignAndStaleOutcomes(t *testing.T) {
	c, _ := newEcho(t)

	assert.False(t, c.Apply(Outcome[string]{Controller: uuid.New(), Seq: 1, Result: "x"}))
	assert.False(t, c.Apply(Outcome[string]{Controller: c.ID(), Seq: 1, Result: "x"}), "not pending")

	out := submitAndRun(t, c, "one")
	require.True(t, c.Apply(out))
	assert.False(t, c.Apply(out), "already applied")

	task, err := c.Submit(context.Background(), "two")
	require.NoError(t, err)
	assert.False(t, c.Apply(out), "outcome of an earlier submission")
	assert.True(t, c.Apply(task()))
}

func TestEachControllerHasItsOwnIdentity(t *testing.T) {
	a, _ := newEcho(t)
	b, _ := newEcho(t)
	assert.NotEqual(t, a.ID(), b.ID())

	out := submitAndRun(t, a, "x")
	_, err := b.Submit(context.Background(), "y")
	require.NoError(t, err)

	assert.False(t, b.Apply(out))
	assert.True(t, a.Apply(out))
	assert.Equal(t, StatePending, b.State())
}
