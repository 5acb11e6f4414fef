package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "toolboard.log")

	l, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	l.Info("hello", zap.String("tool", "recipe"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"tool":"recipe"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	l, err := New(Options{Level: "error", File: filepath.Join(t.TempDir(), "x.log"), Verbose: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}

func TestFromContext(t *testing.T) {
	ctx, logs := TestContext()

	FromContext(ctx).Info("from context")
	FromContext(With(ctx, zap.String("k", "v"))).Info("child")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "from context", logs.All()[0].Message)
	assert.Equal(t, "v", logs.All()[1].ContextMap()["k"])
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	l, logs := TestLogger()
	restore := Install(l)
	defer restore()

	FromContext(context.Background()).Warn("global")
	assert.Equal(t, 1, logs.Len())
}
