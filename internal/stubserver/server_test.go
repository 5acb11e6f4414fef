package stubserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toolboard/internal/client"
	"toolboard/internal/logger"
)

func newStub(t *testing.T) *client.Client {
	t.Helper()
	srv := httptest.NewServer(NewRouter(nil))
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func TestRoot(t *testing.T) {
	c := newStub(t)

	body, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Server Running"}`, string(body))
}

func TestFood(t *testing.T) {
	c := newStub(t)

	resp, err := c.Food(context.Background(), []string{"eggs", "cheese", "spinach"})
	require.NoError(t, err)
	assert.Equal(t, "Eggs and cheese Skillet", *resp.Data.Title)
	assert.Contains(t, *resp.Data.Directions, "15 minutes")
	assert.Equal(t, []string{"eggs", "cheese", "spinach"}, resp.Data.Ingredients)
}

func TestFoodTitleKeepsMultibyteInitial(t *testing.T) {
	c := newStub(t)

	resp, err := c.Food(context.Background(), []string{"épinard", "œufs"})
	require.NoError(t, err)
	assert.Equal(t, "Épinard and œufs Skillet", *resp.Data.Title)
	assert.True(t, utf8.ValidString(*resp.Data.Title))
}

func TestFoodRejectsEmptyList(t *testing.T) {
	c := newStub(t)

	_, err := c.Food(context.Background(), []string{})
	assert.ErrorIs(t, err, client.ErrHTTP)
	assert.Equal(t, http.StatusUnprocessableEntity, client.Status(err))
}

func TestChat(t *testing.T) {
	c := newStub(t)

	tests := []struct {
		message string
		want    string
	}{
		{"hello", "Hi! What's on your mind today?"},
		{"I'm so tired", "I'm sorry you're feeling that way. Want to tell me more about it?"},
		{"the weather is nice", "Thanks for sharing. How does that make you feel?"},
	}
	for _, tt := range tests {
		reply, err := c.Chat(context.Background(), tt.message)
		require.NoError(t, err)
		assert.Equal(t, tt.want, reply, "reply to %q", tt.message)
	}
}

func TestToxic(t *testing.T) {
	c := newStub(t)

	tests := []struct {
		text  string
		toxic bool
	}{
		{"you are wonderful", false},
		{"you are an IDIOT!!", true},
		{"@stupid check http://trash.example", false},
		{"", false},
	}
	for _, tt := range tests {
		resp, err := c.Toxic(context.Background(), tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.toxic, *resp.IsToxic, "isToxic for %q", tt.text)
		assert.Equal(t, tt.text, *resp.Message)
	}
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(NewRouter(nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+client.PathChat, "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	srv := httptest.NewServer(NewRouter(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/essay")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestsAreLogged(t *testing.T) {
	log, logs := logger.TestLogger()
	srv := httptest.NewServer(NewRouter(log))
	defer srv.Close()

	_, err := client.New(srv.URL).Ping(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr, zap.NewNop()) }()

	require.Eventually(t, func() bool {
		_, err := client.New("http://" + addr).Ping(context.Background())
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
