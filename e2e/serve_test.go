package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gathering/internal/app/reply"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

func startServer(t *testing.T) (*Runner, string) {
	t.Helper()

	r := NewRunner(t)
	addr := freeAddr(t)

	r.Setenv("GATHERING_ADDR", addr)
	r.Setenv("GATHERING_DB", filepath.Join(r.WorkDir(), "replies.db"))
	r.Setenv("GATHERING_NOTIFY", "false")

	require.NoError(t, r.Start("serve"))
	t.Cleanup(func() { _ = r.Stop() })

	require.NoError(t, r.WaitForLog("Reply server listening", 10*time.Second))

	return r, addr
}

func newClient(addr string) reply.Submitter {
	cfg := config.DefaultConfig()
	cfg.Reply.Endpoint = "http://" + addr + "/api/reply"
	cfg.Logging.Level = logger.ErrorLevel

	return reply.NewClient(cfg, logger.NewLoggerWithOutput(cfg, io.Discard))
}

func listReplies(t *testing.T, url string) []reply.Reply {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var replies []reply.Reply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&replies))

	return replies
}

func Test_Serve_ReplyRoundTrip(t *testing.T) {
	r, addr := startServer(t)
	client := newClient(addr)

	require.NoError(t, client.Submit(context.Background(), reply.Payload{
		reply.FieldPickupTime: "13:30ごろ",
		reply.FieldMessage:    "おめでとう",
	}))
	require.NoError(t, client.Submit(context.Background(), reply.Payload{
		reply.FieldPickupTime: "15:00ごろ",
	}))

	replies := listReplies(t, "http://"+addr+"/api/replies")
	require.Len(t, replies, 2)

	filtered := listReplies(t, "http://"+addr+"/api/replies?pickup=13:*")
	require.Len(t, filtered, 1)
	assert.Equal(t, "おめでとう", filtered[0].Message)

	require.NoError(t, r.Stop())
	assert.Equal(t, 0, r.ExitCode())
	assert.Contains(t, r.Output(), "Reply server stopped")
}

func Test_Serve_RejectsInvalidReply(t *testing.T) {
	_, addr := startServer(t)

	err := newClient(addr).Submit(context.Background(), reply.Payload{reply.FieldMessage: "no pickup"})

	assert.Error(t, err)
	assert.Empty(t, listReplies(t, "http://"+addr+"/api/replies"))
}

func Test_Serve_Health(t *testing.T) {
	_, addr := startServer(t)

	resp, err := http.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health reply.Health
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))

	assert.True(t, health.OK)
	require.NotNil(t, health.Usage)
	assert.NotEmpty(t, health.Usage.Uptime)
}

func Test_Serve_RepliesSurviveRestart(t *testing.T) {
	r, addr := startServer(t)

	require.NoError(t, newClient(addr).Submit(context.Background(), reply.Payload{reply.FieldPickupTime: "おまかせ"}))
	require.NoError(t, r.Stop())

	r.stdout = &lockedBuffer{}
	require.NoError(t, r.Start("serve"))
	require.NoError(t, r.WaitForLog("Reply server listening", 10*time.Second))

	replies := listReplies(t, "http://"+addr+"/api/replies")
	require.Len(t, replies, 1)
	assert.Equal(t, "おまかせ", replies[0].PickupTime)
}

