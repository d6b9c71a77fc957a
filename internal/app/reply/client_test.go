package reply

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gathering/internal/app/errors"
	"gathering/internal/config"
)

func newTestClient(t *testing.T, endpoint string) Submitter {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := config.DefaultConfig()
	cfg.Reply.Endpoint = endpoint
	cfg.Reply.Timeout = time.Second

	return NewClient(cfg, newTestLogger(ctrl))
}

func Test_Client_Submit(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		err    error
	}{
		{name: "accepted", status: http.StatusOK, body: `{"ok":true}`},
		{name: "ok false", status: http.StatusOK, body: `{"ok":false,"error":"closed"}`, err: errors.ErrReplyRejected},
		{name: "server error", status: http.StatusInternalServerError, body: `{"ok":true}`, err: errors.ErrReplyRejected},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"pickup time is required"}`, err: errors.ErrReplyRejected},
		{name: "not json", status: http.StatusOK, body: `<html>`, err: errors.ErrReplyRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(t, srv.URL).Submit(context.Background(), Payload{FieldPickupTime: "13:00ごろ"})

			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func Test_Client_Submit_SendsPayload(t *testing.T) {
	var (
		method      string
		contentType string
		received    Payload
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	payload := Payload{FieldPickupTime: "おまかせ", FieldMessage: "おめでとう"}

	require.NoError(t, newTestClient(t, srv.URL).Submit(context.Background(), payload))

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, payload, received)
}

func Test_Client_Submit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestClient(t, url).Submit(context.Background(), Payload{FieldPickupTime: "13:00ごろ"})

	assert.ErrorIs(t, err, errors.ErrReplyUnreachable)
}

func Test_Client_Submit_InvalidEndpoint(t *testing.T) {
	err := newTestClient(t, "://nowhere").Submit(context.Background(), Payload{FieldPickupTime: "13:00ごろ"})

	assert.ErrorIs(t, err, errors.ErrFailedToCreateRequest)
}

func Test_Client_Submit_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestClient(t, srv.URL).Submit(ctx, Payload{FieldPickupTime: "13:00ごろ"})

	assert.ErrorIs(t, err, errors.ErrReplyUnreachable)
	assert.ErrorIs(t, err, context.Canceled)
}
