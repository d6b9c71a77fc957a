//go:generate mockgen -source=server.go -destination=server_mock.go -package=reply
package reply

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gobwas/glob"
	"github.com/google/uuid"

	"gathering/internal/app/errors"
	"gathering/internal/app/monitor"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

const sentryFlushTimeout = 2 * time.Second

// Server accepts guest replies over HTTP and stores them
type Server interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Addr() string
	Handler() http.Handler
}

// server implements the Server interface
type server struct {
	addr     string
	store    Store
	notifier Notifier
	monitor  monitor.Monitor
	hub      *sentry.Hub
	http     *http.Server
	listener net.Listener
	running  atomic.Bool
	newID    func() string
	now      func() time.Time
	log      logger.Logger
}

// NewServer creates a reply server; a sentry hub is attached when a DSN is configured
func NewServer(env *config.ServerEnv, store Store, notifier Notifier, mon monitor.Monitor, log logger.Logger) Server {
	s := &server{
		addr:     env.Addr,
		store:    store,
		notifier: notifier,
		monitor:  mon,
		newID:    uuid.NewString,
		now:      time.Now,
		log:      log.WithComponent("SERVER"),
	}

	s.hub = s.sentryHub(env.SentryDSN)

	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: config.ReadTimeout,
		ReadTimeout:       config.ReadTimeout,
	}

	return s
}

// Handler returns the HTTP routes of the server
func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/reply", s.handleReply)
	mux.HandleFunc("GET /api/replies", s.handleList)

	return mux
}

// Addr returns the address the server listens on
func (s *server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.addr
}

// Start listens on the configured address and serves in the background
func (s *server) Start(ctx context.Context) error {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}

	s.listener = listener
	s.running.Store(true)
	s.log.Info().Msgf("Reply server listening on %s", listener.Addr())

	go func() {
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("Reply server stopped unexpectedly")
		}
	}()

	return nil
}

// Stop shuts the server down, closes the store and flushes pending error reports
func (s *server) Stop(ctx context.Context) error {
	if !s.running.Swap(false) {
		return nil
	}

	err := s.http.Shutdown(ctx)

	if closeErr := s.store.Close(); closeErr != nil {
		s.log.Warn().Err(closeErr).Msg("Failed to close reply store")
	}

	if s.hub != nil {
		s.hub.Flush(sentryFlushTimeout)
	}

	s.log.Info().Msg("Reply server stopped")

	return err
}

// Health is the body of the health check; usage is omitted when the process cannot be sampled
type Health struct {
	OK    bool           `json:"ok"`
	Usage *monitor.Usage `json:"usage,omitempty"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := Health{OK: true}

	if s.monitor != nil {
		usage, err := s.monitor.Usage(r.Context())
		if err != nil {
			s.log.Debug().Err(err).Msg("Process usage unavailable")
		} else {
			health.Usage = &usage
		}
	}

	writeJSON(w, http.StatusOK, health)
}

func (s *server) handleReply(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxReplyBytes)

	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.log.Debug().Err(err).Msg("Malformed reply payload")
		writeJSON(w, http.StatusBadRequest, Response{Error: "malformed payload"})

		return
	}

	if err := payload.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: err.Error()})
		return
	}

	reply := payload.Reply(s.newID(), s.now())

	if err := s.store.Save(r.Context(), reply); err != nil {
		s.log.Error().Err(err).Msg("Failed to store reply")
		s.report(err)
		writeJSON(w, http.StatusInternalServerError, Response{Error: "failed to store reply"})

		return
	}

	s.log.Info().Str("id", reply.ID).Msgf("Reply received for pickup %s", reply.PickupTime)

	if err := s.notifier.Notify(reply); err != nil {
		s.log.Debug().Err(err).Msg("Notification skipped")
	}

	writeJSON(w, http.StatusOK, Response{OK: true})
}

// handleList returns stored replies, optionally filtered by a glob on the pickup time (?pickup=13:*)
func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	var filter glob.Glob

	if pattern := r.URL.Query().Get("pickup"); pattern != "" {
		g, err := glob.Compile(pattern)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, Response{Error: "invalid pickup pattern"})
			return
		}

		filter = g
	}

	replies, err := s.store.List(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list replies")
		s.report(err)
		writeJSON(w, http.StatusInternalServerError, Response{Error: "failed to list replies"})

		return
	}

	if filter != nil {
		matched := make([]Reply, 0, len(replies))

		for _, reply := range replies {
			if filter.Match(reply.PickupTime) {
				matched = append(matched, reply)
			}
		}

		replies = matched
	}

	writeJSON(w, http.StatusOK, replies)
}

func (s *server) report(err error) {
	if s.hub != nil {
		s.hub.CaptureException(err)
	}
}

func (s *server) sentryHub(dsn string) *sentry.Hub {
	if dsn == "" {
		return nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:     dsn,
		Release: config.AppName + "@" + config.Version,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Error reporting disabled")
		return nil
	}

	return sentry.NewHub(client, sentry.NewScope())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}
