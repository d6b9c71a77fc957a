//go:generate mockgen -source=client.go -destination=client_mock.go -package=reply
package reply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gathering/internal/app/errors"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

const maxResponseBytes = 4 << 10

// Submitter delivers a reply payload to the reply endpoint
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// client posts replies over HTTP
type client struct {
	endpoint string
	http     *http.Client
	log      logger.Logger
}

// NewClient creates a reply client for the configured endpoint
func NewClient(cfg *config.Config, log logger.Logger) Submitter {
	return &client{
		endpoint: cfg.Reply.Endpoint,
		http: &http.Client{
			Timeout: cfg.Reply.Timeout,
		},
		log: log.WithComponent("REPLY"),
	}
}

// Submit posts the payload once; any non-ok outcome is an error
func (c *client) Submit(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msgf("Reply endpoint %s unreachable", c.endpoint)
		return fmt.Errorf("%w: %w", errors.ErrReplyUnreachable, err)
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		result = Response{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.OK {
		c.log.Warn().Int("status", resp.StatusCode).Msgf("Reply rejected: %s", result.Error)
		return fmt.Errorf("%w: status %d", errors.ErrReplyRejected, resp.StatusCode)
	}

	c.log.Info().Msg("Reply sent")

	return nil
}
