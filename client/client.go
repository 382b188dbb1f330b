// Package client is the Go client for the feedback API. It enforces the
// client-side half of the shared contract and, when configured with a
// fallback store, degrades to local persistence when the backend is
// unreachable — mirroring the statically-hosted deployment of the landing
// page, where submissions are kept locally for manual follow-up.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mailguard-live/mailguard-backend/contract"
	apperrors "github.com/mailguard-live/mailguard-backend/errors"
	"github.com/mailguard-live/mailguard-backend/logger"
	"github.com/mailguard-live/mailguard-backend/types"
)

// Client submits feedback messages to the backend.
//
// The default policy is strict: any non-validation failure surfaces as a
// generic error. Configuring a fallback store switches to the degraded-storage
// policy, where such failures are absorbed into a local write that the caller
// observes as success.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fallback   *FallbackStore
}

// Option is a function that configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithFallbackStore enables the fallback policy: when the backend is
// unreachable or fails, the message is written to the given local store and
// the submission is treated as a success.
func WithFallbackStore(store *FallbackStore) Option {
	return func(c *Client) {
		c.fallback = store
	}
}

// New creates a feedback client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateMessage validates and submits a feedback message. On success it
// returns the persisted record. Validation failures — local or reported by
// the server as a 400 — are returned as-is and never retried. Any other
// failure follows the configured policy: a generic error (strict) or a local
// fallback write observed as success.
func (c *Client) CreateMessage(ctx context.Context, in types.MessageCreate) (*types.Message, error) {
	// Client-side half of the shared contract: no network call for a payload
	// the server would reject anyway.
	if verr := contract.Validate(&in); verr != nil {
		return nil, verr
	}

	msg, err := c.post(ctx, &in)
	if err == nil {
		return msg, nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apperrors.ValidationError {
		// The validators are shared, so this only happens when client and
		// server builds have drifted. Surface the server's message.
		return nil, err
	}

	if c.fallback == nil {
		return nil, apperrors.NewNetworkError(err)
	}

	stored, fbErr := c.fallback.Append(&in)
	if fbErr != nil {
		return nil, apperrors.NewNetworkError(fmt.Errorf("fallback store failed: %w (send error: %v)", fbErr, err))
	}

	logger.GetLogger().Infow("Message stored locally for manual follow-up",
		"id", stored.ID,
		"name", stored.Name,
		"email", logger.MaskEmail(stored.Email),
		"sendError", err)
	return stored, nil
}

func (c *Client) post(ctx context.Context, in *types.MessageCreate) (*types.Message, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + contract.CreateMessage.Path
	req, err := http.NewRequestWithContext(ctx, contract.CreateMessage.Method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated:
		var msg types.Message
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &msg, nil

	case resp.StatusCode == http.StatusBadRequest:
		var errResp types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
			errResp.Message = "Validation failed"
		}
		return nil, apperrors.ValidationFailed(errResp.Message, "")

	default:
		return nil, fmt.Errorf("message submission failed with status %d", resp.StatusCode)
	}
}
