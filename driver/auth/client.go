// Package auth is the HTTP client for the hosted auth service. Session
// validation is fully delegated: this backend never sees credentials, only
// the opaque user id the workspace store is keyed by.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"fieldboard/config"
	"fieldboard/domain"
	errs "fieldboard/utils/errors"
)

// Client wraps the auth service endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// SessionValidationRequest is the payload sent to the auth service.
type SessionValidationRequest struct {
	SessionToken string `json:"session_token"`
}

// SessionValidationResponse is the auth service's verdict.
type SessionValidationResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// NewClient creates an auth service client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.Auth.ServiceURL,
		httpClient: &http.Client{
			Timeout: cfg.Auth.Timeout,
		},
		logger: logger,
	}
}

// ValidateSession resolves a session token to the account identity. Any
// negative verdict surfaces as ErrUnauthenticated; transport failures keep
// their cause for logging but still unwrap to ErrUnauthenticated so the
// boundary maps them to 401 rather than leaking auth-service state.
func (c *Client) ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error) {
	if sessionToken == "" {
		return nil, errs.ErrUnauthenticated
	}

	payload, err := json.Marshal(SessionValidationRequest{SessionToken: sessionToken})
	if err != nil {
		return nil, fmt.Errorf("encode session validation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/session/validate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create session validation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("auth service unreachable", "error", err)
		}
		return nil, fmt.Errorf("%w: auth service unreachable", errs.ErrUnauthenticated)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: auth service returned %d", errs.ErrUnauthenticated, resp.StatusCode)
	}

	var verdict SessionValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("%w: bad auth service response", errs.ErrUnauthenticated)
	}
	if !verdict.Valid || verdict.UserID == "" {
		return nil, errs.ErrUnauthenticated
	}

	return &domain.UserContext{
		UserID: verdict.UserID,
		Email:  verdict.Email,
	}, nil
}
