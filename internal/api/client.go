// Package api is the thin HTTP layer over the water utility backend. It
// attaches the bearer token, decodes the response envelopes and normalizes
// failures to a single user-facing message. It never mutates store state.
package api

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenProvider supplies the current session token. An empty token means the
// request goes out unauthenticated and the backend decides rejection.
type TokenProvider interface {
	Token() string
}

// Error is the normalized failure shape for every backend call. Message
// prefers the backend-supplied message and falls back to a per-operation
// default; StatusCode is 0 for transport failures.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// errorEnvelope matches the backend's error body.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client wraps resty with the backend's conventions.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenProvider, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		if tokens != nil {
			if t := tokens.Token(); t != "" {
				req.SetHeader("Authorization", "Bearer "+t)
			}
		}
		return nil
	})

	return &Client{http: rc, logger: logger}
}

// do executes one request. out, body and query may be nil. fallback is the
// operation-specific message used when the backend supplies none. Failures
// never retry; every failure is terminal for this invocation.
func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values, out any, fallback string) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if out != nil {
		req.SetResult(out)
	}
	var backendErr errorEnvelope
	req.SetError(&backendErr)

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &Error{Message: fallback}
	}
	if resp.IsError() {
		msg := backendErr.Message
		if msg == "" {
			msg = backendErr.Error
		}
		if msg == "" {
			msg = fallback
		}
		c.logger.Warn("backend rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", msg),
		)
		return &Error{StatusCode: resp.StatusCode(), Message: msg}
	}
	return nil
}
