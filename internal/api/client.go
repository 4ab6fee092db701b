// Package api is the typed client for the expense tracker REST backend.
// The backend owns all business logic (schedule generation, status
// transitions, aggregation); this client only binds the wire contracts
// and maps failures onto the error taxonomy: transport error,
// ErrUnauthorized, *Error with the backend's message, generic failure.
// No request is ever retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionSource supplies the current bearer token to outgoing requests
// and is told to clear itself when the backend rejects the session.
// Passing it explicitly replaces the original's mutable global
// Authorization default on a shared client instance.
type SessionSource interface {
	Token() (string, bool)
	Clear() error
}

// Client talks to one backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionSource
	log     *logrus.Logger
}

// NewClient initializes a client. session may be nil for
// pre-authentication calls only.
func NewClient(baseURL string, session SessionSource, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		session: session,
		log:     log,
	}
}

// envelope is the {success, data} wrapper the EMI endpoints use. The
// expense, lending and savings endpoints return bare JSON.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// result unwraps the envelope. A 200 response can still carry
// success=false with an error string; that surfaces as a failure
// instead of silently yielding zero data.
func (e envelope[T]) result() (T, error) {
	if !e.Success {
		var zero T
		msg := e.Error
		if msg == "" {
			msg = "backend reported failure"
		}
		return zero, fmt.Errorf("%s", msg)
	}
	return e.Data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.session != nil {
		if token, ok := c.session.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do executes the request and decodes the response into out (skipped
// when out is nil). A 401 clears the session store before returning.
func (c *Client) do(req *http.Request, out any) error {
	c.log.WithFields(logrus.Fields{
		"method":     req.Method,
		"path":       req.URL.Path,
		"request_id": req.Header.Get("X-Request-ID"),
	}).Debug("backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to backend failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			if err := c.session.Clear(); err != nil {
				c.log.Warnf("Failed to clear session after 401: %v", err)
			}
		}
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage pulls the human-readable message out of an error body.
// Backends here answer either {"error": "..."} or {"message": "..."}.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return parsed.Message
}
