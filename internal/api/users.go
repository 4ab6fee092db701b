package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fintrack/internal/models"
)

// LoginResult is the POST /api/users/login response. User is kept raw
// so the session store can persist exactly what the backend sent.
type LoginResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Username decodes the echoed user for display.
func (r LoginResult) Username() string {
	var u models.User
	if err := json.Unmarshal(r.User, &u); err != nil {
		return ""
	}
	return u.Username
}

// Login exchanges credentials for a bearer token. Token issuance and
// rotation are entirely server-owned.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/users/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var out LoginResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	return &out, nil
}

// RegisterResult is the POST /api/users/register response.
type RegisterResult struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
}

// Register creates an account and returns the freshly issued token.
func (c *Client) Register(ctx context.Context, username, email, password string) (*RegisterResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/users/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var out RegisterResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
