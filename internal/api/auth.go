package api

import (
	"context"
	"net/http"
)

const (
	authRegisterPath = "/api/auth/register"
	authLoginPath    = "/api/auth/login"
)

// RegisterRequest is the signup payload. Role defaults to consumer; the admin
// and manager roles are provisioned out of band.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new account. The response may omit the token, in which
// case the caller follows up with [Client.Login].
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Role == "" {
		req.Role = "consumer"
	}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, authRegisterPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for an identity and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, authLoginPath, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
