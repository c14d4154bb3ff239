package api

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

// Login authenticates against the backend and returns its bearer token.
// Callers decide whether to feed the token back through WithTokenSource.
func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.send(ctx, "POST", "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.send(ctx, "POST", "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
