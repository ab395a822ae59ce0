package api

import (
	"context"
	"net/http"

	"drukwater-admin/internal/model"
)

// LoginResult is the body of a successful POST /users/login.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// registerEnvelope also carries a token for the freshly created account; the
// admin client ignores it and keeps its own session.
type registerEnvelope struct {
	Data  model.User `json:"data"`
	Token string     `json:"token"`
}

func (c *Client) Login(ctx context.Context, payload model.LoginPayload) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/users/login", payload, nil, &out, "Login failed. Please try again."); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var out itemEnvelope[model.User]
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &out, "Failed to fetch user"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out listEnvelope[model.User]
	if err := c.do(ctx, http.MethodGet, "/users/getall", nil, nil, &out, "Fetching users failed"); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) RegisterUser(ctx context.Context, payload model.AddUserPayload) (*model.User, error) {
	var out registerEnvelope
	if err := c.do(ctx, http.MethodPost, "/users/adduser", payload, nil, &out, "Registration failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, payload model.UpdateUserPayload) (*model.User, error) {
	var out itemEnvelope[model.User]
	if err := c.do(ctx, http.MethodPatch, "/users/"+id, payload, nil, &out, "Updating user failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	var out messageEnvelope
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil, &out, "Deleting user failed")
}
