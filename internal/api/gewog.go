package api

import (
	"context"
	"net/http"

	"drukwater-admin/internal/model"
)

func (c *Client) ListGewogs(ctx context.Context) ([]model.Gewog, error) {
	var out listEnvelope[model.Gewog]
	if err := c.do(ctx, http.MethodGet, "/gewog", nil, nil, &out, "Fetching gewogs failed"); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CreateGewog(ctx context.Context, payload model.GewogPayload) (*model.Gewog, error) {
	var out itemEnvelope[model.Gewog]
	if err := c.do(ctx, http.MethodPost, "/gewog", payload, nil, &out, "Gewog creation failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateGewog(ctx context.Context, id string, payload model.GewogPayload) (*model.Gewog, error) {
	var out itemEnvelope[model.Gewog]
	if err := c.do(ctx, http.MethodPatch, "/gewog/"+id, payload, nil, &out, "Updating gewog failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteGewog(ctx context.Context, id string) error {
	var out messageEnvelope
	return c.do(ctx, http.MethodDelete, "/gewog/"+id, nil, nil, &out, "Deleting gewog failed")
}
