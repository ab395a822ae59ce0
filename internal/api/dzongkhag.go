package api

import (
	"context"
	"net/http"

	"drukwater-admin/internal/model"
)

func (c *Client) ListDzongkhags(ctx context.Context) ([]model.Dzongkhag, error) {
	var out listEnvelope[model.Dzongkhag]
	if err := c.do(ctx, http.MethodGet, "/dzongkhag", nil, nil, &out, "Fetching dzongkhags failed"); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CreateDzongkhag(ctx context.Context, payload model.DzongkhagPayload) (*model.Dzongkhag, error) {
	var out itemEnvelope[model.Dzongkhag]
	if err := c.do(ctx, http.MethodPost, "/dzongkhag", payload, nil, &out, "Dzongkhag creation failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateDzongkhag(ctx context.Context, id string, payload model.DzongkhagPayload) (*model.Dzongkhag, error) {
	var out itemEnvelope[model.Dzongkhag]
	if err := c.do(ctx, http.MethodPatch, "/dzongkhag/"+id, payload, nil, &out, "Updating dzongkhag failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteDzongkhag(ctx context.Context, id string) error {
	var out messageEnvelope
	return c.do(ctx, http.MethodDelete, "/dzongkhag/"+id, nil, nil, &out, "Deleting dzongkhag failed")
}
