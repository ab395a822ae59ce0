package api

import (
	"context"
	"net/http"

	"drukwater-admin/internal/model"
)

// ListConsumers is the only paginated list; meta may be nil when the backend
// omits it.
func (c *Client) ListConsumers(ctx context.Context, params model.ConsumerListParams) ([]model.Consumer, *model.Meta, error) {
	var out listEnvelope[model.Consumer]
	if err := c.do(ctx, http.MethodGet, "/consumer", nil, params.Query(), &out, "Fetching consumers failed"); err != nil {
		return nil, nil, err
	}
	return out.Data, out.Meta, nil
}

func (c *Client) CreateConsumer(ctx context.Context, payload model.ConsumerPayload) (*model.Consumer, error) {
	var out itemEnvelope[model.Consumer]
	if err := c.do(ctx, http.MethodPost, "/consumer", payload, nil, &out, "Consumer creation failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateConsumer(ctx context.Context, id string, payload model.ConsumerPayload) (*model.Consumer, error) {
	var out itemEnvelope[model.Consumer]
	if err := c.do(ctx, http.MethodPatch, "/consumer/"+id, payload, nil, &out, "Updating consumer failed"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteConsumer(ctx context.Context, id string) error {
	var out messageEnvelope
	return c.do(ctx, http.MethodDelete, "/consumer/"+id, nil, nil, &out, "Deleting consumer failed")
}
