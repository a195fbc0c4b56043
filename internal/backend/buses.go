package backend

import (
	"context"
	"net/url"

	"github.com/iliyamo/bus-booking-gateway/internal/model"
)

// Buses lists every bus known to the backend, including inactive ones.
// Used by the admin console.
func (c *Client) Buses(ctx context.Context) ([]model.Bus, error) {
	var out []model.Bus
	if err := c.get(ctx, "list buses", "/buses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveBuses lists only buses currently open for booking.
func (c *Client) ActiveBuses(ctx context.Context) ([]model.Bus, error) {
	var out []model.Bus
	if err := c.get(ctx, "list active buses", "/buses/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BusByID fetches a single bus record.
func (c *Client) BusByID(ctx context.Context, id string) (model.Bus, error) {
	var out model.Bus
	if err := c.get(ctx, "get bus", "/buses/"+url.PathEscape(id), nil, &out); err != nil {
		return model.Bus{}, err
	}
	return out, nil
}

// CreateBus registers a new bus and returns the stored record.
func (c *Client) CreateBus(ctx context.Context, bus model.Bus) (model.Bus, error) {
	var out model.Bus
	if err := c.post(ctx, "create bus", "/buses", bus, &out); err != nil {
		return model.Bus{}, err
	}
	return out, nil
}

// UpdateBus replaces a bus record.
func (c *Client) UpdateBus(ctx context.Context, id string, bus model.Bus) (model.Bus, error) {
	var out model.Bus
	if err := c.put(ctx, "update bus", "/buses/"+url.PathEscape(id), bus, &out); err != nil {
		return model.Bus{}, err
	}
	return out, nil
}

// DeleteBus removes a bus.
func (c *Client) DeleteBus(ctx context.Context, id string) error {
	return c.delete(ctx, "delete bus", "/buses/"+url.PathEscape(id))
}
