package backend

import (
	"context"
	"net/url"

	"github.com/iliyamo/bus-booking-gateway/internal/model"
)

// Routes lists every route known to the backend.
func (c *Client) Routes(ctx context.Context) ([]model.Route, error) {
	var out []model.Route
	if err := c.get(ctx, "list routes", "/routes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RouteByID fetches a single route record.
func (c *Client) RouteByID(ctx context.Context, id string) (model.Route, error) {
	var out model.Route
	if err := c.get(ctx, "get route", "/routes/"+url.PathEscape(id), nil, &out); err != nil {
		return model.Route{}, err
	}
	return out, nil
}

// SearchRoutes finds routes between two cities.  City matching is the
// backend's concern; the gateway passes the query through verbatim.
func (c *Client) SearchRoutes(ctx context.Context, fromCity, toCity string) ([]model.Route, error) {
	q := url.Values{}
	q.Set("fromCity", fromCity)
	q.Set("toCity", toCity)
	var out []model.Route
	if err := c.get(ctx, "search routes", "/routes/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoute registers a new route and returns the stored record.
func (c *Client) CreateRoute(ctx context.Context, route model.Route) (model.Route, error) {
	var out model.Route
	if err := c.post(ctx, "create route", "/routes", route, &out); err != nil {
		return model.Route{}, err
	}
	return out, nil
}

// UpdateRoute replaces a route record.
func (c *Client) UpdateRoute(ctx context.Context, id string, route model.Route) (model.Route, error) {
	var out model.Route
	if err := c.put(ctx, "update route", "/routes/"+url.PathEscape(id), route, &out); err != nil {
		return model.Route{}, err
	}
	return out, nil
}

// DeleteRoute removes a route.
func (c *Client) DeleteRoute(ctx context.Context, id string) error {
	return c.delete(ctx, "delete route", "/routes/"+url.PathEscape(id))
}
