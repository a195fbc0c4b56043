package backend

import (
	"context"
	"net/url"

	"github.com/iliyamo/bus-booking-gateway/internal/model"
)

// BookedSeats returns the seat identifiers already committed for the
// given bus, route and journey date.  Callers read this exactly once
// per booking session; there is no server-side seat lock, so the set
// can go stale while a session is open.
func (c *Client) BookedSeats(ctx context.Context, busID, routeID, journeyDate string) ([]string, error) {
	q := url.Values{}
	q.Set("busId", busID)
	q.Set("routeId", routeID)
	q.Set("journeyDate", journeyDate)
	var out []string
	if err := c.get(ctx, "fetch booked seats", "/bookings/booked-seats", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking submits a booking-creation request and returns the new
// booking identifier.  The booking is created with payment status
// PENDING; payment is a separate call.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (model.BookingCreated, error) {
	var out model.BookingCreated
	if err := c.post(ctx, "create booking", "/bookings", req, &out); err != nil {
		return model.BookingCreated{}, err
	}
	return out, nil
}

// BookingByID fetches a booking record, used by confirmation and
// history views.
func (c *Client) BookingByID(ctx context.Context, id string) (model.Booking, error) {
	var out model.Booking
	if err := c.get(ctx, "get booking", "/bookings/"+url.PathEscape(id), nil, &out); err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// BookingsByUser lists a user's bookings, newest first as ordered by
// the backend.
func (c *Client) BookingsByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.get(ctx, "list user bookings", "/bookings/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllBookings lists every booking.  Admin console only.
func (c *Client) AllBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.get(ctx, "list bookings", "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelBooking marks a booking cancelled.  Refund handling is the
// backend's responsibility.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.put(ctx, "cancel booking", "/bookings/"+url.PathEscape(id)+"/cancel", nil, nil)
}
