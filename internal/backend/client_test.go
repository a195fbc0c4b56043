package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-booking-gateway/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestBusByIDDecodesResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/buses/bus-1", r.URL.Path)
		json.NewEncoder(w).Encode(model.Bus{ID: "bus-1", BusName: "Night Rider", Rows: 10, SeatsPerRow: 4})
	})

	bus, err := c.BusByID(context.Background(), "bus-1")
	require.NoError(t, err)
	assert.Equal(t, "Night Rider", bus.BusName)
	assert.Equal(t, 10, bus.Rows)
}

func TestBookedSeatsSendsQueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/booked-seats", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "bus-1", q.Get("busId"))
		assert.Equal(t, "route-1", q.Get("routeId"))
		assert.Equal(t, "2026-09-14", q.Get("journeyDate"))
		json.NewEncoder(w).Encode([]string{"1A", "2B"})
	})

	seats, err := c.BookedSeats(context.Background(), "bus-1", "route-1", "2026-09-14")
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "2B"}, seats)
}

func TestCreateBookingPostsJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req model.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "42", req.UserID)
		assert.Equal(t, int64(100000), req.TotalFareCents)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.BookingCreated{ID: "bk-1"})
	})

	created, err := c.CreateBooking(context.Background(), model.BookingRequest{
		UserID:         "42",
		TotalFareCents: 100000,
	})
	require.NoError(t, err)
	assert.Equal(t, "bk-1", created.ID)
}

func TestNon2xxBecomesError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	_, err := c.BusByID(context.Background(), "missing")
	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusNotFound, be.StatusCode)
	assert.Contains(t, be.Body, "not found")
	assert.Contains(t, be.Error(), "get bus")
}

func TestTransportFailureHasZeroStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := New(srv.URL, time.Second)

	_, err := c.BusByID(context.Background(), "bus-1")
	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 0, be.StatusCode)
	assert.Error(t, be.Unwrap())
}

func TestContextCancellationAborts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.BusByID(ctx, "bus-1")
	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 0, be.StatusCode)
}
