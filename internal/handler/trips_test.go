package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatMapOverlaysBookedSeats(t *testing.T) {
	f := defaultFake()
	f.bookedSeats = []string{"1B"}
	h := NewTripHandler(f.serve(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/trips/seatmap?busId=bus-1&routeId=route-1&date=2026-09-14", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.SeatMap(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Rows        int `json:"rows"`
		SeatsPerRow int `json:"seats_per_row"`
		Seats       []struct {
			Number string `json:"number"`
			Status string `json:"status"`
		} `json:"seats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, 2, resp.SeatsPerRow)
	require.Len(t, resp.Seats, 4)

	statuses := make(map[string]string, len(resp.Seats))
	order := make([]string, 0, len(resp.Seats))
	for _, s := range resp.Seats {
		statuses[s.Number] = s.Status
		order = append(order, s.Number)
	}
	assert.Equal(t, []string{"1A", "1B", "2A", "2B"}, order)
	assert.Equal(t, "BOOKED", statuses["1B"])
	assert.Equal(t, "AVAILABLE", statuses["1A"])
	assert.Equal(t, "AVAILABLE", statuses["2A"])
}

func TestSeatMapRejectsBadDate(t *testing.T) {
	f := defaultFake()
	h := NewTripHandler(f.serve(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/trips/seatmap?busId=bus-1&routeId=route-1&date=14-09-2026", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.SeatMap(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeatMapInvalidGridIsUnprocessable(t *testing.T) {
	f := defaultFake()
	f.bus.SeatsPerRow = 9
	h := NewTripHandler(f.serve(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/trips/seatmap?busId=bus-1&routeId=route-1&date=2026-09-14", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.SeatMap(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSearchTripsRequiresCities(t *testing.T) {
	f := defaultFake()
	h := NewTripHandler(f.serve(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search/trips?from=Mumbai&date=2026-09-14", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.SearchTrips(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
