// Package handler exposes HTTP handlers for both authenticated and
// public endpoints.  This file defines the public trip browsing API:
// city-pair search and per-trip seat maps.  These routes require no
// authentication so travellers can browse before signing in; both are
// read-only and sit behind the Redis response cache.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
	"github.com/iliyamo/bus-booking-gateway/internal/model"
	"github.com/iliyamo/bus-booking-gateway/internal/seat"
)

// TripHandler serves trip search and seat availability views over the
// external backend.
type TripHandler struct {
	Backend *backend.Client
}

func NewTripHandler(b *backend.Client) *TripHandler {
	if b == nil {
		panic("nil backend client passed to NewTripHandler")
	}
	return &TripHandler{Backend: b}
}

// TripCard is one search result: a route paired with the bus that
// operates it, mirroring what the booking flow needs to proceed to
// seat selection.
type TripCard struct {
	Route model.Route `json:"route"`
	Bus   model.Bus   `json:"bus"`
}

// SearchTrips handles GET /v1/search/trips?from=&to=&date=.  It asks
// the backend for routes between the two cities and joins each route
// with its bus record.  Inactive buses and routes are filtered out
// because they cannot be booked.
func (h *TripHandler) SearchTrips(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	date := c.QueryParam("date")
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to cities are required"})
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx := c.Request().Context()
	routes, err := h.Backend.SearchRoutes(ctx, from, to)
	if err != nil {
		return backendError(c, err)
	}

	items := make([]TripCard, 0, len(routes))
	for _, r := range routes {
		if !r.IsActive {
			continue
		}
		bus, err := h.Backend.BusByID(ctx, r.BusID)
		if err != nil {
			return backendError(c, err)
		}
		if !bus.IsActive {
			continue
		}
		items = append(items, TripCard{Route: r, Bus: bus})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "journey_date": date})
}

// seatStatus pairs a seat identifier with its availability for one
// journey.
type seatStatus struct {
	Number string      `json:"number"`
	Status seat.Status `json:"status"`
}

// SeatMap handles GET /v1/trips/seatmap?busId=&routeId=&date=.  It
// generates the bus's seat grid, overlays the booked set fetched from
// the backend, and returns per-seat status in row-major order.  The
// booked set is read once here; a booking session does not refresh it.
func (h *TripHandler) SeatMap(c echo.Context) error {
	busID := c.QueryParam("busId")
	routeID := c.QueryParam("routeId")
	date := c.QueryParam("date")
	if busID == "" || routeID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "busId and routeId are required"})
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx := c.Request().Context()
	bus, err := h.Backend.BusByID(ctx, busID)
	if err != nil {
		return backendError(c, err)
	}

	grid, err := seat.Generate(bus.Rows, bus.SeatsPerRow)
	if err != nil {
		var cfgErr *seat.ConfigurationError
		if errors.As(err, &cfgErr) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": cfgErr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seat map generation failed"})
	}

	booked, err := h.Backend.BookedSeats(ctx, busID, routeID, date)
	if err != nil {
		return backendError(c, err)
	}

	sel := seat.NewSelection(booked)
	seats := make([]seatStatus, 0, len(grid))
	for _, id := range grid {
		seats = append(seats, seatStatus{Number: id, Status: sel.Classify(id)})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"bus_id":        bus.ID,
		"route_id":      routeID,
		"journey_date":  date,
		"rows":          bus.Rows,
		"seats_per_row": bus.SeatsPerRow,
		"seats":         seats,
		"unavailable":   bus.SeatLayout.UnavailableSeats,
	})
}

// backendError translates a failed backend call into a response.  Any
// backend failure, transport or upstream status, is the backend's
// fault from the client's point of view, hence 502.
func backendError(c echo.Context, err error) error {
	var be *backend.Error
	if errors.As(err, &be) {
		c.Logger().Errorf("backend call failed: %v", be)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "backend unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
