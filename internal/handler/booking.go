package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
	"github.com/iliyamo/bus-booking-gateway/internal/booking"
	"github.com/iliyamo/bus-booking-gateway/internal/model"
	"github.com/iliyamo/bus-booking-gateway/internal/seat"
)

// BookingHandler drives the booking flow: it rebuilds the seat
// selection server-side from the request, validates it against the
// live booked set, and hands the result to the two-phase submitter.
// All methods assume JWT authentication has already run.
type BookingHandler struct {
	Backend   *backend.Client
	Submitter *booking.Submitter
}

func NewBookingHandler(b *backend.Client, s *booking.Submitter) *BookingHandler {
	if b == nil || s == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Backend: b, Submitter: s}
}

// submitReq is the single booking command bound from the request body.
// The whole object is validated before anything is sent upstream; there
// is no field-by-field mutable session state on the server.
type submitReq struct {
	BusID       string                 `json:"busId"`
	RouteID     string                 `json:"routeId"`
	JourneyDate string                 `json:"journeyDate"`
	Seats       []string               `json:"seats"`
	Passenger   model.PassengerDetails `json:"passenger"`
}

// Submit handles POST /v1/bookings.  The flow mirrors a seat-selection
// session compressed into one request: generate the bus grid, load the
// booked set once, toggle the requested seats into a fresh selection,
// then run the create-then-pay protocol.  A seat that is already booked
// refuses to toggle, which is how conflicts are detected.
func (h *BookingHandler) Submit(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.BusID == "" || req.RouteID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "busId and routeId are required"})
	}
	if len(req.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select at least one seat"})
	}

	// Deduplicate the requested seats: toggling a seat twice would
	// deselect it again.
	unique := make([]string, 0, len(req.Seats))
	seen := make(map[string]struct{}, len(req.Seats))
	for _, id := range req.Seats {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no valid seats provided"})
	}

	// Everything checkable without backend data is checked here, so a
	// request that could never book makes zero upstream calls.
	if err := booking.ValidatePassenger(req.Passenger); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := booking.ValidateJourneyDate(req.JourneyDate); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()

	bus, err := h.Backend.BusByID(ctx, req.BusID)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bus not found"})
		}
		return backendError(c, err)
	}
	route, err := h.Backend.RouteByID(ctx, req.RouteID)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
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
	known := make(map[string]struct{}, len(grid))
	for _, id := range grid {
		known[id] = struct{}{}
	}
	for _, id := range unique {
		if _, ok := known[id]; !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat", "seat": id})
		}
	}

	// The booked set is read exactly once for this session.
	booked, err := h.Backend.BookedSeats(ctx, req.BusID, req.RouteID, req.JourneyDate)
	if err != nil {
		return backendError(c, err)
	}
	sel := seat.NewSelection(booked)
	for _, id := range unique {
		sel.Toggle(id)
	}
	if sel.Count() != len(unique) {
		unavailable := make([]string, 0, len(unique)-sel.Count())
		for _, id := range unique {
			if sel.Classify(id) == seat.StatusBooked {
				unavailable = append(unavailable, id)
			}
		}
		return c.JSON(http.StatusConflict, echo.Map{
			"error":       "some seats are already booked",
			"unavailable": unavailable,
		})
	}

	outcome, err := h.Submitter.Submit(ctx, booking.Request{
		UserID:      userIDString(uid),
		Bus:         bus,
		Route:       route,
		JourneyDate: req.JourneyDate,
		Passenger:   req.Passenger,
	}, sel)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": vErr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	switch outcome.Status {
	case booking.StatusConfirmed:
		return c.JSON(http.StatusCreated, echo.Map{
			"booking_id": outcome.BookingID,
			"status":     outcome.Status,
			"total_fare": outcome.FareCents,
		})
	case booking.StatusPaymentDeclined:
		// The upstream booking stays PENDING; the user may start over.
		return c.JSON(http.StatusPaymentRequired, echo.Map{
			"error":  "payment declined",
			"status": outcome.Status,
		})
	default:
		c.Logger().Errorf("booking submission failed: %v", outcome.Err)
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":  "booking submission failed, please try again",
			"status": outcome.Status,
		})
	}
}

// GetBooking handles GET /v1/bookings/:id, the confirmation view.  A
// customer may only read their own bookings; admins may read any.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Backend.BookingByID(c.Request().Context(), id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return backendError(c, err)
	}
	if b.UserID != userIDString(uid) && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, b)
}
