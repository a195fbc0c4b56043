package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
)

// HistoryHandler serves the booking history view and cancellation.
type HistoryHandler struct {
	Backend *backend.Client
}

func NewHistoryHandler(b *backend.Client) *HistoryHandler {
	if b == nil {
		panic("nil backend client passed to NewHistoryHandler")
	}
	return &HistoryHandler{Backend: b}
}

// ListBookings handles GET /v1/bookings, returning every booking the
// authenticated user has made, newest first as the backend orders them.
func (h *HistoryHandler) ListBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookings, err := h.Backend.BookingsByUser(c.Request().Context(), userIDString(uid))
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}

// CancelBooking handles PUT /v1/bookings/:id/cancel.  Ownership is
// checked before the cancel request is forwarded, so a customer cannot
// cancel another customer's booking by guessing IDs.
func (h *HistoryHandler) CancelBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx := c.Request().Context()
	b, err := h.Backend.BookingByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return backendError(c, err)
	}
	if b.UserID != userIDString(uid) && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if b.Status == "CANCELLED" {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is already cancelled"})
	}

	if err := h.Backend.CancelBooking(ctx, id); err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking cancelled", "id": id})
}
