package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
	"github.com/iliyamo/bus-booking-gateway/internal/model"
)

// BusHandler serves the public bus details view.
type BusHandler struct {
	Backend *backend.Client
}

func NewBusHandler(b *backend.Client) *BusHandler {
	if b == nil {
		panic("nil backend client passed to NewBusHandler")
	}
	return &BusHandler{Backend: b}
}

// publicBus is the sanitized bus shape exposed to unauthenticated
// users.  Operational fields (IsActive, TotalSeats) are omitted.
type publicBus struct {
	ID           string   `json:"id"`
	BusName      string   `json:"busName"`
	OperatorName string   `json:"operatorName"`
	BusType      string   `json:"busType"`
	Rows         int      `json:"rows"`
	SeatsPerRow  int      `json:"seatsPerRow"`
	Amenities    []string `json:"amenities"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

func toPublicBus(b model.Bus) publicBus {
	return publicBus{
		ID:           b.ID,
		BusName:      b.BusName,
		OperatorName: b.OperatorName,
		BusType:      b.BusType,
		Rows:         b.Rows,
		SeatsPerRow:  b.SeatsPerRow,
		Amenities:    b.Amenities,
		ImageURL:     b.ImageURL,
	}
}

// GetBus handles GET /v1/buses/:id for unauthenticated users.  A bus
// the backend does not know yields 404; other backend failures map to
// 502 as usual.
func (h *BusHandler) GetBus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	bus, err := h.Backend.BusByID(c.Request().Context(), id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bus not found"})
		}
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, toPublicBus(bus))
}

// ListActiveBuses handles GET /v1/buses, returning only buses open for
// booking.
func (h *BusHandler) ListActiveBuses(c echo.Context) error {
	buses, err := h.Backend.ActiveBuses(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	out := make([]publicBus, 0, len(buses))
	for _, b := range buses {
		out = append(out, toPublicBus(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
