package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
	"github.com/iliyamo/bus-booking-gateway/internal/model"
	"github.com/iliyamo/bus-booking-gateway/internal/seat"
)

// AdminHandler exposes the fleet and route management console.  Every
// route registered for it sits behind the ADMIN role middleware; the
// handler itself only validates payloads and forwards to the backend.
type AdminHandler struct {
	Backend *backend.Client
}

func NewAdminHandler(b *backend.Client) *AdminHandler {
	if b == nil {
		panic("nil backend client passed to NewAdminHandler")
	}
	return &AdminHandler{Backend: b}
}

// validateBus rejects bus payloads whose grid could never render.  The
// same generator used for seat maps is the source of truth, so a bus
// accepted here is guaranteed to produce a valid seat map later.
func validateBus(b model.Bus) error {
	if b.BusName == "" {
		return errors.New("busName is required")
	}
	if b.OperatorName == "" {
		return errors.New("operatorName is required")
	}
	if _, err := seat.Generate(b.Rows, b.SeatsPerRow); err != nil {
		return err
	}
	return nil
}

// ListBuses handles GET /v1/admin/buses, including inactive buses.
func (h *AdminHandler) ListBuses(c echo.Context) error {
	buses, err := h.Backend.Buses(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": buses})
}

// CreateBus handles POST /v1/admin/buses.
func (h *AdminHandler) CreateBus(c echo.Context) error {
	var bus model.Bus
	if err := c.Bind(&bus); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateBus(bus); err != nil {
		var cfgErr *seat.ConfigurationError
		if errors.As(err, &cfgErr) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": cfgErr.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	created, err := h.Backend.CreateBus(c.Request().Context(), bus)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateBus handles PUT /v1/admin/buses/:id.
func (h *AdminHandler) UpdateBus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var bus model.Bus
	if err := c.Bind(&bus); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateBus(bus); err != nil {
		var cfgErr *seat.ConfigurationError
		if errors.As(err, &cfgErr) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": cfgErr.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	updated, err := h.Backend.UpdateBus(c.Request().Context(), id, bus)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bus not found"})
		}
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBus handles DELETE /v1/admin/buses/:id.
func (h *AdminHandler) DeleteBus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Backend.DeleteBus(c.Request().Context(), id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bus not found"})
		}
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bus deleted", "id": id})
}

// validateRoute rejects route payloads missing the fields every booking
// depends on.
func validateRoute(r model.Route) error {
	if r.BusID == "" {
		return errors.New("busId is required")
	}
	if r.FromCity == "" || r.ToCity == "" {
		return errors.New("fromCity and toCity are required")
	}
	if r.BaseFareCents <= 0 {
		return errors.New("baseFare must be positive")
	}
	return nil
}

// ListRoutes handles GET /v1/admin/routes.
func (h *AdminHandler) ListRoutes(c echo.Context) error {
	routes, err := h.Backend.Routes(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": routes})
}

// CreateRoute handles POST /v1/admin/routes.  The referenced bus must
// exist so a route can never point at a phantom vehicle.
func (h *AdminHandler) CreateRoute(c echo.Context) error {
	var route model.Route
	if err := c.Bind(&route); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateRoute(route); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx := c.Request().Context()
	if _, err := h.Backend.BusByID(ctx, route.BusID); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced bus does not exist"})
		}
		return backendError(c, err)
	}
	created, err := h.Backend.CreateRoute(ctx, route)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateRoute handles PUT /v1/admin/routes/:id.
func (h *AdminHandler) UpdateRoute(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var route model.Route
	if err := c.Bind(&route); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateRoute(route); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	updated, err := h.Backend.UpdateRoute(c.Request().Context(), id, route)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteRoute handles DELETE /v1/admin/routes/:id.
func (h *AdminHandler) DeleteRoute(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Backend.DeleteRoute(c.Request().Context(), id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "route deleted", "id": id})
}

// ListAllBookings handles GET /v1/admin/bookings, the system-wide
// booking ledger.
func (h *AdminHandler) ListAllBookings(c echo.Context) error {
	bookings, err := h.Backend.AllBookings(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}
