package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/handler"
	"github.com/iliyamo/bus-booking-gateway/internal/middleware"
)

// RegisterCustomer registers the booking routes available to any
// authenticated user.  Admins pass through as well so they can book and
// inspect their own tickets like any customer.
func RegisterCustomer(e *echo.Echo, bookings *handler.BookingHandler, history *handler.HistoryHandler, jwtSecret string) {
	g := e.Group("/v1/bookings")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN", "CUSTOMER"))

	g.POST("", bookings.Submit)
	g.GET("", history.ListBookings)
	g.GET("/:id", bookings.GetBooking)
	g.PUT("/:id/cancel", history.CancelBooking)
}
