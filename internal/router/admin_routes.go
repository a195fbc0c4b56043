package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/handler"
	"github.com/iliyamo/bus-booking-gateway/internal/middleware"
)

// RegisterAdmin registers the fleet management console under
// /v1/admin.  Every route requires a valid access token carrying the
// ADMIN role.
func RegisterAdmin(e *echo.Echo, admin *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	g.GET("/buses", admin.ListBuses)
	g.POST("/buses", admin.CreateBus)
	g.PUT("/buses/:id", admin.UpdateBus)
	g.DELETE("/buses/:id", admin.DeleteBus)

	g.GET("/routes", admin.ListRoutes)
	g.POST("/routes", admin.CreateRoute)
	g.PUT("/routes/:id", admin.UpdateRoute)
	g.DELETE("/routes/:id", admin.DeleteRoute)

	g.GET("/bookings", admin.ListAllBookings)
}
