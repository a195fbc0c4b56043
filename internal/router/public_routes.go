package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/handler"
)

// RegisterPublic registers the unauthenticated browsing routes: trip
// search, bus details and seat maps.  These are read-only views over
// the backend, so the Redis response cache middleware is applied to the
// whole group when caching is enabled.
func RegisterPublic(e *echo.Echo, trips *handler.TripHandler, buses *handler.BusHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if cache != nil {
		g.Use(cache)
	}

	g.GET("/search/trips", trips.SearchTrips)
	g.GET("/trips/seatmap", trips.SeatMap)
	g.GET("/buses", buses.ListActiveBuses)
	g.GET("/buses/:id", buses.GetBus)
}
