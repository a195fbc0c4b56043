// Package router defines how HTTP routes are registered for the API.
// Registration is split per audience: unauthenticated health and auth
// routes here, public browsing routes in public_routes.go, customer
// booking routes in customer_routes.go and the admin console in
// admin_routes.go.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/handler"
	"github.com/iliyamo/bus-booking-gateway/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication and no
// backend round trip.  Currently that is only the health check, which
// load balancers probe to verify the gateway is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints and the small set
// of protected session routes.  Unauthenticated operations live under
// /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// /refresh rotates the refresh token; /refresh-access only mints a
	// new access token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "CUSTOMER"))
	auth.GET("/me", a.Me)
}
