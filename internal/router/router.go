// Package router registers the HTTP routes and attaches the auth, role
// and caching middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/handler"
)

// RegisterRoutes registers the unauthenticated routes: health and
// public trip browsing.  cacheMW is the response cache middleware and
// may be a passthrough.
func RegisterRoutes(e *echo.Echo, t *handler.TripHandler, cacheMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Guest browsing: sellable trips only, cached.
	pub := e.Group("/v1", cacheMW)
	pub.GET("/trips", t.ListSellable)
	pub.GET("/trips/:id", t.Get)
}

// RegisterAuth registers registration, login and token rotation under
// /v1/auth plus the authenticated profile endpoint.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, authMW echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	e.GET("/v1/me", a.Me, authMW)
}
