package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/handler"
	"github.com/iliyamo/transport-ticketing/internal/middleware"
	"github.com/iliyamo/transport-ticketing/internal/model"
)

// API bundles the protected handlers for registration.
type API struct {
	Trips         *handler.TripHandler
	Tickets       *handler.TicketHandler
	Ratings       *handler.RatingHandler
	Org           *handler.OrgHandler
	Reports       *handler.ReportHandler
	Notifications *handler.NotificationHandler
}

// RegisterAPI registers every authenticated route.  The role middleware
// is a coarse gate only; the engines re-check authorization against the
// live user record.
func RegisterAPI(e *echo.Echo, api API, authMW echo.MiddlewareFunc) {
	v1 := e.Group("/v1", authMW)

	company := middleware.RequireRole(model.RoleCompany)
	distributor := middleware.RequireRole(model.RoleDistributor)
	cashier := middleware.RequireRole(model.RoleCashier)
	admin := middleware.RequireRole(model.RoleAdmin)

	// Trip lifecycle.
	v1.POST("/trips", api.Trips.Add, company)
	v1.POST("/trips/:id/requests", api.Trips.Request, distributor)
	v1.POST("/requests/:id/decision", api.Trips.Decide, company)
	v1.DELETE("/trips/:id", api.Trips.Cancel, middleware.RequireRole(model.RoleAdmin, model.RoleCompany))

	// Seat sales.
	v1.POST("/trips/:id/tickets", api.Tickets.Sell, cashier)
	v1.GET("/trips/:id/tickets", api.Tickets.ListByTrip, admin)

	// Ratings.
	v1.POST("/companies/:id/rating", api.Ratings.RateCompany, middleware.RequireRole(model.RoleDistributor, model.RoleAdmin))
	v1.POST("/distributors/:id/rating", api.Ratings.RateDistributor, middleware.RequireRole(model.RoleCompany, model.RoleAdmin))
	v1.POST("/cashiers/:id/rating", api.Ratings.RateCashier, middleware.RequireRole(model.RoleDistributor, model.RoleAdmin))

	// Entity management.
	v1.POST("/companies", api.Org.CreateCompany, admin)
	v1.GET("/companies/:id", api.Org.GetCompany)
	v1.PATCH("/companies/:id", api.Org.UpdateCompany, middleware.RequireRole(model.RoleAdmin, model.RoleCompany))
	v1.POST("/distributors", api.Org.CreateDistributor, admin)
	v1.GET("/distributors/:id", api.Org.GetDistributor)
	v1.PATCH("/distributors/:id", api.Org.UpdateDistributor, middleware.RequireRole(model.RoleAdmin, model.RoleCompany, model.RoleDistributor))
	v1.POST("/cashiers", api.Org.CreateCashier, distributor)
	v1.GET("/cashiers/:id", api.Org.GetCashier)
	v1.PATCH("/cashiers/:id", api.Org.UpdateCashier, middleware.RequireRole(model.RoleAdmin, model.RoleDistributor))
	v1.POST("/users/:id/deactivate", api.Org.DeactivateUser, admin)

	// Reports.
	v1.GET("/reports/companies", api.Reports.Companies, distributor)
	v1.GET("/reports/distributors", api.Reports.Distributors, middleware.RequireRole(model.RoleAdmin, model.RoleCompany))
	v1.GET("/reports/cashiers", api.Reports.Cashiers, middleware.RequireRole(model.RoleAdmin, model.RoleDistributor))
	v1.GET("/reports/trips", api.Reports.Trips)
	v1.GET("/reports/trips/:id/tickets", api.Reports.Tickets)

	// Notifications.
	v1.GET("/notifications", api.Notifications.List)
	v1.POST("/notifications/:id/read", api.Notifications.MarkRead)
	v1.POST("/sweeps/upcoming", api.Notifications.Sweep, admin)
}
