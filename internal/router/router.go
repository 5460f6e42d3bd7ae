// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/eduflow/eduflow-api/internal/handler"
	"github.com/eduflow/eduflow-api/internal/middleware"
)

// RegisterGate installs the request gate ahead of every route. It must run
// before any group registration so that all non-static requests pass
// through token verification first.
func RegisterGate(e *echo.Echo, cfg middleware.GateConfig) {
	e.Use(middleware.Gate(cfg))
}

// RegisterRoutes registers infrastructure routes on the provided Echo
// instance. At the moment it only exposes a health check endpoint used by
// load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the external auth provider callback. The route is
// public: it is the landing point of the authorization-code flow, before
// the caller has any token for the gate to verify.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.GET("/auth/callback", a.Callback)
}

// RegisterAPI registers the public course API and the privileged admin
// API. The rate limiter covers both groups; the response cache applies to
// public course reads only (and is off by default).
func RegisterAPI(e *echo.Echo, courses *handler.CourseHandler, admin *handler.AdminHandler, rateLimit, cache echo.MiddlewareFunc) {
	api := e.Group("/api", rateLimit)

	pub := api.Group("/courses", cache)
	pub.GET("", courses.List)
	pub.GET("/:id", courses.Detail)

	// TODO: require instructor/admin claims on this group. The gate only
	// protects the /admin page prefix, so these endpoints currently trust
	// any caller while writing through the RLS-bypassing credential.
	adm := api.Group("/admin")
	adm.POST("/courses", admin.CreateCourse)
	adm.PUT("/lessons/:id", admin.UpdateLesson)
	adm.GET("/stats", admin.DashboardStats)
}
