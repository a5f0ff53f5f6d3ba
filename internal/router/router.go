// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/handler"
	"github.com/mzali/radio-booking/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Calendar  *handler.CalendarHandler
	Classes   *handler.ReferenceHandler
	Producers *handler.ReferenceHandler
	Admin     *handler.AdminHandler
}

// Register sets up all routes.  Everything under /v1 requires a valid
// bearer token; mutation routes additionally require write access and go
// through the rate limiter.  Reads are open to every authenticated role —
// viewers get the static grid and the selectors, they just cannot change
// anything.
func Register(e *echo.Echo, jwtSecret string, rl echo.MiddlewareFunc, h Handlers) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	v1.GET("/me", handler.Me)

	write := middleware.RequireWrite()

	cal := v1.Group("/calendar")
	cal.POST("/open", h.Calendar.Open)
	cal.GET("", h.Calendar.Get)
	cal.POST("/select", h.Calendar.Select)
	cal.POST("/events/:id/click", h.Calendar.Click)
	cal.POST("/edit", h.Calendar.Edit, write)
	cal.POST("/cancel", h.Calendar.Cancel)
	cal.POST("/submit", h.Calendar.Submit, write, rl)
	cal.POST("/delete", h.Calendar.Delete, write, rl)

	v1.GET("/classes", h.Classes.List)
	v1.POST("/classes", h.Classes.Create, write, rl)
	v1.PUT("/classes/:id", h.Classes.Update, write, rl)
	v1.DELETE("/classes/:id", h.Classes.Delete, write, rl)

	v1.GET("/producers", h.Producers.List)
	v1.POST("/producers", h.Producers.Create, write, rl)
	v1.PUT("/producers/:id", h.Producers.Update, write, rl)
	v1.DELETE("/producers/:id", h.Producers.Delete, write, rl)

	v1.GET("/admin/view", h.Admin.GetView, write)
	v1.PUT("/admin/view", h.Admin.SetView, write)
}
