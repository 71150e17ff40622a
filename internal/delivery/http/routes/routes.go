// Package routes mounts middleware and wires every handler onto the
// fiber app.
package routes

import (
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/handler"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/middleware"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	AccessLog *middleware.AccessLogMiddleware
	Errors    *middleware.ErrorMiddleware

	Health    *handler.HealthHandler
	Analyses  *handler.AnalysisHandler
	Jobs      *handler.JobsHandler
	Skills    *handler.SkillHandler
	Resources *handler.ResourcesHandler
	Progress  *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.AccessLog != nil {
		app.Use(r.AccessLog.Middleware())
	}
	if r.Errors != nil {
		app.Use(r.Errors.Middleware())
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Progress != nil {
		app.Get("/ws/progress", r.Progress.HandleProgressWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.Analyses != nil {
		r.Analyses.RegisterRoutes(v1)
	}
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(v1)
	}
	if r.Skills != nil {
		r.Skills.RegisterRoutes(v1)
	}
	if r.Resources != nil {
		r.Resources.RegisterRoutes(v1)
	}
}
