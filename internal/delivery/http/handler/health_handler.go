package handler

import (
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/infrastructure/cache"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: redis}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	status := map[string]string{
		"status":   "ok",
		"database": "up",
		"cache":    "up",
	}

	if h.db == nil {
		status["database"] = "down"
		status["status"] = "degraded"
	} else if err := h.db.Ping(c.Context()); err != nil {
		status["database"] = "down"
		status["status"] = "degraded"
	}

	// Cache is optional; a missing Redis never degrades health.
	if h.cache == nil {
		status["cache"] = "disabled"
	} else if err := h.cache.Ping(c.Context()); err != nil {
		status["cache"] = "disabled"
	}

	return response.Success(c, fiber.StatusOK, "success", status)
}
