package handler

import (
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/dto"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/middleware"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pkg/response"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/store"

	"github.com/gofiber/fiber/v3"
)

type ResourcesHandler struct {
	resources store.ResourceStore
}

func NewResourcesHandler(resources store.ResourceStore) *ResourcesHandler {
	return &ResourcesHandler{resources: resources}
}

func (h *ResourcesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/resources")
	grp.Get("/", h.HandleListResources)
}

// HandleListResources returns the seeded courses for one skill, best
// rated first.
func (h *ResourcesHandler) HandleListResources(c fiber.Ctx) error {
	skillName := c.Query("skill")
	if skillName == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "skill is required", nil, nil)
	}

	limit, err := parseQueryIntStrict(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "limit must be a number", nil, err)
	}

	items, err := h.resources.ResourcesForSkill(c.Context(), skillName, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	out := make([]dto.ResourceResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ResourceResponse{
			ID:            it.ID,
			SkillName:     it.SkillName,
			Title:         it.Title,
			URL:           it.URL,
			Platform:      it.Platform,
			DurationWeeks: it.DurationWeeks,
			Difficulty:    it.Difficulty,
			Description:   it.Description,
			Rating:        it.Rating,
			Price:         it.Price,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
