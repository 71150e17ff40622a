package handler

import (
	"sort"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/dto"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/middleware"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pkg/response"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/skills"

	"github.com/gofiber/fiber/v3"
)

type skillExtractor interface {
	Extract(text string) []skill.Skill
}

type SkillHandler struct {
	extractor skillExtractor
}

func NewSkillHandler(extractor skillExtractor) *SkillHandler {
	return &SkillHandler{extractor: extractor}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.HandleListSkills)
	grp.Post("/extract", h.HandleExtract)
}

// HandleListSkills returns the canonical skill dictionary with display
// names and categories, sorted by name.
func (h *SkillHandler) HandleListSkills(c fiber.Ctx) error {
	names := skills.Dictionary()
	out := make([]dto.DictionarySkillResponse, 0, len(names))
	for _, name := range names {
		out = append(out, dto.DictionarySkillResponse{
			Name:     skill.Title(name),
			Category: skills.CategoryOf(name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return response.Success(c, fiber.StatusOK, "success", out)
}

// HandleExtract runs the skill extractor over raw text, the same pass
// a resume gets during analysis.
func (h *SkillHandler) HandleExtract(c fiber.Ctx) error {
	var req dto.ExtractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "text is required", nil, nil)
	}

	skills := h.extractor.Extract(req.Text)
	out := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.SkillResponse{
			Name:      s.Name,
			Category:  s.Category,
			Frequency: s.Frequency,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
