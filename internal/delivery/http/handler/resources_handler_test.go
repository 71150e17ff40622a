package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/dto"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"

	"github.com/gofiber/fiber/v3"
)

type stubResourceStore struct {
	items []learning.Resource
	err   error

	gotSkill string
	gotLimit int
}

func (s *stubResourceStore) ResourcesForSkill(ctx context.Context, skillName string, limit int) ([]learning.Resource, error) {
	s.gotSkill, s.gotLimit = skillName, limit
	return s.items, s.err
}

func (s *stubResourceStore) CountResources(ctx context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func TestHandleListResources_ReturnsCatalog(t *testing.T) {
	st := &stubResourceStore{items: []learning.Resource{
		{
			ID:            1,
			SkillName:     "Python",
			Title:         "Python for Everybody",
			URL:           "https://coursera.org/python",
			Platform:      "Coursera",
			DurationWeeks: 8,
			Difficulty:    learning.DifficultyBeginner,
			Rating:        4.8,
			Price:         "Free",
		},
	}}
	app := newV1App(func(v1 fiber.Router) { NewResourcesHandler(st).RegisterRoutes(v1) })

	sr := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/resources/?skill=Python&limit=3", nil))
	if sr.Status != 200 {
		t.Fatalf("status = %d (message=%s), want 200", sr.Status, sr.Message)
	}
	if st.gotSkill != "Python" || st.gotLimit != 3 {
		t.Errorf("store got (%q, %d), want (Python, 3)", st.gotSkill, st.gotLimit)
	}

	var out []dto.ResourceResponse
	if err := json.Unmarshal(sr.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d resources, want 1", len(out))
	}
	if out[0].Title != "Python for Everybody" || out[0].Rating != 4.8 {
		t.Errorf("resource = %+v", out[0])
	}
	if out[0].Difficulty != learning.DifficultyBeginner {
		t.Errorf("difficulty = %q", out[0].Difficulty)
	}
}

func TestHandleListResources_DefaultLimit(t *testing.T) {
	st := &stubResourceStore{}
	app := newV1App(func(v1 fiber.Router) { NewResourcesHandler(st).RegisterRoutes(v1) })

	sr := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/resources/?skill=Go", nil))
	if sr.Status != 200 {
		t.Fatalf("status = %d, want 200", sr.Status)
	}
	if st.gotLimit != 10 {
		t.Errorf("limit = %d, want the default 10", st.gotLimit)
	}
}

func TestHandleListResources_RequiresSkill(t *testing.T) {
	app := newV1App(func(v1 fiber.Router) { NewResourcesHandler(&stubResourceStore{}).RegisterRoutes(v1) })

	sr := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/resources/", nil))
	if sr.Status != 400 {
		t.Fatalf("status = %d, want 400", sr.Status)
	}
	if sr.Message != "skill is required" {
		t.Errorf("message = %q", sr.Message)
	}
}

func TestHandleListResources_RejectsBadLimit(t *testing.T) {
	app := newV1App(func(v1 fiber.Router) { NewResourcesHandler(&stubResourceStore{}).RegisterRoutes(v1) })

	sr := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/resources/?skill=Go&limit=lots", nil))
	if sr.Status != 400 {
		t.Fatalf("status = %d, want 400", sr.Status)
	}
	if sr.Message != "limit must be a number" {
		t.Errorf("message = %q", sr.Message)
	}
}

func TestHandleListResources_HidesStoreErrors(t *testing.T) {
	st := &stubResourceStore{err: errors.New("table dropped by intern")}
	app := newV1App(func(v1 fiber.Router) { NewResourcesHandler(st).RegisterRoutes(v1) })

	sr := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/resources/?skill=Go", nil))
	if sr.Status != 500 {
		t.Fatalf("status = %d, want 500", sr.Status)
	}
	if sr.Message != "internal server error" {
		t.Errorf("message = %q, causes must not leak", sr.Message)
	}
}
