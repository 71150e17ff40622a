package app

import (
	"fmt"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/handler"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/middleware"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/routes"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
}

// New assembles the HTTP surface over an existing container. The hub
// starts here and becomes the process-wide progress sink.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		ReadTimeout:  c.Config.HTTP.ReadTimeout,
		WriteTimeout: c.Config.HTTP.WriteTimeout,
	})

	hub := ws.NewHub(c.Logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	reg := &routes.Registry{
		AccessLog: middleware.NewAccessLogMiddleware(c.Logger),
		Errors:    middleware.NewErrorMiddleware(c.Logger),
		Health:    handler.NewHealthHandler(c.DB, c.Cache),
		Analyses:  handler.NewAnalysisHandler(c.Runner, c.Analyses, c.Paths, c.Logger),
		Jobs:      handler.NewJobsHandler(c.Fetcher),
		Skills:    handler.NewSkillHandler(c.Extractor),
		Resources: handler.NewResourcesHandler(c.Resources),
		Progress:  ws.NewHandler(hub, c.Logger),
	}
	reg.Register(f)

	return &App{Fiber: f, Container: c, Hub: hub}
}

// Bootstrap builds the container and the app in one call. The returned
// cleanup closes everything the container opened.
func Bootstrap(cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	a := New(c)
	return a, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
