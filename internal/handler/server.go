package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"mustplay-go/internal/config"
	"mustplay-go/pkg/dataset"
	"mustplay-go/pkg/game"
	"mustplay-go/pkg/logger"
	"mustplay-go/pkg/stats"
)

// Server exposes the latest scraped dataset and its statistics over HTTP.
type Server struct {
	app     *fiber.App
	cfg     config.ServerConfig
	dataDir string
	pattern string
	cache   *dataset.Cache
	log     *logger.Logger
}

// NewServer wires routes for the dataset API.
func NewServer(cfg config.ServerConfig, output config.OutputConfig) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		cfg:     cfg,
		dataDir: output.Dir,
		pattern: output.Pattern,
		cache:   dataset.NewCache(),
		log:     logger.GetLogger().WithField("component", "server"),
	}

	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/api/games", s.handleGames)
	s.app.Get("/api/stats", s.handleStats)
	s.app.Get("/report", s.handleReport)
	return s
}

// Listen serves until Shutdown is called.
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.log.WithField("addr", addr).Info("Serving dataset API")
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleGames(c *fiber.Ctx) error {
	records, err := s.loadLatest()
	if err != nil {
		return s.datasetError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(records),
		"games": records,
	})
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	records, err := s.loadLatest()
	if err != nil {
		return s.datasetError(c, err)
	}
	return c.JSON(stats.Compute(records))
}

func (s *Server) handleReport(c *fiber.Ctx) error {
	records, err := s.loadLatest()
	if err != nil {
		return s.datasetError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(stats.Render(stats.Compute(records)))
}

func (s *Server) loadLatest() ([]game.Record, error) {
	path, err := dataset.Latest(s.dataDir, s.pattern)
	if err != nil {
		return nil, err
	}
	return s.cache.Load(path)
}

func (s *Server) datasetError(c *fiber.Ctx, err error) error {
	if errors.Is(err, dataset.ErrNoDataset) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no dataset available"})
	}
	s.log.WithError(err).Error("Failed to load dataset")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load dataset"})
}
