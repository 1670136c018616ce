package catalogsync

import (
	"context"

	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the sync service over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Get("/status", h.HandleStatus)
	group.Post("/run", h.HandleRun)
}

// HandleStatus returns the last run report.
// @Summary Sync Status
// @Description Report of the most recent sync run.
// @Tags sync
// @Produce json
// @Success 200 {object} catalogsync.RunReport
// @Failure 404 {object} map[string]string "No run yet"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report := h.service.LastReport()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no sync run yet"})
	}
	return c.JSON(report)
}

// HandleRun triggers a sync run and waits for it.
// @Summary Run Sync
// @Description Run one sync cycle now. A call made while a run is in flight joins that run.
// @Tags sync
// @Produce json
// @Success 200 {object} catalogsync.RunReport
// @Failure 500 {object} catalogsync.RunReport
// @Router /sync/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	// The run outlives a dropped client connection.
	ctx := context.WithoutCancel(c.UserContext())

	report, err := h.service.RunOnce(ctx)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Manual sync run failed", zap.Error(err))
		if report == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(report)
	}
	return c.JSON(report)
}
