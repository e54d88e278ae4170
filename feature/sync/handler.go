package sync

import (
	"errors"

	"save-sync/core/logger"
	"save-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sync operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/pull", h.HandlePull)
	group.Post("/push", h.HandlePush)
	group.Get("/status", h.HandleStatus)
	group.Get("/history", h.HandleHistory)
}

// HandlePull pulls remote saves into the local directory.
// @Summary Pull Saves
// @Description Downloads live remote saves that differ from the local files, backing up local files first.
// @Tags sync
// @Produce json
// @Param dry_run query boolean false "Return the plan without transferring"
// @Success 200 {object} reconcile.Report "All files synced"
// @Success 207 {object} reconcile.Report "Some files failed"
// @Failure 400 {object} map[string]string "Invalid configuration"
// @Failure 502 {object} map[string]string "Remote storage unavailable"
// @Router /sync/pull [post]
func (h *Handler) HandlePull(c *fiber.Ctx) error {
	return h.handleSync(c, reconcile.DirectionPull)
}

// HandlePush pushes local saves to the remote folder.
// @Summary Push Saves
// @Description Uploads local saves that differ from the live remote objects, renaming replaced objects to backup names first.
// @Tags sync
// @Produce json
// @Param dry_run query boolean false "Return the plan without transferring"
// @Success 200 {object} reconcile.Report "All files synced"
// @Success 207 {object} reconcile.Report "Some files failed"
// @Failure 400 {object} map[string]string "Invalid configuration"
// @Failure 502 {object} map[string]string "Remote storage unavailable"
// @Router /sync/push [post]
func (h *Handler) HandlePush(c *fiber.Ctx) error {
	return h.handleSync(c, reconcile.DirectionPush)
}

func (h *Handler) handleSync(c *fiber.Ctx, direction reconcile.Direction) error {
	l := logger.WithRayID(h.service.logger, c).With(zap.String("direction", string(direction)))

	if c.QueryBool("dry_run") {
		plan, err := h.service.Plan(c.UserContext(), direction)
		if err != nil {
			l.Error("Sync plan failed", zap.Error(err))
			return errorResponse(c, err)
		}
		return c.JSON(plan)
	}

	l.Info("Sync requested")
	report, err := h.service.Sync(c.UserContext(), direction)
	if err != nil {
		l.Error("Sync failed", zap.Error(err))
		return errorResponse(c, err)
	}

	if report.Failed() > 0 {
		l.Warn("Sync finished with failures", zap.String("summary", report.Summary()))
		return c.Status(fiber.StatusMultiStatus).JSON(report)
	}
	return c.JSON(report)
}

// HandleStatus reports pending work in both directions.
// @Summary Sync Status
// @Description Plans a pull and a push without transferring anything.
// @Tags sync
// @Produce json
// @Success 200 {object} Status "Pending actions"
// @Failure 400 {object} map[string]string "Invalid configuration"
// @Failure 502 {object} map[string]string "Remote storage unavailable"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	status, err := h.service.Status(c.UserContext())
	if err != nil {
		l.Error("Status check failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(status)
}

// HandleHistory lists recent sync runs.
// @Summary Sync History
// @Description Lists recorded pull and push runs, newest first.
// @Tags sync
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} history.Run "Recent runs"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /sync/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.History(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		l.Error("History lookup failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(runs)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	switch {
	case errors.Is(err, reconcile.ErrConfigInvalid):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrHistoryDisabled):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
