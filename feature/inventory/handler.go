package inventory

import (
	"errors"

	"inventory-sync/core/diffsync"
	"inventory-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DiffResponse is the body of GET /inventory/diff.
type DiffResponse struct {
	HasDiffs bool                     `json:"has_diffs"`
	Summary  diffsync.Summary         `json:"summary"`
	Changes  []diffsync.ElementReport `json:"changes"`
}

// Handler handles HTTP requests for inventory reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/diff", h.HandleDiff)
	group.Post("/sync", h.HandleSync)
}

// HandleDiff returns the pending changes between source and destination.
// @Summary Get Inventory Diff
// @Description Loads the source and destination inventories and returns the elements that differ.
// @Tags inventory
// @Accept json
// @Produce json
// @Param all query boolean false "Include unchanged elements"
// @Success 200 {object} inventory.DiffResponse "Inventory Diff"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/diff [get]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Plan(c.Context())
	if err != nil {
		l.Error("Inventory diff failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(DiffResponse{
		HasDiffs: plan.Diff.HasDiffs(),
		Summary:  plan.Summary,
		Changes:  plan.Diff.Report(c.Query("all") != "true"),
	})
}

// HandleSync applies the pending changes to the destination.
// @Summary Sync Inventory
// @Description Reconciles the destination with the source. Individual object failures are listed in the report; the sync continues past them.
// @Tags inventory
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Plan only, do not apply"
// @Success 200 {object} inventory.Outcome "Sync Outcome"
// @Failure 409 {object} map[string]string "Plan already applied by a concurrent request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.Query("dry_run") == "true"

	plan, err := h.service.Plan(c.Context())
	if err != nil {
		l.Error("Inventory plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := h.service.Apply(c.Context(), plan, ApplyOptions{DryRun: dryRun, Confirmed: true})
	if errors.Is(err, ErrPlanApplied) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Inventory sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if out.Report != nil && !out.Report.OK() {
		l.Warn("Inventory sync finished with failures", zap.Int("failures", len(out.Report.Failures)))
	}
	return c.JSON(out)
}
