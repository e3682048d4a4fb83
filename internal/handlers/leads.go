package handlers

import (
	"github.com/gofiber/fiber/v2"

	"studiobot-backend/internal/storage"
)

// LeadHandler exposes collected leads to the studio staff.
type LeadHandler struct {
	store storage.Store
}

// NewLeadHandler creates a lead handler.
func NewLeadHandler(store storage.Store) *LeadHandler {
	return &LeadHandler{store: store}
}

// HandleList returns recent leads, newest first. Optional ?status=open
// filter, ?limit= capped at 200.
func (h *LeadHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	leads, err := h.store.GetLeads(c.Query("status"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list leads",
		})
	}

	return c.JSON(fiber.Map{
		"count": len(leads),
		"leads": leads,
	})
}
