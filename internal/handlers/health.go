package handlers

import (
	"github.com/gofiber/fiber/v2"

	"studiobot-backend/internal/storage"
)

// HealthHandler reports service and storage status.
type HealthHandler struct {
	store            storage.Store
	senderConfigured bool
	storageType      string
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(store storage.Store, senderConfigured bool, storageType string) *HealthHandler {
	return &HealthHandler{
		store:            store,
		senderConfigured: senderConfigured,
		storageType:      storageType,
	}
}

// HandleRoot returns the service banner with storage counters.
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	response := fiber.Map{
		"service": "Studio WhatsApp Bot",
		"version": "1.0.0",
		"status":  "healthy",
		"storage": h.storageType,
		"whatsapp": fiber.Map{
			"configured": h.senderConfigured,
		},
	}

	users, leads, err := h.store.Counts()
	if err == nil {
		response["database"] = fiber.Map{
			"users": users,
			"leads": leads,
		}
	} else {
		response["database"] = fiber.Map{"status": "error: " + err.Error()}
	}

	return c.JSON(response)
}

// HandleHealth is the monitoring endpoint: 200 when storage responds, 503
// otherwise.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	if _, _, err := h.store.Counts(); err != nil {
		status = "unhealthy"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database": status == "healthy",
			"whatsapp": h.senderConfigured,
		},
	})
}
