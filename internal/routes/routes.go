package routes

import (
	"github.com/gofiber/fiber/v2"

	"studiobot-backend/internal/handlers"
)

// SetupRoutes configures all API routes.
func SetupRoutes(app *fiber.App, webhook *handlers.WebhookHandler, health *handlers.HealthHandler, leads *handlers.LeadHandler, messages *handlers.MessageHandler) {
	app.Get("/", health.HandleRoot)
	app.Get("/health", health.HandleHealth)

	// WhatsApp Cloud API webhook: GET is the verification handshake, POST
	// receives inbound events.
	app.Get("/webhook", webhook.HandleVerification)
	app.Post("/webhook", webhook.HandleWebhook)

	api := app.Group("/api")
	api.Get("/leads", leads.HandleList)
	api.Post("/messages/test", messages.HandleTestSend)
}
