package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studiobot-backend/internal/services"
)

var validate = validator.New()

// bindAndValidate parses the request body into dst and validates it.
func bindAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return validate.Struct(dst)
}

// MessageHandler sends manual messages, mainly for development and for
// checking the Cloud API credentials.
type MessageHandler struct {
	sender *services.WhatsAppSender
}

// NewMessageHandler creates a message handler.
func NewMessageHandler(sender *services.WhatsAppSender) *MessageHandler {
	return &MessageHandler{sender: sender}
}

type testMessageRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// HandleTestSend sends a text message to the given wa_id.
func (h *MessageHandler) HandleTestSend(c *fiber.Ctx) error {
	var req testMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.sender.SendText(req.To, req.Text); err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "whatsapp sender not configured",
			})
		}
		log.Printf("❌ Test send to %s failed: %v", req.To, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
