package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"

	"studiobot-backend/internal/conversation"
	"studiobot-backend/internal/dedup"
	"studiobot-backend/internal/models"
	"studiobot-backend/internal/services"
	"studiobot-backend/internal/storage"
)

// WebhookHandler handles the WhatsApp Cloud API webhook: the GET
// verification handshake and inbound POST events.
type WebhookHandler struct {
	store       storage.Store
	cache       *dedup.Cache
	sender      *services.WhatsAppSender
	verifyToken string
	forwardURL  string
	client      *http.Client

	// one mutex per wa_id so messages from the same user are processed in
	// order while distinct users never block each other. Locks are never
	// released, so this grows with the number of distinct users ever seen;
	// a mutex is a few dozen bytes, which a single-process bot can carry.
	userLocks sync.Map
}

// NewWebhookHandler creates a webhook handler. client is used for the
// optional raw-payload mirroring and must not be nil when forwardURL is
// set.
func NewWebhookHandler(store storage.Store, cache *dedup.Cache, sender *services.WhatsAppSender, verifyToken, forwardURL string, client *http.Client) *WebhookHandler {
	return &WebhookHandler{
		store:       store,
		cache:       cache,
		sender:      sender,
		verifyToken: verifyToken,
		forwardURL:  forwardURL,
		client:      client,
	}
}

// HandleVerification answers the platform's GET challenge. Echoes the
// challenge for mode=subscribe with the exact token, 403 otherwise, 500
// when no verify token is configured at all.
func (h *WebhookHandler) HandleVerification(c *fiber.Ctx) error {
	if h.verifyToken == "" {
		log.Println("❌ Webhook verification attempted but VERIFY_TOKEN is not configured")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		return c.SendString(challenge)
	}
	return c.SendStatus(fiber.StatusForbidden)
}

// webhookPayload is the Cloud API inbound event shape, reduced to the
// fields the bot reads.
type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From      string `json:"from"`
					ID        string `json:"id"`
					Timestamp string `json:"timestamp"`
					Type      string `json:"type"`
					Text      struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// inboundMessage is one extracted text message, owned by its processing
// goroutine.
type inboundMessage struct {
	WaID      string
	Text      string
	MessageID string
	Timestamp string
}

// HandleWebhook acks inbound events immediately; the platform retries on
// timeout, so nothing fallible may run before the 200. Each extracted text
// message is processed in its own goroutine and failures are only visible
// in the logs.
func (h *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	// Fiber reuses the request buffer after the handler returns; the
	// goroutines below need their own copy.
	raw := make([]byte, len(c.Body()))
	copy(raw, c.Body())

	if h.forwardURL != "" {
		go h.mirror(raw)
	}

	var payload webhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Not an error: statuses, receipts and other event shapes are
		// expected and skipped.
		log.Printf("Webhook payload without messages: %v", err)
		return c.SendStatus(fiber.StatusOK)
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type != "text" || msg.Text.Body == "" || msg.From == "" {
					continue
				}
				m := inboundMessage{
					WaID:      msg.From,
					Text:      msg.Text.Body,
					MessageID: msg.ID,
					Timestamp: msg.Timestamp,
				}
				go h.process(m)
			}
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

// process runs the post-ack pipeline for one message: dedup → user touch →
// session load → engine step → session save + lead append → send. A failed
// step stops the rest for this message only.
func (h *WebhookHandler) process(m inboundMessage) {
	lock := h.userLock(m.WaID)
	lock.Lock()
	defer lock.Unlock()

	if h.cache.Seen(m.MessageID) {
		log.Printf("Duplicate message %s from %s skipped", m.MessageID, m.WaID)
		return
	}

	if _, err := h.store.TouchUser(m.WaID); err != nil {
		log.Printf("❌ Failed to record user %s: %v", m.WaID, err)
		return
	}

	session, err := h.store.GetSession(m.WaID)
	if err != nil {
		log.Printf("❌ Failed to load session for %s: %v", m.WaID, err)
		return
	}

	state := ""
	var data map[string]string
	if session != nil {
		state = session.State
		data = session.DataMap()
	}

	result := conversation.Step(state, data, m.Text)
	log.Printf("💬 %s: %q → %s (intent %s)", m.WaID, m.Text, result.NextState, result.Intent)

	if _, err := h.store.SaveSession(m.WaID, result.NextState, models.EncodeData(result.NextData)); err != nil {
		// State stays as it was; a redelivery with a fresh message id can
		// reprocess cleanly.
		log.Printf("❌ Failed to save session for %s: %v", m.WaID, err)
		return
	}

	if result.Lead != nil {
		lead := &models.Lead{
			WaID:     m.WaID,
			Category: result.Lead.Category,
			Payload:  models.EncodeData(result.Lead.Payload),
		}
		if _, err := h.store.CreateLead(lead); err != nil {
			log.Printf("❌ Failed to append %s lead for %s: %v", result.Lead.Category, m.WaID, err)
			return
		}
		log.Printf("📋 Lead %s (%s) created for %s", lead.ID, lead.Category, m.WaID)
	}

	if err := h.sender.SendText(m.WaID, result.Reply); err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			log.Printf("📤 Reply to %s not sent (sender not configured): %s", m.WaID, result.Reply)
			return
		}
		log.Printf("❌ Failed to send reply to %s: %v", m.WaID, err)
	}
}

// mirror forwards the raw payload to the configured debug URL.
// Fire-and-forget.
func (h *WebhookHandler) mirror(raw []byte) {
	resp, err := h.client.Post(h.forwardURL, "application/json", bytes.NewReader(raw))
	if err != nil {
		log.Printf("Payload mirror to %s failed: %v", h.forwardURL, err)
		return
	}
	resp.Body.Close()
}

func (h *WebhookHandler) userLock(waID string) *sync.Mutex {
	v, _ := h.userLocks.LoadOrStore(waID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
