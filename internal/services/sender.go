package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
)

// ErrNotConfigured means the Graph API token or phone number id is unset.
// The send is not attempted.
var ErrNotConfigured = errors.New("whatsapp sender not configured")

// DeliveryError is a non-2xx response from the Graph API. The status and
// body are kept for diagnostics; the message is not retried.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("whatsapp delivery failed: status %d: %s", e.StatusCode, e.Body)
}

// WhatsAppSender sends text messages through the Meta WhatsApp Cloud API.
type WhatsAppSender struct {
	client        *http.Client
	baseURL       string
	token         string
	phoneNumberID string
	apiVersion    string
}

// NewWhatsAppSender creates a sender. client must not be nil; token and
// phoneNumberID may be empty, in which case every send returns
// ErrNotConfigured.
func NewWhatsAppSender(client *http.Client, token, phoneNumberID, apiVersion string) *WhatsAppSender {
	return &WhatsAppSender{
		client:        client,
		baseURL:       "https://graph.facebook.com",
		token:         token,
		phoneNumberID: phoneNumberID,
		apiVersion:    apiVersion,
	}
}

// outboundMessage is the Cloud API request body for a text message.
type outboundMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             outboundText `json:"text"`
}

type outboundText struct {
	Body string `json:"body"`
}

// SendText delivers a text message to the wa_id in to. Returns
// ErrNotConfigured without a network call when credentials are missing and
// a *DeliveryError on a non-2xx provider response.
func (s *WhatsAppSender) SendText(to, text string) error {
	if s.token == "" || s.phoneNumberID == "" {
		return ErrNotConfigured
	}

	payload := outboundMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             outboundText{Body: text},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbound message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/messages", s.baseURL, s.apiVersion, s.phoneNumberID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build outbound request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &DeliveryError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	log.Printf("✅ WhatsApp message sent to %s", to)
	return nil
}
