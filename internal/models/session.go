package models

import (
	"encoding/json"
	"time"
)

// Session stores the conversation state for one WhatsApp user. At most one
// row per wa_id; overwritten on every processed message.
type Session struct {
	WaID      string    `json:"wa_id" gorm:"primaryKey;size:32"`
	State     string    `json:"state" gorm:"size:32"`
	Data      string    `json:"data"` // JSON object with in-flight intake fields
	UpdatedAt time.Time `json:"updated_at"`
}

// DataMap decodes the Data column. A missing or corrupt value yields an
// empty map so callers never see a partial decode.
func (s *Session) DataMap() map[string]string {
	m := map[string]string{}
	if s.Data == "" {
		return m
	}
	if err := json.Unmarshal([]byte(s.Data), &m); err != nil {
		return map[string]string{}
	}
	return m
}

// EncodeData serializes a data map for storage in the Data column.
func EncodeData(m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}
