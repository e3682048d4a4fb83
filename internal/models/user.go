package models

import "time"

// User tracks a WhatsApp contact across conversations. Created on first
// inbound message, never deleted.
type User struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	WaID        string    `json:"wa_id" gorm:"uniqueIndex;size:32"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}
