package models

import "time"

// Lead status values. Transitions past "open" happen downstream, not here.
const (
	LeadStatusOpen   = "open"
	LeadStatusClosed = "closed"
)

// Lead is a completed intake submitted over WhatsApp. Append-only: rows are
// never updated or deleted by the bot.
type Lead struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	WaID      string    `json:"wa_id" gorm:"index;size:32"`
	Category  string    `json:"category" gorm:"size:16"`
	Payload   string    `json:"payload"` // JSON object with the collected answers
	Status    string    `json:"status" gorm:"size:16;default:open"`
	CreatedAt time.Time `json:"created_at"`
}
