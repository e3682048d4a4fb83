package storage

import "studiobot-backend/internal/models"

// Store defines the persistence operations the bot needs. Two
// implementations exist: MemoryStore for tests and local development,
// DatabaseStore for production.
type Store interface {
	// TouchUser creates the user on first contact and refreshes
	// last_seen_at on every subsequent one.
	TouchUser(waID string) (*models.User, error)

	// GetSession returns the session for waID, or (nil, nil) when the user
	// has no session yet.
	GetSession(waID string) (*models.Session, error)

	// SaveSession upserts the session row for waID and refreshes
	// updated_at. The upsert is atomic: insert-or-update keyed by wa_id.
	SaveSession(waID, state, data string) (*models.Session, error)

	// CreateLead appends a completed intake. Insert-only; duplicate content
	// is allowed.
	CreateLead(lead *models.Lead) (*models.Lead, error)

	// GetLeads returns recent leads, newest first, optionally filtered by
	// status. Used by the admin API.
	GetLeads(status string, limit int) ([]*models.Lead, error)

	// Counts returns user and lead totals for the health endpoint.
	Counts() (users int64, leads int64, err error)
}
