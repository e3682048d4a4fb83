package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"studiobot-backend/internal/models"
)

// MemoryStore holds all data in memory. Not for production.
type MemoryStore struct {
	users    map[string]*models.User
	sessions map[string]*models.Session
	leads    []*models.Lead

	userMu    sync.RWMutex
	sessionMu sync.RWMutex
	leadMu    sync.RWMutex
}

// NewMemoryStore creates a new in-memory storage.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*models.Session),
	}
}

func (m *MemoryStore) TouchUser(waID string) (*models.User, error) {
	m.userMu.Lock()
	defer m.userMu.Unlock()

	now := time.Now()
	if user, exists := m.users[waID]; exists {
		user.LastSeenAt = now
		return user, nil
	}

	user := &models.User{
		ID:          uint(len(m.users) + 1),
		WaID:        waID,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}
	m.users[waID] = user
	return user, nil
}

func (m *MemoryStore) GetSession(waID string) (*models.Session, error) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	session, exists := m.sessions[waID]
	if !exists {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (m *MemoryStore) SaveSession(waID, state, data string) (*models.Session, error) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	session := &models.Session{
		WaID:      waID,
		State:     state,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	m.sessions[waID] = session
	return session, nil
}

func (m *MemoryStore) CreateLead(lead *models.Lead) (*models.Lead, error) {
	m.leadMu.Lock()
	defer m.leadMu.Unlock()

	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusOpen
	}
	lead.CreatedAt = time.Now()

	m.leads = append(m.leads, lead)
	return lead, nil
}

func (m *MemoryStore) GetLeads(status string, limit int) ([]*models.Lead, error) {
	m.leadMu.RLock()
	defer m.leadMu.RUnlock()

	var results []*models.Lead
	for _, lead := range m.leads {
		if status != "" && lead.Status != status {
			continue
		}
		results = append(results, lead)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (m *MemoryStore) Counts() (int64, int64, error) {
	m.userMu.RLock()
	users := int64(len(m.users))
	m.userMu.RUnlock()

	m.leadMu.RLock()
	leads := int64(len(m.leads))
	m.leadMu.RUnlock()

	return users, leads, nil
}
