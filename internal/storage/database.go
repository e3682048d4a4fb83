package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studiobot-backend/internal/models"
)

// DatabaseStore persists everything through GORM/PostgreSQL.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (d *DatabaseStore) TouchUser(waID string) (*models.User, error) {
	now := time.Now()
	user := &models.User{
		WaID:        waID,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}

	// RETURNING reloads the stored row into user, so an existing user keeps
	// the original first_seen_at instead of the insert-attempt value.
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wa_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_seen_at": now}),
	}, clause.Returning{}).Create(user).Error
	if err != nil {
		return nil, fmt.Errorf("touch user %s: %w", waID, err)
	}
	return user, nil
}

func (d *DatabaseStore) GetSession(waID string) (*models.Session, error) {
	var session models.Session
	err := d.db.First(&session, "wa_id = ?", waID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", waID, err)
	}
	return &session, nil
}

func (d *DatabaseStore) SaveSession(waID, state, data string) (*models.Session, error) {
	session := &models.Session{
		WaID:      waID,
		State:     state,
		Data:      data,
		UpdatedAt: time.Now(),
	}

	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wa_id"}},
		UpdateAll: true,
	}).Create(session).Error
	if err != nil {
		return nil, fmt.Errorf("save session %s: %w", waID, err)
	}
	return session, nil
}

func (d *DatabaseStore) CreateLead(lead *models.Lead) (*models.Lead, error) {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusOpen
	}

	if err := d.db.Create(lead).Error; err != nil {
		return nil, fmt.Errorf("create lead for %s: %w", lead.WaID, err)
	}
	return lead, nil
}

func (d *DatabaseStore) GetLeads(status string, limit int) ([]*models.Lead, error) {
	query := d.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var leads []*models.Lead
	if err := query.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

func (d *DatabaseStore) Counts() (int64, int64, error) {
	var users, leads int64
	if err := d.db.Model(&models.User{}).Count(&users).Error; err != nil {
		return 0, 0, err
	}
	if err := d.db.Model(&models.Lead{}).Count(&leads).Error; err != nil {
		return 0, 0, err
	}
	return users, leads, nil
}
