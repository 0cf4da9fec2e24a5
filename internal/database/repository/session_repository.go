package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beststore/beststore/internal/database/models"
)

// SessionRepository defines the interface for session data operations
type SessionRepository interface {
	Create(session *models.Session) error
	FindByTokenID(tokenID uuid.UUID) (*models.Session, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllUserSessions(userID uint) error
	DeleteExpired() error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByTokenID(tokenID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token_id = ? AND is_revoked = ?", tokenID, false).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// Check if expired
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (r *sessionRepository) Revoke(tokenID uuid.UUID) error {
	result := r.db.Model(&models.Session{}).
		Where("token_id = ?", tokenID).
		Update("is_revoked", true)

	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}

	return result.Error
}

func (r *sessionRepository) RevokeAllUserSessions(userID uint) error {
	return r.db.Model(&models.Session{}).
		Where("user_id = ?", userID).
		Update("is_revoked", true).Error
}

func (r *sessionRepository) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).
		Delete(&models.Session{}).Error
}

// Repository errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)
