package service

import (
	"errors"
	"time"

	"filevault/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionDuration is how long a bearer token stays valid after issuance.
const SessionDuration = 10 * time.Minute

// CreateSession issues a fresh bearer token for the user. Token collision
// at 128 bits is treated as negligible; the primary key constraint would
// surface one anyway.
func CreateSession(db *gorm.DB, user *model.User) (*model.Session, error) {
	session := &model.Session{
		BearerToken: uuid.NewString(),
		UserID:      user.ID,
		ExpiresAt:   time.Now().Add(SessionDuration),
		IsExpired:   false,
	}
	if err := db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionByBearerToken returns nil without error when no session
// matches the token.
func GetSessionByBearerToken(db *gorm.DB, bearerToken string) (*model.Session, error) {
	var session model.Session
	err := db.Where("bearer_token = ?", bearerToken).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// IsSessionExpired reports whether the session is invalid, either revoked
// or past its expiry. Pure check, no mutation.
func IsSessionExpired(session *model.Session) bool {
	if session.IsExpired {
		return true
	}
	return !time.Now().Before(session.ExpiresAt)
}

// RevokeSession marks the session expired. Idempotent.
func RevokeSession(db *gorm.DB, session *model.Session) error {
	session.IsExpired = true
	return db.Save(session).Error
}
