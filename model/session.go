package model

import "time"

// Session is one issued bearer token. Sessions are append-only: logout
// flips IsExpired, rows are never deleted.
type Session struct {
	BearerToken string    `json:"bearerToken" gorm:"primaryKey;size:36"`
	UserID      string    `json:"userId" gorm:"index;size:64;not null"`
	ExpiresAt   time.Time `json:"expiresAt" gorm:"not null"`
	IsExpired   bool      `json:"isExpired" gorm:"not null;default:false"`
}
