package model

import "time"

// ClientMessage is one accepted submission. The table is append-only;
// messages are never updated or deleted.
type ClientMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Phone     string    `json:"phone" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index;not null"`
}
