package model

// User is an account keyed by a caller-chosen handle (e.g. a phone
// number). The refresh token is minted once at signup and never rotated.
type User struct {
	ID           string `json:"userId" gorm:"primaryKey;size:64"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
	RefreshToken string `json:"-" gorm:"uniqueIndex;size:36;not null"`
}
