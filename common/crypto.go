package common

import (
	"golang.org/x/crypto/bcrypt"
)

// Password2Hash hashes a raw password with a salted bcrypt hash. The raw
// password is never stored.
func Password2Hash(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// ValidatePasswordAndHash compares a raw password against a stored hash
// using bcrypt's own verify, never a raw string comparison.
func ValidatePasswordAndHash(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
