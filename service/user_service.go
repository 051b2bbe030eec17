package service

import (
	"errors"
	"fmt"

	"filevault/common"
	apperrors "filevault/common/errors"
	"filevault/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetUserByID(db *gorm.DB, id string) (*model.User, error) {
	var user model.User
	err := db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByRefreshToken(db *gorm.DB, refreshToken string) (*model.User, error) {
	var user model.User
	err := db.Where("refresh_token = ?", refreshToken).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new account. The handle must be unused; the raw
// password is hashed before it touches the database.
func CreateUser(db *gorm.DB, userID string, password string) (*model.User, error) {
	existing, err := GetUserByID(db, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.ErrUserIdExists,
			fmt.Sprintf("User with ID %s already exists.", userID)).With("userId", userID)
	}

	passwordHash, err := common.Password2Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           userID,
		PasswordHash: passwordHash,
		RefreshToken: uuid.NewString(),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
