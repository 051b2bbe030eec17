package service

import (
	"time"

	apperrors "filevault/common/errors"
	"filevault/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Admission rule: at most MessageLimit messages per phone within the
// trailing MessageWindow.
const (
	MessageWindow = time.Hour
	MessageLimit  = 5
)

// MessageList is one page of messages plus the all-time total.
type MessageList struct {
	Messages []*model.ClientMessage
	Total    int64
}

// CreateMessage runs the sliding-window admission check and inserts the
// message. Both must happen inside the same transaction: on MySQL the
// counted rows are locked so a concurrent submission for the same phone
// waits; on SQLite the single-connection pool serializes transactions.
func CreateMessage(tx *gorm.DB, phone string, message string) (*model.ClientMessage, error) {
	cutoff := time.Now().Add(-MessageWindow)

	query := tx.Model(&model.ClientMessage{}).
		Where("phone = ? AND created_at >= ?", phone, cutoff).
		Limit(MessageLimit)
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	// The count is capped: we only need to know whether MessageLimit
	// rows exist in the window, not how many there are in total.
	var recentIDs []int64
	if err := query.Pluck("id", &recentIDs).Error; err != nil {
		return nil, err
	}
	if len(recentIDs) >= MessageLimit {
		return nil, apperrors.New(apperrors.ErrTooManyMessages,
			"Too many messages; maximum of 5 messages per hour is allowed")
	}

	clientMessage := &model.ClientMessage{
		Phone:     phone,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := tx.Create(clientMessage).Error; err != nil {
		return nil, err
	}
	return clientMessage, nil
}

// ListMessages pages backwards by primary key. Total is the count of all
// messages ever stored, independent of pagination.
func ListMessages(tx *gorm.DB, afterID *int64, count *int) (*MessageList, error) {
	var total int64
	if err := tx.Model(&model.ClientMessage{}).Count(&total).Error; err != nil {
		return nil, err
	}

	query := tx.Order("created_at DESC")
	if afterID != nil {
		query = query.Where("id < ?", *afterID)
	}
	if count != nil {
		query = query.Limit(*count)
	}

	messages := make([]*model.ClientMessage, 0)
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return &MessageList{Messages: messages, Total: total}, nil
}
