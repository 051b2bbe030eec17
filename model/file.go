package model

import "time"

// File is the metadata row for one uploaded blob. The blob itself lives
// on disk under the upload directory, keyed by ID.
type File struct {
	ID         string    `json:"fileId" gorm:"primaryKey;size:36"`
	Name       string    `json:"fileName" gorm:"size:255"`
	MimeType   string    `json:"mimeType" gorm:"size:100"`
	SizeBytes  int64     `json:"fileSize"`
	UploadedAt time.Time `json:"uploadedAt" gorm:"index"`
}
