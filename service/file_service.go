package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"filevault/common"
	"filevault/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlobPath is where the bytes for a file id live on disk.
func BlobPath(fileID string) string {
	return filepath.Join(common.UploadPath, fileID)
}

func writeBlob(fileID string, header *multipart.FileHeader) (int64, error) {
	src, err := header.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := os.Create(BlobPath(fileID))
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	return io.Copy(dst, src)
}

func uploadMimeType(header *multipart.FileHeader) string {
	if contentType := header.Header.Get("Content-Type"); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

// SaveUploadedFile copies the uploaded bytes to disk under a fresh id and
// records the metadata row. If the row insert fails the blob is removed
// again; the two writes are not transactional.
func SaveUploadedFile(db *gorm.DB, header *multipart.FileHeader) (*model.File, error) {
	fileID := uuid.NewString()

	written, err := writeBlob(fileID, header)
	if err != nil {
		return nil, fmt.Errorf("failed to store file bytes: %w", err)
	}

	file := &model.File{
		ID:         fileID,
		Name:       header.Filename,
		MimeType:   uploadMimeType(header),
		SizeBytes:  written,
		UploadedAt: time.Now(),
	}
	if err := db.Create(file).Error; err != nil {
		_ = os.Remove(BlobPath(fileID))
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}
	return file, nil
}

// UpdateFileFromUpload replaces the blob and every scalar field in place.
// The id stays stable.
func UpdateFileFromUpload(db *gorm.DB, file *model.File, header *multipart.FileHeader) error {
	name := header.Filename
	if name == "" {
		name = "untitled"
	}

	written, err := writeBlob(file.ID, header)
	if err != nil {
		return fmt.Errorf("failed to replace file bytes: %w", err)
	}

	file.Name = name
	file.MimeType = uploadMimeType(header)
	file.SizeBytes = written
	file.UploadedAt = time.Now()
	return db.Save(file).Error
}

// GetFileByID returns nil without error when no row matches.
func GetFileByID(db *gorm.DB, fileID string) (*model.File, error) {
	var file model.File
	err := db.Where("id = ?", fileID).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile removes the row first, then the blob. A blob unlink failure
// is logged rather than surfaced once the row is gone.
func DeleteFile(db *gorm.DB, file *model.File) error {
	if err := db.Delete(file).Error; err != nil {
		return err
	}
	if err := os.Remove(BlobPath(file.ID)); err != nil {
		common.SysError(fmt.Sprintf("failed to delete blob for file %s: %s", file.ID, err.Error()))
	}
	return nil
}

// ListFiles returns one page ordered by upload time, newest first.
func ListFiles(db *gorm.DB, page int, pageSize int) ([]*model.File, error) {
	files := make([]*model.File, 0)
	err := db.Order("uploaded_at DESC").
		Offset(pageSize * (page - 1)).
		Limit(pageSize).
		Find(&files).Error
	return files, err
}
