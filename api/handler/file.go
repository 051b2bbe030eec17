package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"filevault/common"
	apperrors "filevault/common/errors"
	"filevault/model"
	"filevault/service"

	"github.com/gin-gonic/gin"
)

func invalidFileID(fileID string) error {
	return apperrors.New(apperrors.ErrInvalidFileId,
		fmt.Sprintf("File with id %s does not exist.", fileID)).With("fileId", fileID)
}

// intQueryParam parses an integer query parameter, falling back to the
// default when absent or malformed.
func intQueryParam(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// UploadFile stores the multipart `file` field as a new file.
func UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		common.AbortError(c, apperrors.New(apperrors.ErrNoFileAttached,
			"No file attached to the `file` form field."))
		return
	}

	file, err := service.SaveUploadedFile(model.DB, header)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// ListFiles pages through file summaries, newest upload first.
func ListFiles(c *gin.Context) {
	page := intQueryParam(c, "page", 1)
	pageSize := intQueryParam(c, "list_size", 10)

	files, err := service.ListFiles(model.DB, page, pageSize)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// GetFile returns one file summary.
func GetFile(c *gin.Context) {
	fileID := c.Param("id")
	file, err := service.GetFileByID(model.DB, fileID)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	if file == nil {
		common.AbortError(c, invalidFileID(fileID))
		return
	}
	c.JSON(http.StatusOK, file)
}

// DownloadFile streams the stored bytes back under the original name.
func DownloadFile(c *gin.Context) {
	fileID := c.Param("id")
	file, err := service.GetFileByID(model.DB, fileID)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	if file == nil {
		common.AbortError(c, invalidFileID(fileID))
		return
	}

	c.Header("Content-Type", file.MimeType)
	c.FileAttachment(service.BlobPath(file.ID), file.Name)
}

// UpdateFile replaces an existing file's content and metadata in place.
func UpdateFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		common.AbortError(c, apperrors.New(apperrors.ErrNoFileAttached,
			"No file attached to the `file` form field."))
		return
	}

	fileID := c.Param("id")
	file, err := service.GetFileByID(model.DB, fileID)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	if file == nil {
		common.AbortError(c, invalidFileID(fileID))
		return
	}

	if err := service.UpdateFileFromUpload(model.DB, file, header); err != nil {
		common.AbortError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// DeleteFile removes the row and the blob.
func DeleteFile(c *gin.Context) {
	fileID := c.Param("id")
	file, err := service.GetFileByID(model.DB, fileID)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	if file == nil {
		common.AbortError(c, invalidFileID(fileID))
		return
	}

	if err := service.DeleteFile(model.DB, file); err != nil {
		common.AbortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
