package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 25 << 20 // 25 MB

// UploadDocument stores one manuscript document (manuscript file, copyright
// form, annotated correction attachment) and returns its file id for use on
// submissions and transitions.
func UploadDocument(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 25MB limit"})
		return
	}

	file := models.FileUpload{
		OriginalName: fileHeader.Filename,
		FileSize:     fileHeader.Size,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		UploadedBy:   userID,
		UploadedAt:   time.Now(),
	}

	if !file.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF and Word documents are accepted"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}

	storedName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	file.StoredPath = filepath.Join(uploadPath, storedName)

	if err := c.SaveUploadedFile(fileHeader, file.StoredPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	if err := config.DB.Create(&file).Error; err != nil {
		os.Remove(file.StoredPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "file": file})
}

// DownloadDocument streams a stored file. Uploaders fetch their own files;
// editors and admins fetch anything.
func DownloadDocument(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	fileID, err := strconv.Atoi(c.Param("file_id"))
	if err != nil || fileID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	var file models.FileUpload
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", fileID).First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if role == models.RoleAuthor && file.UploadedBy != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.FileAttachment(file.StoredPath, file.OriginalName)
}
