package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"weddify/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles media upload and download endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted upload destinations.
var allowedBuckets = map[string]bool{
	"portfolio": true,
	"venues":    true,
	"feed":      true,
}

// UploadFileHandler handles POST /storage/:bucket.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'portfolio', 'venues' and 'feed'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "weddify/"+bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId":    publicID,
		"downloadURL": downloadURL,
	})
}

// DeleteFileHandler handles DELETE /storage/:bucket/:publicId.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	publicID := c.Param("publicId")
	if err := h.StorageSvc.DeleteFile(c, publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// GetSecureDownloadURLHandler handles GET /storage/:bucket/:publicId/secure.
func (h *StorageHandler) GetSecureDownloadURLHandler(c *gin.Context) {
	publicID := c.Param("publicId")

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.StorageSvc.GetSecureDownloadURL(c, "image", publicID, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate download URL", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}
