package handlers

import (
	"net/http"

	"eventra/services/storage"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadFolder = "eventra/uploads"

// StorageHandler serves POST /api/upload.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance. svc may be nil
// when Cloudinary is not configured.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadFileHandler stores a multipart "file" and returns its public URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		utils.RespondError(c, utils.NewUnavailableError("Media uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		getLogger(c).Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	uploaded, err := h.StorageSvc.UploadFile(c.Request.Context(), file, uploadFolder)
	if err != nil {
		getLogger(c).Error("Upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      uploaded.URL,
		"publicId": uploaded.PublicID,
	})
}
