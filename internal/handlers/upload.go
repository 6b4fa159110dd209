package handlers

import (
	"github.com/devfolio/devfolio/internal/services"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/gin-gonic/gin"
)

// UploadHandler accepts image uploads for project images. The returned
// object key is passed back in create/update project payloads.
type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storage *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storage}
}

// UploadImage stores an image and returns its object key
// POST /api/uploads
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key, err := h.storageService.Upload(c.Request.Context(), file, fileHeader.Size, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"image": key})
}
