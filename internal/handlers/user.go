package handlers

import (
	"github.com/devfolio/devfolio/internal/middleware"
	"github.com/devfolio/devfolio/internal/services"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService    *services.UserService
	followService  *services.FollowService
	storageService *services.StorageService
}

func NewUserHandler(db *gorm.DB, storage *services.StorageService) *UserHandler {
	return &UserHandler{
		userService:    services.NewUserService(db),
		followService:  services.NewFollowService(db),
		storageService: storage,
	}
}

// Dashboard returns a user's profile, projects, and follow state
// GET /api/users/:username/dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	username := c.Param("username")

	dashboard, err := h.userService.Dashboard(middleware.GetUserID(c), username)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dashboard)
}

// ToggleFollow follows or unfollows a user
// POST /api/users/:id/follow
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	targetID, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	result, err := h.followService.Toggle(middleware.GetUserID(c), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdatePhoto uploads a new profile photo
// POST /api/users/photo
func (h *UserHandler) UpdatePhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "photo file is required")
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

	if err := h.userService.UpdatePhoto(middleware.GetUserID(c), key); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "photo uploaded successfully", "photo": key})
}
