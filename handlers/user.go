package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"travelerapp/middleware"
	"travelerapp/models"
	"travelerapp/services/user"
	"travelerapp/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves traveler profile endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetProfileHandler returns the authenticated user's profile, creating
// it from the auth identity on first access.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	authUser := middleware.CurrentUser(c)
	profile, err := h.Service.GetProfile(authUser)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Failed to load profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler persists profile edits for the authenticated user.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var profile models.User
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	// The profile id always comes from the verified token, never the body.
	profile.ID = authUser.UID

	if err := h.Service.UpdateProfile(&profile); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadAvatarHandler accepts a multipart image, pushes it to the blob
// store and records the served URL on the profile.
func (h *UserHandler) UploadAvatarHandler(c *gin.Context) {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file", err.Error())
		return
	}

	tempPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store upload", err.Error())
		return
	}
	defer os.Remove(tempPath)

	url, err := h.Service.UploadAvatar(c.Request.Context(), authUser.UID, tempPath)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Avatar upload failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
