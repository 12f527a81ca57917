package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/dto"
	"github.com/karales/todo_backend/internal/middleware"
)

// maxProfilePictureSize caps uploads at 5 MiB.
const maxProfilePictureSize = 5 << 20

// profileHandler handles requests for the authenticated user's own account.
type profileHandler struct {
	userService portssvc.UserSvcFacade
}

func newProfileHandler(us portssvc.UserSvcFacade) *profileHandler {
	return &profileHandler{userService: us}
}

// registerProfileRoutes registers the current-user routes on the
// authenticated group.
func registerProfileRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newProfileHandler(userService)

	rg.GET("/auth/me", h.getMe)

	profile := rg.Group("/profile")
	{
		profile.PATCH("", h.updateProfile)
		profile.PATCH("/password", h.changePassword)
		profile.POST("/picture", h.uploadProfilePicture)
		profile.DELETE("/picture", h.deleteProfilePicture)
	}
}

// getMe godoc
// @Summary Get the authenticated user
// @Tags profile
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *profileHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update name fields
// @Description Absent fields keep their stored values.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [patch]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change the local password
// @Description Requires the current password. Federated accounts have no
// local password and are rejected.
// @Tags profile
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/password [patch]
func (h *profileHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, logger, err, "Failed to change password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// uploadProfilePicture godoc
// @Summary Upload a profile picture
// @Description Accepts an image up to 5 MiB as multipart field
// "profilePicture". The new picture is stored before the previous one is
// removed.
// @Tags profile
// @Accept mpfd
// @Produce json
// @Param profilePicture formData file true "Image file"
// @Success 200 {object} dto.ProfilePictureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Object storage not configured"
// @Security BearerAuth
// @Router /profile/picture [post]
func (h *profileHandler) uploadProfilePicture(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No profile picture file provided"})
		return
	}
	if fileHeader.Size > maxProfilePictureSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Profile picture must be 5MB or smaller"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Profile picture must be an image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.userService.ReplaceProfilePicture(c.Request.Context(), userID, file, fileHeader.Size, contentType)
	if err != nil {
		respondError(c, logger, err, "Failed to upload profile picture")
		return
	}

	c.JSON(http.StatusOK, dto.ProfilePictureResponse{ProfilePicture: url})
}

// deleteProfilePicture godoc
// @Summary Remove the profile picture
// @Description Resets the picture to the default placeholder.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfilePictureResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/picture [delete]
func (h *profileHandler) deleteProfilePicture(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	url, err := h.userService.RemoveProfilePicture(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to remove profile picture")
		return
	}

	c.JSON(http.StatusOK, dto.ProfilePictureResponse{ProfilePicture: url})
}
