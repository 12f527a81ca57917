package dto

// UpdateProfileRequest updates name fields. Nil fields keep the stored value.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// ChangePasswordRequest replaces the local password after verifying the
// current one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ProfilePictureResponse is returned by the picture upload and delete
// endpoints.
type ProfilePictureResponse struct {
	ProfilePicture string `json:"profilePicture"`
}
