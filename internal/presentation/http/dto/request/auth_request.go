package request

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest carries self-service profile changes
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone string `json:"phone" binding:"omitempty,min=7,max=50"`
	Photo string `json:"photo" binding:"omitempty,max=255"`
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
