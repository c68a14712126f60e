package request

// CreateUserRequest carries a new account registration
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Phone    string `json:"phone" binding:"required,min=7,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin cashier"`
}

// UpdateUserRequest carries admin-side account changes
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone string `json:"phone" binding:"omitempty,min=7,max=50"`
	Email string `json:"email" binding:"omitempty,email"`
	Role  string `json:"role" binding:"omitempty,oneof=admin cashier"`
}
