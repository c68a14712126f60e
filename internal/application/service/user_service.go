package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/enum"
	"github.com/supamart/pos-api/internal/domain/repository"
	"github.com/supamart/pos-api/pkg/apperror"
	"github.com/supamart/pos-api/pkg/pagination"
	"github.com/supamart/pos-api/pkg/utils"
)

// UserService handles admin-side account management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput carries a new account registration
type CreateUserInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
	Role     string
}

// CreateUser registers a new account. Email and phone must be unique; the
// role defaults to cashier when not given.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already in use")
	}

	existing, err = s.userRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Phone number already in use")
	}

	role := enum.UserRole(input.Role)
	if input.Role == "" {
		role = enum.UserRoleCashier
	}
	if !role.IsValid() {
		return nil, apperror.NewBadRequestError("Role must be admin or cashier")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: hashed,
		Role:     role,
		Status:   enum.UserStatusActive,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser loads a single account by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers returns active accounts, newest first
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error) {
	return s.userRepo.List(ctx, params)
}

// UpdateUserInput carries admin-side account changes
type UpdateUserInput struct {
	Name  string
	Phone string
	Email string
	Role  string
}

// UpdateUser applies admin changes to an account
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Email != "" && input.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Email already in use")
		}
		user.Email = input.Email
	}
	if input.Phone != "" && input.Phone != user.Phone {
		existing, err := s.userRepo.GetByPhone(ctx, input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Phone number already in use")
		}
		user.Phone = input.Phone
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		role := enum.UserRole(input.Role)
		if !role.IsValid() {
			return nil, apperror.NewBadRequestError("Role must be admin or cashier")
		}
		user.Role = role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser disables an account. Sales keep referencing the user, so
// accounts are never hard-deleted.
func (s *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.Deactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
