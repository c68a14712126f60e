package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/pkg/pagination"
)

// UserRepository defines the user persistence contract.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Deactivate soft-disables the account instead of deleting it.
	Deactivate(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error)
}
