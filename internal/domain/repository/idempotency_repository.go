package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
)

// IdempotencyRepository stores processed request keys and cached responses.
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
