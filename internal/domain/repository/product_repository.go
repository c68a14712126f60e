package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/pkg/pagination"
)

// ProductFilterParams holds filtering options for product listing
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the product persistence contract, including the
// inventory ledger operations used by checkout.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)

	// AtomicDecrementBatch decrements stock for every product in one
	// transaction. Each decrement is conditional on sufficient stock; if any
	// product falls short the whole transaction rolls back and the IDs that
	// failed are returned. Stock never goes negative and a failed batch
	// leaves every product untouched.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error)

	// AtomicIncrementBatch restores stock, used to compensate a checkout
	// that failed after its decrements were applied.
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
}
