package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/pkg/pagination"
)

// SaleFilterParams holds filtering options for sale listing
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	// CashierID restricts the listing to one cashier's sales. Nil means all
	// cashiers (admin view).
	CashierID *uuid.UUID
	// WithCashier preloads the cashier account for the admin projection.
	WithCashier bool
}

// SaleRepository defines the sale persistence contract. Sales are written
// once at checkout and never updated.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID loads a sale with its item snapshots.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithCashier loads a sale with its items and cashier account.
	GetWithCashier(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}
