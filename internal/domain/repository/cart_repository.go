package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
)

// CartRepository defines the cart persistence contract.
type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	// GetByID loads a cart with its line items.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)
	// GetOpenByCashier returns the cashier's open cart, or nil if none exists.
	GetOpenByCashier(ctx context.Context, cashierID uuid.UUID) (*entity.Cart, error)
	// Save persists the cart and upserts its line items.
	Save(ctx context.Context, cart *entity.Cart) error
	// DeleteItem removes one line item row.
	DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error
	// ClearItems removes every line item row for the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error

	// MarkCompleted transitions the cart from open to completed as a single
	// conditional update. Returns false if the cart was not open, which is
	// how concurrent checkouts on the same cart are serialized: only one
	// caller observes true.
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
	// Reopen reverts a completed cart back to open (checkout compensation).
	Reopen(ctx context.Context, id uuid.UUID) error
	// Delete removes the cart and its items; the carts table only ever holds
	// in-progress carts.
	Delete(ctx context.Context, id uuid.UUID) error
}
