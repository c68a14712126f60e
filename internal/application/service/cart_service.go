package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/repository"
	"github.com/supamart/pos-api/pkg/apperror"
)

// CartService handles a cashier's in-progress basket
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	taxRate     decimal.Decimal
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	taxRate decimal.Decimal,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		taxRate:     taxRate,
	}
}

// GetOrCreateOpenCart returns the cashier's open cart, creating one if none
// exists. A concurrent create racing on the partial unique index loses the
// insert and picks up the winner's cart on the retry lookup.
func (s *CartService) GetOrCreateOpenCart(ctx context.Context, cashierID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetOpenByCashier(ctx, cashierID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = &entity.Cart{CashierID: cashierID}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		existing, lookupErr := s.cartRepo.GetOpenByCashier(ctx, cashierID)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return cart, nil
}

// AddItem adds a product to the cashier's open cart. If the product already
// has a line item its quantity is incremented; otherwise a new line item
// snapshots the product's current name, price and cover image, so later
// product edits do not change the in-progress cart.
func (s *CartService) AddItem(ctx context.Context, cashierID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	cart, err := s.GetOrCreateOpenCart(ctx, cashierID)
	if err != nil {
		return nil, err
	}

	if item := cart.FindItem(productID); item != nil {
		item.Quantity += quantity
		item.Total = item.Price * int64(item.Quantity)
	} else {
		cart.Items = append(cart.Items, entity.CartItem{
			CartID:     cart.ID,
			ProductID:  productID,
			Name:       product.Name,
			Price:      product.Price,
			CoverImage: product.CoverImage,
			Quantity:   quantity,
			Total:      product.Price * int64(quantity),
		})
	}

	cart.RecalculateTotals(s.taxRate)

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart returns the cashier's open cart, or nil if none exists. Unlike
// AddItem, reading never creates a cart.
func (s *CartService) GetCart(ctx context.Context, cashierID uuid.UUID) (*entity.Cart, error) {
	return s.cartRepo.GetOpenByCashier(ctx, cashierID)
}

// UpdateItemQuantity adds delta to an existing line item's quantity. The
// operation is additive, not an absolute set: a POS keypad sends +1/-1
// adjustments. The resulting quantity must stay at least 1.
func (s *CartService) UpdateItemQuantity(ctx context.Context, cartID, productID uuid.UUID, delta int) (*entity.Cart, error) {
	if delta == 0 {
		return nil, apperror.NewBadRequestError("Quantity change must not be zero")
	}

	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}

	item := cart.FindItem(productID)
	if item == nil {
		return nil, apperror.NewNotFoundError("Product in cart")
	}

	if item.Quantity+delta < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	item.Quantity += delta
	item.Total = item.Price * int64(item.Quantity)

	cart.RecalculateTotals(s.taxRate)

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a line item from the cart
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}

	if !cart.RemoveItem(productID) {
		return nil, apperror.NewNotFoundError("Product in cart")
	}

	if err := s.cartRepo.DeleteItem(ctx, cartID, productID); err != nil {
		return nil, err
	}

	cart.RecalculateTotals(s.taxRate)

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart and zeroes its aggregates. Clearing an already
// empty cart succeeds without touching storage.
func (s *CartService) Clear(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}

	if len(cart.Items) == 0 {
		return cart, nil
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return nil, err
	}

	cart.Items = nil
	cart.RecalculateTotals(s.taxRate)

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
