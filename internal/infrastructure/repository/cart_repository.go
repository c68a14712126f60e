package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/enum"
	domainRepo "github.com/supamart/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&cart, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cart, err
}

func (r *cartRepository) GetOpenByCashier(ctx context.Context, cashierID uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&cart, "cashier_id = ? AND status = ?", cashierID, enum.CartStatusOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cart, err
}

// Save persists the cart's aggregates and upserts its line items in one
// transaction, so totals and items never diverge in storage.
func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Cart{}).
			Where("id = ?", cart.ID).
			Updates(map[string]interface{}{
				"total_quantity": cart.TotalQuantity,
				"subtotal":       cart.Subtotal,
				"tax":            cart.Tax,
				"total_amount":   cart.TotalAmount,
			}).Error; err != nil {
			return err
		}

		for i := range cart.Items {
			cart.Items[i].CartID = cart.ID
			if err := tx.Save(&cart.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&entity.CartItem{}).Error
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&entity.CartItem{}).Error
}

// MarkCompleted claims the cart for checkout. The conditional update is the
// at-most-once guard: under concurrent checkouts only one caller sees a row
// transition from open to completed.
func (r *cartRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Cart{}).
		Where("id = ? AND status = ?", id, enum.CartStatusOpen).
		Update("status", enum.CartStatusCompleted)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *cartRepository) Reopen(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Cart{}).
		Where("id = ?", id).
		Update("status", enum.CartStatusOpen).Error
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Cart{}, "id = ?", id).Error
	})
}
