package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/supamart/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Cart represents a cashier's in-progress basket. At most one cart with
// status "open" exists per cashier, enforced by a partial unique index.
type Cart struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CashierID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"cashier_id"`
	Status        enum.CartStatus `gorm:"size:20;default:open" json:"status"`
	TotalQuantity int             `gorm:"default:0" json:"total_quantity"`
	Subtotal      int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax           int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TotalAmount   int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Cashier User       `gorm:"foreignKey:CashierID" json:"-"`
	Items   []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Cart) MarshalJSON() ([]byte, error) {
	type Alias Cart
	return json.Marshal(&struct {
		Alias
		Subtotal    float64 `json:"subtotal"`
		Tax         float64 `json:"tax"`
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(c),
		Subtotal:    float64(c.Subtotal) / 100,
		Tax:         float64(c.Tax) / 100,
		TotalAmount: float64(c.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new cart
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = enum.CartStatusOpen
	}
	return nil
}

// TableName returns the table name for the Cart model
func (Cart) TableName() string {
	return "carts"
}

// IsOpen reports whether the cart can still be mutated or checked out
func (c *Cart) IsOpen() bool {
	return c.Status == enum.CartStatusOpen
}

// FindItem returns the line item for the given product, or nil
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveItem drops the line item for the given product from the in-memory
// slice. Returns false if the product has no line item.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// RecalculateTotals recomputes every derived aggregate from the current line
// items. This is the single source of truth for cart totals: every structural
// mutation must call it before the cart is persisted. Line quantities or
// prices below zero are treated as zero.
func (c *Cart) RecalculateTotals(taxRate decimal.Decimal) {
	var subtotal int64
	var totalQuantity int

	for i := range c.Items {
		price := c.Items[i].Price
		if price < 0 {
			price = 0
		}
		qty := c.Items[i].Quantity
		if qty < 0 {
			qty = 0
		}

		c.Items[i].Total = price * int64(qty)
		subtotal += c.Items[i].Total
		totalQuantity += qty
	}

	c.Subtotal = subtotal
	c.TotalQuantity = totalQuantity
	// Tax is rounded to the nearest cent, e.g. 7.5% VAT
	c.Tax = decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
	c.TotalAmount = subtotal + c.Tax
}

// CartItem is a line item in a cart: a snapshot of the product's name, price
// and cover image taken at add time, so later product edits do not change an
// in-progress cart.
type CartItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CartID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"cart_id"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Price      int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CoverImage string         `gorm:"size:255" json:"cover_image"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	Total      int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (ci CartItem) MarshalJSON() ([]byte, error) {
	type Alias CartItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(ci),
		Price: float64(ci.Price) / 100,
		Total: float64(ci.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new cart item
func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}
