package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// DefaultCustomer is recorded when no customer name is given at checkout.
const DefaultCustomer = "Walk-in customer"

// Sale is the immutable record of a completed checkout. Its item snapshots
// are frozen copies of the cart lines, so later product edits never alter
// sales history. A sale is created exactly once and never updated.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo     string             `gorm:"size:20;uniqueIndex" json:"receipt_no"`
	CashierID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	Customer      string             `gorm:"size:255;default:'Walk-in customer'" json:"customer"`
	Subtotal      int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Tax           int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	TotalAmount   int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	AmountPaid    int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Change        int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Cashier User       `gorm:"foreignKey:CashierID" json:"-"`
	Items   []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Subtotal    float64 `json:"subtotal"`
		Tax         float64 `json:"tax"`
		TotalAmount float64 `json:"total_amount"`
		AmountPaid  float64 `json:"amount_paid"`
		Change      float64 `json:"change"`
	}{
		Alias:       Alias(s),
		Subtotal:    float64(s.Subtotal) / 100,
		Tax:         float64(s.Tax) / 100,
		TotalAmount: float64(s.TotalAmount) / 100,
		AmountPaid:  float64(s.AmountPaid) / 100,
		Change:      float64(s.Change) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Customer == "" {
		s.Customer = DefaultCustomer
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// IsPaymentValid reports whether the amount paid covers the total
func (s *Sale) IsPaymentValid() bool {
	return s.AmountPaid >= s.TotalAmount
}

// SaleItem is a frozen line-item snapshot on a sale. The product reference is
// kept for traceability only; deleting the product does not touch the sale.
type SaleItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID     uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Price      int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity   int       `gorm:"not null" json:"quantity"`
	Total      int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CoverImage string    `gorm:"size:255" json:"cover_image"`
	CreatedAt  time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(si),
		Price: float64(si.Price) / 100,
		Total: float64(si.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
