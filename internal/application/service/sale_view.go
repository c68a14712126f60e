package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/enum"
)

// SaleView is the role-dependent read model of a sale. Cashiers get the
// financial fields only; admins additionally get the cashier's identity.
type SaleView struct {
	ID            uuid.UUID          `json:"id"`
	Customer      string             `json:"customer"`
	Items         []entity.SaleItem  `json:"items,omitempty"`
	Subtotal      float64            `json:"subtotal"`
	Tax           float64            `json:"tax"`
	TotalAmount   float64            `json:"total_amount"`
	AmountPaid    float64            `json:"amount_paid"`
	Change        float64            `json:"change"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	CashierID     *uuid.UUID         `json:"cashier_id,omitempty"`
	Cashier       string             `json:"cashier,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// projectSale shapes a sale for the given viewer role. This is the single
// place sale visibility is decided; handlers never filter fields themselves.
func projectSale(sale *entity.Sale, viewerRole enum.UserRole) *SaleView {
	view := &SaleView{
		ID:            sale.ID,
		Customer:      sale.Customer,
		Items:         sale.Items,
		Subtotal:      centsToAmount(sale.Subtotal),
		Tax:           centsToAmount(sale.Tax),
		TotalAmount:   centsToAmount(sale.TotalAmount),
		AmountPaid:    centsToAmount(sale.AmountPaid),
		Change:        centsToAmount(sale.Change),
		PaymentMethod: sale.PaymentMethod,
		CreatedAt:     sale.CreatedAt,
	}

	if viewerRole == enum.UserRoleAdmin {
		cashierID := sale.CashierID
		view.CashierID = &cashierID
		view.Cashier = sale.Cashier.Name
	}

	return view
}
