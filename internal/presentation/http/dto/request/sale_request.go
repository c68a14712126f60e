package request

// CheckoutRequest carries a cart-to-sale checkout. AmountPaid is required
// for cash payments and must cover the total; for other methods it defaults
// to the exact total.
type CheckoutRequest struct {
	CartID        string   `json:"cart_id" binding:"required,uuid"`
	PaymentMethod string   `json:"payment_method" binding:"required"`
	AmountPaid    *float64 `json:"amount_paid" binding:"omitempty,gt=0"`
	Customer      string   `json:"customer" binding:"omitempty,max=255"`
}

// ListSalesRequest carries sale history filters. The cashier filter only
// applies to admin viewers.
type ListSalesRequest struct {
	Page      int    `form:"page" binding:"omitempty,gte=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,gte=1,lte=100"`
	CashierID string `form:"cashier_id" binding:"omitempty,uuid"`
}
