package request

// AddCartItemRequest carries an add-to-cart action. Quantity defaults to 1
// when omitted.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=1"`
}

// UpdateCartItemRequest carries an additive quantity adjustment. The value
// is a delta, not an absolute quantity: +1 and -1 come from the till keypad.
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}
