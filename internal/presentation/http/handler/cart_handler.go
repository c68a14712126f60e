package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/application/service"
	"github.com/supamart/pos-api/internal/presentation/http/dto/request"
	"github.com/supamart/pos-api/internal/presentation/http/dto/response"
)

// CartHandler handles the cashier's basket routes
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItem handles POST /api/v1/cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), getUserID(c), productID, quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), getUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if cart == nil {
		response.OK(c, "Cart is empty", gin.H{"items": []interface{}{}})
		return
	}

	response.OK(c, "", cart)
}

// UpdateItem handles PATCH /api/v1/cart/:cartId/item/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cartId")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Quantity delta is required")
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(c.Request.Context(), cartID, productID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", cart)
}

// RemoveItem handles DELETE /api/v1/cart/:cartId/item/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cartId")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), cartID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", cart)
}

// ClearCart handles DELETE /api/v1/cart/:cartId/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cartId")
	if !ok {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	cart, err := h.cartService.Clear(c.Request.Context(), cartID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared", cart)
}
