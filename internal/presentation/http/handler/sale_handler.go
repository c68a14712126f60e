package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/application/service"
	"github.com/supamart/pos-api/internal/presentation/http/dto/request"
	"github.com/supamart/pos-api/internal/presentation/http/dto/response"
	"github.com/supamart/pos-api/pkg/pagination"
)

// SaleHandler handles checkout and sale history routes
type SaleHandler struct {
	saleService    *service.SaleService
	printerService *service.PrinterService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, printerService *service.PrinterService) *SaleHandler {
	return &SaleHandler{
		saleService:    saleService,
		printerService: printerService,
	}
}

// Checkout handles POST /api/v1/sales
func (h *SaleHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cartID, err := uuid.Parse(req.CartID)
	if err != nil {
		response.BadRequest(c, "Invalid cart ID")
		return
	}

	out, err := h.saleService.Checkout(c.Request.Context(), &service.CheckoutInput{
		CartID:        cartID,
		PaymentMethod: req.PaymentMethod,
		AmountPaid:    req.AmountPaid,
		Customer:      req.Customer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed", out)
}

// GetSale handles GET /api/v1/sales/:saleId
func (h *SaleHandler) GetSale(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "saleId")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), saleID, getUserID(c), getUserRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "", sale)
}

// ListSales handles GET /api/v1/sales
func (h *SaleHandler) ListSales(c *gin.Context) {
	var req request.ListSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	var cashierFilter *uuid.UUID
	if req.CashierID != "" {
		id, err := uuid.Parse(req.CashierID)
		if err != nil {
			response.BadRequest(c, "Invalid cashier ID")
			return
		}
		cashierFilter = &id
	}

	sales, total, err := h.saleService.ListSales(c.Request.Context(), getUserID(c), getUserRole(c), params, cashierFilter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "", sales, pagination.NewPagination(params.Page, params.PerPage, total))
}

// PrintReceipt handles POST /api/v1/sales/:saleId/print
func (h *SaleHandler) PrintReceipt(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "saleId")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.printerService.PrintReceipt(c.Request.Context(), saleID, getUserID(c), getUserRole(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}

// PrinterStatus handles GET /api/v1/sales/printer/status
func (h *SaleHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "", gin.H{"connected": h.printerService.Status()})
}
