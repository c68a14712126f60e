package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/enum"
	"github.com/supamart/pos-api/internal/domain/repository"
	"github.com/supamart/pos-api/pkg/apperror"
	"github.com/supamart/pos-api/pkg/pagination"
	"github.com/supamart/pos-api/pkg/utils"
)

// SaleService finalizes carts into immutable sale records
type SaleService struct {
	saleRepo    repository.SaleRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CheckoutInput carries the cashier's checkout request
type CheckoutInput struct {
	CartID        uuid.UUID
	PaymentMethod string
	AmountPaid    *float64
	Customer      string
}

// Receipt is the printable summary returned alongside a completed sale
type Receipt struct {
	SaleID        uuid.UUID          `json:"sale_id"`
	ReceiptNo     string             `json:"receipt_no"`
	Customer      string             `json:"customer"`
	Items         []entity.SaleItem  `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	Tax           float64            `json:"tax"`
	TotalAmount   float64            `json:"total_amount"`
	AmountPaid    float64            `json:"amount_paid"`
	Change        float64            `json:"change"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Date          time.Time          `json:"date"`
}

// CheckoutOutput bundles the persisted sale with its receipt projection
type CheckoutOutput struct {
	Sale    *entity.Sale `json:"sale"`
	Receipt *Receipt     `json:"receipt"`
}

// Checkout converts an open cart into a sale. Stock for every line item is
// decremented atomically up front; any shortfall rejects the whole checkout
// and leaves inventory untouched. The cart is then claimed with a
// conditional open-to-completed update so concurrent checkouts of the same
// cart produce exactly one sale. Failures after the stock decrement restock
// the decremented quantities before returning.
func (s *SaleService) Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error) {
	cart, err := s.cartRepo.GetByID(ctx, input.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}
	if len(cart.Items) == 0 {
		return nil, apperror.ErrCartEmpty
	}
	if !cart.IsOpen() {
		return nil, apperror.ErrCartCompleted
	}

	method := enum.PaymentMethod(input.PaymentMethod)
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Payment method must be one of: cash, card, mobile money, bank transfer")
	}

	amountPaid := cart.TotalAmount
	if input.AmountPaid != nil {
		amountPaid = amountToCents(*input.AmountPaid)
	}
	if method == enum.PaymentMethodCash {
		if input.AmountPaid == nil || amountPaid < cart.TotalAmount {
			return nil, apperror.ErrInsufficientCash
		}
	} else if amountPaid < cart.TotalAmount {
		return nil, apperror.NewBadRequestError("Amount paid must cover the total amount")
	}

	decrements := make(map[uuid.UUID]int, len(cart.Items))
	for _, item := range cart.Items {
		decrements[item.ProductID] += item.Quantity
	}

	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, decrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, apperror.NewInsufficientStockError(s.productNames(cart, failedIDs))
	}

	claimed, err := s.cartRepo.MarkCompleted(ctx, cart.ID)
	if err != nil {
		s.restock(ctx, decrements)
		return nil, err
	}
	if !claimed {
		// A concurrent checkout claimed the cart first and owns the
		// decremented stock; give ours back.
		s.restock(ctx, decrements)
		return nil, apperror.ErrCartCompleted
	}

	change := int64(0)
	if method == enum.PaymentMethodCash {
		change = amountPaid - cart.TotalAmount
	}

	customer := input.Customer
	if customer == "" {
		customer = entity.DefaultCustomer
	}

	// The sale belongs to the cart's owner, not whoever submitted the
	// checkout request: the cart records who rang up the items.
	sale := &entity.Sale{
		CashierID:     cart.CashierID,
		ReceiptNo:     utils.GenerateReceiptNo(),
		Customer:      customer,
		Subtotal:      cart.Subtotal,
		Tax:           cart.Tax,
		TotalAmount:   cart.TotalAmount,
		AmountPaid:    amountPaid,
		Change:        change,
		PaymentMethod: method,
	}
	for _, item := range cart.Items {
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Price:      item.Price,
			CoverImage: item.CoverImage,
			Quantity:   item.Quantity,
			Total:      item.Total,
		})
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		s.restock(ctx, decrements)
		if reopenErr := s.cartRepo.Reopen(ctx, cart.ID); reopenErr != nil {
			return nil, reopenErr
		}
		return nil, err
	}

	// The sale exists and the cart is claimed; a leftover completed row
	// never matches open-cart lookups, so a failed delete is harmless.
	_ = s.cartRepo.Delete(ctx, cart.ID)

	return &CheckoutOutput{
		Sale:    sale,
		Receipt: s.buildReceipt(sale),
	}, nil
}

// GetSale returns a single sale. Cashiers may only read their own sales;
// admins may read any and get the cashier attached.
func (s *SaleService) GetSale(ctx context.Context, saleID, viewerID uuid.UUID, viewerRole enum.UserRole) (*SaleView, error) {
	var sale *entity.Sale
	var err error

	if viewerRole == enum.UserRoleAdmin {
		sale, err = s.saleRepo.GetWithCashier(ctx, saleID)
	} else {
		sale, err = s.saleRepo.GetByID(ctx, saleID)
	}
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if viewerRole != enum.UserRoleAdmin && sale.CashierID != viewerID {
		return nil, apperror.NewForbiddenError("You are not allowed to view this sale")
	}

	return projectSale(sale, viewerRole), nil
}

// ListSales returns the viewer's sale history. Admins see all sales with
// the cashier's name attached and may filter by cashier; cashiers see only
// their own.
func (s *SaleService) ListSales(ctx context.Context, viewerID uuid.UUID, viewerRole enum.UserRole, params *pagination.PaginationParams, cashierFilter *uuid.UUID) ([]SaleView, int64, error) {
	filter := &repository.SaleFilterParams{Pagination: params}

	if viewerRole == enum.UserRoleAdmin {
		filter.CashierID = cashierFilter
		filter.WithCashier = true
	} else {
		filter.CashierID = &viewerID
	}

	sales, total, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	views := make([]SaleView, 0, len(sales))
	for i := range sales {
		views = append(views, *projectSale(&sales[i], viewerRole))
	}
	return views, total, nil
}

// GetReceipt rebuilds the receipt projection for an already completed sale.
// The cashier is always loaded here because the printed receipt names the
// cashier who rang up the sale.
func (s *SaleService) GetReceipt(ctx context.Context, saleID, viewerID uuid.UUID, viewerRole enum.UserRole) (*Receipt, *entity.Sale, error) {
	sale, err := s.saleRepo.GetWithCashier(ctx, saleID)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, apperror.NewNotFoundError("Sale")
	}
	if viewerRole != enum.UserRoleAdmin && sale.CashierID != viewerID {
		return nil, nil, apperror.NewForbiddenError("You are not allowed to view this sale")
	}

	return s.buildReceipt(sale), sale, nil
}

func (s *SaleService) buildReceipt(sale *entity.Sale) *Receipt {
	return &Receipt{
		SaleID:        sale.ID,
		ReceiptNo:     sale.ReceiptNo,
		Customer:      sale.Customer,
		Items:         sale.Items,
		Subtotal:      centsToAmount(sale.Subtotal),
		Tax:           centsToAmount(sale.Tax),
		TotalAmount:   centsToAmount(sale.TotalAmount),
		AmountPaid:    centsToAmount(sale.AmountPaid),
		Change:        centsToAmount(sale.Change),
		PaymentMethod: sale.PaymentMethod,
		Date:          sale.CreatedAt,
	}
}

// restock gives back quantities decremented for a checkout that did not
// complete. Best effort: the checkout error it compensates for is the one
// worth surfacing.
func (s *SaleService) restock(ctx context.Context, decrements map[uuid.UUID]int) {
	_ = s.productRepo.AtomicIncrementBatch(ctx, decrements)
}

func (s *SaleService) productNames(cart *entity.Cart, ids []uuid.UUID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if item := cart.FindItem(id); item != nil {
			names = append(names, item.Name)
		}
	}
	return names
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
