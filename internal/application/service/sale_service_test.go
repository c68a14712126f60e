package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/enum"
	"github.com/supamart/pos-api/internal/domain/repository"
	"github.com/supamart/pos-api/pkg/apperror"
	"github.com/supamart/pos-api/pkg/pagination"
)

func floatPtr(f float64) *float64 { return &f }

// checkoutCart builds the worked example: 2x Bread at 1000.00 each,
// subtotal 2000.00, 7.5% tax 150.00, total 2150.00.
func checkoutCart(cashierID, productID uuid.UUID) *entity.Cart {
	return openCart(cashierID, entity.CartItem{
		ProductID: productID, Name: "Bread", Price: 100000, Quantity: 2, Total: 200000,
	})
}

func cartRepoFor(cart *entity.Cart) *fakeCartRepo {
	return &fakeCartRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
			if cart != nil && id == cart.ID {
				return cart, nil
			}
			return nil, nil
		},
	}
}

func TestCheckout(t *testing.T) {
	cashierID := uuid.New()
	productID := uuid.New()

	t.Run("cash checkout produces sale with change", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		cartRepo := cartRepoFor(cart)
		productRepo := &fakeProductRepo{}
		saleRepo := &fakeSaleRepo{}
		svc := NewSaleService(saleRepo, cartRepo, productRepo)

		out, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(2200.00),
		})

		require.NoError(t, err)
		require.NotNil(t, out.Sale)
		assert.Equal(t, int64(200000), out.Sale.Subtotal)
		assert.Equal(t, int64(15000), out.Sale.Tax)
		assert.Equal(t, int64(215000), out.Sale.TotalAmount)
		assert.Equal(t, int64(220000), out.Sale.AmountPaid)
		assert.Equal(t, int64(5000), out.Sale.Change)
		require.Len(t, out.Sale.Items, 1)
		assert.Equal(t, "Bread", out.Sale.Items[0].Name)

		require.NotNil(t, out.Receipt)
		assert.InDelta(t, 2000.00, out.Receipt.Subtotal, 0.001)
		assert.InDelta(t, 150.00, out.Receipt.Tax, 0.001)
		assert.InDelta(t, 2150.00, out.Receipt.TotalAmount, 0.001)
		assert.InDelta(t, 50.00, out.Receipt.Change, 0.001)

		assert.Equal(t, 1, cartRepo.deleteCalls)
		assert.Empty(t, productRepo.incrementCalls)
	})

	t.Run("sale is attributed to the cart owner", func(t *testing.T) {
		ownerID := uuid.New()
		cart := checkoutCart(ownerID, productID)
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), &fakeProductRepo{})

		out, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(3000),
		})

		require.NoError(t, err)
		// Whoever submits the request, the sale records the cashier who
		// rang up the cart.
		assert.Equal(t, ownerID, out.Sale.CashierID)
		assert.Regexp(t, `^RCP-[0-9A-F]{8}$`, out.Sale.ReceiptNo)
		assert.Equal(t, out.Sale.ReceiptNo, out.Receipt.ReceiptNo)
	})

	t.Run("non-cash checkout defaults amount paid to the total", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), &fakeProductRepo{})

		out, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "card",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(215000), out.Sale.AmountPaid)
		assert.Zero(t, out.Sale.Change)
	})

	t.Run("defaults customer name", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), &fakeProductRepo{})

		out, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "card",
		})

		require.NoError(t, err)
		assert.Equal(t, "Walk-in customer", out.Sale.Customer)
	})

	t.Run("rejects missing cart", func(t *testing.T) {
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(nil), &fakeProductRepo{})

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        uuid.New(),
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(100),
		})

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		cart := openCart(cashierID)
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), &fakeProductRepo{})

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(100),
		})

		assert.ErrorIs(t, err, apperror.ErrCartEmpty)
	})

	t.Run("rejects completed cart", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		cart.Status = enum.CartStatusCompleted
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), &fakeProductRepo{})

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(3000),
		})

		assert.ErrorIs(t, err, apperror.ErrCartCompleted)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), &fakeProductRepo{})

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cheque",
		})

		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("rejects cash without amount paid", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), &fakeProductRepo{})

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, apperror.ErrInsufficientCash)
	})

	t.Run("rejects cash below the total", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		productRepo := &fakeProductRepo{}
		svc := NewSaleService(&fakeSaleRepo{}, cartRepoFor(cart), productRepo)

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(2000.00),
		})

		assert.ErrorIs(t, err, apperror.ErrInsufficientCash)
		// Validation precedes the stock decrement, so nothing to restock.
		assert.Empty(t, productRepo.incrementCalls)
	})

	t.Run("insufficient stock rejects whole checkout and names the products", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		productRepo := &fakeProductRepo{
			decrementBatchFn: func(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
				return []uuid.UUID{productID}, nil
			},
		}
		cartRepo := cartRepoFor(cart)
		svc := NewSaleService(&fakeSaleRepo{}, cartRepo, productRepo)

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(3000),
		})

		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Message, "Bread")
		// Decrement rolled back inside the repository; no claim attempted.
		assert.Empty(t, cartRepo.markCompletedArgs)
	})

	t.Run("losing the claim race restocks and reports completed", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		cartRepo := cartRepoFor(cart)
		cartRepo.markCompletedFn = func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		}
		productRepo := &fakeProductRepo{}
		saleRepo := &fakeSaleRepo{}
		svc := NewSaleService(saleRepo, cartRepo, productRepo)

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(3000),
		})

		assert.ErrorIs(t, err, apperror.ErrCartCompleted)
		require.Len(t, productRepo.incrementCalls, 1)
		assert.Equal(t, map[uuid.UUID]int{productID: 2}, productRepo.incrementCalls[0])
		assert.Empty(t, saleRepo.createdSales)
	})

	t.Run("sale write failure restocks and reopens the cart", func(t *testing.T) {
		cart := checkoutCart(cashierID, productID)
		cartRepo := cartRepoFor(cart)
		productRepo := &fakeProductRepo{}
		saleRepo := &fakeSaleRepo{
			createFn: func(ctx context.Context, sale *entity.Sale) error {
				return errors.New("connection reset")
			},
		}
		svc := NewSaleService(saleRepo, cartRepo, productRepo)

		_, err := svc.Checkout(context.Background(), &CheckoutInput{
			CartID:        cart.ID,
			PaymentMethod: "cash",
			AmountPaid:    floatPtr(3000),
		})

		require.Error(t, err)
		assert.Len(t, productRepo.incrementCalls, 1)
		assert.Equal(t, 1, cartRepo.reopenCalls)
		assert.Zero(t, cartRepo.deleteCalls)
	})
}

func TestGetSale(t *testing.T) {
	cashierID := uuid.New()
	saleID := uuid.New()
	sale := &entity.Sale{
		ID:          saleID,
		CashierID:   cashierID,
		Subtotal:    200000,
		Tax:         15000,
		TotalAmount: 215000,
		AmountPaid:  215000,
		Cashier:     entity.User{ID: cashierID, Name: "Ada"},
	}

	saleRepo := func() *fakeSaleRepo {
		return &fakeSaleRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
				if id == saleID {
					return sale, nil
				}
				return nil, nil
			},
			getWithCashier: func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
				if id == saleID {
					return sale, nil
				}
				return nil, nil
			},
		}
	}

	t.Run("cashier reads own sale without cashier identity", func(t *testing.T) {
		svc := NewSaleService(saleRepo(), &fakeCartRepo{}, &fakeProductRepo{})

		view, err := svc.GetSale(context.Background(), saleID, cashierID, enum.UserRoleCashier)

		require.NoError(t, err)
		assert.InDelta(t, 2150.00, view.TotalAmount, 0.001)
		assert.Nil(t, view.CashierID)
		assert.Empty(t, view.Cashier)
	})

	t.Run("admin sees cashier identity", func(t *testing.T) {
		svc := NewSaleService(saleRepo(), &fakeCartRepo{}, &fakeProductRepo{})

		view, err := svc.GetSale(context.Background(), saleID, uuid.New(), enum.UserRoleAdmin)

		require.NoError(t, err)
		require.NotNil(t, view.CashierID)
		assert.Equal(t, cashierID, *view.CashierID)
		assert.Equal(t, "Ada", view.Cashier)
	})

	t.Run("cashier cannot read another cashier's sale", func(t *testing.T) {
		svc := NewSaleService(saleRepo(), &fakeCartRepo{}, &fakeProductRepo{})

		_, err := svc.GetSale(context.Background(), saleID, uuid.New(), enum.UserRoleCashier)

		require.Error(t, err)
		assert.Equal(t, 403, apperror.GetAppError(err).Code)
	})

	t.Run("missing sale returns not found", func(t *testing.T) {
		svc := NewSaleService(saleRepo(), &fakeCartRepo{}, &fakeProductRepo{})

		_, err := svc.GetSale(context.Background(), uuid.New(), cashierID, enum.UserRoleCashier)

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestListSales(t *testing.T) {
	cashierID := uuid.New()
	params := &pagination.PaginationParams{Page: 1, PerPage: 15}

	t.Run("cashier listing is scoped to own sales", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{}
		svc := NewSaleService(saleRepo, &fakeCartRepo{}, &fakeProductRepo{})

		_, _, err := svc.ListSales(context.Background(), cashierID, enum.UserRoleCashier, params, nil)

		require.NoError(t, err)
		require.NotNil(t, saleRepo.lastListFilters.CashierID)
		assert.Equal(t, cashierID, *saleRepo.lastListFilters.CashierID)
		assert.False(t, saleRepo.lastListFilters.WithCashier)
	})

	t.Run("admin listing is unscoped with cashier preloaded", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{
			listFn: func(ctx context.Context, p *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
				return []entity.Sale{
					{ID: uuid.New(), CashierID: cashierID, Cashier: entity.User{Name: "Ada"}},
				}, 1, nil
			},
		}
		svc := NewSaleService(saleRepo, &fakeCartRepo{}, &fakeProductRepo{})

		views, total, err := svc.ListSales(context.Background(), uuid.New(), enum.UserRoleAdmin, params, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Nil(t, saleRepo.lastListFilters.CashierID)
		assert.True(t, saleRepo.lastListFilters.WithCashier)
		require.Len(t, views, 1)
		assert.Equal(t, "Ada", views[0].Cashier)
	})

	t.Run("admin can filter by cashier", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{}
		svc := NewSaleService(saleRepo, &fakeCartRepo{}, &fakeProductRepo{})

		_, _, err := svc.ListSales(context.Background(), uuid.New(), enum.UserRoleAdmin, params, &cashierID)

		require.NoError(t, err)
		require.NotNil(t, saleRepo.lastListFilters.CashierID)
		assert.Equal(t, cashierID, *saleRepo.lastListFilters.CashierID)
	})
}
