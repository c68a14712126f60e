package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/repository"
	"github.com/supamart/pos-api/pkg/pagination"
)

// Function-field fakes so each test stubs only the calls it cares about.

type fakeCartRepo struct {
	createFn          func(ctx context.Context, cart *entity.Cart) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Cart, error)
	getOpenByCashier  func(ctx context.Context, cashierID uuid.UUID) (*entity.Cart, error)
	saveFn            func(ctx context.Context, cart *entity.Cart) error
	deleteItemFn      func(ctx context.Context, cartID, productID uuid.UUID) error
	clearItemsFn      func(ctx context.Context, cartID uuid.UUID) error
	markCompletedFn   func(ctx context.Context, id uuid.UUID) (bool, error)
	reopenFn          func(ctx context.Context, id uuid.UUID) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
	reopenCalls       int
	deleteCalls       int
	markCompletedArgs []uuid.UUID
}

func (f *fakeCartRepo) Create(ctx context.Context, cart *entity.Cart) error {
	if f.createFn != nil {
		return f.createFn(ctx, cart)
	}
	return nil
}

func (f *fakeCartRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeCartRepo) GetOpenByCashier(ctx context.Context, cashierID uuid.UUID) (*entity.Cart, error) {
	if f.getOpenByCashier != nil {
		return f.getOpenByCashier(ctx, cashierID)
	}
	return nil, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, cart)
	}
	return nil
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error {
	if f.deleteItemFn != nil {
		return f.deleteItemFn(ctx, cartID, productID)
	}
	return nil
}

func (f *fakeCartRepo) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if f.clearItemsFn != nil {
		return f.clearItemsFn(ctx, cartID)
	}
	return nil
}

func (f *fakeCartRepo) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	f.markCompletedArgs = append(f.markCompletedArgs, id)
	if f.markCompletedFn != nil {
		return f.markCompletedFn(ctx, id)
	}
	return true, nil
}

func (f *fakeCartRepo) Reopen(ctx context.Context, id uuid.UUID) error {
	f.reopenCalls++
	if f.reopenFn != nil {
		return f.reopenFn(ctx, id)
	}
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleteCalls++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

var _ repository.CartRepository = (*fakeCartRepo)(nil)

type fakeProductRepo struct {
	createFn         func(ctx context.Context, product *entity.Product) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	getByIDsFn       func(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	getByNameFn      func(ctx context.Context, name string) (*entity.Product, error)
	getBySKUFn       func(ctx context.Context, sku string) (*entity.Product, error)
	updateFn         func(ctx context.Context, product *entity.Product) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
	listFn           func(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error)
	decrementBatchFn func(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error)
	incrementBatchFn func(ctx context.Context, increments map[uuid.UUID]int) error
	incrementCalls   []map[uuid.UUID]int
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if f.createFn != nil {
		return f.createFn(ctx, product)
	}
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if f.getByIDsFn != nil {
		return f.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	if f.getByNameFn != nil {
		return f.getByNameFn(ctx, name)
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	if f.getBySKUFn != nil {
		return f.getBySKUFn(ctx, sku)
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, product)
	}
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeProductRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	if f.decrementBatchFn != nil {
		return f.decrementBatchFn(ctx, decrements)
	}
	return nil, nil
}

func (f *fakeProductRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	f.incrementCalls = append(f.incrementCalls, increments)
	if f.incrementBatchFn != nil {
		return f.incrementBatchFn(ctx, increments)
	}
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type fakeSaleRepo struct {
	createFn        func(ctx context.Context, sale *entity.Sale) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	getWithCashier  func(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	listFn          func(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error)
	createdSales    []*entity.Sale
	lastListFilters *repository.SaleFilterParams
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	f.createdSales = append(f.createdSales, sale)
	if f.createFn != nil {
		return f.createFn(ctx, sale)
	}
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeSaleRepo) GetWithCashier(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	if f.getWithCashier != nil {
		return f.getWithCashier(ctx, id)
	}
	return nil, nil
}

func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	f.lastListFilters = params
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

type fakeUserRepo struct {
	createFn     func(ctx context.Context, user *entity.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	getByPhoneFn func(ctx context.Context, phone string) (*entity.User, error)
	updateFn     func(ctx context.Context, user *entity.User) error
	deactivateFn func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	listFn       func(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	if f.getByPhoneFn != nil {
		return f.getByPhoneFn(ctx, phone)
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
