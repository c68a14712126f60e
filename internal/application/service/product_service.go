package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/repository"
	"github.com/supamart/pos-api/pkg/apperror"
	"github.com/supamart/pos-api/pkg/storage"
	"github.com/supamart/pos-api/pkg/utils"
)

// MinProductPrice is the lowest accepted unit price, in cents. Prices under
// ten currency units are almost always a data-entry slip (a missing digit),
// so they are rejected at creation.
const MinProductPrice int64 = 1000

// ProductService handles the product catalog and its stock levels
type ProductService struct {
	productRepo repository.ProductRepository
	store       *storage.LocalStorage
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, store *storage.LocalStorage) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		store:       store,
	}
}

// CreateProductInput carries a new catalog entry
type CreateProductInput struct {
	Name       string
	Price      float64
	Quantity   int
	Category   string
	CoverImage *multipart.FileHeader
}

// CreateProduct adds a product to the catalog. Names are unique, the SKU is
// generated, and the cover image is stored on local disk.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this name already exists")
	}

	priceCents := amountToCents(input.Price)
	if priceCents < MinProductPrice {
		return nil, apperror.NewBadRequestError("Price must be at least 10.00")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity must not be negative")
	}

	coverImage := ""
	if input.CoverImage != nil {
		path, err := s.store.SaveImage(input.CoverImage, "products")
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		coverImage = path
	}

	product := &entity.Product{
		Name:       input.Name,
		SKU:        s.uniqueSKU(ctx),
		Quantity:   input.Quantity,
		Price:      priceCents,
		Category:   input.Category,
		CoverImage: coverImage,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct loads a single product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the catalog, filtered and paginated
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}

// UpdateProductInput carries catalog edits. Nil pointers mean "leave as is".
type UpdateProductInput struct {
	Name       string
	Price      *float64
	Quantity   *int
	Category   string
	CoverImage *multipart.FileHeader
}

// UpdateProduct applies catalog edits. Carts and sales snapshot product
// fields, so edits here never rewrite in-progress carts or past sales.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != "" && input.Name != product.Name {
		existing, err := s.productRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this name already exists")
		}
		product.Name = input.Name
	}
	if input.Price != nil {
		priceCents := amountToCents(*input.Price)
		if priceCents < MinProductPrice {
			return nil, apperror.NewBadRequestError("Price must be at least 10.00")
		}
		product.Price = priceCents
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity must not be negative")
		}
		product.Quantity = *input.Quantity
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.CoverImage != nil {
		path, err := s.store.SaveImage(input.CoverImage, "products")
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if product.CoverImage != "" {
			_ = s.store.Delete(product.CoverImage)
		}
		product.CoverImage = path
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product. Existing cart lines and sale items
// keep their snapshots.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// uniqueSKU generates a SKU and retries on the rare collision
func (s *ProductService) uniqueSKU(ctx context.Context) string {
	for i := 0; i < 5; i++ {
		sku := utils.GenerateSKU()
		existing, err := s.productRepo.GetBySKU(ctx, sku)
		if err == nil && existing == nil {
			return sku
		}
	}
	return utils.GenerateSKU()
}
