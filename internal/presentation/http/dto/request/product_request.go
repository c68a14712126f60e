package request

// CreateProductRequest carries a new catalog entry. Bound from multipart
// form data since the cover image arrives in the same request.
type CreateProductRequest struct {
	Name     string  `form:"name" binding:"required,min=2,max=255"`
	Price    float64 `form:"price" binding:"required,gt=0"`
	Quantity int     `form:"quantity" binding:"omitempty,gte=0"`
	Category string  `form:"category" binding:"required,min=2,max=255"`
}

// UpdateProductRequest carries catalog edits
type UpdateProductRequest struct {
	Name     string   `form:"name" binding:"omitempty,min=2,max=255"`
	Price    *float64 `form:"price" binding:"omitempty,gt=0"`
	Quantity *int     `form:"quantity" binding:"omitempty,gte=0"`
	Category string   `form:"category" binding:"omitempty,min=2,max=255"`
}

// ListProductsRequest carries catalog listing filters
type ListProductsRequest struct {
	Page      int    `form:"page" binding:"omitempty,gte=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,gte=1,lte=100"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=name price quantity created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
