package dto

import (
	"time"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// CreateProductRequest payload.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
}

// UpdateProductRequest payload; absent fields are left untouched.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	SKU           *string  `json:"sku"`
	Category      *string  `json:"category"`
	StockQuantity *int     `json:"stock_quantity"`
	IsActive      *bool    `json:"is_active"`
}

// UpdateStockRequest payload.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// ProductResponse shape for catalog objects.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewProductResponse maps the domain entity.
func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		SKU:           product.SKU,
		Category:      product.Category,
		StockQuantity: product.StockQuantity,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// NewProductResponses maps a slice of domain entities.
func NewProductResponses(products []domain.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, NewProductResponse(&products[i]))
	}
	return items
}
