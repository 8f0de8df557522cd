package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/repository"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// ProductCache is the read-through cache consumed by the product service.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// ProductService coordinates the catalog. Plain CRUD; no workflow.
type ProductService struct {
	products   repository.ProductRepository
	cache      ProductCache
	dispatcher events.Dispatcher
}

// ProductDependencies bundles collaborators for the product service.
type ProductDependencies struct {
	ProductRepo repository.ProductRepository
	Cache       ProductCache
	Dispatcher  events.Dispatcher
}

// ProductCreateInput describes catalog entry payload.
type ProductCreateInput struct {
	Name          string
	Description   string
	Price         float64
	SKU           string
	Category      string
	StockQuantity int
}

// ProductUpdateInput describes a partial update.
type ProductUpdateInput struct {
	Name          *string
	Description   *string
	Price         *float64
	SKU           *string
	Category      *string
	StockQuantity *int
	IsActive      *bool
}

// NewProductService constructs the service.
func NewProductService(deps ProductDependencies) *ProductService {
	return &ProductService{
		products:   deps.ProductRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// Create adds a catalog entry, guarding SKU uniqueness.
func (s *ProductService) Create(ctx context.Context, input ProductCreateInput) (*domain.Product, error) {
	product, err := domain.NewProduct(input.Name, input.Description, input.Price, input.SKU, input.Category, input.StockQuantity)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	existing, err := s.products.GetBySKU(ctx, product.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict(fmt.Sprintf("Product with SKU %s already exists", product.SKU))
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.cacheSet(ctx, product)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventProductCreated,
		EntityID: product.ID,
		Payload:  events.ProductPayload{SKU: product.SKU},
	})
	return product, nil
}

// GetByID fetches a product, consulting the cache first.
func (s *ProductService) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, productID); err == nil && cached != nil {
			return cached, nil
		}
	}

	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, product)
	return product, nil
}

// List returns a page of catalog entries.
func (s *ProductService) List(ctx context.Context, page Page) ([]domain.Product, error) {
	limit, offset := page.Normalize()
	products, err := s.products.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Update applies a partial update, guarding SKU uniqueness.
func (s *ProductService) Update(ctx context.Context, productID string, patch ProductUpdateInput) (*domain.Product, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err := product.SetName(*patch.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
	}
	if patch.Description != nil {
		if err := product.SetDescription(*patch.Description); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
	}
	if patch.Price != nil {
		if err := product.SetPrice(*patch.Price); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
	}
	if patch.SKU != nil {
		if err := product.SetSKU(*patch.SKU); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		existing, err := s.products.GetBySKU(ctx, product.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != productID {
			return nil, apperrors.NewConflict(fmt.Sprintf("SKU %s is already taken", product.SKU))
		}
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.StockQuantity != nil {
		if err := product.UpdateStock(*patch.StockQuantity); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.cacheSet(ctx, product)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventProductUpdated,
		EntityID: product.ID,
		Payload:  events.ProductPayload{SKU: product.SKU},
	})
	return product, nil
}

// Delete removes a catalog entry and evicts its cache entry.
func (s *ProductService) Delete(ctx context.Context, productID string) error {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, productID)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventProductDeleted,
		EntityID: productID,
		Payload:  events.ProductPayload{SKU: product.SKU},
	})
	return nil
}

// UpdateStock replaces the stock quantity.
func (s *ProductService) UpdateStock(ctx context.Context, productID string, quantity int) (*domain.Product, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := product.UpdateStock(quantity); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.cacheSet(ctx, product)
	return product, nil
}

// GetBySKU fetches a product by its SKU.
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	product, err := s.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Product with SKU %s not found", sku))
	}
	return product, nil
}

// GetByCategory returns a page of products in the category.
func (s *ProductService) GetByCategory(ctx context.Context, category string, page Page) ([]domain.Product, error) {
	limit, offset := page.Normalize()
	products, err := s.products.ListByCategory(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *ProductService) getProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Product with ID %s not found", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) cacheSet(ctx context.Context, product *domain.Product) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, product)
}

func (s *ProductService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
