package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board-service/internal/events"
)

type productServiceFixture struct {
	products *fakeProductRepo
	cache    *fakeProductCache
	service  *ProductService
}

func newProductServiceFixture(t *testing.T) *productServiceFixture {
	t.Helper()
	products := newFakeProductRepo()
	cache := newFakeProductCache()
	svc := NewProductService(ProductDependencies{
		ProductRepo: products,
		Cache:       cache,
		Dispatcher:  events.NewInMemoryDispatcher(),
	})
	return &productServiceFixture{products: products, cache: cache, service: svc}
}

func validProductInput() ProductCreateInput {
	return ProductCreateInput{
		Name:          "Mechanical Keyboard",
		Description:   "Tenkeyless board with hot swap switches.",
		Price:         129.90,
		SKU:           "kb0100",
		Category:      "peripherals",
		StockQuantity: 25,
	}
}

func TestProductCreateUppercasesSKU(t *testing.T) {
	f := newProductServiceFixture(t)

	product, err := f.service.Create(context.Background(), validProductInput())
	require.NoError(t, err)
	assert.Equal(t, "KB0100", product.SKU)
	assert.True(t, product.IsActive)
}

func TestProductCreateRejectsDuplicateSKU(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)

	dup := validProductInput()
	dup.Name = "Another Keyboard"
	_, err = f.service.Create(ctx, dup)
	domainErr := assertDomainError(t, err, "CONFLICT", http.StatusConflict)
	assert.Equal(t, "Product with SKU KB0100 already exists", domainErr.Message)
}

func TestProductCreateValidation(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	input := validProductInput()
	input.Price = -1
	_, err := f.service.Create(ctx, input)
	domainErr := assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
	assert.Equal(t, "Price cannot be negative", domainErr.Message)

	input = validProductInput()
	input.SKU = "kb 0100!"
	_, err = f.service.Create(ctx, input)
	assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
}

func TestProductGetByIDUsesCache(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	product, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)

	fetched, err := f.service.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.SKU, fetched.SKU)
	assert.Positive(t, f.cache.hits)
}

func TestProductGetByIDFallsBackToRepo(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	product, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)
	require.NoError(t, f.cache.Delete(ctx, product.ID))

	fetched, err := f.service.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, fetched.ID)

	cached, err := f.cache.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.NotNil(t, cached)
}

func TestProductUpdateGuardsSKU(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)

	other := validProductInput()
	other.SKU = "ms0200"
	second, err := f.service.Create(ctx, other)
	require.NoError(t, err)

	taken := "KB0100"
	_, err = f.service.Update(ctx, second.ID, ProductUpdateInput{SKU: &taken})
	domainErr := assertDomainError(t, err, "CONFLICT", http.StatusConflict)
	assert.Equal(t, "SKU KB0100 is already taken", domainErr.Message)

	fresh := "ms0300"
	updated, err := f.service.Update(ctx, second.ID, ProductUpdateInput{SKU: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "MS0300", updated.SKU)
}

func TestProductDeleteEvictsCache(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	product, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, product.ID))

	cached, err := f.cache.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, cached)

	_, err = f.service.GetByID(ctx, product.ID)
	assertDomainError(t, err, "NOT_FOUND", http.StatusNotFound)
}

func TestProductUpdateStock(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	product, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)

	updated, err := f.service.UpdateStock(ctx, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.StockQuantity)
	assert.False(t, updated.IsAvailable())

	_, err = f.service.UpdateStock(ctx, product.ID, -5)
	domainErr := assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
	assert.Equal(t, "Stock quantity cannot be negative", domainErr.Message)
}

func TestProductGetBySKU(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)

	product, err := f.service.GetBySKU(ctx, "KB0100")
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", product.Name)

	_, err = f.service.GetBySKU(ctx, "NOPE1")
	domainErr := assertDomainError(t, err, "NOT_FOUND", http.StatusNotFound)
	assert.Equal(t, "Product with SKU NOPE1 not found", domainErr.Message)
}

func TestProductGetByCategory(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, validProductInput())
	require.NoError(t, err)
	other := validProductInput()
	other.SKU = "ch0400"
	other.Category = "furniture"
	_, err = f.service.Create(ctx, other)
	require.NoError(t, err)

	items, err := f.service.GetByCategory(ctx, "peripherals", Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = f.service.GetByCategory(ctx, "missing", Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
