package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/service"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// ProductsHandler exposes catalog endpoints.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: productService}
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product, err := h.products.Create(c.UserContext(), service.ProductCreateInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		SKU:           req.SKU,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK("Product created successfully", dto.NewProductResponse(product)))
}

// Get handles GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Product retrieved successfully", dto.NewProductResponse(product)))
}

// List handles GET /products, optionally scoped to a category.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)

	if category := c.Query("category"); category != "" {
		items, err := h.products.GetByCategory(c.UserContext(), category, page)
		if err != nil {
			return err
		}
		clamped := page.Clamped()
		return c.JSON(dto.Paginated("Products retrieved successfully",
			dto.NewProductResponses(items), clamped.Number, clamped.Size, len(items)))
	}

	items, err := h.products.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	clamped := page.Clamped()
	return c.JSON(dto.Paginated("Products retrieved successfully",
		dto.NewProductResponses(items), clamped.Number, clamped.Size, len(items)))
}

// Update handles PUT /products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product, err := h.products.Update(c.UserContext(), c.Params("id"), service.ProductUpdateInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		SKU:           req.SKU,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Product updated successfully", dto.NewProductResponse(product)))
}

// Delete handles DELETE /products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK("Product deleted successfully", nil))
}

// UpdateStock handles PATCH /products/:id/stock.
func (h *ProductsHandler) UpdateStock(c *fiber.Ctx) error {
	var req dto.UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product, err := h.products.UpdateStock(c.UserContext(), c.Params("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Product stock updated successfully", dto.NewProductResponse(product)))
}

// GetBySKU handles GET /products/sku/:sku.
func (h *ProductsHandler) GetBySKU(c *fiber.Ctx) error {
	product, err := h.products.GetBySKU(c.UserContext(), c.Params("sku"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Product retrieved successfully", dto.NewProductResponse(product)))
}
