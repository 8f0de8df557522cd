package domain

import (
	"strings"
	"time"
)

// Product is the catalog aggregate. The catalog has no workflow; products are
// plain CRUD entities with stock bookkeeping.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         float64
	SKU           string
	Category      string
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProduct builds an active product, enforcing field invariants.
func NewProduct(name, description string, price float64, sku, category string, stock int) (*Product, error) {
	product := &Product{IsActive: true}
	if err := product.SetName(name); err != nil {
		return nil, err
	}
	if err := product.SetDescription(description); err != nil {
		return nil, err
	}
	if err := product.SetPrice(price); err != nil {
		return nil, err
	}
	if err := product.SetSKU(sku); err != nil {
		return nil, err
	}
	product.Category = strings.TrimSpace(category)
	if err := product.UpdateStock(stock); err != nil {
		return nil, err
	}
	return product, nil
}

// SetName validates and applies the product name.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrProductNameEmpty
	}
	p.Name = name
	return nil
}

// SetDescription validates and applies the description.
func (p *Product) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrProductDescEmpty
	}
	p.Description = description
	return nil
}

// SetPrice validates and applies the price.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return ErrPriceNegative
	}
	p.Price = price
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// SetSKU validates the SKU is alphanumeric and stores it upper-cased.
func (p *Product) SetSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" || !isAlnum(sku) {
		return ErrSKUNotAlnum
	}
	p.SKU = strings.ToUpper(sku)
	return nil
}

// UpdateStock replaces the stock quantity.
func (p *Product) UpdateStock(quantity int) error {
	if quantity < 0 {
		return ErrStockNegative
	}
	p.StockQuantity = quantity
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// AddStock increases the stock quantity.
func (p *Product) AddStock(quantity int) error {
	if quantity < 0 {
		return ErrStockNegative
	}
	p.StockQuantity += quantity
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveStock decreases the stock quantity, failing when not enough remains.
func (p *Product) RemoveStock(quantity int) error {
	if quantity < 0 {
		return ErrStockNegative
	}
	if p.StockQuantity < quantity {
		return ErrInsufficientStock
	}
	p.StockQuantity -= quantity
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// IsAvailable reports whether the product can be purchased.
func (p *Product) IsAvailable() bool {
	return p.IsActive && p.StockQuantity > 0
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
