package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

//go:embed seed.json
var seedJSON []byte

type seedFile struct {
	Products   []domain.Product    `json:"products"`
	Categories []string            `json:"categories"`
	Orders     []domain.Order      `json:"orders"`
	Sales      []domain.SalesPoint `json:"sales"`
}

// Catalog defines read access to the immutable reference data: the product
// list, category labels, and the order records behind the dashboard.
type Catalog interface {
	FindByID(id int) (*domain.Product, error)
	Products() []domain.Product
	Categories() []string
	Orders() []domain.Order
	MonthlySales() []domain.SalesPoint
	List(q Query) []domain.Product
}

type catalog struct {
	products   []domain.Product
	byID       map[int]domain.Product
	categories []string
	orders     []domain.Order
	sales      []domain.SalesPoint
}

// Load builds the catalog from the embedded seed data.
func Load() (Catalog, error) {
	return load(seedJSON)
}

func load(data []byte) (Catalog, error) {
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog seed: %w", err)
	}

	validate := validator.New()

	byID := make(map[int]domain.Product, len(seed.Products))
	for _, p := range seed.Products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product %d: %w", p.ID, err)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("invalid product %d: price must not be negative", p.ID)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}

	for _, o := range seed.Orders {
		if err := validate.Struct(o); err != nil {
			return nil, fmt.Errorf("invalid order %d: %w", o.ID, err)
		}
	}
	for _, s := range seed.Sales {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("invalid sales point %q: %w", s.Month, err)
		}
	}

	return &catalog{
		products:   seed.Products,
		byID:       byID,
		categories: seed.Categories,
		orders:     seed.Orders,
		sales:      seed.Sales,
	}, nil
}

// FindByID retrieves a product by its catalog id.
func (c *catalog) FindByID(id int) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// Products returns a copy of the product list in catalog order.
func (c *catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the category labels, with the "All" sentinel first.
func (c *catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Orders returns a copy of the historical order records.
func (c *catalog) Orders() []domain.Order {
	out := make([]domain.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// MonthlySales returns a copy of the monthly sales series.
func (c *catalog) MonthlySales() []domain.SalesPoint {
	out := make([]domain.SalesPoint, len(c.sales))
	copy(out, c.sales)
	return out
}

// List derives the listing for q from the full catalog.
func (c *catalog) List(q Query) []domain.Product {
	return FilterAndSort(c.products, q)
}
