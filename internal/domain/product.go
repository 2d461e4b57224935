package domain

import "github.com/shopspring/decimal"

// Product represents a product in the reference catalog. The catalog is
// immutable at runtime; stock and sales figures are display data only.
type Product struct {
	ID          int             `json:"id" validate:"required,gt=0"`
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	Image       string          `json:"image" validate:"omitempty,url"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Rating      float64         `json:"rating" validate:"gte=0,lte=5"`
	Sales       int             `json:"sales" validate:"gte=0"`
	Description string          `json:"description"`
}

// CartEntry is one ledger line: a product reference and its quantity.
// Quantity never drops below 1; removing a line is a separate operation.
type CartEntry struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Order is a historical order record consumed read-only by the dashboard.
type Order struct {
	ID       int             `json:"id" validate:"required,gt=0"`
	Date     string          `json:"date" validate:"required"`
	Customer string          `json:"customer" validate:"required"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status" validate:"oneof=Pending Processing Shipped Delivered"`
}

// SalesPoint is one month of aggregate sales for the dashboard chart.
type SalesPoint struct {
	Month string `json:"month" validate:"required"`
	Sales int    `json:"sales" validate:"gte=0"`
}
