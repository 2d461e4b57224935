package dashboard

import (
	"sort"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// Summary is the headline stats row derived from the static order and
// product data.
type Summary struct {
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	AverageOrderValue decimal.Decimal
	TotalProducts     int
}

// Summarize computes the stat cards. The average order value is zero when
// there are no orders.
func Summarize(orders []domain.Order, products []domain.Product) Summary {
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}

	avg := decimal.Zero
	if len(orders) > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(len(orders))))
	}

	return Summary{
		TotalRevenue:      revenue,
		TotalOrders:       len(orders),
		AverageOrderValue: avg,
		TotalProducts:     len(products),
	}
}

// TopSelling returns up to n products ordered by units sold, best first.
// Ties keep catalog order.
func TopSelling(products []domain.Product, n int) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sales > out[j].Sales
	})
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// LowStock lists products whose stock is below threshold, in catalog order.
func LowStock(products []domain.Product, threshold int) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out
}

// RecentOrders returns the first n order records.
func RecentOrders(orders []domain.Order, n int) []domain.Order {
	if n < 0 {
		n = 0
	}
	if n > len(orders) {
		n = len(orders)
	}
	out := make([]domain.Order, n)
	copy(out, orders[:n])
	return out
}
