package cart

import (
	"fmt"

	"storefront/internal/catalog"
	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a ledger line joined with its catalog product for presentation.
type Item struct {
	Product   domain.Product
	Quantity  int
	LineTotal decimal.Decimal
}

// Ledger is the session-scoped collection of cart lines. Lines keep their
// insertion order and stay unique by product id. The ledger performs no
// stock check on add; stock is advisory display data.
type Ledger struct {
	sessionID uuid.UUID
	catalog   catalog.Catalog
	entries   []domain.CartEntry
}

// NewLedger creates an empty ledger for a new session.
func NewLedger(cat catalog.Catalog) *Ledger {
	return &Ledger{
		sessionID: uuid.New(),
		catalog:   cat,
	}
}

// SessionID identifies this cart session.
func (l *Ledger) SessionID() uuid.UUID {
	return l.sessionID
}

// Add inserts a new line with quantity 1, or increments an existing one.
func (l *Ledger) Add(productID int) error {
	if _, err := l.catalog.FindByID(productID); err != nil {
		return fmt.Errorf("failed to add product %d to cart: %w", productID, err)
	}

	for i := range l.entries {
		if l.entries[i].ProductID == productID {
			l.entries[i].Quantity++
			return nil
		}
	}

	l.entries = append(l.entries, domain.CartEntry{ProductID: productID, Quantity: 1})
	return nil
}

// SetQuantity replaces a line's quantity with an absolute value. Values
// below 1 are ignored; taking a line out goes through Remove. Setting the
// quantity of an absent product is a no-op.
func (l *Ledger) SetQuantity(productID, qty int) {
	if qty < 1 {
		return
	}
	for i := range l.entries {
		if l.entries[i].ProductID == productID {
			l.entries[i].Quantity = qty
			return
		}
	}
}

// Remove deletes a line. Removing an absent product is not an error.
func (l *Ledger) Remove(productID int) {
	for i := range l.entries {
		if l.entries[i].ProductID == productID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Count is the total quantity across all lines, not the number of lines.
func (l *Ledger) Count() int {
	total := 0
	for _, e := range l.entries {
		total += e.Quantity
	}
	return total
}

// Len is the number of distinct lines in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Subtotal sums price times quantity over all lines at current catalog
// prices.
func (l *Ledger) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, e := range l.entries {
		p, err := l.catalog.FindByID(e.ProductID)
		if err != nil {
			continue
		}
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return subtotal
}

// Items returns the ledger joined against the catalog, in insertion order.
func (l *Ledger) Items() []Item {
	items := make([]Item, 0, len(l.entries))
	for _, e := range l.entries {
		p, err := l.catalog.FindByID(e.ProductID)
		if err != nil {
			continue
		}
		items = append(items, Item{
			Product:   *p,
			Quantity:  e.Quantity,
			LineTotal: p.Price.Mul(decimal.NewFromInt(int64(e.Quantity))),
		})
	}
	return items
}

// Entries returns a copy of the raw ledger lines.
func (l *Ledger) Entries() []domain.CartEntry {
	out := make([]domain.CartEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear resets the ledger to the empty session state.
func (l *Ledger) Clear() {
	l.entries = nil
}
