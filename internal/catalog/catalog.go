package catalog

import (
	"context"

	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// Source supplies the data a catalog is built from
type Source interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// Catalog is a read-only snapshot of the menu and the accepted payment
// methods, loaded once per checkout session.
type Catalog struct {
	items          []domain.Item
	itemsByID      map[int64]domain.Item
	paymentMethods []domain.PaymentMethod
}

// Load fetches the menu and payment methods from the source and builds a
// snapshot. Both fetches must succeed.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	items, err := src.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	methods, err := src.ListPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &Catalog{
		items:          items,
		itemsByID:      byID,
		paymentMethods: methods,
	}, nil
}

// Items returns a copy of the menu in backend order
func (c *Catalog) Items() []domain.Item {
	items := make([]domain.Item, len(c.items))
	copy(items, c.items)
	return items
}

// Item looks up a menu item by id
func (c *Catalog) Item(id int64) (domain.Item, bool) {
	item, ok := c.itemsByID[id]
	return item, ok
}

// PriceInCents resolves an item id to its unit price. Unknown ids report a
// miss rather than an error; cart totals skip them.
func (c *Catalog) PriceInCents(itemID int64) (int64, bool) {
	item, ok := c.itemsByID[itemID]
	if !ok {
		return 0, false
	}
	return item.PriceInCents, true
}

// PaymentMethods returns a copy of the accepted payment methods
func (c *Catalog) PaymentMethods() []domain.PaymentMethod {
	methods := make([]domain.PaymentMethod, len(c.paymentMethods))
	copy(methods, c.paymentMethods)
	return methods
}

// HasPaymentMethod reports whether id is an accepted payment method
func (c *Catalog) HasPaymentMethod(id int64) bool {
	for _, m := range c.paymentMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}

// DefaultPaymentMethod returns the first accepted payment method, which is
// preselected for new sessions.
func (c *Catalog) DefaultPaymentMethod() (int64, bool) {
	if len(c.paymentMethods) == 0 {
		return 0, false
	}
	return c.paymentMethods[0].ID, true
}
