package backend

import (
	"context"
	"fmt"

	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// ListOrders fetches all orders
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/orders", "order", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order by id
func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", id), "order", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder submits a new order. This is the single atomic boundary of the
// checkout flow: it either persists the whole order or nothing.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	var created domain.Order
	if err := c.post(ctx, "/orders", "order", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrder updates an order
func (c *Client) UpdateOrder(ctx context.Context, id int64, req domain.OrderRequest) (*domain.Order, error) {
	var updated domain.Order
	if err := c.put(ctx, fmt.Sprintf("/orders/%d", id), "order", req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOrder deletes an order
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/orders/%d", id), "order")
}
