package backend

import (
	"context"
	"fmt"

	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// ListItems fetches the full menu
func (c *Client) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.get(ctx, "/items", "item", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a single menu item by id
func (c *Client) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	if err := c.get(ctx, fmt.Sprintf("/items/%d", id), "item", &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem creates a menu item
func (c *Client) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	var created domain.Item
	if err := c.post(ctx, "/items", "item", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItem updates a menu item
func (c *Client) UpdateItem(ctx context.Context, id int64, item domain.Item) (*domain.Item, error) {
	var updated domain.Item
	if err := c.put(ctx, fmt.Sprintf("/items/%d", id), "item", item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem deletes a menu item
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/items/%d", id), "item")
}

// ListItemSizes fetches all size options
func (c *Client) ListItemSizes(ctx context.Context) ([]domain.ItemSize, error) {
	var sizes []domain.ItemSize
	if err := c.get(ctx, "/item-sizes", "item size", &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

// CreateItemSize creates a size option
func (c *Client) CreateItemSize(ctx context.Context, size domain.ItemSize) (*domain.ItemSize, error) {
	var created domain.ItemSize
	if err := c.post(ctx, "/item-sizes", "item size", size, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItemSize updates a size option
func (c *Client) UpdateItemSize(ctx context.Context, id int64, size domain.ItemSize) (*domain.ItemSize, error) {
	var updated domain.ItemSize
	if err := c.put(ctx, fmt.Sprintf("/item-sizes/%d", id), "item size", size, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItemSize deletes a size option
func (c *Client) DeleteItemSize(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/item-sizes/%d", id), "item size")
}

// ListPaymentMethods fetches the accepted payment methods
func (c *Client) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	if err := c.get(ctx, "/payment-methods", "payment method", &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// CreatePaymentMethod creates a payment method
func (c *Client) CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	var created domain.PaymentMethod
	if err := c.post(ctx, "/payment-methods", "payment method", method, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePaymentMethod updates a payment method
func (c *Client) UpdatePaymentMethod(ctx context.Context, id int64, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	var updated domain.PaymentMethod
	if err := c.put(ctx, fmt.Sprintf("/payment-methods/%d", id), "payment method", method, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePaymentMethod deletes a payment method
func (c *Client) DeletePaymentMethod(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/payment-methods/%d", id), "payment method")
}
