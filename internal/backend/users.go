package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// ListUsers fetches all customer profiles
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/users", "user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a customer profile by id
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks up a customer profile by exact email match. A missing
// profile is reported as *apperrors.ErrNotFound, which callers treat as a
// legitimate branch rather than a failure.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	path := "/users/email/" + url.PathEscape(email)
	if err := c.get(ctx, path, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a customer profile
func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.post(ctx, "/users", "user", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser updates a customer profile
func (c *Client) UpdateUser(ctx context.Context, id int64, user domain.User) (*domain.User, error) {
	var updated domain.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), "user", user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser deletes a customer profile
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id), "user")
}
