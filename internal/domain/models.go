package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a menu item (a product the pizzeria sells)
type Item struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	SizeID       int64  `json:"size_id"`
	PriceInCents int64  `json:"price_in_cents"`
	ItemType     string `json:"item_type,omitempty"`
}

// ItemSize represents a size option for menu items
type ItemSize struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PaymentMethod represents an accepted payment method
type PaymentMethod struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// User represents a customer profile. ID is zero until the profile has been
// persisted by the backend.
type User struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Number       int64  `json:"number"`
}

// CartLine is one entry of a checkout cart. Quantity is always >= 1; a line
// that would drop below 1 is removed instead.
type CartLine struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// OrderRequest is the create payload sent to the backend at submission time
type OrderRequest struct {
	UserID          int64      `json:"user_id"`
	PaymentMethodID int64      `json:"payment_method_id"`
	Items           []CartLine `json:"items"`
}

// Order represents an order as returned by the backend
type Order struct {
	ID              int64       `json:"id,omitempty"`
	UserID          int64       `json:"user_id"`
	PaymentMethodID int64       `json:"payment_method_id"`
	Items           []OrderItem `json:"items,omitempty"`
	TotalAmount     int64       `json:"total_amount,omitempty"`
}

// OrderItem is one line of a persisted order
type OrderItem struct {
	ID       int64 `json:"id,omitempty"`
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
	Item     *Item `json:"item,omitempty"`
}

// DashboardStats is the aggregate view served by the backend, optionally
// filtered by a date range
type DashboardStats struct {
	TotalOrdersToday     int64  `json:"total_orders_today"`
	UniqueCustomersToday int64  `json:"unique_customers_today"`
	TotalRevenueCents    int64  `json:"total_revenue_cents"`
	TotalRevenue         string `json:"total_revenue"`
}

// Operator represents a console operator account
type Operator struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OperatorSession is an issued console login token
type OperatorSession struct {
	Token      uuid.UUID
	OperatorID uuid.UUID
	ExpiresAt  time.Time
	CreatedAt  time.Time
}
