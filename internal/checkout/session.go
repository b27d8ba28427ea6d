package checkout

import (
	"sync"
	"time"

	"github.com/pizzariapopovici/orderapi/internal/cart"
	"github.com/pizzariapopovici/orderapi/internal/catalog"
	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// Session holds the state of one customer's checkout: the catalog snapshot
// loaded when the session started, the cart, the selected payment method,
// and the customer resolution state. All access goes through Service, which
// serializes on mu.
type Session struct {
	ID string

	mu              sync.Mutex
	catalog         *catalog.Catalog
	cart            cart.Ledger
	paymentMethodID int64
	resolution      domain.ResolutionState
	profile         domain.User
	submitting      bool
	successUntil    time.Time
	lastSeen        time.Time
}

// LastSeen returns the time of the last session activity
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.lastSeen = now
}

// Status is a point-in-time snapshot of a session's checkout state
type Status struct {
	Resolution      domain.ResolutionState `json:"resolution"`
	Profile         *domain.User           `json:"profile,omitempty"`
	PaymentMethodID int64                  `json:"payment_method_id"`
	ItemCount       int                    `json:"item_count"`
	TotalInCents    int64                  `json:"total_in_cents"`
	Total           string                 `json:"total"`
	OrderSuccess    bool                   `json:"order_success"`
}

// CartLineView is one cart line enriched with catalog data for display
type CartLineView struct {
	ItemID       int64  `json:"item_id"`
	Name         string `json:"name"`
	UnitPrice    string `json:"unit_price"`
	PriceInCents int64  `json:"price_in_cents"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

// CartView is the displayable state of a session's cart
type CartView struct {
	Lines        []CartLineView `json:"lines"`
	ItemCount    int            `json:"item_count"`
	TotalInCents int64          `json:"total_in_cents"`
	Total        string         `json:"total"`
}
