package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/cart"
	"github.com/pizzariapopovici/orderapi/internal/catalog"
	"github.com/pizzariapopovici/orderapi/internal/domain"
	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

// Backend is the slice of the upstream API the checkout workflow needs
type Backend interface {
	catalog.Source
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, user domain.User) (*domain.User, error)
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

// Service drives the checkout workflow: cart edits, customer resolution and
// order submission
type Service struct {
	backend    Backend
	logger     *zap.Logger
	successTTL time.Duration
	now        func() time.Time
}

// NewService creates a new checkout service. successTTL is how long a
// confirmed order keeps reporting success before the flag expires.
func NewService(backend Backend, successTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		backend:    backend,
		logger:     logger,
		successTTL: successTTL,
		now:        time.Now,
	}
}

// StartSession loads a catalog snapshot and opens a fresh checkout session.
// The first accepted payment method is preselected.
func (s *Service) StartSession(ctx context.Context) (*Session, error) {
	cat, err := catalog.Load(ctx, s.backend)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:         uuid.New().String(),
		catalog:    cat,
		resolution: domain.ResolutionUnresolved,
		lastSeen:   s.now(),
	}
	if id, ok := cat.DefaultPaymentMethod(); ok {
		sess.paymentMethodID = id
	}

	s.logger.Info("Checkout session started", zap.String("session_id", sess.ID))
	return sess, nil
}

// Menu returns the session's catalog snapshot of menu items
func (s *Service) Menu(sess *Session) []domain.Item {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.catalog.Items()
}

// PaymentMethods returns the session's accepted payment methods
func (s *Service) PaymentMethods(sess *Session) []domain.PaymentMethod {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.catalog.PaymentMethods()
}

// AddToCart increments the cart line for itemID, creating it if needed
func (s *Service) AddToCart(sess *Session, itemID int64) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cart.Add(itemID)
	sess.touch(s.now())
}

// RemoveFromCart decrements the cart line for itemID; at quantity 1 the
// line is deleted
func (s *Service) RemoveFromCart(sess *Session, itemID int64) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cart.Remove(itemID)
	sess.touch(s.now())
}

// RemoveCartLine deletes the cart line for itemID regardless of quantity
func (s *Service) RemoveCartLine(sess *Session, itemID int64) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cart.RemoveLine(itemID)
	sess.touch(s.now())
}

// Cart returns a displayable view of the session's cart. Lines whose item
// is missing from the catalog are listed with a zero price and excluded
// from the total.
func (s *Service) Cart(sess *Session) CartView {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.cartViewLocked(sess)
}

func (s *Service) cartViewLocked(sess *Session) CartView {
	lines := sess.cart.Lines()
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		view := CartLineView{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
		if item, ok := sess.catalog.Item(line.ItemID); ok {
			view.Name = item.Name
			view.PriceInCents = item.PriceInCents
			view.UnitPrice = cart.FormatBRL(item.PriceInCents)
			view.Subtotal = cart.FormatBRL(item.PriceInCents * int64(line.Quantity))
		}
		views = append(views, view)
	}

	total := sess.cart.Total(sess.catalog)
	return CartView{
		Lines:        views,
		ItemCount:    sess.cart.ItemCount(),
		TotalInCents: total,
		Total:        cart.FormatBRL(total),
	}
}

// SelectPaymentMethod records the payment method for the session
func (s *Service) SelectPaymentMethod(sess *Session, paymentMethodID int64) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.catalog.HasPaymentMethod(paymentMethodID) {
		return &apperrors.ErrValidation{Message: "unknown payment method"}
	}
	sess.paymentMethodID = paymentMethodID
	sess.touch(s.now())
	return nil
}

// ResolveCustomer maps a checkout email to an existing profile or to a
// partial profile the customer still has to complete. A lookup miss is a
// branch, not a failure; any other backend error leaves the session state
// untouched so the customer can retry.
func (s *Service) ResolveCustomer(ctx context.Context, sess *Session, email string) (domain.ResolutionState, *domain.User, error) {
	if email == "" {
		return "", nil, &apperrors.ErrValidation{Message: "email is required"}
	}

	// The lookup runs without sess.mu held; a slow backend must not stall
	// other accessors of the session (the store sweeper among them).
	user, err := s.backend.GetUserByEmail(ctx, email)
	if err != nil {
		if _, ok := err.(*apperrors.ErrNotFound); !ok {
			s.logger.Error("Customer lookup failed", zap.String("session_id", sess.ID), zap.Error(err))
			return "", nil, err
		}
		user = nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if user != nil {
		sess.resolution = domain.ResolutionResolved
		sess.profile = *user
	} else {
		sess.resolution = domain.ResolutionNeedsProfile
		sess.profile = domain.User{Email: email}
	}

	sess.touch(s.now())
	profile := sess.profile
	return sess.resolution, &profile, nil
}

// CompleteProfile persists the customer profile for a session that needs
// one (or updates an already resolved profile after review) and moves the
// session to resolved.
func (s *Service) CompleteProfile(ctx context.Context, sess *Session, profile domain.User) error {
	if err := validateProfile(profile); err != nil {
		return err
	}

	sess.mu.Lock()
	if sess.resolution == domain.ResolutionUnresolved {
		sess.mu.Unlock()
		return &apperrors.ErrInvalidStateTransition{
			From: domain.ResolutionUnresolved,
			To:   domain.ResolutionResolved,
		}
	}
	existingID := sess.profile.ID
	sess.mu.Unlock()

	// Same shape as order submission: the save happens without sess.mu held.
	var (
		saved *domain.User
		err   error
	)
	if existingID != 0 {
		profile.ID = existingID
		saved, err = s.backend.UpdateUser(ctx, existingID, profile)
	} else {
		saved, err = s.backend.CreateUser(ctx, profile)
	}
	if err != nil {
		s.logger.Error("Failed to save customer profile", zap.String("session_id", sess.ID), zap.Error(err))
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// A reset that raced with the save wins: the profile is persisted
	// upstream but the session stays unresolved.
	if sess.resolution == domain.ResolutionUnresolved {
		sess.touch(s.now())
		return nil
	}

	sess.resolution = domain.ResolutionResolved
	sess.profile = *saved
	sess.touch(s.now())
	return nil
}

// ResetResolution abandons the current customer resolution, returning the
// session to its unresolved state. The cart is untouched.
func (s *Service) ResetResolution(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.resolution = domain.ResolutionUnresolved
	sess.profile = domain.User{}
	sess.touch(s.now())
}

// PlaceOrder validates the session, submits the order and resets the
// checkout state on success. Precondition failures never reach the backend.
// On backend failure the cart, payment selection and resolution are all
// preserved for a retry. Only one submission may be in flight per session.
func (s *Service) PlaceOrder(ctx context.Context, sess *Session) (*domain.Order, error) {
	sess.mu.Lock()

	if sess.submitting {
		sess.mu.Unlock()
		return nil, &apperrors.ErrSubmissionInFlight{}
	}
	if sess.cart.Empty() {
		sess.mu.Unlock()
		return nil, &apperrors.ErrValidation{Message: "cart is empty"}
	}
	if sess.paymentMethodID == 0 {
		sess.mu.Unlock()
		return nil, &apperrors.ErrValidation{Message: "no payment method selected"}
	}
	if sess.resolution != domain.ResolutionResolved || sess.profile.ID == 0 {
		sess.mu.Unlock()
		return nil, &apperrors.ErrValidation{Message: "customer is not resolved"}
	}
	lines := sess.cart.Lines()
	for _, line := range lines {
		if _, ok := sess.catalog.Item(line.ItemID); !ok {
			sess.mu.Unlock()
			return nil, &apperrors.ErrValidation{Message: "cart contains an unknown item"}
		}
	}

	req := domain.OrderRequest{
		UserID:          sess.profile.ID,
		PaymentMethodID: sess.paymentMethodID,
		Items:           lines,
	}
	sess.submitting = true
	sess.mu.Unlock()

	order, err := s.backend.CreateOrder(ctx, req)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.submitting = false
	sess.touch(s.now())

	if err != nil {
		s.logger.Error("Order submission failed", zap.String("session_id", sess.ID), zap.Error(err))
		return nil, err
	}

	sess.cart.Clear()
	sess.resolution = domain.ResolutionUnresolved
	sess.profile = domain.User{}
	sess.successUntil = s.now().Add(s.successTTL)

	s.logger.Info("Order placed",
		zap.String("session_id", sess.ID),
		zap.Int64("order_id", order.ID),
	)
	return order, nil
}

// Status reports the session's current checkout state. OrderSuccess stays
// true for a short window after a confirmed order, then expires.
func (s *Service) Status(sess *Session) Status {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	view := s.cartViewLocked(sess)
	status := Status{
		Resolution:      sess.resolution,
		PaymentMethodID: sess.paymentMethodID,
		ItemCount:       view.ItemCount,
		TotalInCents:    view.TotalInCents,
		Total:           view.Total,
		OrderSuccess:    s.now().Before(sess.successUntil),
	}
	if sess.resolution != domain.ResolutionUnresolved {
		profile := sess.profile
		status.Profile = &profile
	}
	return status
}

func validateProfile(profile domain.User) error {
	// Checked in form order so the reported field is stable.
	required := []struct {
		field string
		value string
	}{
		{"name", profile.Name},
		{"email", profile.Email},
		{"phone", profile.Phone},
		{"zip_code", profile.ZipCode},
		{"street", profile.Street},
		{"neighborhood", profile.Neighborhood},
		{"city", profile.City},
		{"state", profile.State},
	}
	for _, f := range required {
		if f.value == "" {
			return &apperrors.ErrValidation{Message: f.field + " is required"}
		}
	}
	if profile.Number == 0 {
		return &apperrors.ErrValidation{Message: "number is required"}
	}
	// The address line (complement) stays optional.
	return nil
}
