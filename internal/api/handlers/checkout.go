package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/checkout"
	"github.com/pizzariapopovici/orderapi/internal/domain"
	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

// SessionHeader carries the checkout session id on every ordering request
const SessionHeader = "X-Session-ID"

// StartSessionResponse is returned when a new checkout session opens
type StartSessionResponse struct {
	SessionID       string                 `json:"session_id"`
	Items           []domain.Item          `json:"items"`
	PaymentMethods  []domain.PaymentMethod `json:"payment_methods"`
	PaymentMethodID int64                  `json:"payment_method_id"`
}

// HandleStartSession handles POST /v1/session. It loads the catalog
// snapshot the session will use for its whole lifetime.
func HandleStartSession(svc *checkout.Service, store *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.StartSession(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, "start session", err)
			return
		}
		store.Put(sess)

		status := svc.Status(sess)
		c.JSON(http.StatusCreated, StartSessionResponse{
			SessionID:       sess.ID,
			Items:           svc.Menu(sess),
			PaymentMethods:  svc.PaymentMethods(sess),
			PaymentMethodID: status.PaymentMethodID,
		})
	}
}

func sessionFromRequest(c *gin.Context, store *checkout.Store) (*checkout.Session, bool) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + SessionHeader + " header"})
		return nil, false
	}
	sess, ok := store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return nil, false
	}
	return sess, true
}

// HandleMenu handles GET /v1/menu
func HandleMenu(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":           svc.Menu(sess),
			"payment_methods": svc.PaymentMethods(sess),
		})
	}
}

// HandleCartView handles GET /v1/cart
func HandleCartView(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.Cart(sess))
	}
}

// HandleCartAdd handles POST /v1/cart/items/:id
func HandleCartAdd(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		itemID, ok := parseID(c, "id")
		if !ok {
			return
		}
		svc.AddToCart(sess, itemID)
		c.JSON(http.StatusOK, svc.Cart(sess))
	}
}

// HandleCartRemove handles DELETE /v1/cart/items/:id (single decrement)
func HandleCartRemove(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		itemID, ok := parseID(c, "id")
		if !ok {
			return
		}
		svc.RemoveFromCart(sess, itemID)
		c.JSON(http.StatusOK, svc.Cart(sess))
	}
}

// HandleCartRemoveLine handles DELETE /v1/cart/lines/:id (drop the whole
// line regardless of quantity)
func HandleCartRemoveLine(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		itemID, ok := parseID(c, "id")
		if !ok {
			return
		}
		svc.RemoveCartLine(sess, itemID)
		c.JSON(http.StatusOK, svc.Cart(sess))
	}
}

// SelectPaymentRequest picks a payment method for the session
type SelectPaymentRequest struct {
	PaymentMethodID int64 `json:"payment_method_id" binding:"required"`
}

// HandleSelectPayment handles PUT /v1/cart/payment-method
func HandleSelectPayment(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		var req SelectPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if err := svc.SelectPaymentMethod(sess, req.PaymentMethodID); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, svc.Status(sess))
	}
}

// ResolveCustomerRequest starts customer resolution for an email
type ResolveCustomerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleResolveCustomer handles POST /v1/checkout/resolve
func HandleResolveCustomer(svc *checkout.Service, store *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		var req ResolveCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		state, profile, err := svc.ResolveCustomer(c.Request.Context(), sess, req.Email)
		if err != nil {
			if validation, ok := err.(*apperrors.ErrValidation); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validation.Message})
				return
			}
			respondBackendError(c, logger, "resolve customer", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"resolution": state,
			"profile":    profile,
		})
	}
}

// HandleCompleteProfile handles POST /v1/checkout/profile
func HandleCompleteProfile(svc *checkout.Service, store *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		var profile domain.User
		if err := c.ShouldBindJSON(&profile); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := svc.CompleteProfile(c.Request.Context(), sess, profile); err != nil {
			switch err.(type) {
			case *apperrors.ErrValidation:
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			case *apperrors.ErrInvalidStateTransition:
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				respondBackendError(c, logger, "complete profile", err)
			}
			return
		}

		c.JSON(http.StatusOK, svc.Status(sess))
	}
}

// HandleCancelCheckout handles POST /v1/checkout/cancel. It abandons the
// customer resolution while keeping the cart.
func HandleCancelCheckout(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		svc.ResetResolution(sess)
		c.JSON(http.StatusOK, svc.Status(sess))
	}
}

// HandlePlaceOrder handles POST /v1/checkout/order
func HandlePlaceOrder(svc *checkout.Service, store *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}

		order, err := svc.PlaceOrder(c.Request.Context(), sess)
		if err != nil {
			switch err.(type) {
			case *apperrors.ErrValidation:
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			case *apperrors.ErrSubmissionInFlight:
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				respondBackendError(c, logger, "place order", err)
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order_id": order.ID,
			"status":   svc.Status(sess),
		})
	}
}

// HandleCheckoutStatus handles GET /v1/checkout/status
func HandleCheckoutStatus(svc *checkout.Service, store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromRequest(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.Status(sess))
	}
}
