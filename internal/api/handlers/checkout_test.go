package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/backend"
	"github.com/pizzariapopovici/orderapi/internal/checkout"
	"github.com/pizzariapopovici/orderapi/internal/config"
	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// stub upstream backend serving just enough of the REST surface for the
// ordering flow
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Item{
			{ID: 1, Name: "Margherita", PriceInCents: 1500},
			{ID: 2, Name: "Calabresa", PriceInCents: 800},
		})
	})
	mux.HandleFunc("/payment-methods", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.PaymentMethod{{ID: 10, Name: "Pix"}})
	})
	mux.HandleFunc("/users/email/", func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimPrefix(r.URL.Path, "/users/email/")
		if email != "known@x.com" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(domain.User{ID: 7, Name: "João", Email: email})
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		json.NewDecoder(r.Body).Decode(&user)
		user.ID = 42
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		var req domain.OrderRequest
		json.NewDecoder(r.Body).Decode(&req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Order{ID: 1001, UserID: req.UserID, PaymentMethodID: req.PaymentMethodID})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newOrderingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	upstream := newUpstream(t)
	be := backend.NewClient(config.BackendConfig{BaseURL: upstream.URL, Timeout: 5 * time.Second}, logger)
	svc := checkout.NewService(be, 5*time.Second, logger)
	store := checkout.NewStore(30*time.Minute, logger)

	router := gin.New()
	v1 := router.Group("/v1")
	v1.POST("/session", HandleStartSession(svc, store, logger))
	v1.GET("/cart", HandleCartView(svc, store))
	v1.POST("/cart/items/:id", HandleCartAdd(svc, store))
	v1.DELETE("/cart/items/:id", HandleCartRemove(svc, store))
	v1.DELETE("/cart/lines/:id", HandleCartRemoveLine(svc, store))
	v1.POST("/checkout/resolve", HandleResolveCustomer(svc, store, logger))
	v1.POST("/checkout/profile", HandleCompleteProfile(svc, store, logger))
	v1.POST("/checkout/order", HandlePlaceOrder(svc, store, logger))
	v1.GET("/checkout/status", HandleCheckoutStatus(svc, store))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/v1/session", "", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp StartSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(10), resp.PaymentMethodID)
	return resp.SessionID
}

func TestOrderingFlowNewCustomer(t *testing.T) {
	router := newOrderingRouter(t)
	sessionID := startSession(t, router)

	// Build the cart: two Margheritas, one Calabresa.
	doJSON(t, router, http.MethodPost, "/v1/cart/items/1", sessionID, "")
	doJSON(t, router, http.MethodPost, "/v1/cart/items/1", sessionID, "")
	w := doJSON(t, router, http.MethodPost, "/v1/cart/items/2", sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var view checkout.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, int64(3800), view.TotalInCents)

	// Unknown email branches into needs-profile.
	w = doJSON(t, router, http.MethodPost, "/v1/checkout/resolve", sessionID,
		`{"email":"new@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resolved struct {
		Resolution domain.ResolutionState `json:"resolution"`
		Profile    domain.User            `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.Equal(t, domain.ResolutionNeedsProfile, resolved.Resolution)
	assert.Equal(t, "new@x.com", resolved.Profile.Email)
	assert.Empty(t, resolved.Profile.Name)

	// Completing the profile persists it and resolves the customer.
	w = doJSON(t, router, http.MethodPost, "/v1/checkout/profile", sessionID, `{
		"name": "Maria", "email": "new@x.com", "phone": "11 98888-0000",
		"zip_code": "01000-000", "street": "Rua A", "number": 12,
		"neighborhood": "Centro", "city": "São Paulo", "state": "SP"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Place the order; checkout resets.
	w = doJSON(t, router, http.MethodPost, "/v1/checkout/order", sessionID, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var placed struct {
		OrderID int64           `json:"order_id"`
		Status  checkout.Status `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.Equal(t, int64(1001), placed.OrderID)
	assert.Zero(t, placed.Status.ItemCount)
	assert.Equal(t, domain.ResolutionUnresolved, placed.Status.Resolution)
	assert.True(t, placed.Status.OrderSuccess)
}

func TestOrderingFlowKnownCustomer(t *testing.T) {
	router := newOrderingRouter(t)
	sessionID := startSession(t, router)

	doJSON(t, router, http.MethodPost, "/v1/cart/items/1", sessionID, "")

	w := doJSON(t, router, http.MethodPost, "/v1/checkout/resolve", sessionID,
		`{"email":"known@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resolved struct {
		Resolution domain.ResolutionState `json:"resolution"`
		Profile    domain.User            `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.Equal(t, domain.ResolutionResolved, resolved.Resolution)
	assert.Equal(t, int64(7), resolved.Profile.ID)

	w = doJSON(t, router, http.MethodPost, "/v1/checkout/order", sessionID, "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPlaceOrderEmptyCartIsRejected(t *testing.T) {
	router := newOrderingRouter(t)
	sessionID := startSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/v1/checkout/order", sessionID, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCartDecrementAndLineRemoval(t *testing.T) {
	router := newOrderingRouter(t)
	sessionID := startSession(t, router)

	doJSON(t, router, http.MethodPost, "/v1/cart/items/1", sessionID, "")
	doJSON(t, router, http.MethodPost, "/v1/cart/items/1", sessionID, "")
	doJSON(t, router, http.MethodPost, "/v1/cart/items/2", sessionID, "")

	// Decrement drops one unit; the line survives at quantity 1.
	w := doJSON(t, router, http.MethodDelete, "/v1/cart/items/1", sessionID, "")
	var view checkout.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 2, view.ItemCount)
	assert.Len(t, view.Lines, 2)

	// Removing the whole line drops it regardless of quantity.
	w = doJSON(t, router, http.MethodDelete, "/v1/cart/lines/2", sessionID, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 1, view.ItemCount)
	assert.Len(t, view.Lines, 1)
}

func TestSessionHeaderRequired(t *testing.T) {
	router := newOrderingRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/cart", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/cart", "nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
