package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/config"
	"github.com/pizzariapopovici/orderapi/internal/domain"
	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.BackendConfig{
		BaseURL: server.URL + "/", // trailing slash must be tolerated
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestListItems(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.Item{
			{ID: 1, Name: "Margherita", PriceInCents: 4500},
		})
	}))

	items, err := client.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].Name)
}

func TestGetUserByEmailFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/email/known@x.com", r.URL.Path)
		json.NewEncoder(w).Encode(domain.User{ID: 7, Name: "João", Email: "known@x.com"})
	}))

	user, err := client.GetUserByEmail(context.Background(), "known@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.GetUserByEmail(context.Background(), "new@x.com")
	var notFound *apperrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)
}

func TestGetUserByEmailServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.GetUserByEmail(context.Background(), "known@x.com")
	require.Error(t, err)
	var notFound *apperrors.ErrNotFound
	assert.False(t, errors.As(err, &notFound))
}

func TestCreateOrderSendsWirePayload(t *testing.T) {
	var received map[string]interface{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Order{ID: 55, UserID: 7, PaymentMethodID: 10})
	}))

	order, err := client.CreateOrder(context.Background(), domain.OrderRequest{
		UserID:          7,
		PaymentMethodID: 10,
		Items:           []domain.CartLine{{ItemID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(55), order.ID)

	assert.Equal(t, float64(7), received["user_id"])
	assert.Equal(t, float64(10), received["payment_method_id"])
	items := received["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), line["item_id"])
	assert.Equal(t, float64(2), line["quantity"])
}

func TestDashboardStatsQueryParams(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats", r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-01-31", r.URL.Query().Get("endDate"))
		json.NewEncoder(w).Encode(domain.DashboardStats{
			TotalOrdersToday:     12,
			UniqueCustomersToday: 9,
			TotalRevenueCents:    456700,
			TotalRevenue:         "R$ 4.567,00",
		})
	}))

	stats, err := client.DashboardStats(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrdersToday)
	assert.Equal(t, "R$ 4.567,00", stats.TotalRevenue)
}

func TestDashboardStatsWithoutRange(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(domain.DashboardStats{TotalOrdersToday: 3})
	}))

	stats, err := client.DashboardStats(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrdersToday)
}

func TestDeleteItem(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/items/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.NoError(t, client.DeleteItem(context.Background(), 3))
}
