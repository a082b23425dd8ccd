package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seacoff/internal/cache"
	"seacoff/internal/config"
	"seacoff/internal/handler"
	"seacoff/internal/model"
	"seacoff/internal/repository"
	"seacoff/internal/router"
	"seacoff/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCounter is an in-memory cache.Counter so API tests do not need a Redis
// instance.
type memCounter struct {
	counts map[string]int64
}

func (c *memCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if c.counts == nil {
		c.counts = make(map[string]int64)
	}
	c.counts[key]++
	return c.counts[key], window, nil
}

func (c *memCounter) Close() error { return nil }

var _ cache.Counter = (*memCounter)(nil)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "integration-test-secret",
			TokenTTL:  time.Hour,
		},
		Redis: config.RedisConfig{
			LoginAttempts: 5,
			LoginWindow:   time.Minute,
		},
	}

	menuRepo := repository.NewMenuRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(testDB.Pool, logger)
	customerRepo := repository.NewCustomerRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	adminRepo := repository.NewAdminRepository(testDB.Pool, logger)
	dashRepo := repository.NewDashboardRepository(testDB.Pool, logger)

	menuService := service.NewMenuService(menuRepo, logger)
	cartService := service.NewCartService(cartRepo, menuRepo, logger)
	orderService := service.NewOrderService(orderRepo, customerRepo, logger)
	authService := service.NewAuthService(adminRepo, cfg.Auth, logger)
	dashService := service.NewDashboardService(dashRepo, logger)

	handlers := router.Handlers{
		Menu:      handler.NewMenuHandler(menuService, logger),
		Cart:      handler.NewCartHandler(cartService, logger),
		Order:     handler.NewOrderHandler(orderService, logger),
		Auth:      handler.NewAuthHandler(authService, logger),
		Dashboard: handler.NewDashboardHandler(dashService, logger),
	}

	return router.New(handlers, cfg, &memCounter{}, logger)
}

// login seeds an admin and exchanges its credentials for a bearer token.
func login(t *testing.T, server http.Handler, testDB *TestDB) string {
	t.Helper()

	SeedAdmin(t, testDB.Pool, "admin", "s3cret")

	body := bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "127.0.0.1:40000"
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func submitOrder(t *testing.T, server http.Handler, req *model.OrderRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.ServeHTTP(w, httpReq)
	return w
}

func budiOrder() *model.OrderRequest {
	return &model.OrderRequest{
		CustomerName: "Budi",
		TotalAmount:  45000,
		Status:       model.StatusPending,
		Items: []model.OrderItemRequest{
			{ProductName: "Americano", Quantity: 2, UnitPrice: 15000},
			{ProductName: "Croissant", Quantity: 1, UnitPrice: 15000},
		},
	}
}

func TestOrderAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	ctx := context.Background()

	t.Run("POST /api/orders persists order, items and customer atomically", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := submitOrder(t, server, budiOrder())
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp model.OrderResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEqual(t, uuid.Nil, resp.OrderID)

		// Read it back through the public endpoint.
		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+resp.OrderID.String(), nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var detail model.OrderDetail
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
		assert.Equal(t, "Budi", detail.Order.CustomerName)
		assert.Equal(t, float64(45000), detail.Order.TotalAmount)
		require.Len(t, detail.Items, 2)

		lineTotals := map[string]float64{}
		for _, item := range detail.Items {
			lineTotals[item.ProductName] = item.LineTotal
		}
		assert.Equal(t, float64(30000), lineTotals["Americano"])
		assert.Equal(t, float64(15000), lineTotals["Croissant"])

		var customers int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&customers))
		assert.Equal(t, 1, customers)
	})

	t.Run("POST /api/orders with empty items writes nothing", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := budiOrder()
		req.Items = nil

		w := submitOrder(t, server, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var orders int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&orders))
		assert.Equal(t, 0, orders)

		var customers int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&customers))
		assert.Equal(t, 0, customers)
	})

	t.Run("POST /api/orders with mismatched total is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := budiOrder()
		req.TotalAmount = 99999

		w := submitOrder(t, server, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeTotalMismatch, resp.Error)
	})

	t.Run("Repeated customer name reuses the customer row", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := submitOrder(t, server, budiOrder())
		require.Equal(t, http.StatusCreated, w.Code)
		w = submitOrder(t, server, budiOrder())
		require.Equal(t, http.StatusCreated, w.Code)

		var customers int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&customers))
		assert.Equal(t, 1, customers)

		// Identical submissions are two separate orders.
		var orders int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&orders))
		assert.Equal(t, 2, orders)
	})

	t.Run("GET /api/orders requires admin token", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		token := login(t, server, testDB)
		req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("PATCH /api/orders/{id}/status transitions the order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		token := login(t, server, testDB)

		w := submitOrder(t, server, budiOrder())
		require.Equal(t, http.StatusCreated, w.Code)

		var resp model.OrderResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		body := bytes.NewBufferString(`{"status":"paid"}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+resp.OrderID.String()+"/status", body)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var status string
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT status FROM orders WHERE id = $1", resp.OrderID).Scan(&status))
		assert.Equal(t, model.StatusPaid, status)
	})
}

func TestMenuAndCartAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Menu browsing is public, mutations need a token", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenus(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var menus []model.Menu
		require.NoError(t, json.NewDecoder(w.Body).Decode(&menus))
		assert.Len(t, menus, 3)

		body := bytes.NewBufferString(`{"name":"Latte","price":22000,"category":"coffee"}`)
		req = httptest.NewRequest(http.MethodPost, "/api/menus", body)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		token := login(t, server, testDB)
		body = bytes.NewBufferString(`{"name":"Latte","price":22000,"category":"coffee"}`)
		req = httptest.NewRequest(http.MethodPost, "/api/menus", body)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Cart add and re-add increments quantity", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		menus := SeedMenus(t, testDB.Pool)

		body := `{"menuId":"` + menus[0].ID.String() + `","quantity":1}`

		req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		req = httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString(body))
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var details []model.CartItemDetail
		require.NoError(t, json.NewDecoder(w.Body).Decode(&details))
		require.Len(t, details, 1)
		assert.Equal(t, 2, details[0].Quantity)
		assert.Equal(t, menus[0].Price*2, details[0].Subtotal)
	})
}

func TestAuthAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Wrong password is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedAdmin(t, testDB.Pool, "admin", "s3cret")

		body := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
		req.RemoteAddr = "127.0.0.2:40000"
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Login rate limit returns 429 after repeated attempts", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedAdmin(t, testDB.Pool, "admin", "s3cret")

		var lastCode int
		for i := 0; i < 6; i++ {
			body := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
			req.RemoteAddr = "127.0.0.3:40000"
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})
}

func TestDashboardAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	CleanupDB(t, testDB.Pool)
	token := login(t, server, testDB)

	require.Equal(t, http.StatusCreated, submitOrder(t, server, budiOrder()).Code)

	t.Run("Dashboards require a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Overview reflects submitted orders", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var overview model.Overview
		require.NoError(t, json.NewDecoder(w.Body).Decode(&overview))
		assert.Equal(t, 1, overview.TotalOrders)
		assert.Equal(t, float64(45000), overview.TotalSales)
	})

	t.Run("Best sellers reflect line items", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/best-sellers", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var sellers []model.BestSeller
		require.NoError(t, json.NewDecoder(w.Body).Decode(&sellers))
		require.Len(t, sellers, 2)
		assert.Equal(t, "Americano", sellers[0].ProductName)
	})
}
