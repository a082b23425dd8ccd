package router

import (
	"net/http"

	"seacoff/internal/cache"
	"seacoff/internal/config"
	"seacoff/internal/handler"
	"seacoff/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Menu      *handler.MenuHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// Catalogue mutations, order listing, status updates and dashboards require
// an admin JWT; browsing, the cart and order submission are public.
func New(h Handlers, cfg *config.Config, counter cache.Counter, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	admin := middleware.JWTAuth(cfg.Auth.JWTSecret, logger)
	loginLimit := middleware.RateLimit(counter, cfg.Redis.LoginAttempts, cfg.Redis.LoginWindow, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Menu catalogue
	mux.HandleFunc("GET /api/menus", h.Menu.List)
	mux.HandleFunc("GET /api/menus/{id}", h.Menu.GetByID)
	mux.Handle("POST /api/menus", admin(http.HandlerFunc(h.Menu.Create)))
	mux.Handle("PUT /api/menus/{id}", admin(http.HandlerFunc(h.Menu.Update)))
	mux.Handle("DELETE /api/menus/{id}", admin(http.HandlerFunc(h.Menu.Delete)))

	// Cart
	mux.HandleFunc("GET /api/cart", h.Cart.List)
	mux.HandleFunc("POST /api/cart", h.Cart.Add)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("DELETE /api/cart/{id}", h.Cart.Remove)

	// Orders
	mux.HandleFunc("POST /api/orders", h.Order.Submit)
	mux.HandleFunc("GET /api/orders/{id}", h.Order.GetByID)
	mux.Handle("GET /api/orders", admin(http.HandlerFunc(h.Order.List)))
	mux.Handle("PATCH /api/orders/{id}/status", admin(http.HandlerFunc(h.Order.UpdateStatus)))

	// Admin auth
	mux.Handle("POST /api/auth/login", loginLimit(http.HandlerFunc(h.Auth.Login)))

	// Dashboards
	mux.Handle("GET /api/dashboard/sales-per-day", admin(http.HandlerFunc(h.Dashboard.SalesPerDay)))
	mux.Handle("GET /api/dashboard/best-sellers", admin(http.HandlerFunc(h.Dashboard.BestSellers)))
	mux.Handle("GET /api/dashboard/overview", admin(http.HandlerFunc(h.Dashboard.Overview)))
	mux.Handle("GET /api/dashboard/revenue-trend", admin(http.HandlerFunc(h.Dashboard.RevenueTrend)))
	mux.Handle("GET /api/dashboard/top-customers", admin(http.HandlerFunc(h.Dashboard.TopCustomers)))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
