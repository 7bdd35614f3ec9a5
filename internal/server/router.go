package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/laredoma/storefront/internal/handlers"
	"github.com/laredoma/storefront/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Health   *handlers.HealthHandler
	Products *handlers.ProductHandler
	Sessions *handlers.SessionHandler
	Checkout *handlers.CheckoutHandler
	Admin    *handlers.AdminHandler
}

// Options tunes the router's middleware
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the storefront and admin console routes
func NewRouter(h Handlers, opts Options, log *slog.Logger) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/categories", h.Products.ListCategories)
		r.Get("/products", h.Products.ListProducts)
		r.Get("/products/{productId}", h.Products.GetProduct)

		// Visitor sessions: cart, drawer and checkout
		r.Post("/sessions", h.Sessions.CreateSession)
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", h.Sessions.GetSession)
			r.Delete("/", h.Sessions.DeleteSession)

			r.Get("/cart", h.Sessions.GetCart)
			r.Delete("/cart", h.Sessions.ClearCart)
			r.Post("/cart/items", h.Sessions.AddItem)
			r.Put("/cart/items/{productId}", h.Sessions.UpdateQuantity)
			r.Delete("/cart/items/{productId}", h.Sessions.RemoveItem)

			r.Post("/drawer/{action}", h.Sessions.SetDrawer)

			r.Post("/checkout/quote", h.Checkout.Quote)
			r.Post("/checkout", h.Checkout.Place)
		})

		// Admin console
		r.Route("/admin", func(r chi.Router) {
			r.Get("/orders", h.Admin.ListOrders)
			r.Get("/orders/{orderId}", h.Admin.GetOrder)
			r.Get("/delivery/{orderId}", h.Admin.Delivery)
		})
	})

	return r
}
