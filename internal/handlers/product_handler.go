package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laredoma/storefront/internal/service"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
// An optional ?category=<slug> narrows the list to one category
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(r.Context(), slug)
	if err != nil {
		h.logger.Info("failed to list products", "category", slug, "error", err)
		WriteServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/products/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	if !validProductID(productID) {
		h.logger.Warn("invalid product ID format", "productId", productID)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// ListCategories handles GET /api/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}
