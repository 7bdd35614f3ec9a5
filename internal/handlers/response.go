package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/laredoma/storefront/internal/repository"
	"github.com/laredoma/storefront/internal/service"
	"github.com/laredoma/storefront/internal/session"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// validationResponse is the 422 body for an incomplete checkout
type validationResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

// WriteServiceError maps a service or repository error onto an HTTP status
func WriteServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:  "Checkout is incomplete",
			Fields: verr.Fields,
		}, logger)
	case errors.Is(err, session.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Session not found", logger)
	case errors.Is(err, repository.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "Product not found", logger)
	case errors.Is(err, repository.ErrOrderNotFound):
		WriteError(w, http.StatusNotFound, "Order not found", logger)
	case errors.Is(err, service.ErrItemNotInCart):
		WriteError(w, http.StatusNotFound, "Product is not in the cart", logger)
	case errors.Is(err, service.ErrInvalidProduct):
		WriteError(w, http.StatusBadRequest, "Invalid product", logger)
	case errors.Is(err, service.ErrInvalidStatus):
		WriteError(w, http.StatusBadRequest, "Invalid status filter", logger)
	case errors.Is(err, service.ErrInvalidDrawerAction):
		WriteError(w, http.StatusBadRequest, "Invalid drawer action", logger)
	case errors.Is(err, service.ErrEmptyCart):
		WriteError(w, http.StatusConflict, "Cart is empty", logger)
	case errors.Is(err, session.ErrConflict):
		WriteError(w, http.StatusConflict, "Session was modified concurrently, retry", logger)
	case errors.Is(err, service.ErrNoLocation):
		WriteError(w, http.StatusUnprocessableEntity, "Order has no delivery location", logger)
	default:
		logger.Error("unhandled service error", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
