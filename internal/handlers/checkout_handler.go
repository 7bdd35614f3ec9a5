package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/service"
)

// CheckoutHandler handles checkout requests
type CheckoutHandler struct {
	checkout *service.CheckoutService
	log      *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		log:      log,
	}
}

// Quote handles POST /api/sessions/{sessionId}/checkout/quote
// The body is the draft form; every field is optional
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode checkout quote request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	quote, err := h.checkout.Quote(r.Context(), chi.URLParam(r, "sessionId"), req)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, quote, h.log)
}

// Place handles POST /api/sessions/{sessionId}/checkout
// - 201: order placed
// - 409: cart is empty
// - 422: form incomplete
func (h *CheckoutHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode checkout request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sessionID := chi.URLParam(r, "sessionId")
	confirmation, err := h.checkout.Place(r.Context(), sessionID, req)
	if err != nil {
		h.log.Info("checkout rejected", "session_id", sessionID, "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	h.log.Info("order placed",
		"order_id", confirmation.ID,
		"session_id", sessionID,
		"total", confirmation.Total.StringFixed(2),
		"shipping", confirmation.Shipping.StringFixed(2),
		"payment_ref_seen", confirmation.RefSeen,
	)
	WriteJSON(w, http.StatusCreated, confirmation, h.log)
}
