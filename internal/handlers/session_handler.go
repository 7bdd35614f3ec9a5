package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/laredoma/storefront/internal/cart"
	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/service"
	"github.com/laredoma/storefront/internal/session"
	"github.com/shopspring/decimal"
)

// SessionHandler handles cart and drawer requests for a visitor session
type SessionHandler struct {
	carts *service.CartService
	log   *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(carts *service.CartService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		carts: carts,
		log:   log,
	}
}

// CartView is the cart as the drawer renders it
type CartView struct {
	Items []cart.Item     `json:"items"`
	Lines int             `json:"lines"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// SessionView is the full visitor state
type SessionView struct {
	ID          string               `json:"id"`
	Cart        CartView             `json:"cart"`
	DrawerOpen  bool                 `json:"drawerOpen"`
	OrderPlaced bool                 `json:"orderPlaced"`
	LastOrder   *models.Confirmation `json:"lastOrder,omitempty"`
}

func newCartView(c *cart.Cart) CartView {
	return CartView{
		Items: c.Items,
		Lines: c.Len(),
		Count: c.Count(),
		Total: c.Total(),
	}
}

func newSessionView(s *session.Session) SessionView {
	return SessionView{
		ID:          s.ID,
		Cart:        newCartView(s.Cart),
		DrawerOpen:  s.Drawer.IsOpen(),
		OrderPlaced: s.OrderPlaced(),
		LastOrder:   s.LastOrder,
	}
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.carts.CreateSession(r.Context())
	if err != nil {
		h.log.Error("failed to create session", "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	h.log.Debug("session created", "session_id", sess.ID)
	WriteJSON(w, http.StatusCreated, newSessionView(sess), h.log)
}

// GetSession handles GET /api/sessions/{sessionId}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.carts.GetSession(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, newSessionView(sess), h.log)
}

// DeleteSession handles DELETE /api/sessions/{sessionId}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.DeleteSession(r.Context(), chi.URLParam(r, "sessionId")); err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetCart handles GET /api/sessions/{sessionId}/cart
func (h *SessionHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, err := h.carts.GetSession(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, newCartView(sess.Cart), h.log)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

// AddItem handles POST /api/sessions/{sessionId}/cart/items
func (h *SessionHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if !validProductID(req.ProductID) {
		WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
		return
	}

	sess, err := h.carts.AddItem(r.Context(), chi.URLParam(r, "sessionId"), req.ProductID)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, newCartView(sess.Cart), h.log)
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateQuantity handles PUT /api/sessions/{sessionId}/cart/items/{productId}
// A quantity of zero or below removes the line
func (h *SessionHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil || req.Quantity == nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sess, err := h.carts.UpdateQuantity(r.Context(), chi.URLParam(r, "sessionId"), chi.URLParam(r, "productId"), *req.Quantity)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, newCartView(sess.Cart), h.log)
}

// RemoveItem handles DELETE /api/sessions/{sessionId}/cart/items/{productId}
func (h *SessionHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, err := h.carts.RemoveItem(r.Context(), chi.URLParam(r, "sessionId"), chi.URLParam(r, "productId"))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, newCartView(sess.Cart), h.log)
}

// ClearCart handles DELETE /api/sessions/{sessionId}/cart
func (h *SessionHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, err := h.carts.ClearCart(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, newCartView(sess.Cart), h.log)
}

// SetDrawer handles POST /api/sessions/{sessionId}/drawer/{action}
func (h *SessionHandler) SetDrawer(w http.ResponseWriter, r *http.Request) {
	action := service.DrawerAction(chi.URLParam(r, "action"))

	sess, err := h.carts.SetDrawer(r.Context(), chi.URLParam(r, "sessionId"), action)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"open": sess.Drawer.IsOpen()}, h.log)
}
