package handlers

import (
	"log/slog"
	"net/http"

	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/service"
)

// AdminHandler serves the order console
type AdminHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(orders *service.OrderService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		orders: orders,
		log:    log,
	}
}

type orderView struct {
	models.Order
	StatusLabel string               `json:"statusLabel"`
	Actions     []models.OrderAction `json:"actions"`
	ItemCount   int                  `json:"itemCount"`
}

func newOrderView(o models.Order) orderView {
	return orderView{
		Order:       o,
		StatusLabel: o.Status.Label(),
		Actions:     o.Actions(),
		ItemCount:   len(o.Items),
	}
}

// ListOrders handles GET /api/admin/orders
// ?status= is one of all, pending, processing, completed
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("status")

	orders, err := h.orders.ListOrders(r.Context(), tab)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	WriteJSON(w, http.StatusOK, views, h.log)
}

// GetOrder handles GET /api/admin/orders/{orderId}
func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), pathParam(r, "orderId"))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, newOrderView(*order), h.log)
}

// Delivery handles GET /api/admin/delivery/{orderId}
func (h *AdminHandler) Delivery(w http.ResponseWriter, r *http.Request) {
	orderID := pathParam(r, "orderId")

	view, err := h.orders.Delivery(r.Context(), orderID)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	if view.Route.Fallback {
		h.log.Debug("delivery route uses straight line", "order_id", orderID)
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}
