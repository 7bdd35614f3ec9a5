package models

import (
	"github.com/laredoma/storefront/internal/geo"
	"github.com/shopspring/decimal"
)

// OrderStatus is the displayed state of an order in the admin console
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// Label returns the storefront's display name for the status
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusProcessing:
		return "En Preparación"
	case StatusCompleted:
		return "Entregado"
	default:
		return string(s)
	}
}

// OrderLine is one product on an order; quantity may be fractional for goods sold by weight
type OrderLine struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"qty"`
	Price    decimal.Decimal `json:"price"`
}

// Subtotal is price × quantity
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(l.Quantity)
}

// Order is a customer order shown in the admin console
type Order struct {
	ID         string          `json:"id"`
	Customer   string          `json:"customer"`
	Phone      string          `json:"phone"`
	Status     OrderStatus     `json:"status"`
	PlacedAgo  string          `json:"time"`
	Total      decimal.Decimal `json:"total"`
	Items      []OrderLine     `json:"items"`
	Address    string          `json:"address"`
	Details    string          `json:"details"`
	Location   *geo.Coordinate `json:"location,omitempty"`
	PaymentRef string          `json:"paymentRef"`
}

// OrderAction is an operation the admin console offers for an order
type OrderAction string

const (
	ActionAccept    OrderAction = "accept"
	ActionReject    OrderAction = "reject"
	ActionViewRoute OrderAction = "view_route"
)

// Actions lists what the console offers for the order's current status.
// The route is offered only when the order has a delivery location.
func (o Order) Actions() []OrderAction {
	switch o.Status {
	case StatusPending:
		return []OrderAction{ActionAccept, ActionReject}
	case StatusProcessing:
		if o.Location == nil {
			return []OrderAction{}
		}
		return []OrderAction{ActionViewRoute}
	default:
		return []OrderAction{}
	}
}
