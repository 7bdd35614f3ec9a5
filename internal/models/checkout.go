package models

import (
	"time"

	"github.com/laredoma/storefront/internal/geo"
	"github.com/shopspring/decimal"
)

// CheckoutRequest is the customer-entered checkout form
type CheckoutRequest struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	PaymentRef string          `json:"paymentRef"`
	Address    string          `json:"address,omitempty"`
	Reference  string          `json:"reference,omitempty"`
	Location   *geo.Coordinate `json:"location,omitempty"`
}

// ConfirmationLine is a purchased cart line frozen at checkout
type ConfirmationLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Confirmation records a placed order on the customer's session
type Confirmation struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Phone      string             `json:"phone"`
	PaymentRef string             `json:"paymentRef"`
	RefSeen    bool               `json:"paymentRefSeen"` // reference probably used on an earlier order
	Address    string             `json:"address,omitempty"`
	Reference  string             `json:"reference,omitempty"`
	Location   geo.Coordinate     `json:"location"`
	Items      []ConfirmationLine `json:"items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Shipping   decimal.Decimal    `json:"shipping"`
	Total      decimal.Decimal    `json:"total"`
	PlacedAt   time.Time          `json:"placedAt"`
}
