// Package session stores per-visitor storefront state: the cart, the
// drawer, and the confirmation of the last placed order.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/laredoma/storefront/internal/cart"
	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/ui"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrConflict = errors.New("session modified concurrently")
)

// Session is the state one storefront visitor carries between requests
type Session struct {
	ID        string               `json:"id"`
	Cart      *cart.Cart           `json:"cart"`
	Drawer    ui.Drawer            `json:"drawer"`
	LastOrder *models.Confirmation `json:"lastOrder,omitempty"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// New returns an empty session with a fresh id
func New() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Cart:      cart.New(),
		UpdatedAt: time.Now().UTC(),
	}
}

// OrderPlaced reports whether the session has completed a checkout
func (s *Session) OrderPlaced() bool {
	return s.LastOrder != nil
}

// clone deep-copies the mutable parts so store internals never leak to callers
func (s *Session) clone() *Session {
	cp := *s
	cp.Cart = cart.New()
	if s.Cart != nil {
		cp.Cart.Items = append(cp.Cart.Items, s.Cart.Items...)
	}
	if s.LastOrder != nil {
		order := *s.LastOrder
		order.Items = append([]models.ConfirmationLine(nil), s.LastOrder.Items...)
		cp.LastOrder = &order
	}
	return &cp
}

// Store persists sessions
type Store interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	// Update loads the session, applies fn and saves the result atomically.
	// If fn returns an error nothing is saved.
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, id string) error
}
