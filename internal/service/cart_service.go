package service

import (
	"context"
	"errors"

	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/repository"
	"github.com/laredoma/storefront/internal/session"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrItemNotInCart  = errors.New("product is not in the cart")
)

// ProductRepository is the catalog lookup the cart needs
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// CartService mutates the cart and drawer state of a session
type CartService struct {
	sessions session.Store
	products ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(sessions session.Store, products ProductRepository) *CartService {
	return &CartService{
		sessions: sessions,
		products: products,
	}
}

// CreateSession starts a new visitor session
func (s *CartService) CreateSession(ctx context.Context) (*session.Session, error) {
	return s.sessions.Create(ctx)
}

// GetSession returns the current session state
func (s *CartService) GetSession(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// DeleteSession drops a session
func (s *CartService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// AddItem adds one unit of the product to the cart
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string) (*session.Session, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrInvalidProduct
		}
		return nil, err
	}

	return s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.Cart.Add(*product)
		return nil
	})
}

// UpdateQuantity sets the quantity of a cart line; zero or below removes it
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*session.Session, error) {
	return s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if !sess.Cart.UpdateQuantity(productID, quantity) {
			return ErrItemNotInCart
		}
		return nil
	})
}

// RemoveItem deletes a cart line
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*session.Session, error) {
	return s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if !sess.Cart.Remove(productID) {
			return ErrItemNotInCart
		}
		return nil
	})
}

// ClearCart empties the cart
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.Cart.Clear()
		return nil
	})
}

// DrawerAction is a change to the cart drawer
type DrawerAction string

const (
	DrawerOpen   DrawerAction = "open"
	DrawerClose  DrawerAction = "close"
	DrawerToggle DrawerAction = "toggle"
)

var ErrInvalidDrawerAction = errors.New("drawer action must be open, close or toggle")

// SetDrawer applies a drawer action
func (s *CartService) SetDrawer(ctx context.Context, sessionID string, action DrawerAction) (*session.Session, error) {
	switch action {
	case DrawerOpen, DrawerClose, DrawerToggle:
	default:
		return nil, ErrInvalidDrawerAction
	}

	return s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		switch action {
		case DrawerOpen:
			sess.Drawer.OpenDrawer()
		case DrawerClose:
			sess.Drawer.Close()
		case DrawerToggle:
			sess.Drawer.Toggle()
		}
		return nil
	})
}
