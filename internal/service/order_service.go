package service

import (
	"context"
	"errors"

	"github.com/laredoma/storefront/internal/geo"
	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/repository"
	"github.com/laredoma/storefront/internal/routing"
)

var (
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrNoLocation    = errors.New("order has no delivery location")
)

// TabAll selects every order in the admin list
const TabAll = "all"

// OrderService is the read-only admin view over orders
type OrderService struct {
	orders  repository.OrderRepository
	planner *routing.Planner
	store   geo.Coordinate
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.OrderRepository, planner *routing.Planner, store geo.Coordinate) *OrderService {
	return &OrderService{
		orders:  orders,
		planner: planner,
		store:   store,
	}
}

// ListOrders returns orders for a status tab; "" and "all" return everything
func (s *OrderService) ListOrders(ctx context.Context, tab string) ([]models.Order, error) {
	status := models.OrderStatus(tab)
	if tab != "" && tab != TabAll && !status.Valid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if tab == "" || tab == TabAll {
		return orders, nil
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// GetOrder returns one order
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// DeliveryView is what the courier screen shows for an order
type DeliveryView struct {
	Order      models.Order        `json:"order"`
	Store      geo.Coordinate      `json:"store"`
	Customer   geo.Coordinate      `json:"customer"`
	Route      routing.Route       `json:"route"`
	Navigation geo.NavigationLinks `json:"navigation"`
}

// Delivery builds the courier view: store and customer pins, route and navigation links
func (s *OrderService) Delivery(ctx context.Context, id string) (*DeliveryView, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Location == nil {
		return nil, ErrNoLocation
	}

	customer := *order.Location
	return &DeliveryView{
		Order:      *order,
		Store:      s.store,
		Customer:   customer,
		Route:      s.planner.Route(ctx, s.store, customer),
		Navigation: geo.LinksTo(customer),
	}, nil
}
