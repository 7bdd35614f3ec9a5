package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/laredoma/storefront/internal/geo"
	"github.com/laredoma/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is read-only access to the orders shown in the admin console
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// InMemoryOrderRepository serves a fixed set of mock orders
type InMemoryOrderRepository struct {
	orders []models.Order
}

func line(name, qty, unitPrice string) models.OrderLine {
	return models.OrderLine{
		Name:     name,
		Quantity: decimal.RequireFromString(qty),
		Price:    decimal.RequireFromString(unitPrice),
	}
}

// NewInMemoryOrderRepository creates a repository seeded with the mock orders
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	orders := []models.Order{
		{
			ID:        "ORD-001",
			Customer:  "Maria Rodríguez",
			Phone:     "0414-555-0012",
			Status:    models.StatusPending,
			PlacedAgo: "Hace 5 min",
			Total:     decimal.RequireFromString("45.50"),
			Items: []models.OrderLine{
				line("Harina de Maíz", "4", "1.10"),
				line("Queso Blanco Duro", "1", "6.00"),
				line("Cartón de Huevos", "1", "5.50"),
				line("Carne Molida", "2", "5.50"),
			},
			Address:    "Urb. Los Mangos, Casa 22-A, Calle Principal",
			Details:    "Tocar timbre gris.",
			Location:   &geo.Coordinate{Lat: 7.9915646729875345, Lng: -62.38174344051456},
			PaymentRef: "00123456",
		},
		{
			ID:        "ORD-002",
			Customer:  "Carlos Pérez",
			Phone:     "0412-123-9988",
			Status:    models.StatusProcessing,
			PlacedAgo: "Hace 25 min",
			Total:     decimal.RequireFromString("12.80"),
			Items: []models.OrderLine{
				line("Pepitos", "2", "1.80"),
				line("Coca-Cola", "1", "2.00"),
				line("Doritos", "1", "2.00"),
				line("Chocolate Savoy", "2", "2.60"),
			},
			Address:    "Av. Bolívar, Edificio Centro, Piso 4, Apto 4B",
			Details:    "Dejar en recepción.",
			Location:   &geo.Coordinate{Lat: 8.0012, Lng: -62.3951},
			PaymentRef: "00567890",
		},
		{
			ID:        "ORD-003",
			Customer:  "Ana García",
			Phone:     "0424-777-1122",
			Status:    models.StatusCompleted,
			PlacedAgo: "Hace 1 hora",
			Total:     decimal.RequireFromString("8.50"),
			Items: []models.OrderLine{
				line("Jamón de Pierna", "0.5", "8.50"),
				line("Pan de Sandwich", "1", "4.25"),
			},
			Address:    "Barrio Sucre, Calle 5",
			Details:    "Casa azul rejas blancas.",
			PaymentRef: "00901234",
		},
	}

	return &InMemoryOrderRepository{orders: orders}
}

// GetAll returns every order, newest first
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetByID returns an order; a leading '#' on the id is ignored
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	id = strings.TrimPrefix(strings.TrimSpace(id), "#")
	for _, o := range r.orders {
		if strings.EqualFold(o.ID, id) {
			order := o
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// PaymentRefs returns the payment references already claimed by mock orders
func (r *InMemoryOrderRepository) PaymentRefs() []string {
	refs := make([]string, 0, len(r.orders))
	for _, o := range r.orders {
		refs = append(refs, o.PaymentRef)
	}
	return refs
}
