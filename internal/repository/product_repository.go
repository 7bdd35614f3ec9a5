package repository

import (
	"context"
	"errors"

	"github.com/laredoma/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// InMemoryProductRepository implements ProductRepository over a static catalog
type InMemoryProductRepository struct {
	products   []models.Product
	byID       map[string]int
	categories []models.Category
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewInMemoryProductRepository creates a repository seeded with the store catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	categories := []models.Category{
		{ID: "1", Name: "Víveres", Slug: "viveres"},
		{ID: "2", Name: "Lácteos y Huevos", Slug: "lacteos-huevos"},
		{ID: "3", Name: "Carnes y Charcutería", Slug: "carnes-charcuteria"},
		{ID: "4", Name: "Frutas y Verduras", Slug: "frutas-verduras"},
		{ID: "5", Name: "Snacks y Bebidas", Slug: "snacks-bebidas"},
		{ID: "6", Name: "Panadería", Slug: "panaderia"},
	}

	products := []models.Product{
		{ID: "1", Name: "Harina de Maíz", Price: price("1.10"), Weight: "1 kg", Category: "Víveres", Image: "/images/products/harina-maiz.jpg"},
		{ID: "2", Name: "Arroz Blanco", Price: price("1.60"), Weight: "1 kg", Category: "Víveres", Image: "/images/products/arroz.jpg"},
		{ID: "3", Name: "Pasta Larga", Price: price("1.35"), Weight: "1 kg", Category: "Víveres", Image: "/images/products/pasta.jpg"},
		{ID: "4", Name: "Aceite Vegetal", Price: price("3.90"), Weight: "1 L", Category: "Víveres", Image: "/images/products/aceite.jpg"},
		{ID: "5", Name: "Queso Blanco Duro", Price: price("6.00"), Weight: "1 kg", Category: "Lácteos y Huevos", Image: "/images/products/queso-blanco.jpg"},
		{ID: "6", Name: "Cartón de Huevos", Price: price("5.50"), Weight: "30 und", Category: "Lácteos y Huevos", Image: "/images/products/huevos.jpg"},
		{ID: "7", Name: "Leche Completa", Price: price("2.30"), Weight: "1 L", Category: "Lácteos y Huevos", Image: "/images/products/leche.jpg"},
		{ID: "8", Name: "Carne Molida", Price: price("5.50"), Weight: "1 kg", Category: "Carnes y Charcutería", Image: "/images/products/carne-molida.jpg"},
		{ID: "9", Name: "Jamón de Pierna", Price: price("8.50"), Weight: "1 kg", Category: "Carnes y Charcutería", Image: "/images/products/jamon.jpg"},
		{ID: "10", Name: "Pechuga de Pollo", Price: price("4.80"), Weight: "1 kg", Category: "Carnes y Charcutería", Image: "/images/products/pollo.jpg"},
		{ID: "11", Name: "Plátano", Price: price("0.90"), Weight: "1 kg", Category: "Frutas y Verduras", Image: "/images/products/platano.jpg"},
		{ID: "12", Name: "Tomate", Price: price("1.50"), Weight: "1 kg", Category: "Frutas y Verduras", Image: "/images/products/tomate.jpg"},
		{ID: "13", Name: "Pepitos", Price: price("1.80"), Weight: "80 g", Category: "Snacks y Bebidas", Image: "/images/products/pepitos.jpg"},
		{ID: "14", Name: "Doritos", Price: price("2.00"), Weight: "150 g", Category: "Snacks y Bebidas", Image: "/images/products/doritos.jpg"},
		{ID: "15", Name: "Chocolate Savoy", Price: price("2.60"), Weight: "130 g", Category: "Snacks y Bebidas", Image: "/images/products/savoy.jpg"},
		{ID: "16", Name: "Coca-Cola", Price: price("2.00"), Weight: "2 L", Category: "Snacks y Bebidas", Image: "/images/products/coca-cola.jpg"},
		{ID: "17", Name: "Pan de Sandwich", Price: price("4.25"), Weight: "550 g", Category: "Panadería", Image: "/images/products/pan-sandwich.jpg"},
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &InMemoryProductRepository{
		products:   products,
		byID:       byID,
		categories: categories,
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

// GetByCategory returns the products whose category name matches
func (r *InMemoryProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

// Categories returns all categories in display order
func (r *InMemoryProductRepository) Categories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}

// CategoryBySlug looks up a category by its URL slug
func (r *InMemoryProductRepository) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}
