package service

import (
	"context"
	"errors"

	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/repository"
)

// ProductService handles business logic for the storefront catalog
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns only the products in the category with the given slug.
// An empty or unknown slug lists the whole catalog.
func (s *ProductService) ListProducts(ctx context.Context, categorySlug string) ([]models.Product, error) {
	if categorySlug == "" {
		return s.repo.GetAll(ctx)
	}

	category, err := s.repo.CategoryBySlug(ctx, categorySlug)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.repo.GetByCategory(ctx, category.Name)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCategories returns the filter bar categories
func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.Categories(ctx)
}
