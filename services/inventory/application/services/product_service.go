package services

import (
	"context"
	"fmt"

	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
)

// ProductService manages the product catalog. Products supply default
// features to the items that reference them; the catalog entry is the only
// place those defaults live.
type ProductService struct {
	repo     repositories.ProductRepository
	registry *models.Registry
}

// NewProductService returns a ProductService wired with the given repository
// and feature registry.
func NewProductService(repo repositories.ProductRepository, registry *models.Registry) *ProductService {
	return &ProductService{repo: repo, registry: registry}
}

// Add validates and persists a new product. The identity (brand, model,
// variant) must be unused; the empty variant is a distinct identity.
func (s *ProductService) Add(ctx context.Context, product *models.Product) error {
	for _, name := range product.Features.Names() {
		if err := s.registry.Validate(name, product.Features[name]); err != nil {
			return fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
		}
	}
	if err := s.repo.Add(ctx, product); err != nil {
		return fmt.Errorf("add product: %w", err)
	}
	return nil
}

// Get retrieves one product by identity.
func (s *ProductService) Get(ctx context.Context, id models.ProductID) (*models.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Delete removes a catalog entry. Deleting a product that items still
// reference fails so item references can never dangle.
func (s *ProductService) Delete(ctx context.Context, id models.ProductID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List returns a paginated slice of products plus total count.
func (s *ProductService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	products, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}
