package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workout-store/internal/domain"
	"workout-store/internal/repository"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	Create(ctx context.Context, name string, price float64) (*domain.Product, error)
	Patch(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	FilterByPrice(ctx context.Context, minPrice, maxPrice float64) ([]*domain.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		now:         utcNow,
	}
}

// utcNow truncates to the millisecond precision the document store keeps.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create stores a new product stamped with the current time
func (s *productService) Create(ctx context.Context, name string, price float64) (*domain.Product, error) {
	product := &domain.Product{
		Name:      name,
		Price:     price,
		UpdatedAt: s.now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// Patch applies the supplied fields, stamping updated_at unless the caller
// provided one, and returns the stored state read back after the write.
func (s *productService) Patch(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.UpdatedAt == nil {
		now := s.now()
		patch.UpdatedAt = &now
	}

	if err := s.productRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to patch product: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// Removed between the write and the read-back
			return nil, err
		}
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return product, nil
}

// FilterByPrice returns products priced strictly inside (minPrice, maxPrice)
func (s *productService) FilterByPrice(ctx context.Context, minPrice, maxPrice float64) ([]*domain.Product, error) {
	if minPrice >= maxPrice {
		// The open interval is empty
		return []*domain.Product{}, nil
	}

	products, err := s.productRepo.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}

	return products, nil
}
