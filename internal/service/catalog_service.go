package service

import (
	"context"
	"fmt"

	"workout-store/internal/domain"
	"workout-store/internal/repository"

	"github.com/google/uuid"
)

// CatalogService manages the categories and training centers athletes refer to
type CatalogService interface {
	CreateCategory(ctx context.Context, nome string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateTrainingCenter(ctx context.Context, nome, endereco, proprietario string) (*domain.TrainingCenter, error)
	ListTrainingCenters(ctx context.Context) ([]*domain.TrainingCenter, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	centerRepo   repository.TrainingCenterRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(categoryRepo repository.CategoryRepository, centerRepo repository.TrainingCenterRepository) CatalogService {
	return &catalogService{categoryRepo: categoryRepo, centerRepo: centerRepo}
}

func (s *catalogService) CreateCategory(ctx context.Context, nome string) (*domain.Category, error) {
	category := &domain.Category{ID: uuid.New(), Nome: nome}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if repository.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) CreateTrainingCenter(ctx context.Context, nome, endereco, proprietario string) (*domain.TrainingCenter, error) {
	center := &domain.TrainingCenter{
		ID:           uuid.New(),
		Nome:         nome,
		Endereco:     endereco,
		Proprietario: proprietario,
	}

	if err := s.centerRepo.Create(ctx, center); err != nil {
		if repository.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create training center: %w", err)
	}

	return center, nil
}

func (s *catalogService) ListTrainingCenters(ctx context.Context) ([]*domain.TrainingCenter, error) {
	centers, err := s.centerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training centers: %w", err)
	}
	return centers, nil
}
