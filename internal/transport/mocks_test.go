package transport

import (
	"context"
	"fmt"
	"strings"

	"workout-store/internal/domain"
	"workout-store/internal/pagination"
	"workout-store/internal/repository"
)

// Mock repositories for testing
type mockProductRepository struct {
	products map[string]*domain.Product
	nextID   int
	writes   int
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[string]*domain.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.nextID++
	product.ID = fmt.Sprintf("%024x", m.nextID)
	stored := *product
	m.products[product.ID] = &stored
	m.writes++
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	product, exists := m.products[id]
	if !exists {
		return repository.ErrProductNotFound
	}
	if patch.IsEmpty() {
		return repository.ErrEmptyPatch
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.UpdatedAt != nil {
		product.UpdatedAt = patch.UpdatedAt.UTC()
	}
	m.writes++
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	found := *product
	return &found, nil
}

func (m *mockProductRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, p := range m.products {
		if p.Price > minPrice && p.Price < maxPrice {
			found := *p
			products = append(products, &found)
		}
	}
	return products, nil
}

type mockAthleteRepository struct {
	athletes   []*domain.Athlete
	lastFilter domain.AthleteFilter
}

func newMockAthleteRepository() *mockAthleteRepository {
	return &mockAthleteRepository{}
}

func (m *mockAthleteRepository) Create(ctx context.Context, athlete *domain.Athlete) error {
	for _, a := range m.athletes {
		if a.CPF == athlete.CPF {
			return &repository.ConflictError{Field: "cpf", Value: athlete.CPF, Constraint: "atletas_cpf_key"}
		}
	}
	m.athletes = append(m.athletes, athlete)
	return nil
}

func (m *mockAthleteRepository) List(ctx context.Context, filter domain.AthleteFilter, params pagination.Params) ([]domain.AthleteSummary, int, error) {
	m.lastFilter = filter

	matched := []domain.AthleteSummary{}
	for _, a := range m.athletes {
		if filter.Nome != nil && !strings.Contains(strings.ToLower(a.Nome), strings.ToLower(*filter.Nome)) {
			continue
		}
		if filter.CPF != nil && a.CPF != *filter.CPF {
			continue
		}
		matched = append(matched, domain.AthleteSummary{
			Nome:              a.Nome,
			CentroTreinamento: a.CentroTreinamento.Nome,
			Categoria:         a.Categoria.Nome,
		})
	}

	start := min(params.Offset(), len(matched))
	end := min(start+params.Size, len(matched))
	return matched[start:end], len(matched), nil
}

type mockCategoryRepository struct {
	categories map[string]*domain.Category
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[string]*domain.Category)}
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if _, exists := m.categories[category.Nome]; exists {
		return &repository.ConflictError{Field: "nome", Value: category.Nome, Constraint: "categorias_nome_key"}
	}
	m.categories[category.Nome] = category
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (m *mockCategoryRepository) FindByName(ctx context.Context, nome string) (*domain.Category, error) {
	category, exists := m.categories[nome]
	if !exists {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

type mockTrainingCenterRepository struct {
	centers map[string]*domain.TrainingCenter
}

func newMockTrainingCenterRepository() *mockTrainingCenterRepository {
	return &mockTrainingCenterRepository{centers: make(map[string]*domain.TrainingCenter)}
}

func (m *mockTrainingCenterRepository) Create(ctx context.Context, center *domain.TrainingCenter) error {
	if _, exists := m.centers[center.Nome]; exists {
		return &repository.ConflictError{Field: "nome", Value: center.Nome, Constraint: "centros_treinamento_nome_key"}
	}
	m.centers[center.Nome] = center
	return nil
}

func (m *mockTrainingCenterRepository) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	centers := []*domain.TrainingCenter{}
	for _, c := range m.centers {
		centers = append(centers, c)
	}
	return centers, nil
}

func (m *mockTrainingCenterRepository) FindByName(ctx context.Context, nome string) (*domain.TrainingCenter, error) {
	center, exists := m.centers[nome]
	if !exists {
		return nil, repository.ErrTrainingCenterNotFound
	}
	return center, nil
}
