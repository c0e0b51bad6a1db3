package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"workout-store/internal/domain"
	"workout-store/internal/pagination"
	"workout-store/internal/repository"

	"github.com/google/uuid"
)

// CreateAthleteInput carries the fields of a new athlete. Category and
// training center are referenced by name.
type CreateAthleteInput struct {
	Nome                  string
	CPF                   string
	Idade                 int
	Peso                  float64
	Altura                float64
	Sexo                  string
	CategoriaNome         string
	CentroTreinamentoNome string
}

// AthleteService defines the interface for athlete business logic
type AthleteService interface {
	List(ctx context.Context, filter domain.AthleteFilter, params pagination.Params) (pagination.Page[domain.AthleteSummary], error)
	Create(ctx context.Context, input CreateAthleteInput) (*domain.Athlete, error)
}

type athleteService struct {
	athleteRepo  repository.AthleteRepository
	categoryRepo repository.CategoryRepository
	centerRepo   repository.TrainingCenterRepository
	now          func() time.Time
}

// NewAthleteService creates a new instance of AthleteService
func NewAthleteService(
	athleteRepo repository.AthleteRepository,
	categoryRepo repository.CategoryRepository,
	centerRepo repository.TrainingCenterRepository,
) AthleteService {
	return &athleteService{
		athleteRepo:  athleteRepo,
		categoryRepo: categoryRepo,
		centerRepo:   centerRepo,
		now:          utcNow,
	}
}

// List returns one page of athlete summaries. Blank filter values are ignored.
func (s *athleteService) List(ctx context.Context, filter domain.AthleteFilter, params pagination.Params) (pagination.Page[domain.AthleteSummary], error) {
	filter.Nome = nonBlank(filter.Nome)
	filter.CPF = nonBlank(filter.CPF)

	athletes, total, err := s.athleteRepo.List(ctx, filter, params)
	if err != nil {
		return pagination.Page[domain.AthleteSummary]{}, fmt.Errorf("failed to list athletes: %w", err)
	}

	return pagination.New(athletes, total, params), nil
}

// Create registers an athlete. A duplicate cpf is returned as
// *repository.ConflictError; unknown category or training center names as
// the matching repository sentinel.
func (s *athleteService) Create(ctx context.Context, input CreateAthleteInput) (*domain.Athlete, error) {
	category, err := s.categoryRepo.FindByName(ctx, input.CategoriaNome)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	center, err := s.centerRepo.FindByName(ctx, input.CentroTreinamentoNome)
	if err != nil {
		if errors.Is(err, repository.ErrTrainingCenterNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up training center: %w", err)
	}

	athlete := &domain.Athlete{
		ID:                uuid.New(),
		Nome:              input.Nome,
		CPF:               input.CPF,
		Idade:             input.Idade,
		Peso:              input.Peso,
		Altura:            input.Altura,
		Sexo:              strings.ToUpper(input.Sexo),
		Categoria:         *category,
		CentroTreinamento: *center,
		CreatedAt:         s.now(),
	}

	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		if repository.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}

	return athlete, nil
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
