package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-store/internal/domain"
)

var (
	ErrTrainingCenterNotFound = errors.New("training center not found")
)

// TrainingCenterRepository defines the interface for training center data access
type TrainingCenterRepository interface {
	Create(ctx context.Context, center *domain.TrainingCenter) error
	List(ctx context.Context) ([]*domain.TrainingCenter, error)
	FindByName(ctx context.Context, nome string) (*domain.TrainingCenter, error)
}

type trainingCenterRepository struct {
	db *sql.DB
}

// NewTrainingCenterRepository creates a new instance of TrainingCenterRepository
func NewTrainingCenterRepository(db *sql.DB) TrainingCenterRepository {
	return &trainingCenterRepository{db: db}
}

func (r *trainingCenterRepository) Create(ctx context.Context, center *domain.TrainingCenter) error {
	query := `
		INSERT INTO centros_treinamento (id, nome, endereco, proprietario)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, center.ID, center.Nome, center.Endereco, center.Proprietario)
	if err != nil {
		if conflict := translateConstraintError(err); IsConflict(conflict) {
			return conflict
		}
		return fmt.Errorf("failed to create training center: %w", err)
	}

	return nil
}

func (r *trainingCenterRepository) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	query := `
		SELECT id, nome, endereco, proprietario
		FROM centros_treinamento
		ORDER BY nome ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list training centers: %w", err)
	}
	defer rows.Close()

	centers := []*domain.TrainingCenter{}
	for rows.Next() {
		center := &domain.TrainingCenter{}
		if err := rows.Scan(&center.ID, &center.Nome, &center.Endereco, &center.Proprietario); err != nil {
			return nil, fmt.Errorf("failed to scan training center: %w", err)
		}
		centers = append(centers, center)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating training centers: %w", err)
	}

	return centers, nil
}

func (r *trainingCenterRepository) FindByName(ctx context.Context, nome string) (*domain.TrainingCenter, error) {
	query := `
		SELECT id, nome, endereco, proprietario
		FROM centros_treinamento
		WHERE nome = $1
	`

	center := &domain.TrainingCenter{}
	err := r.db.QueryRowContext(ctx, query, nome).Scan(
		&center.ID,
		&center.Nome,
		&center.Endereco,
		&center.Proprietario,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainingCenterNotFound
		}
		return nil, fmt.Errorf("failed to find training center by name: %w", err)
	}

	return center, nil
}
