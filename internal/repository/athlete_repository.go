package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"workout-store/internal/domain"
	"workout-store/internal/pagination"
)

// AthleteRepository defines the interface for athlete data access
type AthleteRepository interface {
	Create(ctx context.Context, athlete *domain.Athlete) error
	List(ctx context.Context, filter domain.AthleteFilter, params pagination.Params) ([]domain.AthleteSummary, int, error)
}

type athleteRepository struct {
	db *sql.DB
}

// NewAthleteRepository creates a new instance of AthleteRepository
func NewAthleteRepository(db *sql.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

// Create inserts a new athlete. A duplicate cpf surfaces as *ConflictError.
func (r *athleteRepository) Create(ctx context.Context, athlete *domain.Athlete) error {
	query := `
		INSERT INTO atletas (id, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		athlete.ID,
		athlete.Nome,
		athlete.CPF,
		athlete.Idade,
		athlete.Peso,
		athlete.Altura,
		athlete.Sexo,
		athlete.Categoria.ID,
		athlete.CentroTreinamento.ID,
		athlete.CreatedAt,
	)

	if err != nil {
		if conflict := translateConstraintError(err); IsConflict(conflict) {
			return conflict
		}
		return fmt.Errorf("failed to create athlete: %w", err)
	}

	return nil
}

// List retrieves athlete summaries matching the filter, one page at a time.
// nome is a case-insensitive substring match, cpf an exact match.
func (r *athleteRepository) List(ctx context.Context, filter domain.AthleteFilter, params pagination.Params) ([]domain.AthleteSummary, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Nome != nil {
		conditions = append(conditions, fmt.Sprintf("a.nome ILIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, escapeLike(*filter.Nome))
		argIndex++
	}

	if filter.CPF != nil {
		conditions = append(conditions, fmt.Sprintf("a.cpf = $%d", argIndex))
		args = append(args, *filter.CPF)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total athletes
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM atletas a %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count athletes: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.nome, ct.nome, c.nome
		FROM atletas a
		JOIN categorias c ON c.id = a.categoria_id
		JOIN centros_treinamento ct ON ct.id = a.centro_treinamento_id
		%s
		ORDER BY a.created_at ASC, a.id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)

	args = append(args, params.Size, params.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list athletes: %w", err)
	}
	defer rows.Close()

	athletes := []domain.AthleteSummary{}
	for rows.Next() {
		var summary domain.AthleteSummary
		if err := rows.Scan(&summary.Nome, &summary.CentroTreinamento, &summary.Categoria); err != nil {
			return nil, 0, fmt.Errorf("failed to scan athlete: %w", err)
		}
		athletes = append(athletes, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating athletes: %w", err)
	}

	return athletes, total, nil
}

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
