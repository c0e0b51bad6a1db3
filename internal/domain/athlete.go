package domain

import (
	"time"

	"github.com/google/uuid"
)

// Athlete represents a registered athlete. CPF is unique at the storage layer.
type Athlete struct {
	ID                uuid.UUID      `json:"id" db:"id"`
	Nome              string         `json:"nome" db:"nome"`
	CPF               string         `json:"cpf" db:"cpf"`
	Idade             int            `json:"idade" db:"idade"`
	Peso              float64        `json:"peso" db:"peso"`
	Altura            float64        `json:"altura" db:"altura"`
	Sexo              string         `json:"sexo" db:"sexo"`
	Categoria         Category       `json:"categoria"`
	CentroTreinamento TrainingCenter `json:"centro_treinamento"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
}

// AthleteSummary is the list-view projection of an athlete.
type AthleteSummary struct {
	Nome              string `json:"nome"`
	CentroTreinamento string `json:"centro_treinamento"`
	Categoria         string `json:"categoria"`
}

// AthleteFilter narrows an athlete listing. Nil fields impose no constraint.
type AthleteFilter struct {
	Nome *string
	CPF  *string
}

// Category groups athletes (e.g. "Scale", "RX").
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Nome string    `json:"nome" db:"nome"`
}

// TrainingCenter is the gym an athlete trains at.
type TrainingCenter struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Nome         string    `json:"nome" db:"nome"`
	Endereco     string    `json:"endereco" db:"endereco"`
	Proprietario string    `json:"proprietario" db:"proprietario"`
}
