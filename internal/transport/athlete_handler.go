package transport

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"workout-store/internal/domain"
	"workout-store/internal/metrics"
	"workout-store/internal/middleware"
	"workout-store/internal/pagination"
	"workout-store/internal/repository"
	"workout-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NameRef references a category or training center by name
type NameRef struct {
	Nome string `json:"nome" validate:"required,max=20"`
}

// CreateAthleteRequest represents the athlete registration payload
type CreateAthleteRequest struct {
	Nome              string  `json:"nome" validate:"required,max=50"`
	CPF               string  `json:"cpf" validate:"required,len=11,numeric"`
	Idade             int     `json:"idade" validate:"required,gt=0,lte=150"`
	Peso              float64 `json:"peso" validate:"required,gt=0,lte=9999.99"`
	Altura            float64 `json:"altura" validate:"required,gt=0,lte=99.99"`
	Sexo              string  `json:"sexo" validate:"required,oneof=M F m f"`
	Categoria         NameRef `json:"categoria"`
	CentroTreinamento NameRef `json:"centro_treinamento"`
}

// AthleteResponse is the detail view returned after registration
type AthleteResponse struct {
	ID                string    `json:"id"`
	Nome              string    `json:"nome"`
	CPF               string    `json:"cpf"`
	Idade             int       `json:"idade"`
	Peso              float64   `json:"peso"`
	Altura            float64   `json:"altura"`
	Sexo              string    `json:"sexo"`
	Categoria         NameRef   `json:"categoria"`
	CentroTreinamento NameRef   `json:"centro_treinamento"`
	CreatedAt         time.Time `json:"created_at"`
}

// AthleteSummaryResponse is the list view of an athlete. It never carries the
// cpf or the internal identifier.
type AthleteSummaryResponse struct {
	Nome              string `json:"nome"`
	CentroTreinamento string `json:"centro_treinamento"`
	Categoria         string `json:"categoria"`
}

// AthleteHandler handles HTTP requests for athlete operations
type AthleteHandler struct {
	athleteService service.AthleteService
	limits         pagination.Limits
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

// NewAthleteHandler creates a new AthleteHandler
func NewAthleteHandler(athleteService service.AthleteService, limits pagination.Limits, logger *zap.Logger, m *metrics.Metrics) *AthleteHandler {
	return &AthleteHandler{
		athleteService: athleteService,
		limits:         limits,
		logger:         logger,
		metrics:        m,
	}
}

// RegisterRoutes registers all athlete routes. writeGuard wraps mutating routes.
func (h *AthleteHandler) RegisterRoutes(r chi.Router, writeGuard func(http.Handler) http.Handler) {
	r.Route("/atletas", func(r chi.Router) {
		r.Get("/", h.List)
		r.With(writeGuard).Post("/", h.Create)
	})
}

// List handles the paginated athlete listing
func (h *AthleteHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params, err := h.limits.Parse(query)
	if err != nil {
		field := "page"
		if errors.Is(err, pagination.ErrInvalidSize) {
			field = "size"
		}
		middleware.RespondWithValidationErrors(w, []middleware.ValidationError{{Field: field, Message: err.Error()}})
		return
	}

	var filter domain.AthleteFilter
	if nome := query.Get("nome"); nome != "" {
		filter.Nome = &nome
	}
	if cpf := query.Get("cpf"); cpf != "" {
		filter.CPF = &cpf
	}

	page, err := h.athleteService.List(r.Context(), filter, params)
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to list athletes")
		return
	}

	items := make([]AthleteSummaryResponse, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, AthleteSummaryResponse{
			Nome:              a.Nome,
			CentroTreinamento: a.CentroTreinamento,
			Categoria:         a.Categoria,
		})
	}

	middleware.RespondWithJSON(w, http.StatusOK, pagination.Page[AthleteSummaryResponse]{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages,
	})
}

// Create handles athlete registration
func (h *AthleteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAthleteRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondWithDecodeError(w, h.logger, err)
		return
	}

	athlete, err := h.athleteService.Create(r.Context(), service.CreateAthleteInput{
		Nome:                  req.Nome,
		CPF:                   req.CPF,
		Idade:                 req.Idade,
		Peso:                  req.Peso,
		Altura:                req.Altura,
		Sexo:                  req.Sexo,
		CategoriaNome:         req.Categoria.Nome,
		CentroTreinamentoNome: req.CentroTreinamento.Nome,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			middleware.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("category %s not found.", req.Categoria.Nome))
		case errors.Is(err, repository.ErrTrainingCenterNotFound):
			middleware.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("training center %s not found.", req.CentroTreinamento.Nome))
		default:
			respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to create athlete")
		}
		return
	}

	h.logger.Info("Athlete created", zap.String("athlete_id", athlete.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, AthleteResponse{
		ID:                athlete.ID.String(),
		Nome:              athlete.Nome,
		CPF:               athlete.CPF,
		Idade:             athlete.Idade,
		Peso:              athlete.Peso,
		Altura:            athlete.Altura,
		Sexo:              athlete.Sexo,
		Categoria:         NameRef{Nome: athlete.Categoria.Nome},
		CentroTreinamento: NameRef{Nome: athlete.CentroTreinamento.Nome},
		CreatedAt:         athlete.CreatedAt,
	})
}
