package transport

import (
	"net/http"

	"workout-store/internal/domain"
	"workout-store/internal/metrics"
	"workout-store/internal/middleware"
	"workout-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Nome string `json:"nome" validate:"required,max=10"`
}

// CreateTrainingCenterRequest represents the training center creation payload
type CreateTrainingCenterRequest struct {
	Nome         string `json:"nome" validate:"required,max=20"`
	Endereco     string `json:"endereco" validate:"required,max=60"`
	Proprietario string `json:"proprietario" validate:"required,max=30"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type TrainingCenterResponse struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Endereco     string `json:"endereco"`
	Proprietario string `json:"proprietario"`
}

func newCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID.String(), Nome: c.Nome}
}

func newTrainingCenterResponse(c *domain.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:           c.ID.String(),
		Nome:         c.Nome,
		Endereco:     c.Endereco,
		Proprietario: c.Proprietario,
	}
}

// CatalogHandler serves categories and training centers
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger, m *metrics.Metrics) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
		metrics:        m,
	}
}

// RegisterRoutes registers category and training center routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router, writeGuard func(http.Handler) http.Handler) {
	r.Route("/categorias", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.With(writeGuard).Post("/", h.CreateCategory)
	})

	r.Route("/centros_treinamento", func(r chi.Router) {
		r.Get("/", h.ListTrainingCenters)
		r.With(writeGuard).Post("/", h.CreateTrainingCenter)
	})
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondWithDecodeError(w, h.logger, err)
		return
	}

	category, err := h.catalogService.CreateCategory(r.Context(), req.Nome)
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to create category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, newCategoryResponse(category))
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to list categories")
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, newCategoryResponse(c))
	}

	middleware.RespondWithJSON(w, http.StatusOK, response)
}

func (h *CatalogHandler) CreateTrainingCenter(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingCenterRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondWithDecodeError(w, h.logger, err)
		return
	}

	center, err := h.catalogService.CreateTrainingCenter(r.Context(), req.Nome, req.Endereco, req.Proprietario)
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to create training center")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, newTrainingCenterResponse(center))
}

func (h *CatalogHandler) ListTrainingCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.catalogService.ListTrainingCenters(r.Context())
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to list training centers")
		return
	}

	response := make([]TrainingCenterResponse, 0, len(centers))
	for _, c := range centers {
		response = append(response, newTrainingCenterResponse(c))
	}

	middleware.RespondWithJSON(w, http.StatusOK, response)
}
