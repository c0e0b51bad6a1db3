package transport

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"workout-store/internal/domain"
	"workout-store/internal/metrics"
	"workout-store/internal/middleware"
	"workout-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

// PatchProductRequest represents a partial product update. Absent fields are kept.
type PatchProductRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1"`
	Price     *float64   `json:"price" validate:"omitempty,gte=0"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ProductResponse is the client view of a product
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		UpdatedAt: p.UpdatedAt,
	}
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
		metrics:        m,
	}
}

// RegisterRoutes registers all product routes. writeGuard wraps mutating routes.
func (h *ProductHandler) RegisterRoutes(r chi.Router, writeGuard func(http.Handler) http.Handler) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/filter/price", h.FilterByPrice)

		r.Group(func(r chi.Router) {
			r.Use(writeGuard)
			r.Post("/", h.Create)
			r.Patch("/{id}", h.Patch)
		})
	})
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondWithDecodeError(w, h.logger, err)
		return
	}

	product, err := h.productService.Create(r.Context(), req.Name, *req.Price)
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, newProductResponse(product))
}

// Patch handles partial product updates
func (h *ProductHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PatchProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		respondWithDecodeError(w, h.logger, err)
		return
	}

	patch := domain.ProductPatch{
		Name:      req.Name,
		Price:     req.Price,
		UpdatedAt: req.UpdatedAt,
	}

	product, err := h.productService.Patch(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to update product")
		return
	}

	h.logger.Info("Product updated", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}

// FilterByPrice lists products priced strictly between min_price and max_price
func (h *ProductHandler) FilterByPrice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var validationErrors []middleware.ValidationError
	minPrice, ve := parsePriceParam(query.Get("min_price"), "min_price")
	if ve != nil {
		validationErrors = append(validationErrors, *ve)
	}
	maxPrice, ve := parsePriceParam(query.Get("max_price"), "max_price")
	if ve != nil {
		validationErrors = append(validationErrors, *ve)
	}
	if len(validationErrors) > 0 {
		middleware.RespondWithValidationErrors(w, validationErrors)
		return
	}

	products, err := h.productService.FilterByPrice(r.Context(), minPrice, maxPrice)
	if err != nil {
		respondWithServiceError(w, r, h.logger, h.metrics, err, "failed to filter products")
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, newProductResponse(p))
	}

	middleware.RespondWithJSON(w, http.StatusOK, response)
}

func parsePriceParam(raw, field string) (float64, *middleware.ValidationError) {
	if raw == "" {
		return 0, &middleware.ValidationError{Field: field, Message: "This field is required"}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &middleware.ValidationError{Field: field, Message: "Value must be a number"}
	}

	return value, nil
}
