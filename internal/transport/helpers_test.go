package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workout-store/internal/domain"
	"workout-store/internal/metrics"
	"workout-store/internal/middleware"
	"workout-store/internal/pagination"
	"workout-store/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func passThrough(next http.Handler) http.Handler {
	return next
}

type testAPI struct {
	router     chi.Router
	products   *mockProductRepository
	athletes   *mockAthleteRepository
	categories *mockCategoryRepository
	centers    *mockTrainingCenterRepository
	metrics    *metrics.Metrics
}

func newTestAPI() *testAPI {
	api := &testAPI{
		router:     chi.NewRouter(),
		products:   newMockProductRepository(),
		athletes:   newMockAthleteRepository(),
		categories: newMockCategoryRepository(),
		centers:    newMockTrainingCenterRepository(),
		metrics:    metrics.New(prometheus.NewRegistry()),
	}

	api.categories.categories["Scale"] = &domain.Category{ID: uuid.New(), Nome: "Scale"}
	api.centers.centers["CT King"] = &domain.TrainingCenter{ID: uuid.New(), Nome: "CT King", Endereco: "Rua X", Proprietario: "Marcos"}

	logger := zap.NewNop()
	NewProductHandler(service.NewProductService(api.products), logger, api.metrics).
		RegisterRoutes(api.router, passThrough)
	NewAthleteHandler(service.NewAthleteService(api.athletes, api.categories, api.centers), pagination.DefaultLimits(), logger, api.metrics).
		RegisterRoutes(api.router, passThrough)
	NewCatalogHandler(service.NewCatalogService(api.categories, api.centers), logger, api.metrics).
		RegisterRoutes(api.router, passThrough)

	return api
}

func (api *testAPI) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorResponse {
	t.Helper()
	var response middleware.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return response
}
