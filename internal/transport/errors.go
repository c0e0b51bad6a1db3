package transport

import (
	"errors"
	"net/http"

	"workout-store/internal/metrics"
	"workout-store/internal/middleware"
	"workout-store/internal/repository"

	"go.uber.org/zap"
)

// respondWithServiceError maps a service error to its HTTP reply. Unknown
// errors are logged and answered with 500 and fallback, never with the
// underlying message.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, m *metrics.Metrics, err error, fallback string) {
	var conflict *repository.ConflictError

	switch {
	case errors.As(err, &conflict):
		logger.Info("Uniqueness conflict",
			zap.String("field", conflict.Field),
			zap.String("constraint", conflict.Constraint),
			zap.String("path", r.URL.Path),
		)
		if m != nil {
			m.ConflictsTotal.WithLabelValues(conflict.Field).Inc()
		}
		middleware.RespondWithError(w, http.StatusConflict, conflict.Error())

	case errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")

	default:
		logger.Error(fallback,
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

// respondWithDecodeError answers a request body that failed to decode or validate.
func respondWithDecodeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	logger.Debug("Request validation failed", zap.Error(err))

	if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
		middleware.RespondWithValidationErrors(w, validationErrors)
		return
	}

	middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
}
