package middleware

import (
	"fmt"
	"net/http"

	apperrors "hotel-booking/pkg/errors"

	"go.uber.org/zap"
)

// Recover middleware
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					apperrors.WriteError(w, apperrors.Internal("internal server error", fmt.Errorf("panic: %v", err)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
