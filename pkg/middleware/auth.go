package middleware

import (
	"net/http"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession middleware untuk validasi session token UUID
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apperrors.WriteError(w, apperrors.Unauthorized("missing authorization token"))
				return
			}

			// Format: "Bearer <token-uuid>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				apperrors.WriteError(w, apperrors.Unauthorized("invalid token format, use: Bearer <token>"))
				return
			}

			token := parts[1]

			// Find valid session
			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				apperrors.WriteError(w, apperrors.Internal("failed to validate session", err))
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				apperrors.WriteError(w, apperrors.Unauthorized("invalid or expired session"))
				return
			}

			// Set context dengan staff info dan token
			ctx := utils.SetStaffContext(r.Context(), session.StaffID, string(entity.RoleStaff))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin middleware cek role admin. Runs after AuthSession; the real role
// comes from the staff row, not the context label.
func Admin(staffRepo repository.StaffRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get staff ID dari context (sudah diset AuthSession)
			staffID, ok := utils.GetStaffIDFromContext(r.Context())
			if !ok {
				apperrors.WriteError(w, apperrors.Unauthorized("authentication required"))
				return
			}

			// 2. Get staff dari repo
			staff, err := staffRepo.FindByID(r.Context(), staffID)
			if err != nil {
				logger.Error("Admin check: failed to get staff",
					zap.Error(err), zap.String("staff_id", staffID.String()))
				apperrors.WriteError(w, apperrors.Internal("failed to verify role", err))
				return
			}

			// 3. Check if active admin
			if staff == nil || !staff.IsActive || staff.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("staff_id", staffID.String()),
					zap.String("path", r.URL.Path))
				apperrors.WriteError(w, apperrors.Forbidden("admin access required"))
				return
			}

			// 4. Lanjut ke handler
			next.ServeHTTP(w, r)
		})
	}
}
