package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error)
	SeedAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository // grouping staffRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Find staff by email, lalu by username
	staff, err := s.repo.Staff.FindByEmail(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find staff by email", zap.Error(err), zap.String("identifier", req.Username))
		return nil, apperrors.Internal("failed to find staff", err)
	}

	if staff == nil {
		staff, err = s.repo.Staff.FindByUsername(ctx, req.Username)
		if err != nil {
			s.log.Error("Failed to find staff by username", zap.Error(err), zap.String("identifier", req.Username))
			return nil, apperrors.Internal("failed to find staff", err)
		}
	}

	if staff == nil {
		s.log.Warn("Staff not found for login", zap.String("identifier", req.Username))
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, staff.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("staff_id", staff.ID.String()))
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	// 4. Check if staff is active
	if !staff.IsActive {
		s.log.Warn("Inactive staff tried to login", zap.String("staff_id", staff.ID.String()))
		return nil, apperrors.Forbidden("account is deactivated")
	}

	// 5. Create session
	session, err := s.createSession(ctx, staff.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("staff_id", staff.ID.String()))
		return nil, apperrors.Internal("failed to create session", err)
	}

	s.log.Info("Staff logged in",
		zap.String("staff_id", staff.ID.String()),
		zap.String("username", staff.Username))

	resp := response.AuthToResponse(staff, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// 1. Parse token
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return apperrors.InvalidInput("invalid token format")
	}

	// 2. Revoke session
	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Warn("Failed to revoke session", zap.Error(err))
		return apperrors.Unauthorized("session not found or already revoked")
	}

	s.log.Info("Staff logged out")
	return nil
}

func (s *authService) CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create staff validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Cek username sudah dipakai
	existing, err := s.repo.Staff.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, apperrors.Internal("failed to check username", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("username already taken")
	}

	// 3. Cek email sudah terdaftar
	existing, err = s.repo.Staff.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperrors.Internal("failed to check email", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email already registered")
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperrors.Internal("failed to process password", err)
	}

	// 5. Create staff entity
	now := time.Now()
	staff := &entity.Staff{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.StaffRole(req.Role),
		IsActive:     true,
	}

	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		s.log.Error("Failed to create staff", zap.Error(err), zap.String("username", req.Username))
		return nil, apperrors.Internal("failed to create staff", err)
	}

	s.log.Info("Staff created",
		zap.String("staff_id", staff.ID.String()),
		zap.String("username", staff.Username),
		zap.String("role", string(staff.Role)))

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

// SeedAdmin creates the initial admin account from config when the staff
// table is empty, so a fresh install can log in.
func (s *authService) SeedAdmin(ctx context.Context) error {
	total, err := s.repo.Staff.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count staff", zap.Error(err))
		return err
	}
	if total > 0 {
		s.log.Debug("Staff table not empty, admin seed skipped")
		return nil
	}

	if s.config.Seed.AdminPassword == "" {
		s.log.Warn("Admin seed skipped, SEED_ADMIN_PASSWORD not configured")
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.config.Seed.AdminPassword)
	if err != nil {
		s.log.Error("Failed to hash admin password", zap.Error(err))
		return err
	}

	now := time.Now()
	admin := &entity.Staff{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     s.config.Seed.AdminUsername,
		Email:        s.config.Seed.AdminEmail,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	if err := s.repo.Staff.Create(ctx, admin); err != nil {
		s.log.Error("Failed to seed admin", zap.Error(err))
		return err
	}

	s.log.Info("Admin account seeded", zap.String("username", admin.Username))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, staffID uuid.UUID) (*entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		StaffID:   staffID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
