package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeStaffRepo struct {
	byID       map[uuid.UUID]*entity.Staff
	byUsername map[string]*entity.Staff
	byEmail    map[string]*entity.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{
		byID:       make(map[uuid.UUID]*entity.Staff),
		byUsername: make(map[string]*entity.Staff),
		byEmail:    make(map[string]*entity.Staff),
	}
}

func (f *fakeStaffRepo) Create(ctx context.Context, staff *entity.Staff) error {
	f.byID[staff.ID] = staff
	f.byUsername[staff.Username] = staff
	f.byEmail[staff.Email] = staff
	return nil
}

func (f *fakeStaffRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	return f.byID[id], nil
}

func (f *fakeStaffRepo) FindByUsername(ctx context.Context, username string) (*entity.Staff, error) {
	return f.byUsername[username], nil
}

func (f *fakeStaffRepo) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	return f.byEmail[email], nil
}

func (f *fakeStaffRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeSessionRepo struct {
	byToken map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.byToken[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	session, ok := f.byToken[token]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if _, ok := f.byToken[token]; !ok {
		return fmt.Errorf("session not found")
	}
	delete(f.byToken, token)
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error { return nil }

type authFixture struct {
	service  AuthService
	staff    *fakeStaffRepo
	sessions *fakeSessionRepo
	config   *utils.Config
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	staff := newFakeStaffRepo()
	sessions := newFakeSessionRepo()
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		Seed: utils.SeedConfig{
			AdminUsername: "admin",
			AdminEmail:    "admin@hotel.local",
			AdminPassword: "admin-secret",
		},
	}

	repo := &repository.Repository{Staff: staff, Session: sessions}

	return &authFixture{
		service:  NewAuthService(repo, config, zap.NewNop()),
		staff:    staff,
		sessions: sessions,
		config:   config,
	}
}

func (f *authFixture) seedStaff(t *testing.T, username, email, password string, active bool) *entity.Staff {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	now := time.Now()
	member := &entity.Staff{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleStaff,
		IsActive:     active,
	}
	if err := f.staff.Create(context.Background(), member); err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return member
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.seedStaff(t, "frontdesk", "desk@hotel.local", "secret123", true)

	resp, err := f.service.Login(context.Background(), &request.LoginRequest{
		Username: "frontdesk",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if resp.Token == "" {
		t.Errorf("token should be set")
	}
	if resp.Username != "frontdesk" {
		t.Errorf("username = %s, want frontdesk", resp.Username)
	}
	if resp.Role != entity.RoleStaff {
		t.Errorf("role = %s, want %s", resp.Role, entity.RoleStaff)
	}
	if _, ok := f.sessions.byToken[resp.Token]; !ok {
		t.Errorf("login should create a session for the returned token")
	}
	if !resp.ExpiresAt.After(time.Now()) {
		t.Errorf("session expiry should be in the future")
	}
}

func TestLogin_ByEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.seedStaff(t, "frontdesk", "desk@hotel.local", "secret123", true)

	resp, err := f.service.Login(context.Background(), &request.LoginRequest{
		Username: "desk@hotel.local",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Username != "frontdesk" {
		t.Errorf("username = %s, want frontdesk", resp.Username)
	}
}

func TestLogin_Rejected(t *testing.T) {
	f := newAuthFixture(t)
	f.seedStaff(t, "frontdesk", "desk@hotel.local", "secret123", true)
	f.seedStaff(t, "former", "former@hotel.local", "secret123", false)

	tests := []struct {
		name     string
		username string
		password string
		wantCode string
	}{
		{"wrong password", "frontdesk", "wrong-pass", apperrors.CodeUnauthorized},
		{"unknown staff", "nobody", "secret123", apperrors.CodeUnauthorized},
		{"deactivated account", "former", "secret123", apperrors.CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Login(context.Background(), &request.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assertErrorCode(t, err, tt.wantCode)
		})
	}

	if len(f.sessions.byToken) != 0 {
		t.Errorf("rejected logins must not create sessions, got %d", len(f.sessions.byToken))
	}
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)
	f.seedStaff(t, "frontdesk", "desk@hotel.local", "secret123", true)

	resp, err := f.service.Login(context.Background(), &request.LoginRequest{
		Username: "frontdesk",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := f.service.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if len(f.sessions.byToken) != 0 {
		t.Errorf("logout should revoke the session")
	}

	// The token is gone, a second logout fails.
	err = f.service.Logout(context.Background(), resp.Token)
	assertErrorCode(t, err, apperrors.CodeUnauthorized)

	err = f.service.Logout(context.Background(), "not-a-token")
	assertErrorCode(t, err, apperrors.CodeInvalidInput)
}

func TestCreateStaff(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.service.CreateStaff(context.Background(), &request.CreateStaffRequest{
		Username: "manager",
		Email:    "manager@hotel.local",
		Password: "secret123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("CreateStaff returned error: %v", err)
	}

	if resp.Role != entity.RoleAdmin {
		t.Errorf("role = %s, want %s", resp.Role, entity.RoleAdmin)
	}
	if !resp.IsActive {
		t.Errorf("new staff should start active")
	}

	stored := f.staff.byUsername["manager"]
	if stored == nil {
		t.Fatalf("staff should be stored")
	}
	if stored.PasswordHash == "secret123" {
		t.Errorf("password must be hashed before storage")
	}
	if !utils.CheckPasswordHash("secret123", stored.PasswordHash) {
		t.Errorf("stored hash should verify against the password")
	}
}

func TestCreateStaff_Conflicts(t *testing.T) {
	f := newAuthFixture(t)
	f.seedStaff(t, "frontdesk", "desk@hotel.local", "secret123", true)

	_, err := f.service.CreateStaff(context.Background(), &request.CreateStaffRequest{
		Username: "frontdesk",
		Email:    "other@hotel.local",
		Password: "secret123",
		Role:     "staff",
	})
	assertErrorCode(t, err, apperrors.CodeConflict)

	_, err = f.service.CreateStaff(context.Background(), &request.CreateStaffRequest{
		Username: "other",
		Email:    "desk@hotel.local",
		Password: "secret123",
		Role:     "staff",
	})
	assertErrorCode(t, err, apperrors.CodeConflict)
}

func TestCreateStaff_Validation(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.CreateStaff(context.Background(), &request.CreateStaffRequest{
		Username: "manager",
		Email:    "manager@hotel.local",
		Password: "secret123",
		Role:     "owner",
	})
	assertErrorCode(t, err, apperrors.CodeValidation)

	_, err = f.service.CreateStaff(context.Background(), &request.CreateStaffRequest{
		Username: "manager",
		Email:    "manager@hotel.local",
		Password: "123",
		Role:     "staff",
	})
	assertErrorCode(t, err, apperrors.CodeValidation)
}

func TestSeedAdmin(t *testing.T) {
	f := newAuthFixture(t)

	if err := f.service.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("SeedAdmin returned error: %v", err)
	}

	admin := f.staff.byUsername["admin"]
	if admin == nil {
		t.Fatalf("seed should create the admin account")
	}
	if admin.Role != entity.RoleAdmin {
		t.Errorf("role = %s, want %s", admin.Role, entity.RoleAdmin)
	}
	if !utils.CheckPasswordHash("admin-secret", admin.PasswordHash) {
		t.Errorf("admin password should be hashed from config")
	}

	// Second run is a no-op once staff exist.
	if err := f.service.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("SeedAdmin returned error: %v", err)
	}
	if len(f.staff.byID) != 1 {
		t.Errorf("staff count = %d, want 1", len(f.staff.byID))
	}
}

func TestSeedAdmin_NoPasswordConfigured(t *testing.T) {
	f := newAuthFixture(t)
	f.config.Seed.AdminPassword = ""

	if err := f.service.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("SeedAdmin returned error: %v", err)
	}
	if len(f.staff.byID) != 0 {
		t.Errorf("seed without a configured password should create nothing")
	}
}
