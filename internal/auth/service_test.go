package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/internal/users"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/config"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/security"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "urevent-test",
		ExpirationMinutes: 15,
	}
}

func fastPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func newAuthTestService(t *testing.T, repo userRepository) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: &stubSessionManager{},
		JWTConfig:      testJWTConfig(),
		PasswordConfig: fastPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestRegisterIssuesTokens(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{}
	svc := newAuthTestService(t, repo)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "  Maria@Example.COM ",
		Password: "correct-horse",
		FullName: "Maria Lopez",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if resp.User.Email != "maria@example.com" {
		t.Fatalf("email must be normalized, got %q", resp.User.Email)
	}
	if resp.User.Role != enums.UserRoleClient {
		t.Fatalf("role must default to client, got %q", resp.User.Role)
	}
	if strings.Contains(repo.created.PasswordHash, "correct-horse") {
		t.Fatal("password must not be stored in the clear")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{existing: &models.User{ID: uuid.New(), Email: "taken@example.com"}}
	svc := newAuthTestService(t, repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "correct-horse",
		FullName: "Someone Else",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	t.Parallel()

	svc := newAuthTestService(t, &stubUserRepo{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "root@example.com",
		Password: "correct-horse",
		FullName: "Root",
		Role:     "admin",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	t.Parallel()

	hash, err := security.HashPassword("correct-horse", fastPasswordConfig())
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	repo := &stubUserRepo{existing: &models.User{
		ID:           uuid.New(),
		Email:        "maria@example.com",
		PasswordHash: hash,
		Role:         enums.UserRoleClient,
	}}
	svc := newAuthTestService(t, repo)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "maria@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: "maria@example.com", Password: "wrong"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownUserIsUnauthorized(t *testing.T) {
	t.Parallel()

	svc := newAuthTestService(t, &stubUserRepo{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Message() != invalidCredentialsMessage {
		t.Fatalf("unknown users must not be distinguishable, got %q", typed.Message())
	}
}

type stubUserRepo struct {
	existing *models.User
	created  *models.User
}

func (s *stubUserRepo) Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	user.ID = uuid.New()
	s.created = user
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.existing == nil || s.existing.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.existing, nil
}

type stubSessionManager struct{}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	return "refresh-" + accessID, nil
}
