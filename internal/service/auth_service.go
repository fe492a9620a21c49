package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtaoOfficial/Interview/internal/model"
	"github.com/dtaoOfficial/Interview/internal/token"
)

// adminStore is the credential-store collaborator. The pgx repository
// implements it in production; tests swap in an in-memory fake.
type adminStore interface {
	FindByEmail(ctx context.Context, email string) (model.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, a model.Admin) error
}

type AuthService struct {
	admins adminStore
	codec  *token.Codec
}

func NewAuthService(admins adminStore, codec *token.Codec) *AuthService {
	return &AuthService{admins: admins, codec: codec}
}

// Login verifies credentials and issues a bearer token. Both "unknown
// email" and "wrong password" collapse into ErrInvalidCredentials so
// the response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.LoginResponse, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			return model.LoginResponse{}, model.ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(admin.Email, roleOrDefault(admin.Role))
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return model.LoginResponse{
		Email:   admin.Email,
		Token:   signed,
		Message: "Login successful",
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.Admin, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return model.Admin{}, err
	}
	if exists {
		return model.Admin{}, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return model.Admin{}, fmt.Errorf("hash password: %w", err)
	}

	admin := model.Admin{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         roleOrDefault(req.Role),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return model.Admin{}, err
	}

	return admin, nil
}

// Resolve maps a verified token subject to a Principal. A subject with
// no credential record resolves to model.ErrAdminNotFound; callers must
// treat that as "unauthenticated", not as a transient failure.
func (s *AuthService) Resolve(ctx context.Context, subject string) (model.Principal, error) {
	admin, err := s.admins.FindByEmail(ctx, subject)
	if err != nil {
		return model.Principal{}, err
	}

	return model.Principal{
		Email: admin.Email,
		Name:  admin.Name,
		Role:  roleOrDefault(admin.Role),
	}, nil
}

// EnsureDefaultAdmin seeds the first credential record on startup so a
// fresh deployment is reachable. Idempotent: a second start with the
// record present does nothing.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, name string, email string, password string) error {
	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check default admin: %w", err)
	}
	if exists {
		slog.Info("default admin already exists; skipping creation", "email", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	admin := model.Admin{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.DefaultAdminRole,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	slog.Info("default admin created", "email", email, "password", password)
	return nil
}

func roleOrDefault(role string) string {
	if strings.TrimSpace(role) == "" {
		return model.DefaultAdminRole
	}
	return role
}
