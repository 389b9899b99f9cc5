package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
)

// BootstrapFullName names the account created by EnsureBootstrap.
const BootstrapFullName = "Shelter Administrator"

// Service exposes admin account use cases.
type Service struct {
	repo   ports.Repository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewService(repo ports.Repository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, mapError(ErrMissingCredentials)
	}
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, mapError(err)
	}
	if !s.hasher.Compare(admin.PasswordHash, password) {
		return nil, ports.ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ports.ErrInactive
	}
	token, err := s.tokens.IssueAdmin(admin.ID, admin.Email)
	if err != nil {
		return nil, mapError(err)
	}
	return &ports.Session{Token: token.Value, TokenID: token.ID, ExpiresAt: token.ExpiresAt, Admin: admin}, nil
}

func (s *Service) Me(ctx context.Context, id int64) (*domain.Admin, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return admin, nil
}

// Authorize requires an admin token whose account still exists and is active.
func (s *Service) Authorize(ctx context.Context, claims *auth.Claims) (*domain.Admin, error) {
	if claims == nil || !claims.IsAdmin {
		return nil, ports.ErrNotAdmin
	}
	admin, err := s.repo.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrNotAdmin
		}
		return nil, mapError(err)
	}
	if !admin.IsActive {
		return nil, ports.ErrInactive
	}
	return admin, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Admin, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

// Create adds a staff account. Only super admins may call it.
func (s *Service) Create(ctx context.Context, actor *domain.Admin, input ports.CreateInput) (*domain.Admin, error) {
	if !actor.IsSuperAdmin() {
		return nil, ports.ErrSuperAdminOnly
	}
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, mapError(err)
	}
	return s.create(ctx, input.Email, input.Password, input.FullName, role)
}

// ToggleActive flips the active flag of another admin. Only super admins may call it.
func (s *Service) ToggleActive(ctx context.Context, actor *domain.Admin, id int64) (*domain.Admin, error) {
	if !actor.IsSuperAdmin() {
		return nil, ports.ErrSuperAdminOnly
	}
	updated, err := s.repo.Update(ctx, id, func(a *domain.Admin) error {
		return a.ToggleActive(actor.ID)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (s *Service) EnsureBootstrap(ctx context.Context, email, password string) (bool, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return false, nil
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, mapError(err)
	}
	if count > 0 {
		return false, nil
	}
	if _, err := s.create(ctx, email, password, BootstrapFullName, domain.RoleSuperAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) create(ctx context.Context, email, password, fullName string, role domain.Role) (*domain.Admin, error) {
	admin, err := domain.NewAdmin(email, fullName, role)
	if err != nil {
		return nil, mapError(err)
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, mapError(err)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, mapError(err)
	}
	admin.PasswordHash = hash
	saved, err := s.repo.Create(ctx, admin)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

var _ ports.Service = (*Service)(nil)
