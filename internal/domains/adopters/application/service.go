package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
)

// Service exposes adopter use cases.
type Service struct {
	repo       ports.Repository
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	adoptions  ports.ActivityCounter
	favorites  ports.ActivityCounter
	releaser   ports.Releaser
	dependents []ports.Dependent
}

type Option func(*Service)

// WithActivityCounters supplies the adoption and favorite totals shown in List.
func WithActivityCounters(adoptions, favorites ports.ActivityCounter) Option {
	return func(s *Service) {
		s.adoptions = adoptions
		s.favorites = favorites
	}
}

// WithReleaser sets the hook that frees held pets before an adopter is deleted.
func WithReleaser(r ports.Releaser) Option {
	return func(s *Service) { s.releaser = r }
}

// WithDependents registers stores that must drop an adopter's rows before deletion.
func WithDependents(deps ...ports.Dependent) Option {
	return func(s *Service) { s.dependents = append(s.dependents, deps...) }
}

func NewService(repo ports.Repository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, opts ...Option) *Service {
	s := &Service{repo: repo, hasher: hasher, tokens: tokens}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) Register(ctx context.Context, input ports.RegisterInput) (*ports.Session, error) {
	adopter, err := domain.NewAdopter(input.Email, input.FullName, input.ContactNo)
	if err != nil {
		return nil, mapError(err)
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, mapError(err)
	}
	if err := adopter.SetHousing(input.HousingType); err != nil {
		return nil, mapError(err)
	}
	if err := adopter.SetExperience(input.ExperienceLevel); err != nil {
		return nil, mapError(err)
	}
	adopter.Address = strings.TrimSpace(input.Address)
	if input.HasOtherPets != nil {
		adopter.HasOtherPets = *input.HasOtherPets
	}
	if input.HasChildren != nil {
		adopter.HasChildren = *input.HasChildren
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, mapError(err)
	}
	adopter.PasswordHash = hash

	saved, err := s.repo.Create(ctx, adopter)
	if err != nil {
		return nil, mapError(err)
	}
	return s.session(saved)
}

func (s *Service) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ports.ErrInvalidCredentials
	}
	adopter, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, mapError(err)
	}
	if !s.hasher.Compare(adopter.PasswordHash, password) {
		return nil, ports.ErrInvalidCredentials
	}
	return s.session(adopter)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Adopter, error) {
	adopter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return adopter, nil
}

// List returns every adopter with adoption and favorite totals, newest first.
func (s *Service) List(ctx context.Context) ([]ports.Summary, error) {
	adopters, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	adoptions, err := countOrEmpty(ctx, s.adoptions)
	if err != nil {
		return nil, mapError(err)
	}
	favorites, err := countOrEmpty(ctx, s.favorites)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]ports.Summary, 0, len(adopters))
	for _, a := range adopters {
		out = append(out, ports.Summary{
			Adopter:        a,
			AdoptionCount:  adoptions[a.ID],
			FavoritesCount: favorites[a.ID],
		})
	}
	return out, nil
}

// UpdateProfile applies a partial edit. Rotating the password requires the current one.
func (s *Service) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.Adopter, error) {
	var newHash string
	if input.NewPassword != "" {
		if err := domain.ValidatePassword(input.NewPassword); err != nil {
			return nil, mapError(err)
		}
		if input.CurrentPassword == "" {
			return nil, mapError(ErrCurrentPasswordRequired)
		}
		hash, err := s.hasher.Hash(input.NewPassword)
		if err != nil {
			return nil, mapError(err)
		}
		newHash = hash
	}
	updated, err := s.repo.Update(ctx, input.ID, func(a *domain.Adopter) error {
		if newHash != "" {
			if !s.hasher.Compare(a.PasswordHash, input.CurrentPassword) {
				return ErrCurrentPasswordMismatch
			}
			a.PasswordHash = newHash
		}
		return applyProfile(a, input)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// Delete frees pets held by the adopter's adoptions, then removes the adopter and their rows.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return mapError(err)
	}
	if s.releaser != nil {
		if err := s.releaser.ReleaseForAdopter(ctx, id); err != nil {
			return mapError(err)
		}
	}
	for _, dep := range s.dependents {
		if err := dep.DeleteByAdopter(ctx, id); err != nil {
			return mapError(err)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Service) session(adopter *domain.Adopter) (*ports.Session, error) {
	token, err := s.tokens.IssueAdopter(adopter.ID, adopter.Email)
	if err != nil {
		return nil, mapError(err)
	}
	return &ports.Session{Token: token.Value, TokenID: token.ID, ExpiresAt: token.ExpiresAt, Adopter: adopter}, nil
}

func applyProfile(a *domain.Adopter, input ports.UpdateProfileInput) error {
	if input.Email != nil {
		if err := a.SetEmail(*input.Email); err != nil {
			return err
		}
	}
	if input.FullName != nil {
		if err := a.SetFullName(*input.FullName); err != nil {
			return err
		}
	}
	if input.ContactNo != nil {
		if err := a.SetContactNo(*input.ContactNo); err != nil {
			return err
		}
	}
	if input.Address != nil {
		a.Address = strings.TrimSpace(*input.Address)
	}
	if input.HousingType != nil {
		if err := a.SetHousing(*input.HousingType); err != nil {
			return err
		}
	}
	if input.ExperienceLevel != nil {
		if err := a.SetExperience(*input.ExperienceLevel); err != nil {
			return err
		}
	}
	if input.HasOtherPets != nil {
		a.HasOtherPets = *input.HasOtherPets
	}
	if input.HasChildren != nil {
		a.HasChildren = *input.HasChildren
	}
	return nil
}

func countOrEmpty(ctx context.Context, counter ports.ActivityCounter) (map[int64]int, error) {
	if counter == nil {
		return map[int64]int{}, nil
	}
	return counter.CountByAdopter(ctx)
}

var _ ports.Service = (*Service)(nil)
