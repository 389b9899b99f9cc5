package ports

import (
	"context"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Email           string
	Password        string
	FullName        string
	ContactNo       string
	Address         string
	HousingType     string
	ExperienceLevel string
	HasOtherPets    *bool
	HasChildren     *bool
}

// UpdateProfileInput is a partial profile edit. NewPassword requires CurrentPassword.
type UpdateProfileInput struct {
	ID              int64
	Email           *string
	FullName        *string
	ContactNo       *string
	Address         *string
	HousingType     *string
	ExperienceLevel *string
	HasOtherPets    *bool
	HasChildren     *bool
	CurrentPassword string
	NewPassword     string
}

// Session is a signed token together with the adopter it was issued to.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
	Adopter   *domain.Adopter
}

// Summary is an adopter row in the staff listing.
type Summary struct {
	Adopter        *domain.Adopter
	AdoptionCount  int
	FavoritesCount int
}

// Service exposes adopter use cases to adapters.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Get(ctx context.Context, id int64) (*domain.Adopter, error)
	List(ctx context.Context) ([]Summary, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Adopter, error)
	Delete(ctx context.Context, id int64) error
}
