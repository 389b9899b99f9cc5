package ports

import (
	"context"

	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
)

// PasswordHasher hashes and verifies plain-text passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenIssuer signs adopter bearer tokens.
type TokenIssuer interface {
	IssueAdopter(id int64, email string) (auth.Token, error)
}

// ActivityCounter reports per-adopter totals (adoptions, favorites) for listings.
type ActivityCounter interface {
	CountByAdopter(ctx context.Context) (map[int64]int, error)
}

// Releaser frees any pet held by the adopter's adoptions and removes those adoptions.
type Releaser interface {
	ReleaseForAdopter(ctx context.Context, adopterID int64) error
}

// Dependent removes rows that reference an adopter before the adopter is deleted.
type Dependent interface {
	DeleteByAdopter(ctx context.Context, adopterID int64) error
}
