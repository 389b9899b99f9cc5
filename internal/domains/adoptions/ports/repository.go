package ports

import (
	"context"
	"fmt"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var (
	ErrNotFound        = fmt.Errorf("adoption %w", errkind.ErrNotFound)
	ErrPetNotFound     = fmt.Errorf("pet %w", errkind.ErrNotFound)
	ErrAdopterNotFound = fmt.Errorf("adopter %w", errkind.ErrNotFound)
)

// Filter narrows List. Zero values match everything.
type Filter struct {
	Status         domain.Status
	ApprovalStatus domain.ApprovalStatus
	AdopterID      int64
	PetID          int64
}

// Repository serves adoption reads that need no pet coordination.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Adoption, error)
	// List returns matching adoptions, newest application first.
	List(ctx context.Context, filter Filter) ([]*domain.Adoption, error)
	CountByAdopter(ctx context.Context) (map[int64]int, error)
	// MonthlyStats tallies adoptions whose application date is in [from, to).
	MonthlyStats(ctx context.Context, from, to time.Time) (domain.MonthlyStats, error)
}

// UnitOfWork runs fn in one store transaction covering adoptions and pet statuses.
// A non-nil error from fn rolls every write back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the transactional view used by state transitions. Reads lock the rows they return
// until the transaction ends.
type Tx interface {
	PetStatus(ctx context.Context, petID int64) (petdomain.Status, error)
	SetPetStatus(ctx context.Context, petID int64, status petdomain.Status) error
	Get(ctx context.Context, id int64) (*domain.Adoption, error)
	Create(ctx context.Context, adoption *domain.Adoption) (*domain.Adoption, error)
	Save(ctx context.Context, adoption *domain.Adoption) error
	Delete(ctx context.Context, id int64) error
	// OtherHolders counts adoptions other than excludeID that still hold petID.
	OtherHolders(ctx context.Context, petID, excludeID int64) (int, error)
	ByAdopter(ctx context.Context, adopterID int64) ([]*domain.Adoption, error)
}
