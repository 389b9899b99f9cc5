package ports

import (
	"context"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
)

// ApplyInput files a new adoption application.
type ApplyInput struct {
	PetID     int64
	AdopterID int64
	Fee       float64
	Notes     string
}

// EditInput changes the fee and notes. Nil leaves a field alone.
type EditInput struct {
	ID    int64
	Fee   *float64
	Notes *string
}

// ListInput filters List by raw status and owner.
type ListInput struct {
	Status    string
	AdopterID int64
	PetID     int64
}

// Service exposes the adoption lifecycle to adapters.
type Service interface {
	List(ctx context.Context, input ListInput) ([]domain.View, error)
	Get(ctx context.Context, id int64) (*domain.View, error)
	Apply(ctx context.Context, input ApplyInput) (*domain.View, error)
	Approve(ctx context.Context, id int64) (*domain.View, error)
	Deny(ctx context.Context, id int64) (*domain.View, error)
	Complete(ctx context.Context, id int64) (*domain.View, error)
	Cancel(ctx context.Context, id int64) (*domain.View, error)
	Return(ctx context.Context, id int64) (*domain.View, error)
	Edit(ctx context.Context, input EditInput) (*domain.View, error)
	// Delete removes an adoption and releases its pet. A missing adoption is not an error.
	Delete(ctx context.Context, id int64) error
	// ReleaseForAdopter frees every pet held by the adopter and removes their adoptions.
	ReleaseForAdopter(ctx context.Context, adopterID int64) error
	CountByAdopter(ctx context.Context) (map[int64]int, error)
	// PendingApplications lists open applications still awaiting a staff decision.
	PendingApplications(ctx context.Context) ([]domain.View, error)
	// Report lists every adoption joined with pet and adopter details, newest first.
	Report(ctx context.Context) ([]domain.View, error)
	MonthlyStats(ctx context.Context, year, month int) (domain.MonthlyStats, error)
	Policy() domain.Policy
}

// ApplicationWorkflows runs Apply either durably or inline.
type ApplicationWorkflows interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.View, error)
}
