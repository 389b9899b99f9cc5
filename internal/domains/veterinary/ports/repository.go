package ports

import (
	"context"
	"fmt"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var (
	ErrVisitNotFound       = fmt.Errorf("veterinary visit %w", errkind.ErrNotFound)
	ErrVaccinationNotFound = fmt.Errorf("vaccination %w", errkind.ErrNotFound)
	ErrPetNotFound         = fmt.Errorf("pet %w", errkind.ErrNotFound)
)

type VisitFilter struct {
	PetID     int64
	VisitType domain.VisitType
}

// VaccinationFilter narrows vaccination listings. Outstanding keeps rows whose
// status is not Completed; DueBefore keeps rows with a next due date before it.
type VaccinationFilter struct {
	PetID       int64
	VisitID     int64
	Status      domain.VaccinationStatus
	Outstanding bool
	DueBefore   time.Time
}

type Repository interface {
	CreateVisit(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	UpdateVisit(ctx context.Context, id int64, mutate func(*domain.Visit) error) (*domain.Visit, error)
	GetVisit(ctx context.Context, id int64) (*domain.Visit, error)
	// ListVisits returns visits, most recent visit date first.
	ListVisits(ctx context.Context, filter VisitFilter) ([]*domain.Visit, error)
	// DeleteVisit removes a visit together with its vaccinations.
	DeleteVisit(ctx context.Context, id int64) error
	DeleteByPet(ctx context.Context, petID int64) error
	CountVisits(ctx context.Context) (int, error)

	// CreateVaccination fails with ErrVisitNotFound when the visit is missing.
	CreateVaccination(ctx context.Context, v *domain.Vaccination) (*domain.Vaccination, error)
	UpdateVaccination(ctx context.Context, id int64, mutate func(*domain.Vaccination) error) (*domain.Vaccination, error)
	GetVaccination(ctx context.Context, id int64) (*domain.Vaccination, error)
	// ListVaccinations returns vaccinations, most recent administration first.
	ListVaccinations(ctx context.Context, filter VaccinationFilter) ([]*domain.Vaccination, error)
	DeleteVaccination(ctx context.Context, id int64) error
	CountVaccinations(ctx context.Context) (int, error)
}

// PetDirectory resolves the pet a visit belongs to.
type PetDirectory interface {
	PetSummary(ctx context.Context, id int64) (domain.PetSummary, error)
}
