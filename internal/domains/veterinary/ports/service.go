package ports

import (
	"context"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
)

// VisitFields carries the editable visit columns; nil leaves a field unchanged.
type VisitFields struct {
	VisitDate     *time.Time
	Veterinarian  *string
	VisitType     *string
	WeightKg      *float64
	TemperatureC  *float64
	Diagnosis     *string
	Notes         *string
	ProcedureCost *float64
	NextVisitDate *time.Time
}

type CreateVisitInput struct {
	PetID int64
	VisitFields
}

type UpdateVisitInput struct {
	ID int64
	VisitFields
}

type ListVisitsInput struct {
	PetID     int64
	VisitType string
}

// VaccinationFields carries the editable vaccination columns; nil leaves a field unchanged.
type VaccinationFields struct {
	VaccineName      *string
	DateAdministered *time.Time
	AdministeredBy   *string
	Manufacturer     *string
	NextDueDate      *time.Time
	Site             *string
	Reaction         *string
	Cost             *float64
	Status           *string
}

type CreateVaccinationInput struct {
	VisitID int64
	VaccinationFields
}

type UpdateVaccinationInput struct {
	ID int64
	VaccinationFields
}

type ListVaccinationsInput struct {
	PetID  int64
	Status string
}

// Service exposes veterinary records to adapters.
type Service interface {
	ListVisits(ctx context.Context, input ListVisitsInput) ([]domain.VisitView, error)
	GetVisit(ctx context.Context, id int64) (*domain.VisitView, error)
	CreateVisit(ctx context.Context, input CreateVisitInput) (*domain.VisitView, error)
	UpdateVisit(ctx context.Context, input UpdateVisitInput) (*domain.VisitView, error)
	DeleteVisit(ctx context.Context, id int64) error

	ListVaccinations(ctx context.Context, input ListVaccinationsInput) ([]domain.VaccinationView, error)
	GetVaccination(ctx context.Context, id int64) (*domain.VaccinationView, error)
	CreateVaccination(ctx context.Context, input CreateVaccinationInput) (*domain.VaccinationView, error)
	UpdateVaccination(ctx context.Context, input UpdateVaccinationInput) (*domain.VaccinationView, error)
	DeleteVaccination(ctx context.Context, id int64) error

	Overdue(ctx context.Context) ([]domain.VaccinationView, error)
	PetHistory(ctx context.Context, petID int64) ([]domain.VisitView, error)
	Counts(ctx context.Context) (domain.Counts, error)
	DeleteByPet(ctx context.Context, petID int64) error
}
